package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/response"
)

const (
	// HeaderRequestID is echoed back so clients can correlate log lines.
	HeaderRequestID = "X-Request-ID"

	scopeKey = "canvas_scope"
)

var errNoScope = errors.New("middleware: request scope is not set")

// Trace tags the request context with a trace id, taken from the
// X-Request-ID header when the client sent one.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := c.GetHeader(HeaderRequestID); id != "" {
			ctx = log.WithTraceID(ctx, id)
		} else {
			ctx = log.NewTraceContext(ctx)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, log.TraceID(ctx))

		start := time.Now()
		c.Next()
		m.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// Scope attaches the account scope to the request. Requests are refused
// while the scope is incomplete.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.scope.Valid() {
			m.l.Errorf(c.Request.Context(), "middleware.Scope: %v", errNoScope)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(scopeKey, m.scope)
		c.Next()
	}
}

// GetScope returns the scope set by Scope.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
