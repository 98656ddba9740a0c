package httpserver

import (
	"github.com/gin-gonic/gin"

	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
	"github.com/instructure/canvas-android-sub046/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "canvas-offline"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	body := statusBody("healthy")
	body["online"] = srv.selector.IsOnline(c.Request.Context())
	body["sessions"] = srv.dashboards.Len() + srv.moduleLists.Len()
	response.OK(c, body)
}

// readyCheck reports ready once the local cache answers.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Cache unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.ErrServiceUnavailable, nil)
		return
	}
	response.OK(c, statusBody("ready"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
