package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	write(c, http.StatusOK, NewOKResp(data))
}

// Accepted sends 202 JSON with data, for intents that complete asynchronously.
func Accepted(c *gin.Context, data any) {
	write(c, http.StatusAccepted, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError is rendered with its own
// status and code; anything else is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		write(c, httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
			Data:      data,
		})
		return
	}

	write(c, http.StatusBadRequest, Resp{
		ErrorCode: BadRequestCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error. err is not exposed.
func InternalError(c *gin.Context, err error) {
	write(c, http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	write(c, http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	write(c, http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   "Forbidden",
	})
}

func write(c *gin.Context, status int, resp Resp) {
	if c.Request != nil {
		resp.TraceID = log.TraceID(c.Request.Context())
	}
	c.JSON(status, resp)
}
