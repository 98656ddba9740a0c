package http

import (
	"github.com/gin-gonic/gin"

	dashboardVM "github.com/instructure/canvas-android-sub046/internal/dashboard/viewmodel"
	"github.com/instructure/canvas-android-sub046/internal/middleware"
	"github.com/instructure/canvas-android-sub046/internal/model"
	pkgErrors "github.com/instructure/canvas-android-sub046/pkg/errors"
)

// processIntentReq binds and validates an intent body.
func (h *handler) processIntentReq(c *gin.Context) (intentReq, error) {
	var req intentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSession resolves the :session_id path param to an open view model.
func (h *handler) processSession(c *gin.Context) (*dashboardVM.ViewModel, error) {
	v, ok := h.sessions.Get(c.Param("session_id"))
	if !ok {
		return nil, errSessionNotFound
	}
	return v, nil
}

// processScope reads the account scope set by the Scope middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}
