package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

type ErrorHandler struct{}

func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

func (h *ErrorHandler) Forbidden(c *gin.Context) {
	renderError(c, http.StatusForbidden, apierrors.MsgForbidden)
}

func (h *ErrorHandler) NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, apierrors.MsgNotFound)
}

func (h *ErrorHandler) InternalError(c *gin.Context) {
	renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
}

// Recover is installed with gin.CustomRecovery and renders the 500 page for
// panicking handlers.
func (h *ErrorHandler) Recover(c *gin.Context, recovered any) {
	zap.L().Error("handler panicked",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
}
