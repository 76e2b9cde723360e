package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

// render adds the data every page layout needs and writes the template.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	principal := middleware.GetPrincipal(c)
	data["Lang"] = middleware.GetLang(c)
	data["Title"] = title
	data["Principal"] = principal
	data["IsAdmin"] = principal.HasAnyRole(domain.RoleAdmin)
	data["Flash"] = middleware.GetFlash(c)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = dto.FieldMessages{}
	}

	c.HTML(status, name, data)
}

// renderError writes the translated error page for status. msgKey names
// the specific problem shown under the status code.
func renderError(c *gin.Context, status int, msgKey string) {
	page := apierrors.NewPage(status, msgKey, middleware.GetLang(c))

	render(c, page.Status, "error.tmpl", page.TitleKey, gin.H{
		"Error":  page.Error,
		"Detail": page.Detail,
	})
	c.Abort()
}

var notFoundErrors = map[error]string{
	domain.ErrTodoNotFound:     apierrors.MsgTodoNotFound,
	domain.ErrCategoryNotFound: apierrors.MsgCategoryNotFound,
	domain.ErrUserNotFound:     apierrors.MsgNotFound,
	domain.ErrRoleNotFound:     apierrors.MsgNotFound,
}

// handleServiceError renders 404 for missing entities and 500 otherwise.
func handleServiceError(c *gin.Context, err error, action string) {
	for sentinel, msgKey := range notFoundErrors {
		if errors.Is(err, sentinel) {
			renderError(c, http.StatusNotFound, msgKey)
			return
		}
	}

	zap.L().Error(action, zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
	renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
}

func redirectWithFlash(c *gin.Context, location, messageID, name string) {
	middleware.SetFlash(c, middleware.FlashSuccess, messageID, name)
	c.Redirect(http.StatusFound, location)
}
