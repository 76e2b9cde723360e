package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/adapter/http/mapper"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

type ProfileHandler struct {
	userService ports.UserService
}

func NewProfileHandler(userService ports.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Profile sends administrators to their own profile page.
func (h *ProfileHandler) Profile(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal.HasAnyRole(domain.RoleAdmin) {
		c.Redirect(http.StatusFound, AdminProfilePath)
		return
	}
	h.renderProfile(c, principal, "profileTitle")
}

func (h *ProfileHandler) AdminProfile(c *gin.Context) {
	h.renderProfile(c, middleware.GetPrincipal(c), "adminProfileTitle")
}

func (h *ProfileHandler) renderProfile(c *gin.Context, principal *domain.Principal, title string) {
	user, err := h.userService.GetByEmail(c.Request.Context(), principal.Name)
	if err != nil {
		handleServiceError(c, err, "failed to load profile")
		return
	}

	render(c, http.StatusOK, "profile.tmpl", title, gin.H{
		"User": mapper.ToUserItem(user),
	})
}
