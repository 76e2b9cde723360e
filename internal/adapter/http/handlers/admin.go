package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/adapter/http/mapper"
	"github.com/Timomoulin/Todo0/internal/core/ports"
)

// AdminHandler lists accounts and roles for administrators.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "failed to list users")
		return
	}

	render(c, http.StatusOK, "users.tmpl", "usersTitle", gin.H{
		"Users": mapper.ToUserItems(users),
	})
}

func (h *AdminHandler) Roles(c *gin.Context) {
	roles, err := h.userService.ListRoles(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "failed to list roles")
		return
	}

	render(c, http.StatusOK, "roles.tmpl", "rolesTitle", gin.H{
		"Roles": mapper.ToRoleItems(roles),
	})
}
