package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MainHandler struct{}

func NewMainHandler() *MainHandler {
	return &MainHandler{}
}

func (h *MainHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "home.tmpl", "homeTitle", nil)
}
