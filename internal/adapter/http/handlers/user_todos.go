package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/adapter/http/mapper"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/core/ports"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

const (
	UserTodosPath    = "/todoapp/utilisateur/todos"
	userTodoFormPage = "my_todos_form.tmpl"
)

// UserTodoHandler serves the todo screens of standard users. Creations are
// written to the audit log.
type UserTodoHandler struct {
	todoService     ports.TodoService
	categoryService ports.CategoryService
	auditor         ports.AccessAuditor
}

func NewUserTodoHandler(todoService ports.TodoService, categoryService ports.CategoryService, auditor ports.AccessAuditor) *UserTodoHandler {
	return &UserTodoHandler{todoService: todoService, categoryService: categoryService, auditor: auditor}
}

func (h *UserTodoHandler) Index(c *gin.Context) {
	zap.L().Info("user opened todo list", userFields(c)...)

	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "failed to list todos")
		return
	}

	render(c, http.StatusOK, "my_todos_index.tmpl", "myTodosTitle", gin.H{
		"Todos": mapper.ToTodoItems(todos),
	})
}

func (h *UserTodoHandler) Create(c *gin.Context) {
	zap.L().Info("user opened todo creation form", userFields(c)...)
	renderTodoForm(c, h.categoryService, userTodoFormPage, todoCreateTitle, UserTodosPath, dto.TodoForm{}, nil)
}

func (h *UserTodoHandler) Store(c *gin.Context) {
	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidForm)
		return
	}
	form.ID = ""

	saved, ok := saveTodo(c, h.todoService, h.categoryService, form, userTodoFormPage, todoCreateTitle, UserTodosPath)
	if !ok {
		zap.L().Warn("todo creation rejected", userFields(c)...)
		return
	}

	var username string
	if principal := middleware.GetPrincipal(c); principal != nil {
		username = principal.Name
	}
	h.auditor.TodoCreated(c.Request.Context(), username, saved)

	redirectWithFlash(c, UserTodosPath, "todoCreated", saved.Title)
}

func userFields(c *gin.Context) []zap.Field {
	fields := []zap.Field{zap.String("ip", c.ClientIP())}
	if principal := middleware.GetPrincipal(c); principal != nil {
		fields = append(fields, zap.String("user", principal.Name))
	}
	return fields
}
