package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/adapter/http/mapper"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/adapter/http/validation"
	"github.com/Timomoulin/Todo0/internal/app/service"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

const (
	AdminTodosPath  = "/todoapp/admin/todos"
	todoUpdatePath  = AdminTodosPath + "/update"
	todoFormPage    = "todos_form.tmpl"
	todoCreateTitle = "todoCreateTitle"
	todoEditTitle   = "todoEditTitle"
)

// TodoHandler serves the administrator todo screens.
type TodoHandler struct {
	todoService     ports.TodoService
	categoryService ports.CategoryService
}

func NewTodoHandler(todoService ports.TodoService, categoryService ports.CategoryService) *TodoHandler {
	return &TodoHandler{todoService: todoService, categoryService: categoryService}
}

func (h *TodoHandler) Index(c *gin.Context) {
	todos, err := h.todoService.ListTodosByTitle(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "failed to list todos")
		return
	}

	render(c, http.StatusOK, "todos_index.tmpl", "todosTitle", gin.H{
		"Todos": mapper.ToTodoItems(todos),
	})
}

func (h *TodoHandler) Show(c *gin.Context) {
	todo, ok := h.loadTodo(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "todos_show.tmpl", "todoShowTitle", gin.H{
		"Todo": mapper.ToTodoItem(todo),
	})
}

func (h *TodoHandler) Create(c *gin.Context) {
	renderTodoForm(c, h.categoryService, todoFormPage, todoCreateTitle, AdminTodosPath, dto.TodoForm{}, nil)
}

func (h *TodoHandler) Store(c *gin.Context) {
	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidForm)
		return
	}
	form.ID = ""

	saved, ok := saveTodo(c, h.todoService, h.categoryService, form, todoFormPage, todoCreateTitle, AdminTodosPath)
	if !ok {
		return
	}

	redirectWithFlash(c, AdminTodosPath, "todoCreated", saved.Title)
}

func (h *TodoHandler) Edit(c *gin.Context) {
	todo, ok := h.loadTodo(c)
	if !ok {
		return
	}

	renderTodoForm(c, h.categoryService, todoFormPage, todoEditTitle, todoUpdatePath, mapper.ToTodoForm(todo), nil)
}

func (h *TodoHandler) Update(c *gin.Context) {
	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidForm)
		return
	}
	if _, ok := validation.ParseID(form.ID); !ok {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return
	}

	saved, ok := saveTodo(c, h.todoService, h.categoryService, form, todoFormPage, todoEditTitle, todoUpdatePath)
	if !ok {
		return
	}

	redirectWithFlash(c, AdminTodosPath, "todoUpdated", saved.Title)
}

func (h *TodoHandler) Delete(c *gin.Context) {
	var form dto.DeleteForm
	_ = c.ShouldBind(&form)
	id, ok := validation.ParseID(form.ID)
	if !ok {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "failed to delete todo")
		return
	}

	redirectWithFlash(c, AdminTodosPath, "todoDeleted", "")
}

func (h *TodoHandler) loadTodo(c *gin.Context) (domain.Todo, bool) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return domain.Todo{}, false
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "failed to load todo")
		return domain.Todo{}, false
	}
	return todo, true
}

// saveTodo validates and persists a submitted todo form. On failure the
// form page or an error page has already been written.
func saveTodo(
	c *gin.Context,
	todoService ports.TodoService,
	categoryService ports.CategoryService,
	form dto.TodoForm,
	page, title, action string,
) (domain.Todo, bool) {
	todo, parseErrs := validation.BuildTodo(form)
	if len(parseErrs) > 0 {
		// Report the title rules too, so the user sees every problem at once.
		renderTodoForm(c, categoryService, page, title, action, form, append(parseErrs, service.ValidateTodo(todo)...))
		return domain.Todo{}, false
	}

	saved, err := todoService.SaveTodo(c.Request.Context(), todo)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			renderTodoForm(c, categoryService, page, title, action, form, verrs)
			return domain.Todo{}, false
		}
		handleServiceError(c, err, "failed to save todo")
		return domain.Todo{}, false
	}
	return saved, true
}

func renderTodoForm(
	c *gin.Context,
	categoryService ports.CategoryService,
	page, title, action string,
	form dto.TodoForm,
	verrs domain.ValidationErrors,
) {
	categories, err := listCategories(c.Request.Context(), categoryService)
	if err != nil {
		handleServiceError(c, err, "failed to list categories")
		return
	}

	render(c, http.StatusOK, page, title, gin.H{
		"Action":     action,
		"Form":       form,
		"Categories": categories,
		"Errors":     mapper.ToFieldMessages(verrs, middleware.GetLang(c)),
	})
}

func listCategories(ctx context.Context, categoryService ports.CategoryService) ([]dto.CategoryItem, error) {
	categories, err := categoryService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToCategoryItems(categories), nil
}
