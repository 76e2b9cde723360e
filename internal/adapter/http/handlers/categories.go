package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/adapter/http/mapper"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/adapter/http/validation"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

const (
	CategoriesPath      = "/todoapp/admin/categories"
	categoryUpdatePath  = CategoriesPath + "/update"
	categoryFormPage    = "categories_form.tmpl"
	categoryCreateTitle = "categoryCreateTitle"
	categoryEditTitle   = "categoryEditTitle"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) Index(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "failed to list categories")
		return
	}

	render(c, http.StatusOK, "categories_index.tmpl", "categoriesTitle", gin.H{
		"Categories": mapper.ToCategoryItems(categories),
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	h.renderForm(c, categoryCreateTitle, CategoriesPath, dto.CategoryForm{}, nil)
}

func (h *CategoryHandler) Store(c *gin.Context) {
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidForm)
		return
	}

	category := validation.BuildCategory(form)
	category.ID = 0
	form.ID = ""

	saved, err := h.categoryService.SaveCategory(c.Request.Context(), category)
	if err != nil {
		h.handleSaveError(c, err, categoryCreateTitle, CategoriesPath, form)
		return
	}

	redirectWithFlash(c, CategoriesPath, "categoryCreated", saved.Name)
}

func (h *CategoryHandler) Edit(c *gin.Context) {
	id, ok := validation.ParseID(c.Param("id"))
	if !ok {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "failed to load category")
		return
	}

	h.renderForm(c, categoryEditTitle, categoryUpdatePath, mapper.ToCategoryForm(category), nil)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidForm)
		return
	}
	if _, ok := validation.ParseID(form.ID); !ok {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return
	}

	saved, err := h.categoryService.SaveCategory(c.Request.Context(), validation.BuildCategory(form))
	if err != nil {
		h.handleSaveError(c, err, categoryEditTitle, categoryUpdatePath, form)
		return
	}

	redirectWithFlash(c, CategoriesPath, "categoryUpdated", saved.Name)
}

// Delete removes the category and, with it, all of its todos.
func (h *CategoryHandler) Delete(c *gin.Context) {
	var form dto.DeleteForm
	_ = c.ShouldBind(&form)
	id, ok := validation.ParseID(form.ID)
	if !ok {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "failed to delete category")
		return
	}

	redirectWithFlash(c, CategoriesPath, "categoryDeleted", "")
}

func (h *CategoryHandler) handleSaveError(c *gin.Context, err error, title, action string, form dto.CategoryForm) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		h.renderForm(c, title, action, form, verrs)
		return
	}
	handleServiceError(c, err, "failed to save category")
}

func (h *CategoryHandler) renderForm(c *gin.Context, title, action string, form dto.CategoryForm, verrs domain.ValidationErrors) {
	render(c, http.StatusOK, categoryFormPage, title, gin.H{
		"Action": action,
		"Form":   form,
		"Errors": mapper.ToFieldMessages(verrs, middleware.GetLang(c)),
	})
}
