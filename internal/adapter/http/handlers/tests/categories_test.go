package tests

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Timomoulin/Todo0/internal/adapter/http/handlers"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/core/domain"
)

var admin = &domain.Principal{UserID: 1, Name: "admin@admin.com", Roles: []string{domain.RoleAdmin}}

func newCategoryRouter(service *categoryServiceMock) *gin.Engine {
	handler := handlers.NewCategoryHandler(service)
	router := newRouter()
	router.GET("/todoapp/admin/categories", handler.Index)
	router.GET("/todoapp/admin/categories/create", handler.Create)
	router.POST("/todoapp/admin/categories", handler.Store)
	router.GET("/todoapp/admin/categories/edit/:id", handler.Edit)
	router.POST("/todoapp/admin/categories/update", handler.Update)
	router.POST("/todoapp/admin/categories/delete", handler.Delete)
	return router
}

func TestCategoryHandler_Index(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("ListCategories", mock.Anything).Return([]domain.Category{
		{ID: 1, Name: "Loisir", Color: "#FF0000"},
		{ID: 2, Name: "Travail", Color: "#aaaaaa"},
	}, nil).Once()

	rec := get(newCategoryRouter(service), "/todoapp/admin/categories", admin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loisir")
	assert.Contains(t, rec.Body.String(), "Travail")
	assert.Contains(t, rec.Body.String(), "/todoapp/admin/categories/edit/2")
	service.AssertExpectations(t)
}

func TestCategoryHandler_Index_Failure(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("ListCategories", mock.Anything).Return(nil, errors.New("db down")).Once()

	rec := get(newCategoryRouter(service), "/todoapp/admin/categories", admin)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Erreur interne")
}

func TestCategoryHandler_Store_Success(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("SaveCategory", mock.Anything, domain.Category{Name: "Loisir", Color: "#FF0000"}).
		Return(domain.Category{ID: 1, Name: "Loisir", Color: "#FF0000"}, nil).Once()

	rec := postForm(newCategoryRouter(service), "/todoapp/admin/categories", url.Values{
		"id":      {"99"},
		"nom":     {" Loisir "},
		"couleur": {"#FF0000"},
	}, admin)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, handlers.CategoriesPath, rec.Header().Get("Location"))
	assert.NotNil(t, findCookie(rec, middleware.FlashCookie))
	service.AssertExpectations(t)
}

func TestCategoryHandler_Store_ValidationErrors(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("SaveCategory", mock.Anything, mock.Anything).Return(domain.Category{}, domain.ValidationErrors{
		{Field: "couleur", MessageID: "categoryColorInvalid"},
	}).Once()

	rec := postForm(newCategoryRouter(service), "/todoapp/admin/categories", url.Values{
		"nom":     {"Loisir"},
		"couleur": {"rouge"},
	}, admin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "La couleur doit être au format #RRGGBB")
	assert.Contains(t, rec.Body.String(), `value="rouge"`)
}

func TestCategoryHandler_Edit(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("GetCategory", mock.Anything, uint64(2)).Return(domain.Category{ID: 2, Name: "Travail", Color: "#aaaaaa"}, nil).Once()
	service.On("GetCategory", mock.Anything, uint64(9)).Return(domain.Category{}, domain.ErrCategoryNotFound).Once()
	router := newCategoryRouter(service)

	rec := get(router, "/todoapp/admin/categories/edit/2", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Travail"`)
	assert.Contains(t, rec.Body.String(), `action="/todoapp/admin/categories/update"`)

	rec = get(router, "/todoapp/admin/categories/edit/9", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Catégorie introuvable")

	rec = get(router, "/todoapp/admin/categories/edit/abc", admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertExpectations(t)
}

func TestCategoryHandler_Update(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("SaveCategory", mock.Anything, domain.Category{ID: 2, Name: "Boulot", Color: "#aaaaaa"}).
		Return(domain.Category{ID: 2, Name: "Boulot", Color: "#aaaaaa"}, nil).Once()
	router := newCategoryRouter(service)

	rec := postForm(router, "/todoapp/admin/categories/update", url.Values{
		"id": {"2"}, "nom": {"Boulot"}, "couleur": {"#aaaaaa"},
	}, admin)
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = postForm(router, "/todoapp/admin/categories/update", url.Values{
		"nom": {"Boulot"}, "couleur": {"#aaaaaa"},
	}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertExpectations(t)
}

func TestCategoryHandler_Delete(t *testing.T) {
	service := new(categoryServiceMock)
	service.On("DeleteCategory", mock.Anything, uint64(3)).Return(nil).Once()

	rec := postForm(newCategoryRouter(service), "/todoapp/admin/categories/delete", url.Values{"id": {"3"}}, admin)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, handlers.CategoriesPath, rec.Header().Get("Location"))
	service.AssertExpectations(t)
}
