package mapper

import (
	"strconv"
	"time"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/adapter/http/validation"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/pkg/translator"
)

const displayLayout = "2006-01-02 15:04"

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:         category.ID,
		Name:       category.Name,
		Color:      category.Color,
		CreatedAt:  formatTime(category.CreatedAt),
		ModifiedAt: formatTime(category.ModifiedAt),
	}
}

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	item := dto.TodoItem{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Done:        todo.Done,
		CreatedAt:   formatTime(todo.CreatedAt),
		ModifiedAt:  formatTime(todo.ModifiedAt),
	}

	if todo.DueAt != nil {
		item.DueAt = todo.DueAt.Format(validation.DateLayout)
	}

	if todo.Category != nil {
		category := ToCategoryItem(*todo.Category)
		item.Category = &category
	}

	return item
}

// ToTodoForm pre-fills the edit form of an existing todo.
func ToTodoForm(todo domain.Todo) dto.TodoForm {
	form := dto.TodoForm{
		Title:       todo.Title,
		Description: todo.Description,
	}
	if todo.ID != 0 {
		form.ID = uintToString(todo.ID)
	}
	if todo.Done {
		form.Done = "on"
	}
	if todo.DueAt != nil {
		form.DueAt = todo.DueAt.Format(validation.DateLayout)
	}
	if todo.CategoryID != nil {
		form.CategoryID = uintToString(*todo.CategoryID)
	}
	return form
}

func ToCategoryForm(category domain.Category) dto.CategoryForm {
	form := dto.CategoryForm{Name: category.Name, Color: category.Color}
	if category.ID != 0 {
		form.ID = uintToString(category.ID)
	}
	return form
}

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID,
		LastName:  user.LastName,
		FirstName: user.FirstName,
		Email:     user.Email,
		CreatedAt: formatTime(user.CreatedAt),
	}
	if user.Role != nil {
		item.Role = user.Role.Name
	}
	return item
}

func ToRoleItems(roles []domain.Role) []dto.RoleItem {
	items := make([]dto.RoleItem, 0, len(roles))
	for _, role := range roles {
		items = append(items, dto.RoleItem{ID: role.ID, Name: role.Name})
	}
	return items
}

// ToFieldMessages translates validation errors for display next to the
// form fields.
func ToFieldMessages(errs domain.ValidationErrors, lang string) dto.FieldMessages {
	messages := make(dto.FieldMessages, len(errs))
	for _, fe := range errs {
		messages[fe.Field] = append(messages[fe.Field], translator.Localize(lang, fe.MessageID, nil))
	}
	return messages
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayLayout)
}

func uintToString(value uint64) string {
	return strconv.FormatUint(value, 10)
}
