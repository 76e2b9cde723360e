package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/core/domain"
)

const DateLayout = "2006-01-02"

// ParseID parses a positive identifier from a path or form value.
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// BuildTodo converts the submitted form. Fields that cannot be parsed are
// reported alongside the partially built todo.
func BuildTodo(form dto.TodoForm) (domain.Todo, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	todo := domain.Todo{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		Done:        isChecked(form.Done),
	}

	if id, ok := ParseID(form.ID); ok {
		todo.ID = id
	}

	if raw := strings.TrimSpace(form.DueAt); raw != "" {
		dueAt, err := time.Parse(DateLayout, raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "dateAFaire", MessageID: "dueDateInvalid"})
		} else {
			todo.DueAt = &dueAt
		}
	}

	if raw := strings.TrimSpace(form.CategoryID); raw != "" {
		categoryID, ok := ParseID(raw)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "categorieId", MessageID: "categoryUnknown"})
		} else {
			todo.CategoryID = &categoryID
		}
	}

	return todo, errs
}

func BuildCategory(form dto.CategoryForm) domain.Category {
	category := domain.Category{
		Name:  strings.TrimSpace(form.Name),
		Color: strings.TrimSpace(form.Color),
	}
	if id, ok := ParseID(form.ID); ok {
		category.ID = id
	}
	return category
}

func BuildRegistration(form dto.RegistrationForm) domain.RegisterUserInput {
	return domain.RegisterUserInput{
		LastName:             strings.TrimSpace(form.LastName),
		FirstName:            strings.TrimSpace(form.FirstName),
		Email:                strings.TrimSpace(form.Email),
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
	}
}

// isChecked follows HTML checkbox semantics: an absent field is false.
func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
