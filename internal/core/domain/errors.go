package domain

import (
	"errors"
	"strings"
)

var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDefaultRoleMissing = errors.New("default role UTILISATEUR missing")
)

// FieldError ties a form field to a translation message id.
type FieldError struct {
	Field     string
	MessageID string
}

// ValidationErrors accumulates every field error of a submitted form.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.MessageID)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// ByField groups message ids per field, in insertion order.
func (v ValidationErrors) ByField() map[string][]string {
	grouped := make(map[string][]string, len(v))
	for _, fe := range v {
		grouped[fe.Field] = append(grouped[fe.Field], fe.MessageID)
	}
	return grouped
}
