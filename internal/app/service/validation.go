package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

const (
	msgInvalidField = "invalidField"

	// maxPasswordBytes is the longest input bcrypt accepts.
	maxPasswordBytes = 72
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the submitted form field name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	// max counts runes, bcrypt counts bytes.
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	return v
}

// validateStruct runs the tag rules of s and converts failures to field
// errors, looking up "<form field>.<tag>" in messages. Every failing field
// is reported.
func validateStruct(s any, messages map[string]string) domain.ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "", MessageID: msgInvalidField}}
	}

	result := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messageID, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			messageID = msgInvalidField
		}
		result = append(result, domain.FieldError{Field: fe.Field(), MessageID: messageID})
	}
	return result
}

var todoMessages = map[string]string{
	"titre.required": "todoTitleRequired",
	"titre.min":      "todoTitleLength",
	"titre.max":      "todoTitleLength",
}

type todoRules struct {
	Title string `form:"titre" validate:"required,min=3,max=255"`
}

// ValidateTodo is applied before every todo save.
func ValidateTodo(todo domain.Todo) domain.ValidationErrors {
	return validateStruct(todoRules{Title: strings.TrimSpace(todo.Title)}, todoMessages)
}

var categoryMessages = map[string]string{
	"nom.required":     "categoryNameRequired",
	"nom.max":          "categoryNameLength",
	"couleur.required": "categoryColorRequired",
	"couleur.hexcolor": "categoryColorInvalid",
}

type categoryRules struct {
	Name  string `form:"nom" validate:"required,max=100"`
	Color string `form:"couleur" validate:"required,hexcolor"`
}

// ValidateCategory is applied before every category save.
func ValidateCategory(category domain.Category) domain.ValidationErrors {
	return validateStruct(categoryRules{Name: strings.TrimSpace(category.Name), Color: strings.TrimSpace(category.Color)}, categoryMessages)
}

var registrationMessages = map[string]string{
	"nom.required":    "lastNameRequired",
	"nom.min":         "lastNameLength",
	"nom.max":         "lastNameLength",
	"prenom.required": "firstNameRequired",
	"prenom.min":      "firstNameLength",
	"prenom.max":      "firstNameLength",
	"email.required":  "emailRequired",
	"email.email":     "emailInvalid",
	"mdp.required":    "passwordRequired",
	"mdp.bcryptmax":   "passwordTooLong",
}

type registrationRules struct {
	LastName  string `form:"nom" validate:"required,min=2,max=50"`
	FirstName string `form:"prenom" validate:"required,min=2,max=50"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"mdp" validate:"required,bcryptmax"`
}
