package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors набор ошибок валидации
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Validator обертка над go-playground/validator с переводом ошибок в читаемый вид
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Struct валидирует структуру по тегам `validate`.
// Возвращает Errors, если нарушены правила, или nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return translate(validationErrs)
}

func translate(errs validator.ValidationErrors) Errors {
	result := make(Errors, 0, len(errs))

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "is required"
		case "min":
			message = fmt.Sprintf("must be at least %s", err.Param())
		case "max":
			message = fmt.Sprintf("must be at most %s", err.Param())
		case "gte":
			message = fmt.Sprintf("must be greater than or equal to %s", err.Param())
		case "gt":
			message = fmt.Sprintf("must be greater than %s", err.Param())
		case "lte":
			message = fmt.Sprintf("must be less than or equal to %s", err.Param())
		case "ltefield":
			message = fmt.Sprintf("must not exceed %s", err.Param())
		case "oneof":
			message = fmt.Sprintf("must be one of: %s", err.Param())
		}

		result = append(result, FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return result
}
