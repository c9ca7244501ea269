package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/planora/backend/internal/domain/shared"
)

// Validator runs field-level constraint checks on typed command values
// before any store mutation. Failures map to VALIDATION_ERROR domain errors
// with human-readable field messages.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json tag names
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates a command value against its constraint tags
func (v *Validator) Struct(value interface{}) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return shared.NewDomainError("VALIDATION_ERROR", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fieldName(e)+": "+message(e))
	}
	return shared.NewDomainError("VALIDATION_ERROR", strings.Join(messages, "; "))
}

// Var validates a single value against a constraint expression
func (v *Validator) Var(value interface{}, tag string) error {
	if err := v.validate.Var(value, tag); err != nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid value")
	}
	return nil
}

func fieldName(e validator.FieldError) string {
	if name := e.Field(); name != "" {
		return name
	}
	return e.StructField()
}

// message returns a human-readable validation message
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "lt":
		return "Must be less than " + e.Param()
	default:
		return "Invalid value"
	}
}
