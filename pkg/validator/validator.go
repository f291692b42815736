package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError is the first rule a struct failed, in a form callers can wrap
// into their own error taxonomy.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field '%s' failed on '%s=%s'", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("field '%s' failed on '%s'", e.Field, e.Tag)
}

var validate = validator.New()

func init() {
	// uuid_required rejects the zero UUID, which "required" alone lets through
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// Struct validates data against its struct tags. It returns nil when valid,
// otherwise a *FieldError for the first failed rule.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	first := err.(validator.ValidationErrors)[0]
	return &FieldError{
		Field: first.StructNamespace(),
		Tag:   first.Tag(),
		Param: first.Param(),
	}
}
