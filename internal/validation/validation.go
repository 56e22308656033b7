// Package validation wraps go-playground/validator with the field rules the
// taller domain needs and converts violations into apperr.ValidationError.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/diewo77/go-taller/internal/apperr"
)

var alphaSpace = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ ]+$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// letters and spaces only; accented letters count
	if err := v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s != "" && alphaSpace.MatchString(s)
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct validates s and reports the first violation as a ValidationError
// naming the offending field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperr.Validation(fieldName(verrs[0]), reason(verrs[0]))
	}
	return err
}

func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "es obligatorio"
	case "alphaspace":
		return "solo letras y espacios"
	case "len", "number":
		return "debe tener exactamente 10 digitos"
	case "gt":
		return "debe ser mayor que cero"
	default:
		return "invalido"
	}
}
