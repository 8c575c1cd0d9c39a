package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate` y devuelve, si falla, un mapa
// campo → mensaje legible. Un mapa nil significa entrada válida.
func Struct(s interface{}) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = mensaje(fe)
	}
	return fields
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "formato de email inválido"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("debe ser al menos %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("no puede exceder %s caracteres", fe.Param())
		}
		return fmt.Sprintf("no puede exceder %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
