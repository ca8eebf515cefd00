package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError campo que no pasó la validación, con el nombre usado en el JSON.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Reportar los campos con su nombre JSON (pedido_id, motivo...) o de query string
	// (limit, offset) en lugar del nombre Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// ValidateStruct valida data según sus tags `validate` y devuelve los campos que fallaron.
func ValidateStruct(data interface{}) []*FieldError {
	var out []*FieldError
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*FieldError{{Field: "body", Tag: "invalid"}}
	}
	for _, fe := range verrs {
		out = append(out, &FieldError{
			Field: trimRoot(fe.Namespace()),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Message resume los errores en un texto legible para la respuesta HTTP.
func Message(errs []*FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag {
		case "required":
			parts = append(parts, fmt.Sprintf("%s es obligatorio", e.Field))
		case "gt", "min":
			parts = append(parts, fmt.Sprintf("%s debe ser mayor a %s", e.Field, lowerBound(e)))
		case "max":
			parts = append(parts, fmt.Sprintf("%s no puede superar %s", e.Field, e.Param))
		default:
			parts = append(parts, fmt.Sprintf("%s no es válido (%s)", e.Field, e.Tag))
		}
	}
	return strings.Join(parts, "; ")
}

// min=N admite N, por eso el mensaje usa N-1 para decir "mayor a".
func lowerBound(e *FieldError) string {
	if e.Tag != "min" {
		return e.Param
	}
	var n int
	if _, err := fmt.Sscanf(e.Param, "%d", &n); err != nil {
		return e.Param
	}
	return fmt.Sprint(n - 1)
}

// trimRoot quita el nombre del struct raíz: "CancelOrderRequest.motivo" → "motivo".
func trimRoot(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
