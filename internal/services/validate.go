package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"busexcursion/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput reports the first failing field as a ValidationError.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return domain.ValidationError{Msg: "payload tidak valid", Err: err}
	}
	fe := ves[0]
	return domain.ValidationError{Field: fieldPath(fe), Msg: fieldMessage(fe), Err: err}
}

// fieldPath drops the root struct name: "ExcursionInput.stops[1]" -> "stops[1]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "email tidak valid"
	case "max":
		return fmt.Sprintf("maksimal %s karakter", fe.Param())
	case "min":
		return fmt.Sprintf("minimal %s karakter", fe.Param())
	case "datetime":
		return fmt.Sprintf("format harus %s", fe.Param())
	default:
		return "tidak valid"
	}
}
