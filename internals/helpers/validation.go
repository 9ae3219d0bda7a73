package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorsToMap meratakan error validator menjadi map field -> pesan,
// cocok dengan payload JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range validationErrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "min":
			msg = "minimal " + fe.Param() + " karakter"
		case "max":
			msg = "maksimal " + fe.Param() + " karakter"
		case "email":
			msg = "format email tidak valid"
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		default:
			msg = "tidak valid (" + fe.Tag() + ")"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
