// file: internals/helpers/validate.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMap ubah validator.ValidationErrors jadi map field → pesan
// untuk dipakai bersama JsonValidationError.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "field wajib diisi"
		case "max":
			msg = "melebihi panjang maksimum " + fe.Param()
		case "min":
			msg = "kurang dari panjang minimum " + fe.Param()
		case "email":
			msg = "format email tidak valid"
		case "oneof":
			msg = "nilai harus salah satu dari: " + fe.Param()
		default:
			msg = "tidak valid (" + fe.Tag() + ")"
		}
		out[name] = append(out[name], msg)
	}
	return out
}
