// internals/helpers/validation.go
package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// NewValidator returns a validator that reports field names by their json tag,
// so validation errors line up with what the client actually sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidatorFieldErrors flattens a validator error into the field→messages map
// the validation envelope carries.
func ValidatorFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "min":
		return "Must be at least " + fe.Param() + " characters."
	case "max":
		return "Must be at most " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}

// JsonFieldError is the single-field shortcut for domain-level validation
// failures (duplicates, broken parent chains).
func JsonFieldError(c *fiber.Ctx, field, message string) error {
	return JsonValidationError(c, map[string][]string{field: {message}})
}

// IsUniqueViolation reports whether err is a postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
