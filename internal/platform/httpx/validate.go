package httpx

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationFields extracts per-field messages from a validator error.
// The second return is false when err is not a validator.ValidationErrors.
func ValidationFields(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "max":
			fields[name] = "is too long"
		case "min", "gt", "gte":
			fields[name] = "is out of range"
		default:
			fields[name] = "is invalid"
		}
	}
	return fields, true
}
