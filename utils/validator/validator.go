package validatorx

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Describe turns validator output into a short human readable reason.
// Other errors are returned as-is.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "gte", "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", field))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
