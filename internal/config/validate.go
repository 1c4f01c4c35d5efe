package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists invalid config fields.
type ValidationError struct {
	Fields []string
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	return "config validation failed: " + strings.Join(err.Fields, "; ")
}

var configValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks enum and version fields.
func Validate(cfg Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		path := fieldErr.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		switch fieldErr.Tag() {
		case "oneof":
			fields = append(fields, fmt.Sprintf("%s: invalid value %q (expected %s)", path, fieldErr.Value(), strings.ReplaceAll(fieldErr.Param(), " ", "|")))
		case "eq":
			fields = append(fields, fmt.Sprintf("%s: unsupported version %v", path, fieldErr.Value()))
		default:
			fields = append(fields, fmt.Sprintf("%s: failed %q check", path, fieldErr.Tag()))
		}
	}
	return &ValidationError{Fields: fields}
}
