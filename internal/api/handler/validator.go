package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// RequestValidator lets handlers call c.Validate on tagged request structs.
// Failures come back as domain invalid-input errors.
type RequestValidator struct {
	v *validator.Validate
}

func NewValidator() *RequestValidator {
	return &RequestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	problems := make([]string, len(fields))
	for i, fe := range fields {
		problems[i] = describe(fe)
	}
	return domain.InvalidInput(strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return field + " is invalid"
}
