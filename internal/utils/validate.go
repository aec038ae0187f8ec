package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/example/gigwork/internal/apperrors"
)

// phoneRegex accepts international numbers: optional leading +, optional
// literal 1, then 9 to 15 digits in total.
var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// v is the package-level singleton validator. Custom registrations happen
// in init, before the first call to ValidateStruct.
var v = validator.New()

func init() {
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
}

// ValidateStruct validates s against its validate tags and converts the
// first failure into a field-level validation error.
func ValidateStruct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return apperrors.Validation("", err.Error())
	}

	fe := ve[0]
	field := toSnake(fe.Field())

	switch fe.Tag() {
	case "required":
		return apperrors.Validation(field, "this field is required")
	case "email":
		return apperrors.Validation(field, "invalid email address")
	case "phone":
		return apperrors.Validation(field, "phone number must match '+999999999', up to 15 digits")
	case "max":
		return apperrors.Validation(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "oneof":
		return apperrors.Validation(field, fmt.Sprintf("must be one of: %s", fe.Param()))
	default:
		return apperrors.Validation(field, fmt.Sprintf("failed '%s' validation", fe.Tag()))
	}
}

// ValidPhone reports whether the phone number matches the platform format.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
