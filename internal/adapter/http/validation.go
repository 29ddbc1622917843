package http

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var reHex24 = regexp.MustCompile(`^[a-f0-9]{24}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// document id = 24-char lowercase hex
	_ = v.RegisterValidation("hex24", func(fl validator.FieldLevel) bool {
		return reHex24.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex24":
			out = append(out, FieldError{Field: field, Message: "must be a 24-char lowercase hex id"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of: " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: fmt.Sprintf("must be at least %s characters long", e.Param())})
		case "max":
			out = append(out, FieldError{Field: field, Message: fmt.Sprintf("must be at most %s characters long", e.Param())})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param()})
		case "numeric":
			out = append(out, FieldError{Field: field, Message: "must be numeric"})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		default:
			out = append(out, FieldError{Field: field, Message: "is invalid"})
		}
	}
	return out
}
