package http

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"tender-crm-backend/internal/domain/financial"
	"tender-crm-backend/internal/domain/tender"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()
	// report json names, so details line up with the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// money: max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	_ = v.RegisterValidation("finstatus", func(fl validator.FieldLevel) bool {
		return financial.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("tenderstatus", func(fl validator.FieldLevel) bool {
		switch tender.Status(fl.Field().String()) {
		case tender.StatusDraft, tender.StatusSubmitted, tender.StatusUnderEvaluation,
			tender.StatusWon, tender.StatusLost, tender.StatusCancelled:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("instrumentmode", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case tender.ModeDD, tender.ModeBG, tender.ModeOnline, tender.ModeCash, tender.ModeNA:
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "finstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of Pending Approval, Approved, Rejected, Processed"})
		case "tenderstatus":
			out = append(out, FieldError{Field: field, Message: "must be one of Draft, Submitted, Under Evaluation, Won, Lost, Cancelled"})
		case "instrumentmode":
			out = append(out, FieldError{Field: field, Message: "must be one of DD, BG, Online, Cash, N/A"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + strings.ReplaceAll(e.Param(), " ", ", ")})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "url":
			out = append(out, FieldError{Field: field, Message: "must be a valid URL"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " item(s)"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
