package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for session and bet types
	_ = v.RegisterValidation("session", validateSession)
	_ = v.RegisterValidation("bettype", validateBetType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	// Check if it's a validator.ValidationErrors
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "session":
			errs[field] = "Invalid session type"
		case "bettype":
			errs[field] = "Invalid bet type"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Custom validation function for session types
func validateSession(fl validator.FieldLevel) bool {
	session := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if session == "" {
		return true
	}
	return domain.SessionType(strings.ToLower(session)).Valid()
}

// Custom validation function for bet types
func validateBetType(fl validator.FieldLevel) bool {
	betType := fl.Field().String()
	if betType == "" {
		return true
	}
	_, known := domain.DefaultOdds[domain.BetType(strings.ToLower(betType))]
	return known
}
