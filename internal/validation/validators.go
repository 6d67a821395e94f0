// Package validation holds the shared validator instance and the custom
// rules used by the HTTP layer.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/store"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("backend_type", validateBackendType); err != nil {
		panic(fmt.Sprintf("failed to register backend_type validator: %v", err))
	}
	if err := Validate.RegisterValidation("wellness_type", validateWellnessType); err != nil {
		panic(fmt.Sprintf("failed to register wellness_type validator: %v", err))
	}
}

// validateBackendType validates that a string names a known store backend
func validateBackendType(fl validator.FieldLevel) bool {
	return store.BackendType(fl.Field().String()).IsValid()
}

// validateWellnessType validates that a string is a valid WellnessType enum value
func validateWellnessType(fl validator.FieldLevel) bool {
	switch models.WellnessType(fl.Field().String()) {
	case models.WellnessWater, models.WellnessExercise, models.WellnessReflection:
		return true
	default:
		return false
	}
}

// SanitizeText trims whitespace and removes control characters except
// newline and tab. Applied to command text before it reaches the interpreter.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}
