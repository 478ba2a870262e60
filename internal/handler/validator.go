package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agroklass/SmartFarm_Go/internal/domain"
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

	_ = v.RegisterValidation("pet_type", validatePetType)
	_ = v.RegisterValidation("pet_action", validatePetAction)

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

// FormatValidationError formats validation errors into a field map
// without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

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
		case "pet_type":
			errs[field] = "Unknown pet type"
		case "pet_action":
			errs[field] = "Unknown pet action"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or greater", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be %s or less", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validatePetType(fl validator.FieldLevel) bool {
	t := fl.Field().String()
	if t == "" {
		return true
	}
	return domain.ValidPetType(domain.PetType(strings.ToLower(t)))
}

func validatePetAction(fl validator.FieldLevel) bool {
	switch domain.PetAction(strings.ToLower(fl.Field().String())) {
	case domain.PetActionFeed, domain.PetActionWater, domain.PetActionPlay:
		return true
	case "":
		return true
	}
	return false
}
