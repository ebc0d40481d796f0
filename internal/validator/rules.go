package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"totl_backend/internal/models"
)

// registerCustomRules installs the domain validation tags. Empty values pass
// every rule; 'required' is a separate concern.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-gig-status", validateGigStatus)
	mustRegister("is-flag-resource", validateFlagResource)
	mustRegister("is-flag-action", validateFlagAction)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateGigStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.GigStatus(value) {
	case models.GigStatusDraft, models.GigStatusActive, models.GigStatusClosed, models.GigStatusCancelled:
		return true
	default:
		return false
	}
}

func validateFlagResource(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.FlagResourceType(value) {
	case models.FlagResourceGig, models.FlagResourceProfile:
		return true
	default:
		return false
	}
}

func validateFlagAction(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "none", "close_gig", "suspend_account", "reinstate_account":
		return true
	default:
		return false
	}
}
