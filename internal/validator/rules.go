package validator

import (
	"log"

	"phdtrack_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-document-type", validateDocumentType)
	mustRegister("is-notification-type", validateNotificationType)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}

	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPreparing,
		models.ApplicationStatusSubmitted,
		models.ApplicationStatusInterviewing,
		models.ApplicationStatusAdmitted,
		models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func validateDocumentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.DocumentType(value) {
	case models.DocumentTypeCV,
		models.DocumentTypePersonalStatement,
		models.DocumentTypeRecommendationLetter,
		models.DocumentTypeTranscript,
		models.DocumentTypeOther:
		return true
	default:
		return false
	}
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch value {
	case models.NotificationTypeDeadline,
		models.NotificationTypeEmailReply,
		models.NotificationTypeStatusChange:
		return true
	default:
		return false
	}
}
