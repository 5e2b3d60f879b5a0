package handlers

import (
	"phdtrack_backend/internal/services"
	"phdtrack_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	School       *SchoolHandler
	Professor    *ProfessorHandler
	Application  *ApplicationHandler
	Document     *DocumentHandler
	Email        *EmailHandler
	Notification *NotificationHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		School:       NewSchoolHandler(base, container.SchoolService),
		Professor:    NewProfessorHandler(base, container.ProfessorService),
		Application:  NewApplicationHandler(base, container.ApplicationService),
		Document:     NewDocumentHandler(base, container.DocumentService),
		Email:        NewEmailHandler(base, container.EmailService),
		Notification: NewNotificationHandler(base, container.NotificationService),
	}
}
