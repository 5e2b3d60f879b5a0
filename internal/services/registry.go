package services

import (
	"phdtrack_backend/internal/email"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/storage"
)

// ServiceContainer wires every service with its repositories. Repositories
// are stateless; the database handle travels with each call.
type ServiceContainer struct {
	SchoolService       *SchoolService
	ProfessorService    *ProfessorService
	ApplicationService  *ApplicationService
	DocumentService     *DocumentService
	EmailService        *EmailService
	NotificationService *NotificationService
}

func NewServiceContainer(store storage.Storage, templates email.TemplateRenderer) *ServiceContainer {
	schoolRepo := repositories.NewSchoolRepository()
	professorRepo := repositories.NewProfessorRepository()
	applicationRepo := repositories.NewApplicationRepository()
	documentRepo := repositories.NewDocumentRepository()
	emailRepo := repositories.NewEmailRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := NewNotificationService(notificationRepo, schoolRepo)

	return &ServiceContainer{
		SchoolService:       NewSchoolService(schoolRepo),
		ProfessorService:    NewProfessorService(professorRepo, schoolRepo),
		ApplicationService:  NewApplicationService(applicationRepo, schoolRepo, professorRepo, notificationService),
		DocumentService:     NewDocumentService(documentRepo, applicationRepo, store),
		EmailService:        NewEmailService(emailRepo, applicationRepo, nil, templates),
		NotificationService: notificationService,
	}
}
