package services

import (
	"context"
	"fmt"
	"time"

	"phdtrack_backend/internal/email"
	"phdtrack_backend/internal/logger"
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// EmailService tracks outreach emails and sends them over SMTP with
// credentials supplied per request. Nothing retries a failed send.
type EmailService struct {
	emailRepo       repositories.EmailRepository
	applicationRepo repositories.ApplicationRepository
	providerFactory email.ProviderFactory
	templates       email.TemplateRenderer
}

func NewEmailService(
	emailRepo repositories.EmailRepository,
	applicationRepo repositories.ApplicationRepository,
	providerFactory email.ProviderFactory,
	templates email.TemplateRenderer,
) *EmailService {
	if providerFactory == nil {
		providerFactory = func(cfg *email.SMTPConfig) email.Provider {
			return email.NewSMTPProvider(cfg, templates)
		}
	}
	return &EmailService{
		emailRepo:       emailRepo,
		applicationRepo: applicationRepo,
		providerFactory: providerFactory,
		templates:       templates,
	}
}

func (s *EmailService) Create(db *gorm.DB, req *dto.CreateEmailRequest) (*models.Email, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	if _, err := s.applicationRepo.FindByID(db, req.ApplicationID); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}

	emailRecord := &models.Email{
		ApplicationID: req.ApplicationID,
		Subject:       req.Subject,
		Content:       req.Content,
		Sender:        req.Sender,
		Receiver:      req.Receiver,
	}

	if err := s.emailRepo.Create(db, emailRecord); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return emailRecord, nil
}

func (s *EmailService) GetByID(db *gorm.DB, id uint) (*models.Email, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	emailRecord, err := s.emailRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrEmailNotFound {
			return nil, apperrors.ErrNotFound(err, "email")
		}
		return nil, apperrors.InternalError(err)
	}
	return emailRecord, nil
}

func (s *EmailService) List(db *gorm.DB, applicationID *uint, skip, limit int) ([]models.Email, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	emails, err := s.emailRepo.FindAll(db, applicationID, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return emails, nil
}

func (s *EmailService) Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return apperrors.ErrMissingDBHandle
	}

	if err := s.emailRepo.Delete(db, id); err != nil {
		if err == repositories.ErrEmailNotFound {
			return apperrors.ErrNotFound(err, "email")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Send delivers a tracked email in a single attempt using the credentials in
// the request. On success the row is marked sent; on failure the error is
// reported once and the row stays unsent.
func (s *EmailService) Send(ctx context.Context, db *gorm.DB, id uint, req *dto.SendEmailRequest) (*dto.SendResult, error) {
	emailRecord, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrEmailNotConfigured
	}

	cfg := email.DefaultConfig()
	if req.SMTPHost != "" {
		cfg.Host = req.SMTPHost
	}
	if req.SMTPPort != 0 {
		cfg.Port = req.SMTPPort
	}
	cfg.Username = req.Username
	cfg.Password = req.Password
	cfg.FromEmail = req.Username

	provider := s.providerFactory(cfg)
	defer provider.Close()

	msg := &email.Message{
		From:    emailRecord.Sender,
		To:      []string{emailRecord.Receiver},
		Cc:      req.Cc,
		Bcc:     req.Bcc,
		Subject: emailRecord.Subject,
		Body:    emailRecord.Content,
	}

	if err := provider.Send(msg); err != nil {
		logger.CtxWithError(ctx, "email send failed", err, "email_id", id)
		return nil, apperrors.ErrExternalService(err, "email", "Failed to send email")
	}

	sentAt := time.Now()
	if err := s.emailRepo.MarkSent(db, id, sentAt); err != nil {
		// The message left the building; report the bookkeeping failure
		// without pretending the send failed.
		logger.CtxWarn(ctx, "email sent but could not be marked as sent",
			"email_id", id, "error", err.Error())
	}

	return &dto.SendResult{
		Success: true,
		Message: "Email sent successfully",
	}, nil
}

// GenerateDraft renders one of the built-in outreach templates.
func (s *EmailService) GenerateDraft(req *dto.GenerateDraftRequest) (*dto.DraftResponse, error) {
	data := email.TemplateData{
		"ProfessorName": req.ProfessorName,
		"StudentName":   req.StudentName,
		"SchoolName":    req.SchoolName,
		"ProgramName":   req.ProgramName,
		"ResearchArea":  req.ResearchArea,
		"Background":    req.Background,
		"CustomMessage": req.CustomMessage,
		"ContactInfo":   req.ContactInfo,
	}

	content, err := s.templates.Render(req.Template, data)
	if err != nil {
		return nil, apperrors.ErrInvalidOperation("email", fmt.Sprintf("Unknown draft template: %s", req.Template))
	}

	var subject string
	switch req.Template {
	case email.TemplateFollowUp:
		subject = fmt.Sprintf("Following up - PhD Application Inquiry from %s", req.StudentName)
	case email.TemplateApplicationStatus:
		subject = fmt.Sprintf("PhD Application to %s - %s", req.SchoolName, req.StudentName)
	default:
		subject = fmt.Sprintf("PhD Application Inquiry - %s", req.StudentName)
	}

	return &dto.DraftResponse{
		Subject: subject,
		Content: content,
	}, nil
}
