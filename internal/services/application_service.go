package services

import (
	"context"

	"phdtrack_backend/internal/logger"
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService struct {
	applicationRepo     repositories.ApplicationRepository
	schoolRepo          repositories.SchoolRepository
	professorRepo       repositories.ProfessorRepository
	notificationService *NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	schoolRepo repositories.SchoolRepository,
	professorRepo repositories.ProfessorRepository,
	notificationService *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:     applicationRepo,
		schoolRepo:          schoolRepo,
		professorRepo:       professorRepo,
		notificationService: notificationService,
	}
}

// Create stores an application after checking the referenced school and, if
// set, the professor.
func (s *ApplicationService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	if _, err := s.schoolRepo.FindByID(db, req.SchoolID); err != nil {
		if err == repositories.ErrSchoolNotFound {
			return nil, apperrors.ErrNotFound(err, "school")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.ProfessorID != nil {
		if _, err := s.professorRepo.FindByID(db, *req.ProfessorID); err != nil {
			if err == repositories.ErrProfessorNotFound {
				return nil, apperrors.ErrNotFound(err, "professor")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	status := models.ApplicationStatus(req.Status)
	if status == "" {
		status = models.ApplicationStatusPreparing
	}

	application := &models.Application{
		SchoolID:       req.SchoolID,
		ProfessorID:    req.ProfessorID,
		Status:         status,
		SubmissionDate: req.SubmissionDate,
		ResultDate:     req.ResultDate,
		CVPath:         req.CVPath,
		PSPath:         req.PSPath,
		Notes:          req.Notes,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, application.ID)
}

func (s *ApplicationService) GetByID(db *gorm.DB, id uint) (*models.Application, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	application, err := s.applicationRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationService) List(db *gorm.DB, skip, limit int) ([]models.Application, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	applications, err := s.applicationRepo.FindAll(db, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

// Update applies the fields present in the request. When the status changes
// to a different value, a status-change notification is recorded after the
// update is persisted; a failure there is logged and never fails the update.
func (s *ApplicationService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	application, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	prevStatus := application.Status

	if req.ProfessorID != nil {
		if _, err := s.professorRepo.FindByID(db, *req.ProfessorID); err != nil {
			if err == repositories.ErrProfessorNotFound {
				return nil, apperrors.ErrNotFound(err, "professor")
			}
			return nil, apperrors.InternalError(err)
		}
		application.ProfessorID = req.ProfessorID
	}
	if req.Status != nil {
		application.Status = models.ApplicationStatus(*req.Status)
	}
	if req.SubmissionDate != nil {
		application.SubmissionDate = req.SubmissionDate
	}
	if req.ResultDate != nil {
		application.ResultDate = req.ResultDate
	}
	if req.CVPath != nil {
		application.CVPath = *req.CVPath
	}
	if req.PSPath != nil {
		application.PSPath = *req.PSPath
	}
	if req.Notes != nil {
		application.Notes = *req.Notes
	}

	if err := s.applicationRepo.Update(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if application.Status != prevStatus {
		schoolName := ""
		if application.School != nil {
			schoolName = application.School.Name
		}

		_, notifyErr := s.notificationService.NotifyStatusChange(
			db, schoolName, string(prevStatus), string(application.Status))
		if notifyErr != nil {
			logger.CtxWarn(ctx, "failed to record status change notification",
				"application_id", application.ID,
				"old_status", string(prevStatus),
				"new_status", string(application.Status),
				"error", notifyErr.Error())
		}
	}

	return application, nil
}

// Delete removes the application and its documents and emails.
func (s *ApplicationService) Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return apperrors.ErrMissingDBHandle
	}

	if err := s.applicationRepo.Delete(db, id); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return apperrors.ErrNotFound(err, "application")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
