package services

import (
	"time"

	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationService owns the reminder side of the tracker: the deadline
// scan, the status-change hook and the read/unread listing API.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	schoolRepo       repositories.SchoolRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	schoolRepo repositories.SchoolRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		schoolRepo:       schoolRepo,
	}
}

// Create stores a notification built by the caller rather than one of the
// deadline/status factories.
func (s *NotificationService) Create(db *gorm.DB, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	notification := &models.Notification{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
		Data:    datatypes.JSON(req.Data),
	}

	if err := s.notificationRepo.Create(db, notification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *NotificationService) GetByID(db *gorm.DB, id uint) (*models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	notification, err := s.notificationRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return nil, apperrors.ErrNotFound(err, "notification")
		}
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

// List returns notifications newest first, optionally filtered by read state.
func (s *NotificationService) List(db *gorm.DB, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	notifications, total, err := s.notificationRepo.FindAll(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 100
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Skip:          criteria.Skip,
		Limit:         limit,
	}, nil
}

func (s *NotificationService) ListUnread(db *gorm.DB) ([]models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	notifications, err := s.notificationRepo.FindUnread(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

// MarkAsRead flips the read flag and returns the updated row. Marking an
// already-read notification succeeds without changing its meaning.
func (s *NotificationService) MarkAsRead(db *gorm.DB, id uint) (*models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	if err := s.notificationRepo.MarkAsRead(db, id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return nil, apperrors.ErrNotFound(err, "notification")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, id)
}

func (s *NotificationService) UnreadCount(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, apperrors.ErrMissingDBHandle
	}

	count, err := s.notificationRepo.CountUnread(db)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationService) Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return apperrors.ErrMissingDBHandle
	}

	if err := s.notificationRepo.Delete(db, id); err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err, "notification")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// CheckUpcomingDeadlines scans schools whose application deadline falls inside
// the half-open window (now, now+daysThreshold days] and emits one deadline
// notification per qualifying school. The scan keeps no memory of previous
// runs: calling it twice over the same window produces duplicate reminders.
func (s *NotificationService) CheckUpcomingDeadlines(db *gorm.DB, daysThreshold int) ([]models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}
	if daysThreshold < 0 {
		return nil, apperrors.ErrInvalidOperation("notification", "days threshold must not be negative")
	}

	now := time.Now()
	until := now.AddDate(0, 0, daysThreshold)

	schools, err := s.schoolRepo.FindWithUpcomingDeadlines(db, now, until)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	created := make([]models.Notification, 0, len(schools))
	for _, school := range schools {
		notification, err := s.notificationRepo.CreateDeadlineNotification(db, school.Name, *school.ApplicationDeadline, now)
		if err != nil {
			return created, apperrors.InternalError(err)
		}
		created = append(created, *notification)
	}

	return created, nil
}

// NotifyStatusChange records a status transition. Equal statuses are a no-op
// and return nil; the caller treats any failure here as best-effort.
func (s *NotificationService) NotifyStatusChange(db *gorm.DB, schoolName, oldStatus, newStatus string) (*models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}
	if oldStatus == newStatus {
		return nil, nil
	}

	notification, err := s.notificationRepo.CreateStatusChangeNotification(db, schoolName, oldStatus, newStatus)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

// NotifyEmailReply records an inbound reply from a professor.
func (s *NotificationService) NotifyEmailReply(db *gorm.DB, professorName, emailSubject string) (*models.Notification, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	notification, err := s.notificationRepo.CreateEmailReplyNotification(db, professorName, emailSubject)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}
