package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"phdtrack_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationData = errors.New("invalid notification data")
)

type NotificationRepository interface {
	// Notification operations
	Create(db *gorm.DB, notification *models.Notification) error
	FindByID(db *gorm.DB, id uint) (*models.Notification, error)
	FindAll(db *gorm.DB, criteria NotificationCriteria) ([]models.Notification, int64, error)
	FindUnread(db *gorm.DB) ([]models.Notification, error)
	MarkAsRead(db *gorm.DB, id uint) error
	CountUnread(db *gorm.DB) (int64, error)
	Delete(db *gorm.DB, id uint) error

	// Factory methods for the notification types the tracker emits.
	CreateDeadlineNotification(db *gorm.DB, schoolName string, deadline, now time.Time) (*models.Notification, error)
	CreateStatusChangeNotification(db *gorm.DB, schoolName, oldStatus, newStatus string) (*models.Notification, error)
	CreateEmailReplyNotification(db *gorm.DB, professorName, emailSubject string) (*models.Notification, error)
}

// NotificationCriteria filters and paginates notification listings.
type NotificationCriteria struct {
	IsRead *bool `form:"is_read"`
	Skip   int   `form:"skip"`
	Limit  int   `form:"limit"`
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := db.First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindAll returns notifications newest first. The created_at DESC ordering is
// load-bearing: clients rely on it for "recent notifications" views.
func (r *NotificationRepositoryImpl) FindAll(db *gorm.DB, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	query := db.Model(&models.Notification{})

	if criteria.IsRead != nil {
		query = query.Where("is_read = ?", *criteria.IsRead)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 100
	}

	err := query.Order("created_at DESC").
		Offset(criteria.Skip).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *NotificationRepositoryImpl) FindUnread(db *gorm.DB) ([]models.Notification, error) {
	var notifications []models.Notification
	err := db.Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkAsRead flips the read flag. Marking an already-read notification again
// succeeds and changes nothing.
func (r *NotificationRepositoryImpl) MarkAsRead(db *gorm.DB, id uint) error {
	result := db.Model(&models.Notification{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) CountUnread(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// --- Factory methods ---

// CreateDeadlineNotification renders a deadline reminder. daysLeft is the
// floor of the remaining time in whole days; a value of zero means the
// deadline falls within the current day.
func (r *NotificationRepositoryImpl) CreateDeadlineNotification(db *gorm.DB, schoolName string, deadline, now time.Time) (*models.Notification, error) {
	daysLeft := int(deadline.Sub(now).Hours() / 24)

	var content string
	if daysLeft <= 0 {
		content = fmt.Sprintf("The application deadline for %s is today! Make sure your application is submitted.", schoolName)
	} else {
		content = fmt.Sprintf("The application deadline for %s is in %d days. Prepare and submit your application in time.", schoolName, daysLeft)
	}

	data, err := json.Marshal(map[string]interface{}{
		"school":    schoolName,
		"deadline":  deadline,
		"days_left": daysLeft,
	})
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Type:    models.NotificationTypeDeadline,
		Title:   fmt.Sprintf("%s application deadline reminder", schoolName),
		Content: content,
		Data:    datatypes.JSON(data),
	}

	if err := r.Create(db, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// CreateStatusChangeNotification snapshots a status transition. Both statuses
// are carried verbatim; the notification never links back to the application.
func (r *NotificationRepositoryImpl) CreateStatusChangeNotification(db *gorm.DB, schoolName, oldStatus, newStatus string) (*models.Notification, error) {
	data, err := json.Marshal(map[string]interface{}{
		"school":     schoolName,
		"old_status": oldStatus,
		"new_status": newStatus,
	})
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Type:    models.NotificationTypeStatusChange,
		Title:   fmt.Sprintf("%s application status change", schoolName),
		Content: fmt.Sprintf("Your application to %s changed from '%s' to '%s'.", schoolName, oldStatus, newStatus),
		Data:    datatypes.JSON(data),
	}

	if err := r.Create(db, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (r *NotificationRepositoryImpl) CreateEmailReplyNotification(db *gorm.DB, professorName, emailSubject string) (*models.Notification, error) {
	data, err := json.Marshal(map[string]interface{}{
		"professor": professorName,
		"subject":   emailSubject,
	})
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Type:    models.NotificationTypeEmailReply,
		Title:   fmt.Sprintf("Reply received from %s", professorName),
		Content: fmt.Sprintf("%s replied to your email '%s'. Check it at your earliest convenience.", professorName, emailSubject),
		Data:    datatypes.JSON(data),
	}

	if err := r.Create(db, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// --- Helpers ---

func (r *NotificationRepositoryImpl) validateNotification(notification *models.Notification) error {
	if notification.Type == "" {
		return errors.New("notification type is required")
	}
	if notification.Title == "" {
		return errors.New("notification title is required")
	}

	validTypes := map[string]bool{
		models.NotificationTypeDeadline:     true,
		models.NotificationTypeEmailReply:   true,
		models.NotificationTypeStatusChange: true,
	}
	if !validTypes[notification.Type] {
		return fmt.Errorf("invalid notification type: %s", notification.Type)
	}

	if len(notification.Data) > 0 && !json.Valid(notification.Data) {
		return ErrInvalidNotificationData
	}

	return nil
}
