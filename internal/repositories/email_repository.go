package repositories

import (
	"errors"
	"time"

	"phdtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmailNotFound = errors.New("email not found")

type EmailRepository interface {
	Create(db *gorm.DB, email *models.Email) error
	FindByID(db *gorm.DB, id uint) (*models.Email, error)
	FindAll(db *gorm.DB, applicationID *uint, skip, limit int) ([]models.Email, error)
	MarkSent(db *gorm.DB, id uint, sentAt time.Time) error
	Delete(db *gorm.DB, id uint) error
}

type EmailRepositoryImpl struct{}

func NewEmailRepository() EmailRepository {
	return &EmailRepositoryImpl{}
}

func (r *EmailRepositoryImpl) Create(db *gorm.DB, email *models.Email) error {
	return db.Create(email).Error
}

func (r *EmailRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Email, error) {
	var email models.Email
	err := db.First(&email, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *EmailRepositoryImpl) FindAll(db *gorm.DB, applicationID *uint, skip, limit int) ([]models.Email, error) {
	var emails []models.Email
	query := db.Model(&models.Email{})
	if applicationID != nil {
		query = query.Where("application_id = ?", *applicationID)
	}
	err := query.Offset(skip).Limit(limit).Find(&emails).Error
	return emails, err
}

func (r *EmailRepositoryImpl) MarkSent(db *gorm.DB, id uint, sentAt time.Time) error {
	result := db.Model(&models.Email{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_sent": true,
		"sent_at": sentAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}

func (r *EmailRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Email{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmailNotFound
	}
	return nil
}
