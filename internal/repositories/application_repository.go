package repositories

import (
	"errors"

	"phdtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id uint) (*models.Application, error)
	FindAll(db *gorm.DB, skip, limit int) ([]models.Application, error)
	Update(db *gorm.DB, application *models.Application) error

	// Delete removes the application together with its documents and emails
	// in one transaction. The cascade is enforced here, not left to the
	// storage schema.
	Delete(db *gorm.DB, id uint) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Application, error) {
	var application models.Application
	err := db.
		Preload("School").
		Preload("Professor").
		Preload("Documents").
		Preload("Emails").
		First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB, skip, limit int) ([]models.Application, error) {
	var applications []models.Application
	err := db.Offset(skip).Limit(limit).Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, application *models.Application) error {
	return db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Application{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		if err := tx.Where("application_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		return tx.Where("application_id = ?", id).Delete(&models.Email{}).Error
	})
}
