package repositories

import (
	"errors"
	"time"

	"phdtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSchoolNotFound = errors.New("school not found")

type SchoolRepository interface {
	Create(db *gorm.DB, school *models.School) error
	FindByID(db *gorm.DB, id uint) (*models.School, error)
	FindAll(db *gorm.DB, skip, limit int) ([]models.School, error)
	Update(db *gorm.DB, school *models.School) error
	Delete(db *gorm.DB, id uint) error

	// FindWithUpcomingDeadlines returns schools whose application deadline is
	// set and falls inside the half-open window (after, until].
	FindWithUpcomingDeadlines(db *gorm.DB, after, until time.Time) ([]models.School, error)
}

type SchoolRepositoryImpl struct{}

func NewSchoolRepository() SchoolRepository {
	return &SchoolRepositoryImpl{}
}

func (r *SchoolRepositoryImpl) Create(db *gorm.DB, school *models.School) error {
	return db.Create(school).Error
}

func (r *SchoolRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.School, error) {
	var school models.School
	err := db.Preload("Professors").First(&school, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepositoryImpl) FindAll(db *gorm.DB, skip, limit int) ([]models.School, error) {
	var schools []models.School
	err := db.Offset(skip).Limit(limit).Find(&schools).Error
	return schools, err
}

func (r *SchoolRepositoryImpl) Update(db *gorm.DB, school *models.School) error {
	return db.Save(school).Error
}

func (r *SchoolRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.School{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSchoolNotFound
	}
	return nil
}

func (r *SchoolRepositoryImpl) FindWithUpcomingDeadlines(db *gorm.DB, after, until time.Time) ([]models.School, error) {
	var schools []models.School
	err := db.
		Where("application_deadline IS NOT NULL").
		Where("application_deadline > ?", after).
		Where("application_deadline <= ?", until).
		Find(&schools).Error
	return schools, err
}
