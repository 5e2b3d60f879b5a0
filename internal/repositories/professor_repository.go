package repositories

import (
	"errors"

	"phdtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfessorNotFound = errors.New("professor not found")

type ProfessorRepository interface {
	Create(db *gorm.DB, professor *models.Professor) error
	FindByID(db *gorm.DB, id uint) (*models.Professor, error)
	FindAll(db *gorm.DB, skip, limit int) ([]models.Professor, error)
	Update(db *gorm.DB, professor *models.Professor) error
	Delete(db *gorm.DB, id uint) error

	// School link management for the many2many relation.
	AddSchool(db *gorm.DB, professor *models.Professor, school *models.School) error
	RemoveSchool(db *gorm.DB, professor *models.Professor, school *models.School) error
}

type ProfessorRepositoryImpl struct{}

func NewProfessorRepository() ProfessorRepository {
	return &ProfessorRepositoryImpl{}
}

func (r *ProfessorRepositoryImpl) Create(db *gorm.DB, professor *models.Professor) error {
	return db.Create(professor).Error
}

func (r *ProfessorRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Professor, error) {
	var professor models.Professor
	err := db.Preload("Schools").First(&professor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessorNotFound
		}
		return nil, err
	}
	return &professor, nil
}

func (r *ProfessorRepositoryImpl) FindAll(db *gorm.DB, skip, limit int) ([]models.Professor, error) {
	var professors []models.Professor
	err := db.Offset(skip).Limit(limit).Find(&professors).Error
	return professors, err
}

func (r *ProfessorRepositoryImpl) Update(db *gorm.DB, professor *models.Professor) error {
	return db.Save(professor).Error
}

func (r *ProfessorRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Professor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfessorNotFound
	}
	return nil
}

func (r *ProfessorRepositoryImpl) AddSchool(db *gorm.DB, professor *models.Professor, school *models.School) error {
	return db.Model(professor).Association("Schools").Append(school)
}

func (r *ProfessorRepositoryImpl) RemoveSchool(db *gorm.DB, professor *models.Professor, school *models.School) error {
	return db.Model(professor).Association("Schools").Delete(school)
}
