package repositories

import (
	"errors"

	"phdtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	Create(db *gorm.DB, document *models.Document) error
	FindByID(db *gorm.DB, id uint) (*models.Document, error)
	FindAll(db *gorm.DB, applicationID *uint, skip, limit int) ([]models.Document, error)
	Delete(db *gorm.DB, id uint) error
}

type DocumentRepositoryImpl struct{}

func NewDocumentRepository() DocumentRepository {
	return &DocumentRepositoryImpl{}
}

func (r *DocumentRepositoryImpl) Create(db *gorm.DB, document *models.Document) error {
	return db.Create(document).Error
}

func (r *DocumentRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Document, error) {
	var document models.Document
	err := db.First(&document, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepositoryImpl) FindAll(db *gorm.DB, applicationID *uint, skip, limit int) ([]models.Document, error) {
	var documents []models.Document
	query := db.Model(&models.Document{})
	if applicationID != nil {
		query = query.Where("application_id = ?", *applicationID)
	}
	err := query.Offset(skip).Limit(limit).Find(&documents).Error
	return documents, err
}

func (r *DocumentRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Document{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
