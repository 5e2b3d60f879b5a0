package services

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"phdtrack_backend/internal/logger"
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/internal/storage"
	"phdtrack_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentService struct {
	documentRepo    repositories.DocumentRepository
	applicationRepo repositories.ApplicationRepository
	storage         storage.Storage
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	applicationRepo repositories.ApplicationRepository,
	store storage.Storage,
) *DocumentService {
	return &DocumentService{
		documentRepo:    documentRepo,
		applicationRepo: applicationRepo,
		storage:         store,
	}
}

// Upload stores the file blob under documents/<applicationID>/<uuid><ext> and
// records the document row. If the row insert fails the blob is removed on a
// best-effort basis.
func (s *DocumentService) Upload(ctx context.Context, db *gorm.DB, req *dto.CreateDocumentRequest, fileName string, file io.Reader, contentType string) (*models.Document, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	if _, err := s.applicationRepo.FindByID(db, req.ApplicationID); err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err, "application")
		}
		return nil, apperrors.InternalError(err)
	}

	ext := filepath.Ext(fileName)
	path := filepath.Join("documents",
		strconv.FormatUint(uint64(req.ApplicationID), 10),
		uuid.New().String()+ext)

	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.ErrExternalService(err, "document", "Failed to store document file")
	}

	document := &models.Document{
		ApplicationID: req.ApplicationID,
		Name:          req.Name,
		Type:          models.DocumentType(req.Type),
		Path:          path,
	}

	if err := s.documentRepo.Create(db, document); err != nil {
		if cleanupErr := s.storage.Delete(ctx, path); cleanupErr != nil {
			logger.CtxWarn(ctx, "failed to clean up orphaned document file",
				"path", path, "error", cleanupErr.Error())
		}
		return nil, apperrors.InternalError(err)
	}

	return document, nil
}

func (s *DocumentService) GetByID(db *gorm.DB, id uint) (*models.Document, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	document, err := s.documentRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrDocumentNotFound {
			return nil, apperrors.ErrNotFound(err, "document")
		}
		return nil, apperrors.InternalError(err)
	}
	return document, nil
}

func (s *DocumentService) List(db *gorm.DB, applicationID *uint, skip, limit int) ([]models.Document, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	documents, err := s.documentRepo.FindAll(db, applicationID, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return documents, nil
}

// Download opens the stored blob for streaming.
func (s *DocumentService) Download(ctx context.Context, db *gorm.DB, id uint) (*models.Document, io.ReadCloser, error) {
	document, err := s.GetByID(db, id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := s.storage.Get(ctx, document.Path)
	if err != nil {
		return nil, nil, apperrors.ErrNotFound(err, "document")
	}

	return document, reader, nil
}

// Delete removes the row first, then the blob. A missing blob is not an error.
func (s *DocumentService) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	document, err := s.GetByID(db, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(db, id); err != nil {
		if err == repositories.ErrDocumentNotFound {
			return apperrors.ErrNotFound(err, "document")
		}
		return apperrors.InternalError(err)
	}

	if err := s.storage.Delete(ctx, document.Path); err != nil {
		logger.CtxWarn(ctx, "failed to delete document file",
			"path", document.Path, "error", err.Error())
	}

	return nil
}
