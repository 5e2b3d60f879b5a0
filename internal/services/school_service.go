package services

import (
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SchoolService struct {
	schoolRepo repositories.SchoolRepository
}

func NewSchoolService(schoolRepo repositories.SchoolRepository) *SchoolService {
	return &SchoolService{schoolRepo: schoolRepo}
}

func (s *SchoolService) Create(db *gorm.DB, req *dto.CreateSchoolRequest) (*models.School, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	school := &models.School{
		Name:                req.Name,
		Department:          req.Department,
		Program:             req.Program,
		Location:            req.Location,
		Website:             req.Website,
		ApplicationStart:    req.ApplicationStart,
		ApplicationDeadline: req.ApplicationDeadline,
		Notes:               req.Notes,
	}

	if err := s.schoolRepo.Create(db, school); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return school, nil
}

func (s *SchoolService) GetByID(db *gorm.DB, id uint) (*models.School, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	school, err := s.schoolRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrSchoolNotFound {
			return nil, apperrors.ErrNotFound(err, "school")
		}
		return nil, apperrors.InternalError(err)
	}
	return school, nil
}

func (s *SchoolService) List(db *gorm.DB, skip, limit int) ([]models.School, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	schools, err := s.schoolRepo.FindAll(db, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return schools, nil
}

// Update applies only the fields present in the request.
func (s *SchoolService) Update(db *gorm.DB, id uint, req *dto.UpdateSchoolRequest) (*models.School, error) {
	school, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.Department != nil {
		school.Department = *req.Department
	}
	if req.Program != nil {
		school.Program = *req.Program
	}
	if req.Location != nil {
		school.Location = *req.Location
	}
	if req.Website != nil {
		school.Website = *req.Website
	}
	if req.ApplicationStart != nil {
		school.ApplicationStart = req.ApplicationStart
	}
	if req.ApplicationDeadline != nil {
		school.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Notes != nil {
		school.Notes = *req.Notes
	}

	if err := s.schoolRepo.Update(db, school); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return school, nil
}

func (s *SchoolService) Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return apperrors.ErrMissingDBHandle
	}

	if err := s.schoolRepo.Delete(db, id); err != nil {
		if err == repositories.ErrSchoolNotFound {
			return apperrors.ErrNotFound(err, "school")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
