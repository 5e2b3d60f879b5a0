package services

import (
	"phdtrack_backend/internal/models"
	"phdtrack_backend/internal/repositories"
	"phdtrack_backend/internal/services/dto"
	"phdtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfessorService struct {
	professorRepo repositories.ProfessorRepository
	schoolRepo    repositories.SchoolRepository
}

func NewProfessorService(
	professorRepo repositories.ProfessorRepository,
	schoolRepo repositories.SchoolRepository,
) *ProfessorService {
	return &ProfessorService{
		professorRepo: professorRepo,
		schoolRepo:    schoolRepo,
	}
}

// Create stores the professor and links the referenced schools. An unknown
// school ID fails the whole request before anything is written.
func (s *ProfessorService) Create(db *gorm.DB, req *dto.CreateProfessorRequest) (*models.Professor, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	var schools []models.School
	for _, schoolID := range req.SchoolIDs {
		school, err := s.schoolRepo.FindByID(db, schoolID)
		if err != nil {
			if err == repositories.ErrSchoolNotFound {
				return nil, apperrors.ErrNotFound(err, "school")
			}
			return nil, apperrors.InternalError(err)
		}
		schools = append(schools, *school)
	}

	professor := &models.Professor{
		Name:         req.Name,
		Email:        req.Email,
		ResearchArea: req.ResearchArea,
		Website:      req.Website,
		Notes:        req.Notes,
		Schools:      schools,
	}

	if err := s.professorRepo.Create(db, professor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return professor, nil
}

func (s *ProfessorService) GetByID(db *gorm.DB, id uint) (*models.Professor, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	professor, err := s.professorRepo.FindByID(db, id)
	if err != nil {
		if err == repositories.ErrProfessorNotFound {
			return nil, apperrors.ErrNotFound(err, "professor")
		}
		return nil, apperrors.InternalError(err)
	}
	return professor, nil
}

func (s *ProfessorService) List(db *gorm.DB, skip, limit int) ([]models.Professor, error) {
	if db == nil {
		return nil, apperrors.ErrMissingDBHandle
	}

	professors, err := s.professorRepo.FindAll(db, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return professors, nil
}

func (s *ProfessorService) Update(db *gorm.DB, id uint, req *dto.UpdateProfessorRequest) (*models.Professor, error) {
	professor, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		professor.Name = *req.Name
	}
	if req.Email != nil {
		professor.Email = *req.Email
	}
	if req.ResearchArea != nil {
		professor.ResearchArea = *req.ResearchArea
	}
	if req.Website != nil {
		professor.Website = *req.Website
	}
	if req.Notes != nil {
		professor.Notes = *req.Notes
	}

	if err := s.professorRepo.Update(db, professor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return professor, nil
}

func (s *ProfessorService) Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return apperrors.ErrMissingDBHandle
	}

	if err := s.professorRepo.Delete(db, id); err != nil {
		if err == repositories.ErrProfessorNotFound {
			return apperrors.ErrNotFound(err, "professor")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// LinkSchool attaches a professor to a school.
func (s *ProfessorService) LinkSchool(db *gorm.DB, professorID, schoolID uint) (*models.Professor, error) {
	professor, err := s.GetByID(db, professorID)
	if err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.FindByID(db, schoolID)
	if err != nil {
		if err == repositories.ErrSchoolNotFound {
			return nil, apperrors.ErrNotFound(err, "school")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.professorRepo.AddSchool(db, professor, school); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(db, professorID)
}

// UnlinkSchool detaches a professor from a school. Detaching a school that was
// never linked succeeds.
func (s *ProfessorService) UnlinkSchool(db *gorm.DB, professorID, schoolID uint) (*models.Professor, error) {
	professor, err := s.GetByID(db, professorID)
	if err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.FindByID(db, schoolID)
	if err != nil {
		if err == repositories.ErrSchoolNotFound {
			return nil, apperrors.ErrNotFound(err, "school")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.professorRepo.RemoveSchool(db, professor, school); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(db, professorID)
}
