package dto

type CreateProfessorRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	ResearchArea string `json:"research_area"`
	Website      string `json:"website" validate:"omitempty,url"`
	Notes        string `json:"notes"`
	SchoolIDs    []uint `json:"school_ids"`
}

type UpdateProfessorRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	ResearchArea *string `json:"research_area"`
	Website      *string `json:"website" validate:"omitempty,url"`
	Notes        *string `json:"notes"`
}
