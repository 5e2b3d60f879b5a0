package dto

import "time"

type CreateApplicationRequest struct {
	SchoolID       uint       `json:"school_id" binding:"required"`
	ProfessorID    *uint      `json:"professor_id"`
	Status         string     `json:"status" validate:"omitempty,is-application-status"`
	SubmissionDate *time.Time `json:"submission_date"`
	ResultDate     *time.Time `json:"result_date"`
	CVPath         string     `json:"cv_path"`
	PSPath         string     `json:"ps_path"`
	Notes          string     `json:"notes"`
}

// UpdateApplicationRequest is a partial update. A non-nil Status that differs
// from the stored one triggers a status-change notification after the update
// commits.
type UpdateApplicationRequest struct {
	ProfessorID    *uint      `json:"professor_id"`
	Status         *string    `json:"status" validate:"omitempty,is-application-status"`
	SubmissionDate *time.Time `json:"submission_date"`
	ResultDate     *time.Time `json:"result_date"`
	CVPath         *string    `json:"cv_path"`
	PSPath         *string    `json:"ps_path"`
	Notes          *string    `json:"notes"`
}
