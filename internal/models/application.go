package models

import "time"

type Application struct {
	BaseModel
	SchoolID       uint              `gorm:"not null;index" json:"school_id"`
	ProfessorID    *uint             `gorm:"index" json:"professor_id"`
	Status         ApplicationStatus `gorm:"not null;default:preparing" json:"status"`
	SubmissionDate *time.Time        `json:"submission_date"`
	ResultDate     *time.Time        `json:"result_date"`
	CVPath         string            `json:"cv_path"`
	PSPath         string            `json:"ps_path"`
	Notes          string            `gorm:"type:text" json:"notes"`

	School    *School    `json:"school,omitempty"`
	Professor *Professor `json:"professor,omitempty"`
	Documents []Document `json:"documents,omitempty"`
	Emails    []Email    `json:"emails,omitempty"`
}
