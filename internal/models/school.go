package models

import "time"

type School struct {
	BaseModel
	Name                string     `gorm:"not null;index" json:"name"`
	Department          string     `json:"department"`
	Program             string     `json:"program"`
	Location            string     `json:"location"`
	Website             string     `json:"website"`
	ApplicationStart    *time.Time `json:"application_start"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Notes               string     `gorm:"type:text" json:"notes"`

	Professors   []Professor   `gorm:"many2many:school_professors" json:"professors,omitempty"`
	Applications []Application `json:"applications,omitempty"`
}
