package dto

import "time"

type CreateSchoolRequest struct {
	Name                string     `json:"name" binding:"required"`
	Department          string     `json:"department"`
	Program             string     `json:"program"`
	Location            string     `json:"location"`
	Website             string     `json:"website" validate:"omitempty,url"`
	ApplicationStart    *time.Time `json:"application_start"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Notes               string     `json:"notes"`
}

// UpdateSchoolRequest carries partial updates; nil fields stay untouched.
type UpdateSchoolRequest struct {
	Name                *string    `json:"name"`
	Department          *string    `json:"department"`
	Program             *string    `json:"program"`
	Location            *string    `json:"location"`
	Website             *string    `json:"website" validate:"omitempty,url"`
	ApplicationStart    *time.Time `json:"application_start"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Notes               *string    `json:"notes"`
}
