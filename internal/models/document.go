package models

import "time"

type Document struct {
	BaseModel
	ApplicationID uint         `gorm:"not null;index" json:"application_id"`
	Name          string       `gorm:"not null" json:"name"`
	Type          DocumentType `gorm:"not null" json:"type"`
	Path          string       `gorm:"not null" json:"path"`
	UploadedAt    time.Time    `gorm:"autoCreateTime" json:"uploaded_at"`
}
