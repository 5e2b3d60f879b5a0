package models

import "time"

// Email is a tracked outbound message tied to an application.
// IsSent flips only after a successful SMTP send.
type Email struct {
	BaseModel
	ApplicationID uint       `gorm:"not null;index" json:"application_id"`
	Subject       string     `gorm:"not null" json:"subject"`
	Content       string     `gorm:"type:text" json:"content"`
	Sender        string     `json:"sender"`
	Receiver      string     `json:"receiver"`
	SentAt        *time.Time `json:"sent_at"`
	IsSent        bool       `gorm:"default:false" json:"is_sent"`
}
