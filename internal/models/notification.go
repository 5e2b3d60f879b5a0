package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is a snapshot rendered at creation time: school and status
// names are baked into Title/Content/Data and never re-derived, so it carries
// no foreign key to the entity that triggered it. Immutable except IsRead.
type Notification struct {
	BaseModel
	Type    string         `gorm:"not null" json:"type"` // "deadline", "email-reply", "status-change"
	Title   string         `gorm:"not null" json:"title"`
	Content string         `gorm:"type:text" json:"content"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"school": "...", "days_left": 3}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at"`
}
