package dto

import (
	"encoding/json"

	"phdtrack_backend/internal/models"
)

// CreateNotificationRequest creates a notification directly, bypassing the
// deadline/status factories. Data must be valid JSON when present.
type CreateNotificationRequest struct {
	Type    string          `json:"type" binding:"required" validate:"is-notification-type"`
	Title   string          `json:"title" binding:"required"`
	Content string          `json:"content"`
	Data    json.RawMessage `json:"data"`
}

// NotificationListResponse wraps a listing with its unfiltered total.
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Skip          int                   `json:"skip"`
	Limit         int                   `json:"limit"`
}
