package models

import "time"

type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// All returns every model registered for migration, in FK-safe order.
func All() []interface{} {
	return []interface{}{
		&School{},
		&Professor{},
		&Application{},
		&Document{},
		&Email{},
		&Notification{},
	}
}
