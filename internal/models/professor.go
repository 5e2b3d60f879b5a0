package models

type Professor struct {
	BaseModel
	Name         string `gorm:"not null;index" json:"name"`
	Email        string `json:"email"`
	ResearchArea string `json:"research_area"`
	Website      string `json:"website"`
	Notes        string `gorm:"type:text" json:"notes"`

	Schools []School `gorm:"many2many:school_professors" json:"schools,omitempty"`
}
