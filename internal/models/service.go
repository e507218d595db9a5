package models

import "time"

const (
	CategoryCuts      = "cuts"
	CategoryBeard     = "beard"
	CategoryTreatment = "treatment"
)

func IsValidCategory(c string) bool {
	switch c {
	case CategoryCuts, CategoryBeard, CategoryTreatment:
		return true
	}
	return false
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category    string  `gorm:"size:20;default:'cuts'" json:"category"`
	Name        string  `gorm:"size:150;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `gorm:"default:30" json:"duration_min"`
	Price       float64 `json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
