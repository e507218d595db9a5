package models

import "time"

// Schedule es la ventana recurrente de atención de un barbero:
// un conjunto de días de la semana (0=domingo..6=sábado) más hora
// de inicio y fin en formato "HH:MM".
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index;not null" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Days []int `gorm:"serializer:json" json:"days"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) CoversWeekday(weekday time.Weekday) bool {
	for _, d := range s.Days {
		if d == int(weekday) {
			return true
		}
	}
	return false
}
