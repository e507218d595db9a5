package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MethodCash = "cash"
	MethodCard = "card"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"uniqueIndex;not null" json:"reservation_id"`
	Reservation   Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Monto fijado una sola vez; si llega en cero el hook lo toma del
	// precio del servicio de la reserva (comportamiento del modelo original)
	Amount float64 `json:"amount"`
	Method string  `gorm:"size:15;not null" json:"method"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.Amount != 0 {
		return nil
	}
	var res Reservation
	if err := tx.Preload("Service").First(&res, p.ReservationID).Error; err != nil {
		return err
	}
	p.Amount = res.Service.Price
	return nil
}
