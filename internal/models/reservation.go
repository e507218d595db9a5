package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index;not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Nullable: una reserva puede crearse sin barbero asignado
	BarberID *uint `gorm:"index" json:"barber_id"`
	Barber   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	// Nullable hasta que la reserva tenga fecha/hora agendada.
	// EndTime = StartTime + duración del servicio; se persiste para que la
	// constraint de exclusión en Postgres vea el intervalo completo.
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Paid   bool   `gorm:"default:false" json:"paid"`

	// Nombre de quien asiste cuando no es el cliente (walk-in)
	PersonName string `gorm:"size:100" json:"person_name"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
