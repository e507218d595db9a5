package dto

import "time"

type ReservationListDTO struct {
	ID          uint       `json:"id"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Status      string     `json:"status"`
	Paid        bool       `json:"paid"`
	PersonName  string     `json:"person_name,omitempty"`
	BarberName  string     `json:"barber_name,omitempty"`
	ServiceName string     `json:"service_name"`
	ClientPhone string     `json:"client_phone,omitempty"`
}

type CardDTO struct {
	ID              uint      `json:"id"`
	LastFour        string    `json:"last_four"`
	ExpirationMonth int       `json:"expiration_month"`
	ExpirationYear  int       `json:"expiration_year"`
	Nickname        string    `json:"nickname"`
	CreatedAt       time.Time `json:"created_at"`
}
