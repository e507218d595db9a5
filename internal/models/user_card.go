package models

import "time"

type UserCard struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Nunca sale completo por la API; los handlers exponen solo los
	// últimos 4 dígitos
	CardNumber string `gorm:"size:16;not null" json:"-"`

	ExpirationMonth int `json:"expiration_month"`
	ExpirationYear  int `json:"expiration_year"`

	Nickname string `gorm:"size:50" json:"nickname"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *UserCard) LastFour() string {
	if len(c.CardNumber) < 4 {
		return c.CardNumber
	}
	return c.CardNumber[len(c.CardNumber)-4:]
}
