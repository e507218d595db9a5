package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
	RoleClient = "client"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20;default:'0000000000'" json:"phone"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	Active       bool     `gorm:"default:true" json:"active"`
	RewardPoints int      `gorm:"default:0" json:"reward_points"`
	Salary       *float64 `json:"salary,omitempty"` // solo barberos

	// Código de 5 dígitos para recuperación de contraseña
	RecoveryCode *int `json:"-"`

	OfferedServices []*Service `gorm:"many2many:barber_services;" json:"offered_services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsBarber() bool { return u.Role == RoleBarber }
func (u *User) IsAdmin() bool  { return u.Role == RoleAdmin }
