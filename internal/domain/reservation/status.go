package reservation

import "github.com/ricascor080/Back-Barber/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// Blocks indica si una reserva en este estado ocupa la agenda del barbero.
// Canceladas y completadas no bloquean.
func Blocks(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transiciones
// ===============================

// pending -> confirmed | canceled
// confirmed -> completed | canceled
// canceled y completed son terminales
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusPending
}
