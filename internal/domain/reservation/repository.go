package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/ricascor080/Back-Barber/internal/models"
)

// ErrNotFound distingue "el registro no existe" de un fallo real del
// almacenamiento; las implementaciones lo devuelven en los lookups.
var ErrNotFound = errors.New("reservation: not found")

type Repository interface {
	// -------- Reference --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Schedule --------
	ListSchedulesForWeekday(
		ctx context.Context,
		barberID uint,
		weekday time.Weekday,
	) ([]models.Schedule, error)

	ListSchedulesForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Schedule, error)

	// -------- Reservation --------
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// Reservas pending/confirmed del barbero en [dayStart, dayEnd),
	// con Service precargado, ordenadas por inicio
	ListBlockingReservationsForDay(
		ctx context.Context,
		barberID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Reservation, error)

	// -------- Payment --------
	GetPaymentByReservation(
		ctx context.Context,
		reservationID uint,
	) (*models.Payment, error)

	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// -------- Card --------
	SaveCard(
		ctx context.Context,
		card *models.UserCard,
	) error
}
