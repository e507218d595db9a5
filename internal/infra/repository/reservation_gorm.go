package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reference
// --------------------------------------------------

func (r *ReservationGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *ReservationGormRepository) ListSchedulesForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// Los días viven serializados como JSON en una sola columna, así que el
// filtro por weekday se resuelve en memoria sobre las franjas del barbero.
func (r *ReservationGormRepository) ListSchedulesForWeekday(
	ctx context.Context,
	barberID uint,
	weekday time.Weekday,
) ([]models.Schedule, error) {

	all, err := r.ListSchedulesForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	var matched []models.Schedule
	for _, sc := range all {
		if sc.CoversWeekday(weekday) {
			matched = append(matched, sc)
		}
	}
	return matched, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) ListBlockingReservationsForDay(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barber_id = ? AND status IN ('pending', 'confirmed') AND start_time >= ? AND start_time < ?",
			barberID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *ReservationGormRepository) GetPaymentByReservation(
	ctx context.Context,
	reservationID uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ReservationGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// --------------------------------------------------
// Card
// --------------------------------------------------

func (r *ReservationGormRepository) SaveCard(
	ctx context.Context,
	card *models.UserCard,
) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
