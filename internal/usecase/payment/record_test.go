package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/models"
)

var errNotFound = errors.New("not found")

type mockRepo struct {
	reservations map[uint]*models.Reservation
	payments     map[uint]*models.Payment
	cards        []*models.UserCard

	paymentLookupErr error
	createPaymentErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		reservations: make(map[uint]*models.Reservation),
		payments:     make(map[uint]*models.Payment),
	}
}

func (m *mockRepo) GetUser(context.Context, uint) (*models.User, error) {
	return nil, errNotFound
}

func (m *mockRepo) GetService(context.Context, uint) (*models.Service, error) {
	return nil, errNotFound
}

func (m *mockRepo) ListSchedulesForWeekday(context.Context, uint, time.Weekday) ([]models.Schedule, error) {
	return nil, nil
}

func (m *mockRepo) ListSchedulesForBarber(context.Context, uint) ([]models.Schedule, error) {
	return nil, nil
}

func (m *mockRepo) CreateReservation(context.Context, *models.Reservation) error {
	return nil
}

func (m *mockRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	r, ok := m.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	return r, nil
}

func (m *mockRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	m.reservations[res.ID] = res
	return nil
}

func (m *mockRepo) ListBlockingReservationsForDay(context.Context, uint, time.Time, time.Time) ([]models.Reservation, error) {
	return nil, nil
}

func (m *mockRepo) GetPaymentByReservation(_ context.Context, reservationID uint) (*models.Payment, error) {
	if m.paymentLookupErr != nil {
		return nil, m.paymentLookupErr
	}
	p, ok := m.payments[reservationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	if m.createPaymentErr != nil {
		return m.createPaymentErr
	}
	p.ID = uint(len(m.payments) + 1)
	m.payments[p.ReservationID] = p
	return nil
}

func (m *mockRepo) SaveCard(_ context.Context, card *models.UserCard) error {
	m.cards = append(m.cards, card)
	return nil
}

func (m *mockRepo) addReservation(id uint, price float64) *models.Reservation {
	r := &models.Reservation{
		ID:       id,
		ClientID: 5,
		Service:  models.Service{ID: 10, Name: "Corte clásico", Price: price, DurationMin: 30},
		Status:   "confirmed",
	}
	m.reservations[id] = r
	return r
}

func fixedNow() time.Time {
	return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
}

func newRecordPayment(repo *mockRepo) *RecordPayment {
	uc := NewRecordPayment(repo, nil)
	uc.now = fixedNow
	return uc
}

// ----------------------------------------------------
// Tests
// ----------------------------------------------------

func TestRecordPaymentCash(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)

	uc := newRecordPayment(repo)

	result, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Payment.Amount != 50 {
		t.Errorf("amount should default to the service price, got %v", result.Payment.Amount)
	}
	if result.Fee != 0 {
		t.Errorf("cash payments carry no fee, got %v", result.Fee)
	}
	if result.Payment.Reference == "" {
		t.Error("payment should get a reference")
	}
	if !repo.reservations[1].Paid {
		t.Error("reservation should be marked as paid")
	}
}

func TestRecordPaymentCardFee(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)

	uc := newRecordPayment(repo)

	result, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCard,
		Card: &CardDetails{
			Number:          "4111111111111111",
			ExpirationMonth: 12,
			ExpirationYear:  2030,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// La comisión es informativa: se reporta pero el monto persistido
	// sigue siendo el precio del servicio
	if result.Fee != 1.00 {
		t.Errorf("expected fee 1.00 for price 50, got %v", result.Fee)
	}
	if result.Payment.Amount != 50 {
		t.Errorf("fee must not be added to the amount, got %v", result.Payment.Amount)
	}
}

func TestRecordPaymentAlreadyPaid(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)
	repo.payments[1] = &models.Payment{ID: 9, ReservationID: 1, Amount: 50}

	uc := newRecordPayment(repo)

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCash,
	})
	if !httperr.IsBusiness(err, "already_paid") {
		t.Errorf("expected already_paid, got %v", err)
	}
}

// Un fallo transitorio del lookup no puede tratarse como "sin pago":
// se propaga en vez de seguir hacia la creación.
func TestRecordPaymentLookupFailure(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)
	repo.paymentLookupErr = errors.New("connection reset")

	uc := newRecordPayment(repo)

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCash,
	})
	if err == nil {
		t.Fatal("expected the lookup failure to surface")
	}
	if httperr.IsBusiness(err, "already_paid") {
		t.Error("a lookup failure is not already_paid")
	}
	if len(repo.payments) != 0 {
		t.Error("no payment should be created when the lookup fails")
	}
}

// Dos requests concurrentes pueden pasar el chequeo previo; la violación
// del índice único se reporta como already_paid, no como error genérico.
func TestRecordPaymentUniqueViolation(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)
	repo.createPaymentErr = &pgconn.PgError{Code: "23505"}

	uc := newRecordPayment(repo)

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCash,
	})
	if !httperr.IsBusiness(err, "already_paid") {
		t.Errorf("expected already_paid, got %v", err)
	}
}

func TestRecordPaymentReservationNotFound(t *testing.T) {
	uc := newRecordPayment(newMockRepo())

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 999,
		Method:        models.MethodCash,
	})
	if !httperr.IsBusiness(err, "reservation_not_found") {
		t.Errorf("expected reservation_not_found, got %v", err)
	}
}

func TestRecordPaymentInvalidMethod(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)

	uc := newRecordPayment(repo)

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        "crypto",
	})
	if !httperr.IsBusiness(err, "invalid_payment_method") {
		t.Errorf("expected invalid_payment_method, got %v", err)
	}
}

func TestRecordPaymentExpiredCard(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)

	uc := newRecordPayment(repo)

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCard,
		Card: &CardDetails{
			Number:          "4111111111111111",
			ExpirationMonth: 13,
			ExpirationYear:  2020,
		},
	})
	ve, ok := httperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	// Se acumulan TODOS los campos inválidos
	if len(ve.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}
	if len(repo.payments) != 0 {
		t.Error("no payment should be persisted on validation failure")
	}
}

func TestRecordPaymentSavesCard(t *testing.T) {
	repo := newMockRepo()
	repo.addReservation(1, 50)

	uc := newRecordPayment(repo)

	_, err := uc.Execute(context.Background(), 5, RecordPaymentInput{
		ReservationID: 1,
		Method:        models.MethodCard,
		Card: &CardDetails{
			Number:          "4111111111111111",
			ExpirationMonth: 12,
			ExpirationYear:  2030,
			Nickname:        "personal",
			Save:            true,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.cards) != 1 {
		t.Fatalf("expected 1 saved card, got %d", len(repo.cards))
	}
	card := repo.cards[0]
	if card.UserID != 5 {
		t.Errorf("card should belong to the reservation client, got user %d", card.UserID)
	}
	if card.Nickname != "personal" {
		t.Errorf("expected nickname to persist, got %q", card.Nickname)
	}
}
