package reservation

import (
	"context"
	"errors"
	"time"

	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/models"
)

var errNotFound = errors.New("not found")

// mockRepo implementa domain.Repository en memoria para los tests de
// los casos de uso.
type mockRepo struct {
	users        map[uint]*models.User
	services     map[uint]*models.Service
	schedules    []models.Schedule
	reservations map[uint]*models.Reservation
	payments     map[uint]*models.Payment
	cards        []*models.UserCard

	nextID    uint
	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		users:        make(map[uint]*models.User),
		services:     make(map[uint]*models.Service),
		reservations: make(map[uint]*models.Reservation),
		payments:     make(map[uint]*models.Payment),
		nextID:       1,
	}
}

func (m *mockRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (m *mockRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (m *mockRepo) ListSchedulesForWeekday(
	_ context.Context,
	barberID uint,
	weekday time.Weekday,
) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, sc := range m.schedules {
		if sc.BarberID == barberID && sc.CoversWeekday(weekday) {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (m *mockRepo) ListSchedulesForBarber(
	_ context.Context,
	barberID uint,
) ([]models.Schedule, error) {
	var out []models.Schedule
	for _, sc := range m.schedules {
		if sc.BarberID == barberID {
			out = append(out, sc)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateReservation(_ context.Context, res *models.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	res.ID = m.nextID
	m.nextID++
	if svc, ok := m.services[res.ServiceID]; ok {
		res.Service = *svc
	}
	m.reservations[res.ID] = res
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
	if _, ok := m.reservations[res.ID]; !ok {
		return errNotFound
	}
	m.reservations[res.ID] = res
	return nil
}

func (m *mockRepo) ListBlockingReservationsForDay(
	_ context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range m.reservations {
		if r.BarberID == nil || *r.BarberID != barberID || r.StartTime == nil {
			continue
		}
		if r.Status != "pending" && r.Status != "confirmed" {
			continue
		}
		if r.StartTime.Before(dayStart) || !r.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRepo) GetPaymentByReservation(_ context.Context, reservationID uint) (*models.Payment, error) {
	p, ok := m.payments[reservationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	p.ID = m.nextID
	m.nextID++
	m.payments[p.ReservationID] = p
	return nil
}

func (m *mockRepo) SaveCard(_ context.Context, card *models.UserCard) error {
	card.ID = m.nextID
	m.nextID++
	m.cards = append(m.cards, card)
	return nil
}

// ----------------------------------------------------
// Helpers de fixture
// ----------------------------------------------------

func (m *mockRepo) addBarber(id uint) *models.User {
	u := &models.User{ID: id, Name: "Carlos", Role: models.RoleBarber, Active: true}
	m.users[id] = u
	return u
}

func (m *mockRepo) addClient(id uint) *models.User {
	u := &models.User{ID: id, Name: "Ana", Role: models.RoleClient, Active: true}
	m.users[id] = u
	return u
}

func (m *mockRepo) addService(id uint, durationMin int, price float64) *models.Service {
	s := &models.Service{
		ID:          id,
		Name:        "Corte clásico",
		Category:    models.CategoryCuts,
		DurationMin: durationMin,
		Price:       price,
		Active:      true,
	}
	m.services[id] = s
	return s
}

func (m *mockRepo) addSchedule(barberID uint, days []int, start, end string) {
	m.schedules = append(m.schedules, models.Schedule{
		ID:        m.nextID,
		BarberID:  barberID,
		Days:      days,
		StartTime: start,
		EndTime:   end,
	})
	m.nextID++
}

func (m *mockRepo) addReservation(barberID, serviceID uint, start time.Time, status string) *models.Reservation {
	svc := m.services[serviceID]
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)
	r := &models.Reservation{
		ID:        m.nextID,
		ClientID:  99,
		BarberID:  &barberID,
		ServiceID: serviceID,
		Service:   *svc,
		StartTime: &start,
		EndTime:   &end,
		Status:    status,
	}
	m.nextID++
	m.reservations[r.ID] = r
	return r
}
