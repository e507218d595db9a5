package reservation

import (
	"context"
	"time"

	"github.com/ricascor080/Back-Barber/internal/audit"
	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ClientID  uint
	ServiceID uint

	// Opcionales: una reserva puede nacer sin barbero ni hora
	BarberID  *uint
	StartTime *time.Time

	PersonName string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo         domain.Repository
	availability *Availability
	audit        *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	availability *Availability,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:         repo,
		availability: availability,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Servicio: debe existir y estar activo
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	// --------------------------------------------------
	// 2. Barbero + hora: chequeo de disponibilidad.
	//    Sin barbero asignado la reserva no bloquea
	//    ninguna agenda y no hay nada que validar.
	// --------------------------------------------------
	var endTime *time.Time
	if in.BarberID != nil && in.StartTime != nil {
		barber, err := uc.repo.GetUser(ctx, *in.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		if !barber.IsBarber() {
			return nil, httperr.ErrBusiness("not_a_barber")
		}

		ok, err := uc.availability.IsSlotAvailable(ctx, *in.BarberID, *in.StartTime, svc.DurationMin)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}

		end := in.StartTime.Add(time.Duration(svc.DurationMin) * time.Minute)
		endTime = &end
	}

	// --------------------------------------------------
	// 3. Persistencia en pending, sin pagar
	// --------------------------------------------------
	res := &models.Reservation{
		ClientID:   in.ClientID,
		BarberID:   in.BarberID,
		ServiceID:  svc.ID,
		StartTime:  in.StartTime,
		EndTime:    endTime,
		Status:     string(domain.InitialStatus()),
		Paid:       false,
		PersonName: in.PersonName,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
