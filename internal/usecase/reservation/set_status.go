package reservation

import (
	"context"
	"time"

	"github.com/ricascor080/Back-Barber/internal/audit"
	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/mailer"
	"github.com/ricascor080/Back-Barber/internal/models"
)

type SetStatus struct {
	repo         domain.Repository
	availability *Availability
	notifier     mailer.Notifier
	audit        *audit.Dispatcher
	now          func() time.Time
}

func NewSetStatus(
	repo domain.Repository,
	availability *Availability,
	notifier mailer.Notifier,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		audit:        audit,
		now:          time.Now,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	actorID uint,
	reservationID uint,
	newStatus domain.Status,
) (*models.Reservation, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrValidation(httperr.FieldError{
			Field:   "status",
			Message: "Estado de reserva desconocido.",
		})
	}

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanTransition(domain.Status(res.Status), newStatus); err != nil {
		return nil, err
	}

	// Al confirmar se re-valida la disponibilidad: el slot pudo ocuparse
	// entre la creación y la confirmación.
	if newStatus == domain.StatusConfirmed && res.BarberID != nil && res.StartTime != nil {
		ok, err := uc.availability.isSlotFree(
			ctx,
			*res.BarberID,
			*res.StartTime,
			res.Service.DurationMin,
			res.ID,
		)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}
	}

	now := uc.now()
	res.Status = string(newStatus)
	switch newStatus {
	case domain.StatusConfirmed:
		res.ConfirmedAt = &now
	case domain.StatusCanceled:
		res.CanceledAt = &now
	case domain.StatusCompleted:
		res.CompletedAt = &now
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	switch newStatus {
	case domain.StatusConfirmed:
		uc.notifier.NotifyReservation(res.ID, mailer.TemplateConfirmation)
	case domain.StatusCanceled:
		uc.notifier.NotifyReservation(res.ID, mailer.TemplateCancellation)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "reservation_" + string(newStatus),
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
