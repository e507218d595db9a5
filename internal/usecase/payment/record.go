package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ricascor080/Back-Barber/internal/audit"
	domainpay "github.com/ricascor080/Back-Barber/internal/domain/payment"
	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CardDetails struct {
	Number          string
	ExpirationMonth int
	ExpirationYear  int
	Nickname        string
	Save            bool
}

type RecordPaymentInput struct {
	ReservationID uint
	Method        string
	Card          *CardDetails
}

// Result lleva la comisión junto al pago: la comisión es informativa,
// no se persiste ni se suma al monto.
type Result struct {
	Payment *models.Payment `json:"payment"`
	Fee     float64         `json:"fee"`
}

// ======================================================
// USE CASE
// ======================================================

type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRecordPayment(repo domain.Repository, audit *audit.Dispatcher) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordPayment) Execute(
	ctx context.Context,
	actorID uint,
	in RecordPaymentInput,
) (*Result, error) {

	res, err := uc.repo.GetReservation(ctx, in.ReservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	// --------------------------------------------------
	// 1. Una reserva tiene a lo sumo un pago. Solo la
	//    ausencia confirmada deja pasar: un fallo del
	//    almacenamiento se propaga en vez de tratarse
	//    como "sin pago".
	// --------------------------------------------------
	existing, err := uc.repo.GetPaymentByReservation(ctx, res.ID)
	switch {
	case err == nil && existing != nil:
		return nil, httperr.ErrBusiness("already_paid")
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	// --------------------------------------------------
	// 2. Monto/comisión: el precio se toma del servicio
	//    de la reserva, nunca del caché de referencia
	// --------------------------------------------------
	quote, err := domainpay.ComputeAmount(in.Method, res.Service.Price)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Tarjeta: validación de expiración y guardado
	//    opcional para conveniencia futura
	// --------------------------------------------------
	if in.Method == models.MethodCard && in.Card != nil {
		if errs := domainpay.ValidateCardExpiration(
			in.Card.ExpirationMonth,
			in.Card.ExpirationYear,
			uc.now(),
		); len(errs) > 0 {
			return nil, httperr.ErrValidation(errs...)
		}

		if in.Card.Save {
			card := &models.UserCard{
				UserID:          res.ClientID,
				CardNumber:      in.Card.Number,
				ExpirationMonth: in.Card.ExpirationMonth,
				ExpirationYear:  in.Card.ExpirationYear,
				Nickname:        in.Card.Nickname,
			}
			if err := uc.repo.SaveCard(ctx, card); err != nil {
				return nil, err
			}
		}
	}

	// --------------------------------------------------
	// 4. Persistir pago y marcar la reserva como pagada
	// --------------------------------------------------
	p := &models.Payment{
		ReservationID: res.ID,
		Amount:        quote.Amount,
		Method:        in.Method,
		Reference:     uuid.NewString(),
	}

	// Dos requests concurrentes pueden pasar el chequeo de arriba; el
	// índice único sobre reservation_id es la última línea de defensa
	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("already_paid")
		}
		return nil, err
	}

	res.Paid = true
	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return &Result{Payment: p, Fee: quote.Fee}, nil
}
