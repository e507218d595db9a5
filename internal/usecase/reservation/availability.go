package reservation

import (
	"context"
	"time"

	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
)

// ======================================================
// AVAILABILITY ENGINE
// ======================================================

type Availability struct {
	repo domain.Repository
}

func NewAvailability(repo domain.Repository) *Availability {
	return &Availability{repo: repo}
}

// IsSlotAvailable responde si el intervalo [start, start+duración) cabe
// en la agenda del barbero: dentro de una de sus franjas horarias del día
// y sin solaparse con reservas pending/confirmed existentes.
//
// Es solo un fast-reject; la garantía real contra el doble agendamiento
// es la constraint de exclusión en el almacenamiento.
func (uc *Availability) IsSlotAvailable(
	ctx context.Context,
	barberID uint,
	start time.Time,
	durationMin int,
) (bool, error) {
	return uc.isSlotFree(ctx, barberID, start, durationMin, 0)
}

// excludeID ignora una reserva concreta en el chequeo de solapamiento,
// para que una reserva no se bloquee a sí misma al re-validar en la
// confirmación.
func (uc *Availability) isSlotFree(
	ctx context.Context,
	barberID uint,
	start time.Time,
	durationMin int,
	excludeID uint,
) (bool, error) {

	if durationMin <= 0 {
		return false, httperr.ErrValidation(httperr.FieldError{
			Field:   "duration_min",
			Message: "La duración debe ser mayor a cero.",
		})
	}

	slot := domain.Slot{Start: start, DurationMin: durationMin}

	// --------------------------------------------------
	// 1. El intervalo debe caber completo en alguna
	//    franja del barbero para ese día de la semana
	// --------------------------------------------------
	schedules, err := uc.repo.ListSchedulesForWeekday(ctx, barberID, start.Weekday())
	if err != nil {
		return false, err
	}
	if len(schedules) == 0 {
		return false, nil
	}

	slotStartMin := start.Hour()*60 + start.Minute()
	slotEndMin := slotStartMin + durationMin

	covered := false
	for _, sc := range schedules {
		entryStart, err := domain.MinutesOfDay(sc.StartTime)
		if err != nil {
			continue
		}
		entryEnd, err := domain.MinutesOfDay(sc.EndTime)
		if err != nil {
			continue
		}
		if entryStart <= slotStartMin && slotEndMin <= entryEnd {
			covered = true
			break
		}
	}
	if !covered {
		return false, nil
	}

	// --------------------------------------------------
	// 2. Sin solapamiento con reservas que bloquean
	//    (semántica semiabierta: fin == inicio no choca)
	// --------------------------------------------------
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListBlockingReservationsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	for _, res := range existing {
		if res.ID == excludeID || res.StartTime == nil {
			continue
		}
		resStart := *res.StartTime
		resEnd := resStart.Add(time.Duration(res.Service.DurationMin) * time.Minute)
		if slot.Overlaps(resStart, resEnd) {
			return false, nil
		}
	}

	return true, nil
}

// ListOccupiedSlots devuelve, ordenados, los intervalos ocupados del
// barbero en una fecha, para que la UI de agenda pinte libre/ocupado.
func (uc *Availability) ListOccupiedSlots(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]domain.OccupiedSlot, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListBlockingReservationsForDay(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.OccupiedSlot, 0, len(existing))
	for _, res := range existing {
		if res.StartTime == nil {
			continue
		}
		resStart := *res.StartTime
		resEnd := resStart.Add(time.Duration(res.Service.DurationMin) * time.Minute)
		slots = append(slots, domain.OccupiedSlot{
			Start: resStart.Format("15:04"),
			End:   resEnd.Format("15:04"),
		})
	}

	return slots, nil
}
