package reservation

import (
	"context"
	"testing"

	domain "github.com/ricascor080/Back-Barber/internal/domain/reservation"
	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/mailer"
)

// recordingNotifier captura las notificaciones encoladas.
type recordingNotifier struct {
	sent []mailer.Template
}

func (n *recordingNotifier) NotifyReservation(_ uint, kind mailer.Template) {
	n.sent = append(n.sent, kind)
}

func (n *recordingNotifier) NotifyRecoveryCode(string, string, int) {}

func newSetStatus(repo *mockRepo, notifier mailer.Notifier) *SetStatus {
	return NewSetStatus(repo, NewAvailability(repo), notifier, nil)
}

func TestSetStatusConfirm(t *testing.T) {
	repo := newMockRepo()
	repo.addBarber(1)
	repo.addService(10, 30, 50)
	repo.addSchedule(1, []int{1}, "09:00", "18:00")
	res := repo.addReservation(1, 10, monday(10, 0), "pending")

	notifier := &recordingNotifier{}
	uc := newSetStatus(repo, notifier)

	out, err := uc.Execute(context.Background(), 1, res.ID, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "confirmed" {
		t.Errorf("expected confirmed, got %s", out.Status)
	}
	if out.ConfirmedAt == nil {
		t.Error("ConfirmedAt should be set")
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != mailer.TemplateConfirmation {
		t.Errorf("expected confirmation mail, got %v", notifier.sent)
	}
}

// Al confirmar se re-valida la agenda, pero la propia reserva no debe
// bloquearse a sí misma.
func TestSetStatusConfirmDoesNotSelfBlock(t *testing.T) {
	repo := newMockRepo()
	repo.addBarber(1)
	repo.addService(10, 30, 50)
	repo.addSchedule(1, []int{1}, "09:00", "18:00")
	res := repo.addReservation(1, 10, monday(10, 0), "pending")

	uc := newSetStatus(repo, mailer.Noop{})

	if _, err := uc.Execute(context.Background(), 1, res.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("reservation blocked itself on confirmation: %v", err)
	}
}

func TestSetStatusConfirmSlotTakenMeanwhile(t *testing.T) {
	repo := newMockRepo()
	repo.addBarber(1)
	repo.addService(10, 30, 50)
	repo.addSchedule(1, []int{1}, "09:00", "18:00")
	res := repo.addReservation(1, 10, monday(10, 0), "pending")
	// Otra reserva tomó un intervalo solapado entre la creación y la
	// confirmación
	repo.addReservation(1, 10, monday(10, 15), "confirmed")

	uc := newSetStatus(repo, mailer.Noop{})

	_, err := uc.Execute(context.Background(), 1, res.ID, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "slot_unavailable") {
		t.Errorf("expected slot_unavailable, got %v", err)
	}
}

func TestSetStatusCancel(t *testing.T) {
	repo := newMockRepo()
	repo.addBarber(1)
	repo.addService(10, 30, 50)
	res := repo.addReservation(1, 10, monday(10, 0), "confirmed")

	notifier := &recordingNotifier{}
	uc := newSetStatus(repo, notifier)

	out, err := uc.Execute(context.Background(), 1, res.ID, domain.StatusCanceled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CanceledAt == nil {
		t.Error("CanceledAt should be set")
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != mailer.TemplateCancellation {
		t.Errorf("expected cancellation mail, got %v", notifier.sent)
	}
}

func TestSetStatusComplete(t *testing.T) {
	repo := newMockRepo()
	repo.addBarber(1)
	repo.addService(10, 30, 50)
	res := repo.addReservation(1, 10, monday(10, 0), "confirmed")

	notifier := &recordingNotifier{}
	uc := newSetStatus(repo, notifier)

	out, err := uc.Execute(context.Background(), 1, res.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CompletedAt == nil {
		t.Error("CompletedAt should be set")
	}
	// Completar no manda correo
	if len(notifier.sent) != 0 {
		t.Errorf("expected no mail on completion, got %v", notifier.sent)
	}
}

func TestSetStatusInvalidTransition(t *testing.T) {
	repo := newMockRepo()
	repo.addBarber(1)
	repo.addService(10, 30, 50)
	res := repo.addReservation(1, 10, monday(10, 0), "canceled")

	uc := newSetStatus(repo, mailer.Noop{})

	_, err := uc.Execute(context.Background(), 1, res.ID, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Errorf("expected invalid_transition, got %v", err)
	}
}

func TestSetStatusUnknownStatus(t *testing.T) {
	repo := newMockRepo()
	uc := newSetStatus(repo, mailer.Noop{})

	_, err := uc.Execute(context.Background(), 1, 1, "archived")
	if _, ok := httperr.AsValidation(err); !ok {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSetStatusReservationNotFound(t *testing.T) {
	repo := newMockRepo()
	uc := newSetStatus(repo, mailer.Noop{})

	_, err := uc.Execute(context.Background(), 1, 999, domain.StatusConfirmed)
	if !httperr.IsBusiness(err, "reservation_not_found") {
		t.Errorf("expected reservation_not_found, got %v", err)
	}
}
