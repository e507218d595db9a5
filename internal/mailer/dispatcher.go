package mailer

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ricascor080/Back-Barber/internal/models"
)

type Sender interface {
	Send(ctx context.Context, toEmail, toName, subject, html string) error
}

type job struct {
	reservationID uint
	kind          Template

	recoveryEmail string
	recoveryName  string
	recoveryCode  int
}

// Dispatcher desacopla el envío de correos del request: los usecases
// encolan y un worker entrega en background. Cola llena → se descarta
// el correo, nunca se bloquea la API.
type Dispatcher struct {
	db     *gorm.DB
	sender Sender
	log    *zap.Logger
	queue  chan job
}

func NewDispatcher(db *gorm.DB, sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		db:     db,
		sender: sender,
		log:    log,
		queue:  make(chan job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) NotifyReservation(reservationID uint, kind Template) {
	d.enqueue(job{reservationID: reservationID, kind: kind})
}

func (d *Dispatcher) NotifyRecoveryCode(email, name string, code int) {
	d.enqueue(job{recoveryEmail: email, recoveryName: name, recoveryCode: code})
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.queue <- j:
	default:
		d.log.Warn("mail queue full, dropping email")
	}
}

func (d *Dispatcher) worker() {
	for j := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := d.deliver(ctx, j); err != nil {
			d.log.Error("mail delivery failed", zap.Error(err))
		}
		cancel()
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j job) error {
	if j.recoveryEmail != "" {
		subject, html := renderRecoveryCode(j.recoveryName, j.recoveryCode)
		return d.sender.Send(ctx, j.recoveryEmail, j.recoveryName, subject, html)
	}

	var res models.Reservation
	if err := d.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		First(&res, j.reservationID).Error; err != nil {
		return err
	}

	barberName := ""
	if res.Barber != nil {
		barberName = res.Barber.Name
	}

	when := ""
	if res.StartTime != nil {
		when = res.StartTime.Format("2006-01-02 15:04")
	}

	var subject, html string
	switch j.kind {
	case TemplateCancellation:
		subject, html = renderCancellation(res.Client.Name, barberName, when)
	default:
		subject, html = renderConfirmation(res.Client.Name, barberName, when)
	}

	return d.sender.Send(ctx, res.Client.Email, res.Client.Name, subject, html)
}

var _ Notifier = (*Dispatcher)(nil)
