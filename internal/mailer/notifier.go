package mailer

// Template identifica el correo transaccional a enviar. El core solo
// señala QUÉ correo corresponde; el transporte es asunto del mailer.
type Template string

const (
	TemplateConfirmation Template = "confirmation"
	TemplateCancellation Template = "cancellation"
)

type Notifier interface {
	// NotifyReservation encola, fire-and-forget, el correo asociado a
	// una reserva. Nunca bloquea ni devuelve error al caller.
	NotifyReservation(reservationID uint, kind Template)

	// NotifyRecoveryCode encola el correo con el código de recuperación
	// de contraseña.
	NotifyRecoveryCode(email, name string, code int)
}

// Noop descarta toda notificación. Útil en tests y cuando no hay
// API key configurada.
type Noop struct{}

func (Noop) NotifyReservation(uint, Template) {}

func (Noop) NotifyRecoveryCode(string, string, int) {}

var _ Notifier = Noop{}
