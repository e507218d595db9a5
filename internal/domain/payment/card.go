package payment

import (
	"time"

	"github.com/ricascor080/Back-Barber/internal/httperr"
)

// ValidateCardExpiration valida mes y año de expiración de una tarjeta.
// Devuelve la lista completa de campos inválidos (vacía cuando todo está
// bien), nunca falla de otra forma.
//
// Limitación conocida: un mes ya pasado del año en curso se acepta; solo
// se compara el año contra el año calendario actual.
func ValidateCardExpiration(month, year int, now time.Time) []httperr.FieldError {
	var errs []httperr.FieldError

	if month < 1 || month > 12 {
		errs = append(errs, httperr.FieldError{
			Field:   "expiration_month",
			Message: "El mes debe estar entre 1 y 12.",
		})
	}

	if year < now.Year() {
		errs = append(errs, httperr.FieldError{
			Field:   "expiration_year",
			Message: "El año no puede ser menor al actual.",
		})
	}

	return errs
}
