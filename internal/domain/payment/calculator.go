package payment

import (
	"math"

	"github.com/ricascor080/Back-Barber/internal/httperr"
	"github.com/ricascor080/Back-Barber/internal/models"
)

// Comisión por pago con tarjeta, informativa: se reporta en la cotización
// pero NO se suma al monto almacenado. El monto cobrado es siempre el
// precio del servicio (comportamiento heredado del sistema original,
// pendiente de aclaración con producto).
const cardFeeRate = 0.02

type Quote struct {
	Amount float64 `json:"amount"`
	Fee    float64 `json:"fee"`
}

// ComputeAmount calcula monto y comisión para un método de pago dado el
// precio del servicio.
func ComputeAmount(method string, servicePrice float64) (Quote, error) {
	switch method {
	case models.MethodCash:
		return Quote{Amount: servicePrice, Fee: 0}, nil
	case models.MethodCard:
		return Quote{
			Amount: servicePrice,
			Fee:    roundToCent(servicePrice * cardFeeRate),
		}, nil
	}
	return Quote{}, httperr.ErrBusiness("invalid_payment_method")
}

func roundToCent(v float64) float64 {
	return math.Round(v*100) / 100
}
