package reservation

import "time"

// Slot es el intervalo semiabierto [Start, Start+duración) solicitado
// para una reserva. Reservas espalda con espalda (fin de una == inicio
// de la siguiente) no se solapan.
type Slot struct {
	Start       time.Time
	DurationMin int
}

func (s Slot) End() time.Time {
	return s.Start.Add(time.Duration(s.DurationMin) * time.Minute)
}

func (s Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End().After(start)
}

type OccupiedSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
