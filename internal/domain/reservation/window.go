package reservation

import "time"

// DayWindow es una franja recurrente de agenda: días de la semana
// (0=domingo..6=sábado) más horas "HH:MM" de inicio y fin.
type DayWindow struct {
	Days  []int
	Start string
	End   string
}

func (w DayWindow) sharesDay(other DayWindow) bool {
	for _, a := range w.Days {
		for _, b := range other.Days {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Collides indica si dos franjas del mismo barbero chocan: comparten
// algún día y sus intervalos semiabiertos [inicio, fin) se solapan.
// Espalda con espalda (fin de una == inicio de la otra) no choca.
// Horas mal formadas nunca colisionan; el formato se valida antes.
func (w DayWindow) Collides(other DayWindow) bool {
	if !w.sharesDay(other) {
		return false
	}

	aStart, err := MinutesOfDay(w.Start)
	if err != nil {
		return false
	}
	aEnd, err := MinutesOfDay(w.End)
	if err != nil {
		return false
	}
	bStart, err := MinutesOfDay(other.Start)
	if err != nil {
		return false
	}
	bEnd, err := MinutesOfDay(other.End)
	if err != nil {
		return false
	}

	return aStart < bEnd && aEnd > bStart
}

// MinutesOfDay convierte "HH:MM" a minutos desde medianoche.
func MinutesOfDay(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
