package reservation

import "testing"

func TestDayWindowCollides(t *testing.T) {
	cases := []struct {
		name     string
		a        DayWindow
		b        DayWindow
		collides bool
	}{
		{
			name:     "overlap on shared weekday",
			a:        DayWindow{Days: []int{1, 2}, Start: "09:00", End: "13:00"},
			b:        DayWindow{Days: []int{2, 3}, Start: "12:00", End: "18:00"},
			collides: true,
		},
		{
			name:     "identical windows",
			a:        DayWindow{Days: []int{1}, Start: "09:00", End: "13:00"},
			b:        DayWindow{Days: []int{1}, Start: "09:00", End: "13:00"},
			collides: true,
		},
		{
			name:     "contained window",
			a:        DayWindow{Days: []int{5}, Start: "08:00", End: "20:00"},
			b:        DayWindow{Days: []int{5}, Start: "10:00", End: "11:00"},
			collides: true,
		},
		{
			name:     "same hours but disjoint weekdays",
			a:        DayWindow{Days: []int{1, 3}, Start: "09:00", End: "13:00"},
			b:        DayWindow{Days: []int{2, 4}, Start: "09:00", End: "13:00"},
			collides: false,
		},
		// Semiabierto: fin de una == inicio de la otra se permite
		{
			name:     "back to back on shared weekday",
			a:        DayWindow{Days: []int{1}, Start: "09:00", End: "13:00"},
			b:        DayWindow{Days: []int{1}, Start: "13:00", End: "18:00"},
			collides: false,
		},
		{
			name:     "back to back reversed",
			a:        DayWindow{Days: []int{1}, Start: "13:00", End: "18:00"},
			b:        DayWindow{Days: []int{1}, Start: "09:00", End: "13:00"},
			collides: false,
		},
		{
			name:     "disjoint hours on shared weekday",
			a:        DayWindow{Days: []int{1}, Start: "09:00", End: "11:00"},
			b:        DayWindow{Days: []int{1}, Start: "14:00", End: "18:00"},
			collides: false,
		},
		{
			name:     "malformed hours never collide",
			a:        DayWindow{Days: []int{1}, Start: "morning", End: "13:00"},
			b:        DayWindow{Days: []int{1}, Start: "09:00", End: "13:00"},
			collides: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Collides(tc.b); got != tc.collides {
				t.Errorf("Collides = %v, want %v", got, tc.collides)
			}
			// La colisión es simétrica
			if got := tc.b.Collides(tc.a); got != tc.collides {
				t.Errorf("Collides (reversed) = %v, want %v", got, tc.collides)
			}
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	if m, err := MinutesOfDay("09:30"); err != nil || m != 570 {
		t.Errorf("expected 570, got %d, %v", m, err)
	}
	if m, err := MinutesOfDay("00:00"); err != nil || m != 0 {
		t.Errorf("expected 0, got %d, %v", m, err)
	}
	if _, err := MinutesOfDay("9h30"); err == nil {
		t.Error("expected error for malformed time")
	}
}
