package payment

import (
	"testing"
	"time"
)

func TestValidateCardExpiration(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		month  int
		year   int
		fields []string
	}{
		{"valid current year", 12, 2026, nil},
		{"valid future year", 1, 2030, nil},
		{"month too low", 0, 2027, []string{"expiration_month"}},
		{"month too high", 13, 2027, []string{"expiration_month"}},
		{"year in the past", 6, 2025, []string{"expiration_year"}},
		{"both invalid", 0, 2020, []string{"expiration_month", "expiration_year"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateCardExpiration(tc.month, tc.year, now)
			if len(errs) != len(tc.fields) {
				t.Fatalf("expected %d field errors, got %d: %v", len(tc.fields), len(errs), errs)
			}
			for i, f := range tc.fields {
				if errs[i].Field != f {
					t.Errorf("expected field %q at position %d, got %q", f, i, errs[i].Field)
				}
			}
		})
	}
}

// Un mes ya pasado del año en curso se acepta: solo se compara el año.
func TestValidateCardExpirationPastMonthCurrentYear(t *testing.T) {
	now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if errs := ValidateCardExpiration(1, 2026, now); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
