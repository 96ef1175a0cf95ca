package receptionistsvc

import (
	"testing"
)

func TestCheckAvailability(t *testing.T) {
	result := CheckAvailability("2026-09-01")
	if result["date"] != "2026-09-01" {
		t.Errorf("date = %v", result["date"])
	}

	slots, ok := result["availableSlots"].([]string)
	if !ok {
		t.Fatalf("availableSlots has wrong type: %T", result["availableSlots"])
	}
	if len(slots) != 6 {
		t.Errorf("expected 6 open slots, got %d: %v", len(slots), slots)
	}
	for _, slot := range slots {
		if slot == "11:00 AM" {
			t.Error("the 11:00 AM slot is always taken and must not be offered")
		}
	}
}

func TestGenerateQuote(t *testing.T) {
	cases := []struct {
		service  string
		quantity float64
		wantRate float64
	}{
		{"standard", 1, 500},
		{"premium", 2, 1000},
		{"enterprise", 1, 2500},
		{"Premium", 1, 1000}, // case-insensitive lookup
		{"something else", 3, 500},
		{"", 1, 500},
	}
	for _, c := range cases {
		quote := GenerateQuote(c.service, c.quantity)
		if quote["rate"] != c.wantRate {
			t.Errorf("%q: rate = %v, want %v", c.service, quote["rate"], c.wantRate)
		}
		if quote["total"] != c.wantRate*c.quantity {
			t.Errorf("%q: total = %v, want %v", c.service, quote["total"], c.wantRate*c.quantity)
		}
		if quote["validFor"] != "30 days" {
			t.Errorf("%q: validFor = %v", c.service, quote["validFor"])
		}
		if quote["service"] != c.service {
			t.Errorf("quote must echo the requested service, got %v", quote["service"])
		}
	}
}
