package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingDays(t *testing.T) {
	start := date(2024, 6, 1)
	if got := BookingDays(start, start); got != 1 {
		t.Fatalf("single day booking: got %d days, want 1", got)
	}
	if got := BookingDays(start, date(2024, 6, 7)); got != 7 {
		t.Fatalf("week booking: got %d days, want 7", got)
	}
	if got := BookingDays(start, date(2024, 6, 30)); got != 30 {
		t.Fatalf("month booking: got %d days, want 30", got)
	}
}

func TestCalculateBookingPriceTiers(t *testing.T) {
	start := date(2024, 6, 1)
	cases := []struct {
		name string
		rate float64
		end  time.Time
		want float64
	}{
		{"single day at rate", 100.00, start, 100.00},
		{"six days no discount", 100.00, date(2024, 6, 6), 600.00},
		{"seven days get 10 percent off", 100.00, date(2024, 6, 7), 630.00},
		{"twenty-nine days still 10 percent off", 100.00, date(2024, 6, 29), 2610.00},
		{"thirty days get 20 percent off", 100.00, date(2024, 6, 30), 2400.00},
		{"zero rate", 0, date(2024, 6, 10), 0},
	}
	for _, c := range cases {
		got, err := CalculateBookingPrice(c.rate, start, c.end)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %.2f, want %.2f", c.name, got, c.want)
		}
	}
}

func TestCalculateBookingPriceRounding(t *testing.T) {
	// 3 days at 33.333 = 99.999, rounds half-up to 100.00.
	got, err := CalculateBookingPrice(33.333, date(2024, 6, 1), date(2024, 6, 3))
	if err != nil {
		t.Fatalf("CalculateBookingPrice: %v", err)
	}
	if got != 100.00 {
		t.Fatalf("rounding: got %.4f, want 100.00", got)
	}

	// 7 days at 99.99 = 699.93, minus 10% = 629.937, rounds to 629.94.
	got, err = CalculateBookingPrice(99.99, date(2024, 6, 1), date(2024, 6, 7))
	if err != nil {
		t.Fatalf("CalculateBookingPrice: %v", err)
	}
	if got != 629.94 {
		t.Fatalf("rounding after discount: got %.4f, want 629.94", got)
	}
}

func TestCalculateBookingPriceValidation(t *testing.T) {
	if _, err := CalculateBookingPrice(100, date(2024, 6, 5), date(2024, 6, 4)); err == nil {
		t.Fatalf("expected error for end before start")
	}
	if _, err := CalculateBookingPrice(-1, date(2024, 6, 1), date(2024, 6, 2)); err == nil {
		t.Fatalf("expected error for negative rate")
	}
}
