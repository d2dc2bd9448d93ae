package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuote(t *testing.T) {
	tests := []struct {
		name            string
		baseRateCents   int64
		nights          int64
		discountPercent int64
		wantBase        int64
		wantDiscount    int64
		wantTotal       int64
	}{
		{
			name:          "no discount",
			baseRateCents: 10000,
			nights:        3,
			wantBase:      30000,
			wantDiscount:  0,
			wantTotal:     30000,
		},
		{
			name:            "gold discount",
			baseRateCents:   10000,
			nights:          3,
			discountPercent: 10,
			wantBase:        30000,
			wantDiscount:    3000,
			wantTotal:       27000,
		},
		{
			name:            "discount rounds down on odd amounts",
			baseRateCents:   9999,
			nights:          1,
			discountPercent: 15,
			wantBase:        9999,
			wantDiscount:    1499,
			wantTotal:       8500,
		},
		{
			name:          "single night",
			baseRateCents: 25000,
			nights:        1,
			wantBase:      25000,
			wantDiscount:  0,
			wantTotal:     25000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := buildQuote(tt.baseRateCents, tt.nights, tt.discountPercent)

			assert.Equal(t, tt.wantBase, quote.BaseCents)
			assert.Equal(t, tt.wantDiscount, quote.DiscountCents)
			assert.Equal(t, tt.wantTotal, quote.TotalCents)
		})
	}
}

func TestNightsBetween(t *testing.T) {
	base := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{name: "one night", checkIn: base, checkOut: base.AddDate(0, 0, 1), want: 1},
		{name: "three nights", checkIn: base, checkOut: base.AddDate(0, 0, 3), want: 3},
		{name: "same instant", checkIn: base, checkOut: base, want: 0},
		{name: "same day", checkIn: base, checkOut: base.Add(6 * time.Hour), want: 0},
		{
			// The night of 2025-03-09 in New York is only 23 hours long.
			name:     "one night across spring forward",
			checkIn:  time.Date(2025, 3, 8, 14, 0, 0, 0, newYork),
			checkOut: time.Date(2025, 3, 9, 14, 0, 0, 0, newYork),
			want:     1,
		},
		{
			name:     "week across fall back",
			checkIn:  time.Date(2025, 10, 30, 14, 0, 0, 0, newYork),
			checkOut: time.Date(2025, 11, 6, 14, 0, 0, 0, newYork),
			want:     7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestLateChargeCents(t *testing.T) {
	scheduled := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	feePerHour := int64(2500)

	tests := []struct {
		name       string
		actual     time.Time
		wantHours  int64
		wantCharge int64
	}{
		{name: "early checkout", actual: scheduled.Add(-2 * time.Hour), wantHours: 0, wantCharge: 0},
		{name: "exactly on time", actual: scheduled, wantHours: 0, wantCharge: 0},
		{name: "one minute late bills a full hour", actual: scheduled.Add(time.Minute), wantHours: 1, wantCharge: 2500},
		{name: "exactly one hour late", actual: scheduled.Add(time.Hour), wantHours: 1, wantCharge: 2500},
		{name: "sixty one minutes late bills two hours", actual: scheduled.Add(61 * time.Minute), wantHours: 2, wantCharge: 5000},
		{name: "five hours late", actual: scheduled.Add(5 * time.Hour), wantHours: 5, wantCharge: 12500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, charge := lateChargeCents(scheduled, tt.actual, feePerHour)

			assert.Equal(t, tt.wantHours, hours)
			assert.Equal(t, tt.wantCharge, charge)
		})
	}
}
