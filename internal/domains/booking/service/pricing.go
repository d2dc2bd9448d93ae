package service

import (
	"math"
	"time"

	"lodge/shared/constant"
	"lodge/shared/timezone"
)

// Quote is the price breakdown for a stay, all amounts in cents.
type Quote struct {
	BaseCents     int64
	DiscountCents int64
	TotalCents    int64
}

// buildQuote prices a stay: nightly rate times nights, minus the VIP
// discount percentage when one applies. Pass zero discountPercent for
// non-members.
func buildQuote(baseRateCents, nights, discountPercent int64) Quote {
	base := baseRateCents * nights
	discount := base * discountPercent / constant.PercentsDivisor

	return Quote{
		BaseCents:     base,
		DiscountCents: discount,
		TotalCents:    base - discount,
	}
}

// nightsBetween returns the calendar-night length of [checkIn, checkOut).
func nightsBetween(checkIn, checkOut time.Time) int64 {
	return timezone.DaysBetween(checkIn, checkOut)
}

// lateChargeCents computes the late-checkout penalty. Any overrun, however
// small, bills at least one full hour; partial hours round up.
func lateChargeCents(scheduled, actual time.Time, feePerHourCents int64) (hoursLate, chargeCents int64) {
	if !actual.After(scheduled) {
		return 0, 0
	}

	hoursLate = int64(math.Ceil(actual.Sub(scheduled).Hours()))
	if hoursLate < 1 {
		hoursLate = 1
	}

	return hoursLate, hoursLate * feePerHourCents
}
