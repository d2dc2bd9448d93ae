package model

import (
	"time"

	"lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                   = "id"
	FieldCustomerID           = "customer_id"
	FieldRoomID               = "room_id"
	FieldCheckInDate          = "check_in_date"
	FieldCheckOutDate         = "check_out_date"
	FieldStatus               = "status"
	FieldTotalAmountCents     = "total_amount_cents"
	FieldDiscountAppliedCents = "discount_applied_cents"
	FieldExtraChargesCents    = "extra_charges_cents"
	FieldActualCheckIn        = "actual_check_in"
	FieldActualCheckOut       = "actual_check_out"
	FieldSpecialRequests      = "special_requests"
)

// Booking is the reservation record. Scheduled dates are half-open
// [CheckInDate, CheckOutDate); monetary fields are cents snapshotted at
// creation and only ever adjusted through lifecycle transitions.
type Booking struct {
	ID                   string     `db:"id"`
	CustomerID           string     `db:"customer_id"`
	RoomID               string     `db:"room_id"`
	CheckInDate          time.Time  `db:"check_in_date"`
	CheckOutDate         time.Time  `db:"check_out_date"`
	Status               Status     `db:"status"`
	TotalAmountCents     int64      `db:"total_amount_cents"`
	DiscountAppliedCents int64      `db:"discount_applied_cents"`
	ExtraChargesCents    int64      `db:"extra_charges_cents"`
	ActualCheckIn        *time.Time `db:"actual_check_in"`
	ActualCheckOut       *time.Time `db:"actual_check_out"`
	SpecialRequests      string     `db:"special_requests"`
	model.Metadata
}

// Nights returns the calendar-night stay length of the scheduled range.
func (b *Booking) Nights() int64 {
	return timezone.DaysBetween(b.CheckInDate, b.CheckOutDate)
}
