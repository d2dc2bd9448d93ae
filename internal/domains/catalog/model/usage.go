package model

import (
	"time"

	"lodge/shared/model"
)

const (
	UsageTableName  = "service_usages"
	UsageEntityName = "service_usage"

	UsageFieldID             = "id"
	UsageFieldBookingID      = "booking_id"
	UsageFieldCustomerID     = "customer_id"
	UsageFieldServiceID      = "service_id"
	UsageFieldQuantity       = "quantity"
	UsageFieldUnitPriceCents = "unit_price_cents"
	UsageFieldTotalCostCents = "total_cost_cents"
	UsageFieldComplimentary  = "complimentary"
	UsageFieldUsedAt         = "used_at"
)

// ServiceUsage is one consumption event against a booking. UnitPriceCents is
// snapshotted from the catalog at usage time; later price changes never
// rewrite history. Complimentary is a distinct flag so reporting can tell
// "given away" apart from "priced at zero".
type ServiceUsage struct {
	ID             string    `db:"id"`
	BookingID      string    `db:"booking_id"`
	CustomerID     string    `db:"customer_id"`
	ServiceID      string    `db:"service_id"`
	Quantity       int       `db:"quantity"`
	UnitPriceCents int64     `db:"unit_price_cents"`
	TotalCostCents int64     `db:"total_cost_cents"`
	Complimentary  bool      `db:"complimentary"`
	UsedAt         time.Time `db:"used_at"`
	model.Metadata
}

// Cost returns the charge for the usage: zero when complimentary, quantity
// times the snapshotted unit price otherwise.
func (u *ServiceUsage) Cost() int64 {
	if u.Complimentary {
		return 0
	}

	return int64(u.Quantity) * u.UnitPriceCents
}
