package model

import (
	"time"

	"lodge/shared/dto"
	"lodge/shared/model"
)

const (
	TableName  = "blacklist_entries"
	EntityName = "blacklist_entry"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldReason     = "reason"
	FieldIssuedBy   = "issued_by"
	FieldIssuedAt   = "issued_at"
	FieldExpiresAt  = "expires_at"
	FieldActive     = "active"
)

// BlacklistEntry bars a customer from new bookings and from check-in. A nil
// ExpiresAt means the bar is permanent; a customer may accumulate multiple
// historical entries.
type BlacklistEntry struct {
	ID         string     `db:"id"`
	CustomerID string     `db:"customer_id"`
	Reason     string     `db:"reason"`
	IssuedBy   string     `db:"issued_by"`
	IssuedAt   time.Time  `db:"issued_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	Active     bool       `db:"active"`
	model.Metadata
}

// ActiveEntryFilter matches entries that currently bar the customer: active,
// and either permanent or not yet expired at the given instant.
func ActiveEntryFilter(customerID string, now time.Time) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    FieldCustomerID,
				Operator: dto.FilterOperatorEq,
				Value:    customerID,
				Table:    TableName,
			},
			dto.Filter{
				Field:    FieldActive,
				Operator: dto.FilterOperatorEq,
				Value:    true,
				Table:    TableName,
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						Field:    FieldExpiresAt,
						Operator: dto.FilterIsNull,
						Table:    TableName,
					},
					dto.Filter{
						Field:    FieldExpiresAt,
						Operator: dto.FilterOperatorGreater,
						Value:    now,
						Table:    TableName,
					},
				},
			},
		},
	}
}
