package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID               = "id"
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldIDNumber         = "id_number"
	FieldTotalSpentCents  = "total_spent_cents"
	FieldLoyaltyPoints    = "loyalty_points"
	FieldRegistrationDate = "registration_date"
	FieldActive           = "active"
)

// Customer is a hotel guest. Guests are never deleted, only deactivated, so
// that booking and invoice history stays resolvable.
type Customer struct {
	ID               string    `db:"id"`
	FullName         string    `db:"full_name"`
	Email            string    `db:"email"`
	Phone            string    `db:"phone"`
	Address          string    `db:"address"`
	IDNumber         string    `db:"id_number"`
	TotalSpentCents  int64     `db:"total_spent_cents"`
	LoyaltyPoints    int       `db:"loyalty_points"`
	RegistrationDate time.Time `db:"registration_date"`
	Active           bool      `db:"active"`
	model.Metadata
}
