package model

import "lodge/shared/model"

const (
	TableName  = "room_services"
	EntityName = "room_service"

	FieldID             = "id"
	FieldName           = "name"
	FieldCategory       = "category"
	FieldBasePriceCents = "base_price_cents"
	FieldActive         = "active"
)

// RoomService is a catalog entry for an ancillary service (housekeeping,
// food, laundry). BasePriceCents is the current list price; usage records
// snapshot it at consumption time.
type RoomService struct {
	ID             string `db:"id"`
	Name           string `db:"name"`
	Category       string `db:"category"`
	BasePriceCents int64  `db:"base_price_cents"`
	Active         bool   `db:"active"`
	model.Metadata
}
