package model

import "lodge/shared/model"

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	RoomTypeFieldID            = "id"
	RoomTypeFieldName          = "name"
	RoomTypeFieldBaseRateCents = "base_rate_cents"
	RoomTypeFieldMaxOccupancy  = "max_occupancy"
	RoomTypeFieldAmenities     = "amenities"
	RoomTypeFieldActive        = "active"
)

// RoomType is referenced, never owned, by rooms. The nightly base rate is in
// cents.
type RoomType struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	BaseRateCents int64  `db:"base_rate_cents"`
	MaxOccupancy  int    `db:"max_occupancy"`
	Amenities     string `db:"amenities"`
	Active        bool   `db:"active"`
	model.Metadata
}
