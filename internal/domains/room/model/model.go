package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldImage      = "image"
)

// Status is the room's current housekeeping snapshot. It is a fast-path hint
// for the front desk; authoritative availability is always computed from the
// booking history, never from this flag.
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOccupied    Status = "OCCUPIED"
	StatusMaintenance Status = "MAINTENANCE"
	StatusReserved    Status = "RESERVED"
	StatusOutOfOrder  Status = "OUT_OF_ORDER"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved, StatusOutOfOrder:
		return true
	}

	return false
}

type Room struct {
	ID         string `db:"id"`
	RoomTypeID string `db:"room_type_id"`
	Number     string `db:"number"`
	Floor      int    `db:"floor"`
	Status     Status `db:"status"`
	Image      string `db:"image"`
	model.Metadata
}
