package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name          string `json:"name"            validate:"required,max=100"`
	BaseRateCents int64  `json:"base_rate_cents" validate:"required,min=0"`
	MaxOccupancy  int    `json:"max_occupancy"   validate:"required,min=1"`
	Amenities     string `json:"amenities"       validate:"omitempty"`
	Active        *bool  `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomType{
		ID:            uuid.NewString(),
		Name:          c.Name,
		BaseRateCents: c.BaseRateCents,
		MaxOccupancy:  c.MaxOccupancy,
		Amenities:     c.Amenities,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name          string `db:"name"            json:"name"            validate:"omitempty,max=100"`
	BaseRateCents *int64 `db:"base_rate_cents" json:"base_rate_cents" validate:"omitempty,min=0"`
	MaxOccupancy  *int   `db:"max_occupancy"   json:"max_occupancy"   validate:"omitempty,min=1"`
	Amenities     string `db:"amenities"       json:"amenities"       validate:"omitempty"`
	Active        *bool  `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	BaseRateCents int64  `json:"base_rate_cents"`
	MaxOccupancy  int    `json:"max_occupancy"`
	Amenities     string `json:"amenities"`
	Active        bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.BaseRateCents = model.BaseRateCents
	r.MaxOccupancy = model.MaxOccupancy
	r.Amenities = model.Amenities
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
