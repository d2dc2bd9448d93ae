package dto

import (
	"mime/multipart"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomTypeID string                `json:"room_type_id" validate:"required,uuid"`
	Number     string                `json:"number"       validate:"required,max=10"`
	Floor      int                   `json:"floor"        validate:"omitempty,min=0"`
	Status     string                `json:"status"       validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE RESERVED OUT_OF_ORDER"`
	Image      *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomTypeID: c.RoomTypeID,
		Number:     c.Number,
		Floor:      c.Floor,
		Status:     status,
		Image:      imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomTypeID string                `db:"room_type_id" json:"room_type_id"                                                            validate:"omitempty,uuid"`
	Number     string                `db:"number"       json:"number"                                                                  validate:"omitempty,max=10"`
	Floor      *int                  `db:"floor"        json:"floor"                                                                   validate:"omitempty,min=0"`
	Image      *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE RESERVED OUT_OF_ORDER"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"room_type_id"`
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
	Image      string `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.Number = model.Number
	r.Floor = model.Floor
	r.Status = string(model.Status)
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
