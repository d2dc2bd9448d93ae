package dto

import (
	"time"

	"lodge/internal/domains/catalog/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomServiceRequest struct {
	Name           string `json:"name"             validate:"required,max=100"`
	Category       string `json:"category"         validate:"required,max=50"`
	BasePriceCents int64  `json:"base_price_cents" validate:"min=0"`
	Active         *bool  `json:"active"           validate:"omitempty"`
}

func (c *CreateRoomServiceRequest) ToModel(user string) model.RoomService {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RoomService{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Category:       c.Category,
		BasePriceCents: c.BasePriceCents,
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomServiceRequest struct {
	Name           string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Category       string `db:"category"         json:"category"         validate:"omitempty,max=50"`
	BasePriceCents *int64 `db:"base_price_cents" json:"base_price_cents" validate:"omitempty,min=0"`
	Active         *bool  `db:"active"           json:"active"           validate:"omitempty"`
}

type RoomServiceResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	BasePriceCents int64  `json:"base_price_cents"`
	Active         bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomServiceResponse) FromModel(model model.RoomService) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.BasePriceCents = model.BasePriceCents
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomServicesResponse struct {
	Services  []RoomServiceResponse `json:"services"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetRoomServicesResponse) FromModels(models []model.RoomService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]RoomServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

type AddUsageRequest struct {
	BookingID     string `json:"booking_id"    validate:"required,uuid"`
	ServiceID     string `json:"service_id"    validate:"required,uuid"`
	Quantity      int    `json:"quantity"      validate:"required,min=1"`
	Complimentary bool   `json:"complimentary"`
}

func (a *AddUsageRequest) ToModel(user, customerID string, unitPriceCents int64, now time.Time) model.ServiceUsage {
	usage := model.ServiceUsage{
		ID:             uuid.NewString(),
		BookingID:      a.BookingID,
		CustomerID:     customerID,
		ServiceID:      a.ServiceID,
		Quantity:       a.Quantity,
		UnitPriceCents: unitPriceCents,
		Complimentary:  a.Complimentary,
		UsedAt:         now,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
	usage.TotalCostCents = usage.Cost()

	return usage
}

type SetComplimentaryRequest struct {
	Complimentary bool `json:"complimentary"`
}

type ServiceUsageResponse struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	CustomerID     string `json:"customer_id"`
	ServiceID      string `json:"service_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCostCents int64  `json:"total_cost_cents"`
	Complimentary  bool   `json:"complimentary"`
	UsedAt         string `json:"used_at"`
	gDto.Metadata
}

func (r *ServiceUsageResponse) FromModel(model model.ServiceUsage) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.ServiceID = model.ServiceID
	r.Quantity = model.Quantity
	r.UnitPriceCents = model.UnitPriceCents
	r.TotalCostCents = model.TotalCostCents
	r.Complimentary = model.Complimentary
	r.UsedAt = timezone.Format(model.UsedAt, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetServiceUsagesResponse struct {
	Usages    []ServiceUsageResponse `json:"usages"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetServiceUsagesResponse) FromModels(models []model.ServiceUsage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Usages = make([]ServiceUsageResponse, len(models))
	for i, mod := range models {
		r.Usages[i].FromModel(mod)
	}
}
