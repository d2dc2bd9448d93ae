package dto

import (
	"time"

	"lodge/internal/domains/vip/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type PromoteCustomerRequest struct {
	CustomerID      string `json:"customer_id"      validate:"required,uuid"`
	Level           string `json:"level"            validate:"required,oneof=GOLD PLATINUM DIAMOND"`
	DiscountPercent *int64 `json:"discount_percent" validate:"omitempty,min=0,max=100"`
	Benefits        string `json:"benefits"         validate:"omitempty,max=500"`
	EndDate         string `json:"end_date"         validate:"omitempty"`
}

func (p *PromoteCustomerRequest) ParseEndDate() (*time.Time, error) {
	if p.EndDate == constant.Empty {
		return nil, nil
	}

	endDate, err := timezone.Parse(constant.DateFormat, p.EndDate)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	return &endDate, nil
}

func (p *PromoteCustomerRequest) ToModel(user string, endDate *time.Time, now time.Time) model.VIPMembership {
	level := model.Level(p.Level)

	discount := level.DefaultDiscountPercent()
	if p.DiscountPercent != nil {
		discount = *p.DiscountPercent
	}

	benefits := p.Benefits
	if benefits == constant.Empty {
		benefits = level.DefaultBenefits()
	}

	return model.VIPMembership{
		ID:              uuid.NewString(),
		CustomerID:      p.CustomerID,
		Level:           level,
		DiscountPercent: discount,
		Benefits:        benefits,
		StartDate:       now,
		EndDate:         endDate,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type VIPMembershipResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Level           string `json:"level"`
	DiscountPercent int64  `json:"discount_percent"`
	Benefits        string `json:"benefits"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *VIPMembershipResponse) FromModel(model model.VIPMembership) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.Level = string(model.Level)
	r.DiscountPercent = model.DiscountPercent
	r.Benefits = model.Benefits
	r.StartDate = timezone.Format(model.StartDate, constant.DateFormat)
	r.Active = model.Active

	if model.EndDate != nil {
		r.EndDate = timezone.Format(*model.EndDate, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetVIPMembershipsResponse struct {
	Memberships []VIPMembershipResponse `json:"memberships"`
	TotalPage   int                     `json:"total_page"`
	TotalData   int                     `json:"total_data"`
}

func (r *GetVIPMembershipsResponse) FromModels(models []model.VIPMembership, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Memberships = make([]VIPMembershipResponse, len(models))
	for i, mod := range models {
		r.Memberships[i].FromModel(mod)
	}
}

type EligibilityResponse struct {
	CustomerID      string `json:"customer_id"`
	TotalSpentCents int64  `json:"total_spent_cents"`
	EligibleLevel   string `json:"eligible_level,omitempty"`
	CurrentLevel    string `json:"current_level,omitempty"`
}

type RenewalSweepResponse struct {
	Retired int `json:"retired"`
}
