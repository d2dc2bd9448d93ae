package dto

import (
	"lodge/internal/domains/customer/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	Address  string `json:"address"   validate:"omitempty,max=255"`
	IDNumber string `json:"id_number" validate:"omitempty,max=50"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:               uuid.NewString(),
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		IDNumber:         c.IDNumber,
		RegistrationDate: timezone.Now(),
		Active:           true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=200"`
	Email    string `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	Address  string `db:"address"   json:"address"   validate:"omitempty,max=255"`
	IDNumber string `db:"id_number" json:"id_number" validate:"omitempty,max=50"`
}

type CustomerResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	IDNumber         string `json:"id_number"`
	TotalSpentCents  int64  `json:"total_spent_cents"`
	LoyaltyPoints    int    `json:"loyalty_points"`
	RegistrationDate string `json:"registration_date"`
	Active           bool   `json:"active"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.IDNumber = model.IDNumber
	r.TotalSpentCents = model.TotalSpentCents
	r.LoyaltyPoints = model.LoyaltyPoints
	r.RegistrationDate = timezone.Format(model.RegistrationDate, constant.DateFormat)
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
