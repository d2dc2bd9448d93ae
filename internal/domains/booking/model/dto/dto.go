package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID      string `json:"customer_id"      validate:"required"`
	RoomID          string `json:"room_id"          validate:"required"`
	CheckInDate     string `json:"check_in_date"    validate:"required"`
	CheckOutDate    string `json:"check_out_date"   validate:"required"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
	Status          string `json:"status"           validate:"omitempty,oneof=PENDING CONFIRMED"`
}

// ParseDates returns the scheduled range. Dates are RFC3339 timestamps in
// the property's timezone.
func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateFormat, c.CheckOutDate)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	status := model.StatusConfirmed
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Booking{
		ID:              uuid.NewString(),
		CustomerID:      c.CustomerID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Status:          status,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CheckOutRequest struct {
	// ActualCheckOut defaults to the current time when omitted.
	ActualCheckOut string `json:"actual_check_out" validate:"omitempty"`
}

func (c *CheckOutRequest) ParseActualCheckOut(now time.Time) (time.Time, error) {
	if c.ActualCheckOut == "" {
		return now, nil
	}

	return timezone.Parse(constant.DateFormat, c.ActualCheckOut)
}

type BookingResponse struct {
	ID                   string `json:"id"`
	CustomerID           string `json:"customer_id"`
	RoomID               string `json:"room_id"`
	CheckInDate          string `json:"check_in_date"`
	CheckOutDate         string `json:"check_out_date"`
	Status               string `json:"status"`
	Nights               int64  `json:"nights"`
	TotalAmountCents     int64  `json:"total_amount_cents"`
	DiscountAppliedCents int64  `json:"discount_applied_cents"`
	ExtraChargesCents    int64  `json:"extra_charges_cents"`
	ActualCheckIn        string `json:"actual_check_in,omitempty"`
	ActualCheckOut       string `json:"actual_check_out,omitempty"`
	SpecialRequests      string `json:"special_requests,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckInDate = timezone.Format(model.CheckInDate, constant.DateFormat)
	r.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateFormat)
	r.Status = string(model.Status)
	r.Nights = model.Nights()
	r.TotalAmountCents = model.TotalAmountCents
	r.DiscountAppliedCents = model.DiscountAppliedCents
	r.ExtraChargesCents = model.ExtraChargesCents
	r.SpecialRequests = model.SpecialRequests

	if model.ActualCheckIn != nil {
		r.ActualCheckIn = timezone.Format(*model.ActualCheckIn, constant.DateFormat)
	}

	if model.ActualCheckOut != nil {
		r.ActualCheckOut = timezone.Format(*model.ActualCheckOut, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}
