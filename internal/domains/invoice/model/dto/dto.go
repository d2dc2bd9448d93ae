package dto

import (
	"time"

	"lodge/internal/domains/invoice/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
)

type GenerateInvoiceRequest struct {
	BookingID  string `json:"booking_id"   validate:"required,uuid"`
	TaxRateBps *int64 `json:"tax_rate_bps" validate:"omitempty,min=0,max=10000"`
}

type UpdatePaymentRequest struct {
	Status        string `json:"status"         validate:"required,oneof=PAID CANCELLED"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
	PaymentDate   string `json:"payment_date"   validate:"omitempty"`
}

// ParsePaymentDate returns the settlement instant, nil when the caller left
// it to the clock.
func (u *UpdatePaymentRequest) ParsePaymentDate() (*time.Time, error) {
	if u.PaymentDate == constant.Empty {
		return nil, nil
	}

	paymentDate, err := timezone.Parse(constant.DateFormat, u.PaymentDate)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	return &paymentDate, nil
}

type LineItemResponse struct {
	ID             string `json:"id"`
	ItemType       string `json:"item_type"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

func (r *LineItemResponse) FromModel(model model.InvoiceLineItem) {
	r.ID = model.ID
	r.ItemType = string(model.ItemType)
	r.Description = model.Description
	r.Quantity = model.Quantity
	r.UnitPriceCents = model.UnitPriceCents
	r.LineTotalCents = model.LineTotalCents
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	BookingID     string             `json:"booking_id"`
	CustomerID    string             `json:"customer_id"`
	InvoiceDate   string             `json:"invoice_date"`
	DueDate       string             `json:"due_date"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TaxCents      int64              `json:"tax_cents"`
	DiscountCents int64              `json:"discount_cents"`
	TotalCents    int64              `json:"total_cents"`
	PaymentStatus string             `json:"payment_status"`
	PaymentDate   string             `json:"payment_date,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	IssuedBy      string             `json:"issued_by"`
	LineItems     []LineItemResponse `json:"line_items,omitempty"`
	gDto.Metadata
}

// FromModel renders the invoice with its effective status: a PENDING invoice
// past its due date surfaces as OVERDUE without being rewritten in storage.
func (r *InvoiceResponse) FromModel(model model.Invoice, now time.Time) {
	r.ID = model.ID
	r.InvoiceNumber = model.InvoiceNumber
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.InvoiceDate = timezone.Format(model.InvoiceDate, constant.DateFormat)
	r.DueDate = timezone.Format(model.DueDate, constant.DateFormat)
	r.SubtotalCents = model.SubtotalCents
	r.TaxCents = model.TaxCents
	r.DiscountCents = model.DiscountCents
	r.TotalCents = model.TotalCents
	r.PaymentStatus = string(model.EffectiveStatus(now))
	r.PaymentMethod = model.PaymentMethod
	r.IssuedBy = model.IssuedBy

	if model.PaymentDate != nil {
		r.PaymentDate = timezone.Format(*model.PaymentDate, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *InvoiceResponse) WithLineItems(items []model.InvoiceLineItem) {
	r.LineItems = make([]LineItemResponse, len(items))
	for i, item := range items {
		r.LineItems[i].FromModel(item)
	}
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int, now time.Time) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod, now)
	}
}
