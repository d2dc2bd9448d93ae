package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID             = "id"
	FieldInvoiceNumber  = "invoice_number"
	FieldBookingID      = "booking_id"
	FieldCustomerID     = "customer_id"
	FieldInvoiceDate    = "invoice_date"
	FieldDueDate        = "due_date"
	FieldSubtotalCents  = "subtotal_cents"
	FieldTaxCents       = "tax_cents"
	FieldDiscountCents  = "discount_cents"
	FieldTotalCents     = "total_cents"
	FieldPaymentStatus  = "payment_status"
	FieldPaymentDate    = "payment_date"
	FieldPaymentMethod  = "payment_method"
	FieldIssuedBy       = "issued_by"
)

// PaymentStatus is the invoice payment state. OVERDUE is never stored; it is
// derived from PENDING invoices whose due date has passed.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentOverdue   PaymentStatus = "OVERDUE"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCancelled:
		return true
	}

	return false
}

// Invoice is the immutable bill for one completed stay. All monetary fields
// are cents and derived from the line items, never hand-set; the invariant
// TotalCents == SubtotalCents + TaxCents - DiscountCents always holds.
type Invoice struct {
	ID            string        `db:"id"`
	InvoiceNumber string        `db:"invoice_number"`
	BookingID     string        `db:"booking_id"`
	CustomerID    string        `db:"customer_id"`
	InvoiceDate   time.Time     `db:"invoice_date"`
	DueDate       time.Time     `db:"due_date"`
	SubtotalCents int64         `db:"subtotal_cents"`
	TaxCents      int64         `db:"tax_cents"`
	DiscountCents int64         `db:"discount_cents"`
	TotalCents    int64         `db:"total_cents"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentDate   *time.Time    `db:"payment_date"`
	PaymentMethod string        `db:"payment_method"`
	IssuedBy      string        `db:"issued_by"`
	model.Metadata
}

// Overdue reports whether the invoice should surface as OVERDUE at the given
// instant: still PENDING with the due date behind us.
func (i *Invoice) Overdue(now time.Time) bool {
	return i.PaymentStatus == PaymentPending && i.DueDate.Before(now)
}

// EffectiveStatus is the status a caller should display, with OVERDUE derived
// rather than mutated into storage.
func (i *Invoice) EffectiveStatus(now time.Time) PaymentStatus {
	if i.Overdue(now) {
		return PaymentOverdue
	}

	return i.PaymentStatus
}
