package service

import (
	"fmt"
	"sync"

	bookingModel "lodge/internal/domains/booking/model"
	catalogModel "lodge/internal/domains/catalog/model"
	"lodge/internal/domains/invoice/model"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

// keyedMutex serializes invoice generation and settlement per booking or
// invoice. The uniqueness check and the insert must run as one atomic unit,
// otherwise two clerks can both pass the one-invoice check.
type keyedMutex struct {
	locks sync.Map
}

func (k *keyedMutex) lock(key string) func() {
	value, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu, _ := value.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}

func metadataFor(user string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

// composeLineItems itemizes the stay. The room charge is reconstructed from
// the booking by backing the extra charges and discount out of its total, so
// the nightly rate the guest was quoted at booking time is what appears on
// the bill. Complimentary usages are listed at zero so the guest sees what
// was given away.
func composeLineItems(
	invoiceID string,
	booking bookingModel.Booking,
	usages []catalogModel.ServiceUsage,
	serviceNames map[string]string,
	taxRateBps int64,
	user string,
) []model.InvoiceLineItem {
	items := make([]model.InvoiceLineItem, 0, len(usages)+4)

	nights := booking.Nights()
	roomCents := booking.TotalAmountCents - booking.ExtraChargesCents + booking.DiscountAppliedCents

	nightlyRate := roomCents
	if nights > 0 {
		nightlyRate = roomCents / nights
	}

	items = append(items, model.InvoiceLineItem{
		ID:             uuid.NewString(),
		InvoiceID:      invoiceID,
		ItemType:       model.LineItemRoom,
		Description:    fmt.Sprintf("Room charge (%d nights)", nights),
		Quantity:       int(nights),
		UnitPriceCents: nightlyRate,
		LineTotalCents: roomCents,
		Metadata:       metadataFor(user),
	})

	for _, usage := range usages {
		description := serviceNames[usage.ServiceID]
		if description == constant.Empty {
			description = usage.ServiceID
		}

		if usage.Complimentary {
			description += " (complimentary)"
		}

		items = append(items, model.InvoiceLineItem{
			ID:             uuid.NewString(),
			InvoiceID:      invoiceID,
			ItemType:       model.LineItemService,
			Description:    description,
			Quantity:       usage.Quantity,
			UnitPriceCents: usage.UnitPriceCents,
			LineTotalCents: usage.Cost(),
			Metadata:       metadataFor(user),
		})
	}

	if booking.ExtraChargesCents > 0 {
		items = append(items, model.InvoiceLineItem{
			ID:             uuid.NewString(),
			InvoiceID:      invoiceID,
			ItemType:       model.LineItemExtraCharge,
			Description:    "Late checkout and incidental charges",
			Quantity:       1,
			UnitPriceCents: booking.ExtraChargesCents,
			LineTotalCents: booking.ExtraChargesCents,
			Metadata:       metadataFor(user),
		})
	}

	subtotal := chargeableSubtotal(items)

	tax := roundHalfUpBps(subtotal, taxRateBps)
	if tax > 0 {
		items = append(items, model.InvoiceLineItem{
			ID:             uuid.NewString(),
			InvoiceID:      invoiceID,
			ItemType:       model.LineItemTax,
			Description:    fmt.Sprintf("Tax (%.2f%%)", float64(taxRateBps)/float64(constant.PercentsDivisor)),
			Quantity:       1,
			UnitPriceCents: tax,
			LineTotalCents: tax,
			Metadata:       metadataFor(user),
		})
	}

	if booking.DiscountAppliedCents > 0 {
		items = append(items, model.InvoiceLineItem{
			ID:             uuid.NewString(),
			InvoiceID:      invoiceID,
			ItemType:       model.LineItemDiscount,
			Description:    "Membership discount",
			Quantity:       1,
			UnitPriceCents: booking.DiscountAppliedCents,
			LineTotalCents: -booking.DiscountAppliedCents,
			Metadata:       metadataFor(user),
		})
	}

	return items
}

// chargeableSubtotal sums the lines the tax applies to: room, services, and
// extra charges. Tax and discount lines are excluded.
func chargeableSubtotal(items []model.InvoiceLineItem) int64 {
	var subtotal int64

	for _, item := range items {
		switch item.ItemType {
		case model.LineItemRoom, model.LineItemService, model.LineItemExtraCharge:
			subtotal += item.LineTotalCents
		}
	}

	return subtotal
}

// totalsFromItems derives the invoice header amounts from the line items so
// the identity total = subtotal + tax - discount holds by construction.
func totalsFromItems(items []model.InvoiceLineItem) (subtotal, tax, discount, total int64) {
	for _, item := range items {
		switch item.ItemType {
		case model.LineItemRoom, model.LineItemService, model.LineItemExtraCharge:
			subtotal += item.LineTotalCents
		case model.LineItemTax:
			tax += item.LineTotalCents
		case model.LineItemDiscount:
			discount += -item.LineTotalCents
		}
	}

	return subtotal, tax, discount, subtotal + tax - discount
}

// roundHalfUpBps applies a basis-point rate with half-up rounding.
func roundHalfUpBps(amountCents, rateBps int64) int64 {
	return (amountCents*rateBps + constant.BpsDenominator/2) / constant.BpsDenominator
}
