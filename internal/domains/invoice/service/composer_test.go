package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "lodge/internal/domains/booking/model"
	catalogModel "lodge/internal/domains/catalog/model"
	"lodge/internal/domains/invoice/model"
)

func testBooking(totalCents, extrasCents, discountCents int64) bookingModel.Booking {
	checkIn := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	return bookingModel.Booking{
		ID:                   "booking-1",
		CustomerID:           "customer-1",
		RoomID:               "room-1",
		CheckInDate:          checkIn,
		CheckOutDate:         checkIn.AddDate(0, 0, 2),
		Status:               bookingModel.StatusCheckedOut,
		TotalAmountCents:     totalCents,
		DiscountAppliedCents: discountCents,
		ExtraChargesCents:    extrasCents,
	}
}

func itemsByType(items []model.InvoiceLineItem) map[model.LineItemType][]model.InvoiceLineItem {
	grouped := make(map[model.LineItemType][]model.InvoiceLineItem)
	for _, item := range items {
		grouped[item.ItemType] = append(grouped[item.ItemType], item)
	}

	return grouped
}

func TestComposeLineItems(t *testing.T) {
	t.Run("room-only stay", func(t *testing.T) {
		booking := testBooking(20000, 0, 0)

		items := composeLineItems("invoice-1", booking, nil, nil, 1000, "test-user-id")
		grouped := itemsByType(items)

		assert.Len(t, items, 2)
		assert.Len(t, grouped[model.LineItemRoom], 1)
		assert.Equal(t, int64(10000), grouped[model.LineItemRoom][0].UnitPriceCents)
		assert.Equal(t, int64(20000), grouped[model.LineItemRoom][0].LineTotalCents)
		assert.Equal(t, int64(2000), grouped[model.LineItemTax][0].LineTotalCents)

		subtotal, tax, discount, total := totalsFromItems(items)
		assert.Equal(t, int64(20000), subtotal)
		assert.Equal(t, int64(2000), tax)
		assert.Equal(t, int64(0), discount)
		assert.Equal(t, int64(22000), total)
	})

	t.Run("discount backed out of the room charge", func(t *testing.T) {
		// Guest was quoted 20000 for the room, got a 2000 discount, so the
		// booking total carries 18000. The bill must still show the room at
		// its quoted price with the discount as its own line.
		booking := testBooking(18000, 0, 2000)

		items := composeLineItems("invoice-1", booking, nil, nil, 1000, "test-user-id")
		grouped := itemsByType(items)

		assert.Equal(t, int64(20000), grouped[model.LineItemRoom][0].LineTotalCents)
		assert.Len(t, grouped[model.LineItemDiscount], 1)
		assert.Equal(t, int64(-2000), grouped[model.LineItemDiscount][0].LineTotalCents)

		subtotal, tax, discount, total := totalsFromItems(items)
		assert.Equal(t, int64(20000), subtotal)
		assert.Equal(t, int64(2000), tax)
		assert.Equal(t, int64(2000), discount)
		assert.Equal(t, subtotal+tax-discount, total)
	})

	t.Run("service usages are itemized", func(t *testing.T) {
		booking := testBooking(20000, 0, 0)
		usages := []catalogModel.ServiceUsage{
			{ID: "usage-1", ServiceID: "service-1", Quantity: 2, UnitPriceCents: 1500},
			{ID: "usage-2", ServiceID: "service-2", Quantity: 1, UnitPriceCents: 5000, Complimentary: true},
		}
		names := map[string]string{"service-1": "Laundry", "service-2": "Airport Transfer"}

		items := composeLineItems("invoice-1", booking, usages, names, 0, "test-user-id")
		grouped := itemsByType(items)

		assert.Len(t, grouped[model.LineItemService], 2)
		assert.Equal(t, "Laundry", grouped[model.LineItemService][0].Description)
		assert.Equal(t, int64(3000), grouped[model.LineItemService][0].LineTotalCents)
		assert.Equal(t, "Airport Transfer (complimentary)", grouped[model.LineItemService][1].Description)
		assert.Equal(t, int64(0), grouped[model.LineItemService][1].LineTotalCents)
		assert.Empty(t, grouped[model.LineItemTax])

		subtotal, _, _, total := totalsFromItems(items)
		assert.Equal(t, int64(23000), subtotal)
		assert.Equal(t, int64(23000), total)
	})

	t.Run("late checkout charge gets its own line", func(t *testing.T) {
		booking := testBooking(22500, 2500, 0)

		items := composeLineItems("invoice-1", booking, nil, nil, 1000, "test-user-id")
		grouped := itemsByType(items)

		assert.Equal(t, int64(20000), grouped[model.LineItemRoom][0].LineTotalCents)
		assert.Len(t, grouped[model.LineItemExtraCharge], 1)
		assert.Equal(t, int64(2500), grouped[model.LineItemExtraCharge][0].LineTotalCents)

		subtotal, tax, discount, total := totalsFromItems(items)
		assert.Equal(t, int64(22500), subtotal)
		assert.Equal(t, int64(2250), tax)
		assert.Equal(t, subtotal+tax-discount, total)
	})
}

func TestRoundHalfUpBps(t *testing.T) {
	tests := []struct {
		name        string
		amountCents int64
		rateBps     int64
		want        int64
	}{
		{name: "exact", amountCents: 20000, rateBps: 1000, want: 2000},
		{name: "rounds half up", amountCents: 5, rateBps: 1000, want: 1},
		{name: "rounds down below half", amountCents: 4, rateBps: 1000, want: 0},
		{name: "zero rate", amountCents: 20000, rateBps: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundHalfUpBps(tt.amountCents, tt.rateBps))
		})
	}
}
