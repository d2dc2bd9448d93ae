package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	catalogMocks "lodge/internal/domains/catalog/mocks"
	catalogModel "lodge/internal/domains/catalog/model"
	invoiceMocks "lodge/internal/domains/invoice/mocks"
	"lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/model/dto"
	"lodge/internal/domains/invoice/service"
	cacheMocks "lodge/shared/cache/mocks"
	clockMocks "lodge/shared/clock/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

type invoiceMockSet struct {
	repo     *invoiceMocks.MockInvoice
	lineItem *invoiceMocks.MockLineItem
	booking  *bookingMocks.MockBooking
	usage    *catalogMocks.MockServiceUsage
	catalog  *catalogMocks.MockRoomService
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newInvoiceService(t *testing.T, now time.Time) (service.Invoice, invoiceMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	ms := invoiceMockSet{
		repo:     invoiceMocks.NewMockInvoice(ctrl),
		lineItem: invoiceMocks.NewMockLineItem(ctrl),
		booking:  bookingMocks.NewMockBooking(ctrl),
		usage:    catalogMocks.NewMockServiceUsage(ctrl),
		catalog:  catalogMocks.NewMockRoomService(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.DefaultTaxRateBps = 1000
	cfg.Hotel.InvoiceDueDays = 30

	ms.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		ms.repo,
		ms.lineItem,
		ms.booking,
		ms.usage,
		ms.catalog,
		cfg,
		ms.cache,
		mocks.NewOtel(),
		ms.kafka,
		clockMocks.NewFixed(now),
	)

	return svc, ms
}

func TestInvoiceService_Generate(t *testing.T) {
	now := time.Date(2025, 6, 5, 11, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	checkedOut := bookingModel.Booking{
		ID:               "booking-1",
		CustomerID:       "customer-1",
		RoomID:           "room-1",
		CheckInDate:      checkIn,
		CheckOutDate:     checkIn.AddDate(0, 0, 2),
		Status:           bookingModel.StatusCheckedOut,
		TotalAmountCents: 20000,
	}

	explicitRate := int64(2000)

	tests := []struct {
		name       string
		taxRateBps *int64
		setupMock  func(ms invoiceMockSet)
		wantErr    bool
		wantTotal  int64
	}{
		{
			name: "invoice generated with service usages",
			setupMock: func(ms invoiceMockSet) {
				ms.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedOut, nil)
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.usage.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]catalogModel.ServiceUsage{
						{ID: "usage-1", ServiceID: "service-1", Quantity: 2, UnitPriceCents: 1500},
					}, nil)
				ms.catalog.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(catalogModel.RoomService{ID: "service-1", Name: "Laundry"}, nil)
				ms.repo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			// 20000 room + 3000 services, 10% tax on 23000.
			wantTotal: 25300,
		},
		{
			name:       "request tax rate overrides the configured default",
			taxRateBps: &explicitRate,
			setupMock: func(ms invoiceMockSet) {
				ms.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedOut, nil)
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.usage.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]catalogModel.ServiceUsage{}, nil)
				ms.repo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			// 20% tax on the 20000 room charge.
			wantTotal: 24000,
		},
		{
			name: "booking not found",
			setupMock: func(ms invoiceMockSet) {
				ms.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not checked out",
			setupMock: func(ms invoiceMockSet) {
				stillIn := checkedOut
				stillIn.Status = bookingModel.StatusCheckedIn
				ms.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stillIn, nil)
			},
			wantErr: true,
		},
		{
			name: "second invoice for the same booking refused",
			setupMock: func(ms invoiceMockSet) {
				ms.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedOut, nil)
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(ms invoiceMockSet) {
				ms.booking.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedOut, nil)
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.usage.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]catalogModel.ServiceUsage{}, nil)
				ms.repo.EXPECT().CreateWithItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newInvoiceService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Generate(ctx, dto.GenerateInvoiceRequest{BookingID: "booking-1", TaxRateBps: tt.taxRateBps})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalCents)
			assert.Equal(t, res.SubtotalCents+res.TaxCents-res.DiscountCents, res.TotalCents)
			assert.Equal(t, string(model.PaymentPending), res.PaymentStatus)
			assert.NotEmpty(t, res.InvoiceNumber)
			assert.NotEmpty(t, res.LineItems)
		})
	}
}

func TestInvoiceService_UpdatePayment(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	pending := model.Invoice{
		ID:            "invoice-1",
		InvoiceNumber: "INV-20250605-0001",
		BookingID:     "booking-1",
		CustomerID:    "customer-1",
		TotalCents:    25300,
		PaymentStatus: model.PaymentPending,
		DueDate:       now.AddDate(0, 0, 10),
	}

	tests := []struct {
		name       string
		req        dto.UpdatePaymentRequest
		setupMock  func(ms invoiceMockSet)
		wantErr    bool
		wantStatus string
		wantPaidAt string
	}{
		{
			name: "pending invoice paid",
			req:  dto.UpdatePaymentRequest{Status: "PAID", PaymentMethod: "CARD"},
			setupMock: func(ms invoiceMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: string(model.PaymentPaid),
		},
		{
			name: "settlement backdated to the supplied payment date",
			req:  dto.UpdatePaymentRequest{Status: "PAID", PaymentMethod: "CASH", PaymentDate: "2025-06-08T16:30:00Z"},
			setupMock: func(ms invoiceMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: string(model.PaymentPaid),
			wantPaidAt: "2025-06-08T16:30:00Z",
		},
		{
			name:      "unparseable payment date",
			req:       dto.UpdatePaymentRequest{Status: "PAID", PaymentDate: "last tuesday"},
			setupMock: func(ms invoiceMockSet) {},
			wantErr:   true,
		},
		{
			name: "pending invoice cancelled",
			req:  dto.UpdatePaymentRequest{Status: "CANCELLED"},
			setupMock: func(ms invoiceMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: string(model.PaymentCancelled),
		},
		{
			name:      "invalid target status",
			req:       dto.UpdatePaymentRequest{Status: "REFUNDED"},
			setupMock: func(ms invoiceMockSet) {},
			wantErr:   true,
		},
		{
			name:      "pending is not a settlement target",
			req:       dto.UpdatePaymentRequest{Status: "PENDING"},
			setupMock: func(ms invoiceMockSet) {},
			wantErr:   true,
		},
		{
			name: "paid invoice is immutable",
			req:  dto.UpdatePaymentRequest{Status: "CANCELLED"},
			setupMock: func(ms invoiceMockSet) {
				paid := pending
				paid.PaymentStatus = model.PaymentPaid
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid, nil)
			},
			wantErr: true,
		},
		{
			name: "invoice not found",
			req:  dto.UpdatePaymentRequest{Status: "PAID"},
			setupMock: func(ms invoiceMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Invoice{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newInvoiceService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.UpdatePayment(ctx, "invoice-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.PaymentStatus)

			if tt.wantPaidAt != "" {
				assert.Equal(t, tt.wantPaidAt, res.PaymentDate)
			}
		})
	}
}

func TestInvoiceService_ListOverdue(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	overdue := model.Invoice{
		ID:            "invoice-1",
		BookingID:     "booking-1",
		CustomerID:    "customer-1",
		TotalCents:    25300,
		PaymentStatus: model.PaymentPending,
		DueDate:       now.AddDate(0, 0, -3),
	}

	t.Run("overdue invoices reported with derived status", func(t *testing.T) {
		svc, ms := newInvoiceService(t, now)

		ms.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		ms.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Invoice{overdue}, nil)

		res, err := svc.ListOverdue(context.Background(), gDto.QueryParams{Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Invoices, 1)
		assert.Equal(t, string(model.PaymentOverdue), res.Invoices[0].PaymentStatus)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, ms := newInvoiceService(t, now)

		ms.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.ListOverdue(context.Background(), gDto.QueryParams{Limit: 10})

		assert.Error(t, err)
	})
}
