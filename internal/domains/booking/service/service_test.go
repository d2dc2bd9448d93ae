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
	blacklistMocks "lodge/internal/domains/blacklist/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	customerMocks "lodge/internal/domains/customer/mocks"
	customerModel "lodge/internal/domains/customer/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	vipMocks "lodge/internal/domains/vip/mocks"
	vipModel "lodge/internal/domains/vip/model"
	cacheMocks "lodge/shared/cache/mocks"
	clockMocks "lodge/shared/clock/mocks"
	"lodge/shared/constant"
)

type bookingMockSet struct {
	repo      *bookingMocks.MockBooking
	room      *roomMocks.MockRoom
	roomType  *roomMocks.MockRoomType
	customer  *customerMocks.MockCustomer
	blacklist *blacklistMocks.MockBlacklist
	vip       *vipMocks.MockVIP
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
}

func newBookingService(t *testing.T, now time.Time) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	ms := bookingMockSet{
		repo:      bookingMocks.NewMockBooking(ctrl),
		room:      roomMocks.NewMockRoom(ctrl),
		roomType:  roomMocks.NewMockRoomType(ctrl),
		customer:  customerMocks.NewMockCustomer(ctrl),
		blacklist: blacklistMocks.NewMockBlacklist(ctrl),
		vip:       vipMocks.NewMockVIP(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.LateFeePerHourCents = 2500

	// Async cache invalidation and event publication are fire-and-forget.
	ms.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		ms.repo,
		ms.room,
		ms.roomType,
		ms.customer,
		ms.blacklist,
		ms.vip,
		cfg,
		ms.cache,
		mocks.NewOtel(),
		ms.kafka,
		clockMocks.NewFixed(now),
	)

	return svc, ms
}

func TestBookingService_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	activeCustomer := customerModel.Customer{ID: "customer-1", Active: true}
	room := roomModel.Room{ID: "room-1", RoomTypeID: "roomtype-1"}
	roomType := roomModel.RoomType{ID: "roomtype-1", BaseRateCents: 10000}

	tests := []struct {
		name         string
		req          dto.CreateBookingRequest
		setupMock    func(ms bookingMockSet)
		wantErr      bool
		wantTotal    int64
		wantDiscount int64
	}{
		{
			name: "successful creation with vip discount",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeCustomer, nil)
				ms.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.vip.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(vipModel.VIPMembership{ID: "vip-1", DiscountPercent: 10}, nil)
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(false, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal:    18000,
			wantDiscount: 2000,
		},
		{
			name: "successful creation without membership",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-11T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeCustomer, nil)
				ms.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.vip.EXPECT().Get(gomock.Any(), gomock.Any()).Return(vipModel.VIPMembership{}, nil)
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(false, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal:    10000,
			wantDiscount: 0,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "not-a-date",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-12T14:00:00Z",
				CheckOutDate: "2025-06-10T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "past check-in rejected",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-05-01T14:00:00Z",
				CheckOutDate: "2025-05-03T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {},
			wantErr:   true,
		},
		{
			name: "inactive customer",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-1", Active: false}, nil)
			},
			wantErr: true,
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "missing-room",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeCustomer, nil)
				ms.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "blacklisted customer cannot book",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeCustomer, nil)
				ms.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "room already booked for the range",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeCustomer, nil)
				ms.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.vip.EXPECT().Get(gomock.Any(), gomock.Any()).Return(vipModel.VIPMembership{}, nil)
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.CreateBookingRequest{
				CustomerID:   "customer-1",
				RoomID:       "room-1",
				CheckInDate:  "2025-06-10T14:00:00Z",
				CheckOutDate: "2025-06-12T14:00:00Z",
			},
			setupMock: func(ms bookingMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeCustomer, nil)
				ms.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.vip.EXPECT().Get(gomock.Any(), gomock.Any()).Return(vipModel.VIPMembership{}, nil)
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(false, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalAmountCents)
			assert.Equal(t, tt.wantDiscount, res.DiscountAppliedCents)
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(ms bookingMockSet)
		wantErr   bool
	}{
		{
			name: "pending booking confirmed",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusPending}, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "checked-out booking cannot be confirmed",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusCheckedOut}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Confirm(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusConfirmed), res.Status)
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(ms bookingMockSet)
		wantErr   bool
	}{
		{
			name: "confirmed guest checked in",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", CustomerID: "customer-1", RoomID: "room-1", Status: model.StatusConfirmed}, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.room.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "guest blacklisted after booking is turned away",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", CustomerID: "customer-1", RoomID: "room-1", Status: model.StatusConfirmed}, nil)
				ms.blacklist.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "pending booking cannot check in",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusPending}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CheckIn(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusCheckedIn), res.Status)
				assert.NotEmpty(t, res.ActualCheckIn)
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	now := time.Date(2025, 6, 4, 11, 0, 0, 0, time.UTC)
	scheduled := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	checkedIn := model.Booking{
		ID:               "booking-1",
		CustomerID:       "customer-1",
		RoomID:           "room-1",
		CheckInDate:      scheduled.AddDate(0, 0, -2),
		CheckOutDate:     scheduled,
		Status:           model.StatusCheckedIn,
		TotalAmountCents: 20000,
	}

	tests := []struct {
		name       string
		req        dto.CheckOutRequest
		setupMock  func(ms bookingMockSet)
		wantErr    bool
		wantTotal  int64
		wantExtras int64
	}{
		{
			name: "on-time checkout has no late charge",
			req:  dto.CheckOutRequest{},
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.room.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.customer.EXPECT().AddSpending(gomock.Any(), "customer-1", int64(20000), 200).Return(nil)
			},
			wantTotal:  20000,
			wantExtras: 0,
		},
		{
			name: "late checkout bills per started hour",
			req:  dto.CheckOutRequest{ActualCheckOut: "2025-06-04T15:00:00Z"},
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.room.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.customer.EXPECT().AddSpending(gomock.Any(), "customer-1", int64(27500), 275).Return(nil)
			},
			wantTotal:  27500,
			wantExtras: 7500,
		},
		{
			name: "confirmed booking cannot check out",
			req:  dto.CheckOutRequest{},
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusConfirmed}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.CheckOut(ctx, "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, string(model.StatusCheckedOut), res.Status)
			assert.Equal(t, tt.wantTotal, res.TotalAmountCents)
			assert.Equal(t, tt.wantExtras, res.ExtraChargesCents)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(ms bookingMockSet)
		wantErr   bool
	}{
		{
			name: "confirmed booking cancelled without touching the room",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", RoomID: "room-1", Status: model.StatusConfirmed}, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cancelling a checked-in stay frees the room",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", RoomID: "room-1", Status: model.StatusCheckedIn}, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.room.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "checked-out booking cannot be cancelled",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", Status: model.StatusCheckedOut}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Cancel(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusCancelled), res.Status)
			}
		})
	}
}

func TestBookingService_MarkNoShow(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(ms bookingMockSet)
		wantErr   bool
	}{
		{
			name: "guest never arrived",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:          "booking-1",
						Status:      model.StatusConfirmed,
						CheckInDate: time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC),
					}, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "check-in date not yet passed",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:          "booking-1",
						Status:      model.StatusConfirmed,
						CheckInDate: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
					}, nil)
			},
			wantErr: true,
		},
		{
			name: "checked-in booking cannot be a no-show",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:          "booking-1",
						Status:      model.StatusCheckedIn,
						CheckInDate: time.Date(2025, 6, 8, 14, 0, 0, 0, time.UTC),
					}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.MarkNoShow(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusNoShow), res.Status)
			}
		})
	}
}

func TestBookingService_IsAvailable(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	tests := []struct {
		name      string
		setupMock func(ms bookingMockSet)
		wantErr   bool
		want      bool
	}{
		{
			name: "room free",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", checkIn, checkOut).Return(false, nil)
			},
			want: true,
		},
		{
			name: "room held by an overlapping booking",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", checkIn, checkOut).Return(true, nil)
			},
			want: false,
		},
		{
			name: "repository error",
			setupMock: func(ms bookingMockSet) {
				ms.repo.EXPECT().ExistOverlapping(gomock.Any(), "room-1", checkIn, checkOut).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newBookingService(t, now)
			tt.setupMock(ms)

			available, err := svc.IsAvailable(context.Background(), "room-1", checkIn, checkOut)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, available)
			}
		})
	}
}
