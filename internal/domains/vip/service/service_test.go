package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	customerMocks "lodge/internal/domains/customer/mocks"
	customerModel "lodge/internal/domains/customer/model"
	vipMocks "lodge/internal/domains/vip/mocks"
	"lodge/internal/domains/vip/model"
	"lodge/internal/domains/vip/model/dto"
	"lodge/internal/domains/vip/service"
	cacheMocks "lodge/shared/cache/mocks"
	clockMocks "lodge/shared/clock/mocks"
	"lodge/shared/constant"
)

type vipMockSet struct {
	repo     *vipMocks.MockVIP
	customer *customerMocks.MockCustomer
	cache    *cacheMocks.MockRedisCache
}

func newVIPService(t *testing.T, now time.Time) (service.VIP, vipMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	ms := vipMockSet{
		repo:     vipMocks.NewMockVIP(ctrl),
		customer: customerMocks.NewMockCustomer(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.VIP.GoldThresholdCents = 500000
	cfg.Hotel.VIP.PlatinumThresholdCents = 1000000
	cfg.Hotel.VIP.DiamondThresholdCents = 2500000

	ms.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(ms.repo, ms.customer, cfg, ms.cache, mocks.NewOtel(), clockMocks.NewFixed(now))

	return svc, ms
}

func TestVIPService_CheckEligibility(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setupMock   func(ms vipMockSet)
		wantErr     bool
		wantLevel   string
		wantCurrent string
	}{
		{
			name: "spend clears gold only",
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 600000}, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VIPMembership{}, nil)
			},
			wantLevel: string(model.LevelGold),
		},
		{
			name: "spend clears diamond",
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 3000000}, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VIPMembership{}, nil)
			},
			wantLevel: string(model.LevelDiamond),
		},
		{
			name: "below every threshold",
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 100000}, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VIPMembership{}, nil)
			},
			wantLevel: "",
		},
		{
			name: "current membership reported alongside eligibility",
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 1200000}, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.VIPMembership{ID: "vip-1", Level: model.LevelGold, Active: true}, nil)
			},
			wantLevel:   string(model.LevelPlatinum),
			wantCurrent: string(model.LevelGold),
		},
		{
			name: "customer not found",
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customerModel.Customer{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newVIPService(t, now)
			tt.setupMock(ms)

			res, err := svc.CheckEligibility(context.Background(), "customer-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantLevel, res.EligibleLevel)
			assert.Equal(t, tt.wantCurrent, res.CurrentLevel)
		})
	}
}

func TestVIPService_Promote(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	bigSpender := customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 1500000}

	tests := []struct {
		name      string
		req       dto.PromoteCustomerRequest
		setupMock func(ms vipMockSet)
		wantErr   bool
	}{
		{
			name: "promotion retires the current membership",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "PLATINUM"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bigSpender, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.VIPMembership{ID: "vip-1", Level: model.LevelGold, Active: true}, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "first membership needs no retirement",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "GOLD"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bigSpender, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VIPMembership{}, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "already vip at the requested tier",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "GOLD"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bigSpender, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.VIPMembership{ID: "vip-1", Level: model.LevelGold, Active: true}, nil)
			},
			wantErr: true,
		},
		{
			name: "downgrade below the current tier refused",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "GOLD"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bigSpender, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.VIPMembership{ID: "vip-1", Level: model.LevelPlatinum, Active: true}, nil)
			},
			wantErr: true,
		},
		{
			name: "spend below the requested tier",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "DIAMOND"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bigSpender, nil)
			},
			wantErr: true,
		},
		{
			name:      "invalid level",
			req:       dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "BRONZE"},
			setupMock: func(ms vipMockSet) {},
			wantErr:   true,
		},
		{
			name:      "end date in the past",
			req:       dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "GOLD", EndDate: "2025-05-01T00:00:00Z"},
			setupMock: func(ms vipMockSet) {},
			wantErr:   true,
		},
		{
			name: "inactive customer",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "GOLD"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-1", Active: false, TotalSpentCents: 1500000}, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  dto.PromoteCustomerRequest{CustomerID: "customer-1", Level: "GOLD"},
			setupMock: func(ms vipMockSet) {
				ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bigSpender, nil)
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VIPMembership{}, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newVIPService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Promote(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Level, res.Level)
			assert.True(t, res.Active)
		})
	}
}

func TestVIPService_Revoke(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(ms vipMockSet)
		wantErr   bool
	}{
		{
			name: "active membership revoked",
			setupMock: func(ms vipMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.VIPMembership{ID: "vip-1", Active: true}, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "membership not found",
			setupMock: func(ms vipMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VIPMembership{}, nil)
			},
			wantErr: true,
		},
		{
			name: "already inactive",
			setupMock: func(ms vipMockSet) {
				ms.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(model.VIPMembership{ID: "vip-1", Active: false}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newVIPService(t, now)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Revoke(ctx, "vip-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVIPService_ProcessRenewals(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)

	t.Run("expired memberships retired", func(t *testing.T) {
		svc, ms := newVIPService(t, now)

		ms.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.VIPMembership{
				{ID: "vip-1", CustomerID: "customer-1", Level: model.LevelGold, EndDate: &past, Active: true},
				{ID: "vip-2", CustomerID: "customer-2", Level: model.LevelPlatinum, EndDate: &past, Active: true},
			}, nil)
		ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		retired, err := svc.ProcessRenewals(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, retired)
	})

	t.Run("lapsed spend retires a lifetime membership", func(t *testing.T) {
		svc, ms := newVIPService(t, now)

		ms.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.VIPMembership{
				{ID: "vip-1", CustomerID: "customer-1", Level: model.LevelGold, Active: true},
			}, nil)
		ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 0}, nil)
		ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		retired, err := svc.ProcessRenewals(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, retired)
	})

	t.Run("qualified memberships are kept", func(t *testing.T) {
		svc, ms := newVIPService(t, now)

		ms.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.VIPMembership{
				{ID: "vip-1", CustomerID: "customer-1", Level: model.LevelGold, Active: true},
			}, nil)
		ms.customer.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(customerModel.Customer{ID: "customer-1", Active: true, TotalSpentCents: 600000}, nil)

		retired, err := svc.ProcessRenewals(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, retired)
	})

	t.Run("nothing active", func(t *testing.T) {
		svc, ms := newVIPService(t, now)

		ms.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.VIPMembership{}, nil)

		retired, err := svc.ProcessRenewals(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, retired)
	})

	t.Run("update error stops the sweep", func(t *testing.T) {
		svc, ms := newVIPService(t, now)

		ms.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.VIPMembership{
				{ID: "vip-1", CustomerID: "customer-1", Level: model.LevelGold, EndDate: &past, Active: true},
			}, nil)
		ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		_, err := svc.ProcessRenewals(context.Background())

		assert.Error(t, err)
	})
}
