package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	customerMocks "lodge/internal/domains/customer/mocks"
	"lodge/internal/domains/customer/model/dto"
	"lodge/internal/domains/customer/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
)

type customerMockSet struct {
	repo  *customerMocks.MockCustomer
	cache *cacheMocks.MockRedisCache
}

func newCustomerService(t *testing.T) (service.Customer, customerMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	ms := customerMockSet{
		repo:  customerMocks.NewMockCustomer(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	ms.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(ms.repo, cfg, ms.cache, mocks.NewOtel())

	return svc, ms
}

func TestCustomerService_Create(t *testing.T) {
	req := dto.CreateCustomerRequest{
		FullName: "Jane Walker",
		Email:    "jane.walker@example.com",
		Phone:    "+6281234567890",
	}

	tests := []struct {
		name      string
		setupMock func(ms customerMockSet)
		wantErr   bool
	}{
		{
			name: "successful registration",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate email",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newCustomerService(t)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, req.Email, res.Email)
			assert.True(t, res.Active)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestCustomerService_Deactivate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(ms customerMockSet)
		wantErr   bool
	}{
		{
			name: "customer deactivated",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "customer not found",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newCustomerService(t)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Deactivate(ctx, "customer-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(ms customerMockSet)
		wantErr   bool
	}{
		{
			name: "customer updated",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "customer not found",
			setupMock: func(ms customerMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newCustomerService(t)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, dto.UpdateCustomerRequest{Phone: "+6289876543210"}, "customer-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
