package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	s3Mocks "lodge/infras/s3/mocks"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
)

type roomMockSet struct {
	repo     *roomMocks.MockRoom
	roomType *roomMocks.MockRoomType
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newRoomService(t *testing.T) (service.Room, roomMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	ms := roomMockSet{
		repo:     roomMocks.NewMockRoom(ctrl),
		roomType: roomMocks.NewMockRoomType(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "lodge-assets"

	ms.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ms.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(ms.repo, ms.roomType, cfg, ms.cache, mocks.NewOtel(), ms.s3)

	return svc, ms
}

func TestRoomService_Create(t *testing.T) {
	deluxe := model.RoomType{ID: "roomtype-1", Name: "Deluxe", BaseRateCents: 15000}

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(ms roomMockSet)
		wantErr   bool
	}{
		{
			name: "room without image",
			req:  dto.CreateRoomRequest{RoomTypeID: "roomtype-1", Number: "101", Floor: 1},
			setupMock: func(ms roomMockSet) {
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "room with image uploads to storage",
			req: dto.CreateRoomRequest{
				RoomTypeID: "roomtype-1",
				Number:     "102",
				Floor:      1,
				Image:      &multipart.FileHeader{Filename: "room.jpg"},
			},
			setupMock: func(ms roomMockSet) {
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				ms.s3.EXPECT().
					UploadFile(gomock.Any(), "lodge-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/abc.jpg", nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "room type not found",
			req:  dto.CreateRoomRequest{RoomTypeID: "missing", Number: "101"},
			setupMock: func(ms roomMockSet) {
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)
			},
			wantErr: true,
		},
		{
			name: "failed insert removes the uploaded image",
			req: dto.CreateRoomRequest{
				RoomTypeID: "roomtype-1",
				Number:     "103",
				Image:      &multipart.FileHeader{Filename: "room.jpg"},
			},
			setupMock: func(ms roomMockSet) {
				ms.roomType.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
				ms.s3.EXPECT().
					UploadFile(gomock.Any(), "lodge-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/abc.jpg", nil)
				ms.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				ms.s3.EXPECT().
					DeleteFile(gomock.Any(), "lodge-assets", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newRoomService(t)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateRoomStatusRequest
		setupMock func(ms roomMockSet)
		wantErr   bool
	}{
		{
			name: "room sent to maintenance",
			req:  dto.UpdateRoomStatusRequest{Status: string(model.StatusMaintenance)},
			setupMock: func(ms roomMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				ms.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "invalid status",
			req:       dto.UpdateRoomStatusRequest{Status: "BROKEN"},
			setupMock: func(ms roomMockSet) {},
			wantErr:   true,
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomStatusRequest{Status: string(model.StatusAvailable)},
			setupMock: func(ms roomMockSet) {
				ms.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, ms := newRoomService(t)
			tt.setupMock(ms)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
