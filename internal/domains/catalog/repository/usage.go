package repository

//go:generate go run go.uber.org/mock/mockgen -source=./usage.go -destination=../mocks/usage_repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/catalog/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type ServiceUsage interface {
	Insert(ctx context.Context, model model.ServiceUsage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceUsage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceUsage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type usageRepositoryImpl struct {
	gRepo.Repository[model.ServiceUsage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewServiceUsage(db *postgres.Connection, otel otel.Otel) ServiceUsage {
	return &usageRepositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceUsage](model.UsageEntityName, model.UsageTableName, model.UsageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
