package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/blacklist/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Blacklist interface {
	Insert(ctx context.Context, model model.BlacklistEntry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BlacklistEntry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlacklistEntry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BlacklistEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Blacklist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlacklistEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
