package repository

//go:generate go run go.uber.org/mock/mockgen -source=./lineitem.go -destination=../mocks/lineitem_repository_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/invoice/model"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type LineItem interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.InvoiceLineItem, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type lineItemRepositoryImpl struct {
	gRepo.Repository[model.InvoiceLineItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLineItem(db *postgres.Connection, otel otel.Otel) LineItem {
	return &lineItemRepositoryImpl{
		Repository: gRepo.NewRepository[model.InvoiceLineItem](model.LineItemEntityName, model.LineItemTableName, model.LineItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
