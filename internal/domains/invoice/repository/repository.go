package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/invoice/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Invoice interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invoice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CreateWithItems(ctx context.Context, invoice model.Invoice, items []model.InvoiceLineItem) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	lineItems gRepo.Repository[model.InvoiceLineItem]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		lineItems:  gRepo.NewRepository[model.InvoiceLineItem](model.LineItemEntityName, model.LineItemTableName, model.LineItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithItems persists the invoice and its line items in one
// transaction; a half-written invoice is never observable. The partial
// unique index on booking_id backstops the one-invoice-per-stay rule under
// concurrent generation.
func (repo *repositoryImpl) CreateWithItems(ctx context.Context, invoice model.Invoice, items []model.InvoiceLineItem) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.CreateWithItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.InsertTx(ctx, tx, invoice); err != nil {
		err = mapInsertError(err)

		return err
	}

	if len(items) > 0 {
		if err = repo.lineItems.InsertBulkTx(ctx, tx, items); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		err = mapInsertError(fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err))

		return err
	}

	return nil
}

// mapInsertError turns a loss on the one-active-invoice-per-booking partial
// unique index into a conflict callers can branch on.
func mapInsertError(err error) error {
	if postgres.ErrorCode(err) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict("an invoice already exists for this booking") // nolint:wrapcheck
	}

	return err
}
