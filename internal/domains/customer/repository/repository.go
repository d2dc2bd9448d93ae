package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/customer/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"lodge/shared/timezone"
)

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	AddSpending(ctx context.Context, customerID string, amountCents int64, loyaltyPoints int) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AddSpending atomically increments the customer's cumulative spend and
// loyalty points in a single statement, so concurrent checkouts never lose an
// update.
func (repo *repositoryImpl) AddSpending(ctx context.Context, customerID string, amountCents int64, loyaltyPoints int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.AddSpending")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + :amount, %s = %s + :points, modified_at = :modified_at WHERE %s = :id",
		model.TableName,
		model.FieldTotalSpentCents, model.FieldTotalSpentCents,
		model.FieldLoyaltyPoints, model.FieldLoyaltyPoints,
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          customerID,
		"amount":      amountCents,
		"points":      loyaltyPoints,
		"modified_at": timezone.Now(),
	}

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to add spending (%s): %w", model.EntityName, err)
	}

	return nil
}
