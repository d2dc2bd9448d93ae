package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ExistOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists the booking. A loser of the schema's no-overlap exclusion
// constraint surfaces as a conflict rather than a plain database error, so
// callers racing across replicas get the same denial the in-process check
// gives.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	return mapInsertError(repo.Repository.Insert(ctx, booking))
}

func mapInsertError(err error) error {
	if postgres.ErrorCode(err) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	return err
}

// ExistOverlapping reports whether any non-terminal booking on the room
// overlaps [checkIn, checkOut) under half-open interval semantics:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (repo *repositoryImpl) ExistOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (exist bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistOverlapping")
	defer scope.End()

	query := fmt.Sprintf(
		`SELECT EXISTS(
			SELECT 1 FROM %s
			WHERE %s = :room_id
			AND %s IN ('%s', '%s', '%s')
			AND %s < :check_out
			AND %s > :check_in
		)`,
		model.TableName,
		model.FieldRoomID,
		model.FieldStatus, model.StatusPending, model.StatusConfirmed, model.StatusCheckedIn,
		model.FieldCheckInDate,
		model.FieldCheckOutDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check overlapping bookings (%s): %w", model.EntityName, err)
	}

	return exist, nil
}
