package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/catalog/model"
	"lodge/internal/domains/catalog/model/dto"
	"lodge/internal/domains/catalog/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/clock"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"
)

type Catalog interface {
	Create(ctx context.Context, req dto.CreateRoomServiceRequest) (dto.RoomServiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomServiceRequest, id string) error

	AddUsage(ctx context.Context, req dto.AddUsageRequest) (dto.ServiceUsageResponse, error)
	GetUsageByBooking(ctx context.Context, bookingID string) (dto.GetServiceUsagesResponse, error)
	SetComplimentary(ctx context.Context, id string, req dto.SetComplimentaryRequest) error
}

type serviceImpl struct {
	repo        repository.RoomService
	usageRepo   repository.ServiceUsage
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	clock       clock.Clock
}

func New(repo repository.RoomService, usage repository.ServiceUsage, booking bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, clock clock.Clock) Catalog {
	return &serviceImpl{
		repo:        repo,
		usageRepo:   usage,
		bookingRepo: booking,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		clock:       clock,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomServiceRequest) (res dto.RoomServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	service := req.ToModel(user)

	if err = s.repo.Insert(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to create room service")

		return res, fmt.Errorf("failed to create room service: %w", err)
	}

	s.invalidateServiceCaches(ctx, service.ID)

	res.FromModel(service)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room services")

		return res, fmt.Errorf("failed to count room services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room services")

		return res, fmt.Errorf("failed to get room services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room services")

		return res, fmt.Errorf("failed to count room services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room service")

		return res, nil
	}

	service, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room service")

		return res, fmt.Errorf("failed to get room service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound("room service not found") // nolint:wrapcheck
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room service to cache")
		}
	}()

	return res, nil
}

// Update edits the catalog entry. Past usage keeps its snapshotted price;
// only future consumption sees the new rate.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room service existence")

		return fmt.Errorf("failed to check room service existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room service not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room service")

		return fmt.Errorf("failed to update room service: %w", err)
	}

	s.invalidateServiceCaches(ctx, id)

	return nil
}

// AddUsage records consumption against an in-house stay. The catalog price is
// snapshotted into the record so later rate changes never rewrite it.
func (s *serviceImpl) AddUsage(ctx context.Context, req dto.AddUsageRequest) (res dto.ServiceUsageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddUsage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusCheckedIn {
		return res, failure.Conflict("service usage can only be recorded for a checked-in booking") // nolint:wrapcheck
	}

	service, err := s.repo.Get(ctx, shared.FilterByID(req.ServiceID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room service")

		return res, fmt.Errorf("failed to get room service: %w", err)
	}

	if service.ID == constant.Empty || !service.Active {
		return res, failure.NotFound("room service not found") // nolint:wrapcheck
	}

	usage := req.ToModel(user, booking.CustomerID, service.BasePriceCents, s.clock.Now())

	if err = s.usageRepo.Insert(ctx, usage); err != nil {
		log.Error().Err(err).Msg("failed to record service usage")

		return res, fmt.Errorf("failed to record service usage: %w", err)
	}

	res.FromModel(usage)

	return res, nil
}

func (s *serviceImpl) GetUsageByBooking(ctx context.Context, bookingID string) (res dto.GetServiceUsagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUsageByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(bookingID, model.UsageFieldBookingID, model.UsageTableName)

	total, err := s.usageRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service usages")

		return res, fmt.Errorf("failed to count service usages: %w", err)
	}

	models, err := s.usageRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service usages")

		return res, fmt.Errorf("failed to get service usages: %w", err)
	}

	res.FromModels(models, total, total)

	return res, nil
}

// SetComplimentary flips the charge flag on a usage record and re-derives its
// total.
func (s *serviceImpl) SetComplimentary(ctx context.Context, id string, req dto.SetComplimentaryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetComplimentary")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.UsageFieldID, model.UsageTableName)

	usage, err := s.usageRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service usage")

		return fmt.Errorf("failed to get service usage: %w", err)
	}

	if usage.ID == constant.Empty {
		return failure.NotFound("service usage not found") // nolint:wrapcheck
	}

	usage.Complimentary = req.Complimentary

	if err = s.usageRepo.Update(ctx, map[string]any{
		model.UsageFieldComplimentary:  req.Complimentary,
		model.UsageFieldTotalCostCents: usage.Cost(),
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service usage")

		return fmt.Errorf("failed to update service usage: %w", err)
	}

	return nil
}

func (s *serviceImpl) invalidateServiceCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()
}
