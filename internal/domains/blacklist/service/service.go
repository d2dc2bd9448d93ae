package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/blacklist/model"
	"lodge/internal/domains/blacklist/model/dto"
	"lodge/internal/domains/blacklist/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepo "lodge/internal/domains/customer/repository"
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
	cacheGetAllBlacklist = "blacklist:gets"
	cacheCountBlacklist  = "blacklist:count"
)

type Blacklist interface {
	Create(ctx context.Context, req dto.CreateBlacklistEntryRequest) (dto.BlacklistEntryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlacklistEntriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Status(ctx context.Context, customerID string) (dto.BlacklistStatusResponse, error)
	Lift(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Blacklist
	customerRepo customerRepo.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	clock        clock.Clock
}

func New(repo repository.Blacklist, customer customerRepo.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, clock clock.Clock) Blacklist {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customer,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		clock:        clock,
	}
}

// Create bars a customer from new bookings and check-in. Multiple entries may
// exist for the same customer; the customer is barred while any is in force.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlacklistEntryRequest) (res dto.BlacklistEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()

	expiresAt, err := req.ParseExpiresAt()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if expiresAt != nil && !expiresAt.After(now) {
		return res, failure.BadRequestFromString("expiry must be in the future") // nolint:wrapcheck
	}

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	entry := req.ToModel(user, expiresAt, now)

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to create blacklist entry")

		return res, fmt.Errorf("failed to create blacklist entry: %w", err)
	}

	s.invalidateBlacklistCaches(ctx, entry.CustomerID)

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlacklistEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlacklist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blacklist entries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blacklist entries")

		return res, fmt.Errorf("failed to count blacklist entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blacklist entries")

		return res, fmt.Errorf("failed to get blacklist entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blacklist entries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBlacklist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blacklist entries")

		return res, fmt.Errorf("failed to count blacklist entries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blacklist count to cache")
		}
	}()

	return res, nil
}

// Status answers whether the customer is barred right now. Expiry is
// evaluated at read time; expired entries never count even if still flagged
// active in storage.
func (s *serviceImpl) Status(ctx context.Context, customerID string) (res dto.BlacklistStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.CustomerID = customerID

	blacklisted, err := s.repo.Exist(ctx, model.ActiveEntryFilter(customerID, s.clock.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blacklist status")

		return res, fmt.Errorf("failed to check blacklist status: %w", err)
	}

	res.Blacklisted = blacklisted

	return res, nil
}

// Lift deactivates a single entry. Other entries for the same customer keep
// their own force.
func (s *serviceImpl) Lift(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lift")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	entry, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blacklist entry")

		return fmt.Errorf("failed to get blacklist entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return failure.NotFound("blacklist entry not found") // nolint:wrapcheck
	}

	if !entry.Active {
		return failure.Conflict("blacklist entry is already lifted") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to lift blacklist entry")

		return fmt.Errorf("failed to lift blacklist entry: %w", err)
	}

	s.invalidateBlacklistCaches(ctx, entry.CustomerID)

	return nil
}

// Standing checks are never cached: a bar must take effect the moment it is
// issued. Only the list and count views go through the cache.
func (s *serviceImpl) invalidateBlacklistCaches(ctx context.Context, _ string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlacklist)
		shared.InvalidateCaches(c, s.cache, cacheCountBlacklist)
	}()
}
