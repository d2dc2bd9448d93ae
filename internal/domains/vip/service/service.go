package service

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	customerModel "lodge/internal/domains/customer/model"
	customerRepo "lodge/internal/domains/customer/repository"
	"lodge/internal/domains/vip/model"
	"lodge/internal/domains/vip/model/dto"
	"lodge/internal/domains/vip/repository"
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
	cacheGetAllVIP = "vip:gets"
	cacheCountVIP  = "vip:count"
)

type VIP interface {
	CheckEligibility(ctx context.Context, customerID string) (dto.EligibilityResponse, error)
	Promote(ctx context.Context, req dto.PromoteCustomerRequest) (dto.VIPMembershipResponse, error)
	GetByCustomer(ctx context.Context, customerID string) (dto.VIPMembershipResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetVIPMembershipsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Revoke(ctx context.Context, id string) error
	ProcessRenewals(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo         repository.VIP
	customerRepo customerRepo.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	clock        clock.Clock
}

func New(repo repository.VIP, customer customerRepo.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, clock clock.Clock) VIP {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customer,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		clock:        clock,
	}
}

// eligibleLevel maps cumulative spend onto the highest tier whose threshold
// it clears. Empty means the customer has not reached any tier.
func (s *serviceImpl) eligibleLevel(totalSpentCents int64) model.Level {
	vip := s.cfg.Hotel.VIP

	switch {
	case totalSpentCents >= vip.DiamondThresholdCents:
		return model.LevelDiamond
	case totalSpentCents >= vip.PlatinumThresholdCents:
		return model.LevelPlatinum
	case totalSpentCents >= vip.GoldThresholdCents:
		return model.LevelGold
	default:
		return ""
	}
}

func (s *serviceImpl) CheckEligibility(ctx context.Context, customerID string) (res dto.EligibilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckEligibility")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	res.CustomerID = customer.ID
	res.TotalSpentCents = customer.TotalSpentCents
	res.EligibleLevel = string(s.eligibleLevel(customer.TotalSpentCents))

	current, err := s.repo.Get(ctx, model.ValidMembershipFilter(customerID, s.clock.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vip membership")

		return res, fmt.Errorf("failed to get vip membership: %w", err)
	}

	if current.ID != constant.Empty {
		res.CurrentLevel = string(current.Level)
	}

	return res, nil
}

// Promote grants the requested tier. The customer's cumulative spend must
// clear the tier's threshold. A customer holding a valid membership is
// refused unless the request is an upgrade, in which case the old
// membership is retired so at most one is valid at a time.
func (s *serviceImpl) Promote(ctx context.Context, req dto.PromoteCustomerRequest) (res dto.VIPMembershipResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Promote")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()

	level := model.Level(req.Level)
	if !level.Valid() {
		return res, failure.BadRequestFromString("invalid vip level") // nolint:wrapcheck
	}

	endDate, err := req.ParseEndDate()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if endDate != nil && !endDate.After(now) {
		return res, failure.BadRequestFromString("end date must be in the future") // nolint:wrapcheck
	}

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty || !customer.Active {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if customer.TotalSpentCents < s.levelThreshold(level) {
		return res, failure.Conflict("customer spending does not meet the requested tier threshold") // nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, model.ValidMembershipFilter(req.CustomerID, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to get current vip membership")

		return res, fmt.Errorf("failed to get current vip membership: %w", err)
	}

	if current.ID != constant.Empty {
		// Only an upgrade may displace a valid membership. Re-promoting to
		// the same or a lower tier is refused.
		if level.Rank() <= current.Level.Rank() {
			return res, failure.Conflict("customer already has a valid vip membership") // nolint:wrapcheck
		}

		if err = s.repo.Update(ctx, map[string]any{
			model.FieldActive:        false,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to retire current vip membership")

			return res, fmt.Errorf("failed to retire current vip membership: %w", err)
		}
	}

	membership := req.ToModel(user, endDate, now)

	if err = s.repo.Insert(ctx, membership); err != nil {
		log.Error().Err(err).Msg("failed to create vip membership")

		return res, fmt.Errorf("failed to create vip membership: %w", err)
	}

	s.invalidateVIPCaches(ctx)

	res.FromModel(membership)

	return res, nil
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, customerID string) (res dto.VIPMembershipResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	membership, err := s.repo.Get(ctx, model.ValidMembershipFilter(customerID, s.clock.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vip membership")

		return res, fmt.Errorf("failed to get vip membership: %w", err)
	}

	if membership.ID == constant.Empty {
		return res, failure.NotFound("vip membership not found") // nolint:wrapcheck
	}

	res.FromModel(membership)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetVIPMembershipsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVIP, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vip memberships")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vip memberships")

		return res, fmt.Errorf("failed to count vip memberships: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vip memberships")

		return res, fmt.Errorf("failed to get vip memberships: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vip memberships to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVIP, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vip memberships")

		return res, fmt.Errorf("failed to count vip memberships: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vip membership count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Revoke(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revoke")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	membership, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vip membership")

		return fmt.Errorf("failed to get vip membership: %w", err)
	}

	if membership.ID == constant.Empty {
		return failure.NotFound("vip membership not found") // nolint:wrapcheck
	}

	if !membership.Active {
		return failure.Conflict("vip membership is already inactive") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to revoke vip membership")

		return fmt.Errorf("failed to revoke vip membership: %w", err)
	}

	s.invalidateVIPCaches(ctx)

	return nil
}

// ProcessRenewals walks every active membership and retires the ones that no
// longer qualify: the end date has passed, or the holder's cumulative spend
// has dropped below the tier's threshold. The sweep is idempotent: a second
// run over the same instant finds nothing left to retire. Returns how many
// memberships were retired.
func (s *serviceImpl) ProcessRenewals(ctx context.Context) (retired int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessRenewals")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	active, err := s.repo.GetAll(ctx, gDto.QueryParams{}, model.ActiveMembershipFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to list active vip memberships")

		return 0, fmt.Errorf("failed to list active vip memberships: %w", err)
	}

	for _, membership := range active {
		keep := membership.Valid(now)

		if keep {
			customer, cErr := s.customerRepo.Get(ctx, shared.FilterByID(membership.CustomerID, customerModel.FieldID, customerModel.TableName))
			if cErr != nil {
				log.Error().Err(cErr).Str("customer_id", membership.CustomerID).Msg("failed to get vip membership holder")

				return retired, fmt.Errorf("failed to get vip membership holder: %w", cErr)
			}

			keep = customer.TotalSpentCents >= s.levelThreshold(membership.Level)
		}

		if keep {
			continue
		}

		if err = s.repo.Update(ctx, map[string]any{
			model.FieldActive:        false,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: constant.SystemUser,
		}, shared.FilterByID(membership.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("membership_id", membership.ID).Msg("failed to retire vip membership")

			return retired, fmt.Errorf("failed to retire vip membership: %w", err)
		}

		retired++
	}

	if retired > 0 {
		log.Info().Int("retired", retired).Msg("vip renewal sweep retired memberships")
		s.invalidateVIPCaches(ctx)
	}

	return retired, nil
}

func (s *serviceImpl) levelThreshold(level model.Level) int64 {
	vip := s.cfg.Hotel.VIP

	switch level {
	case model.LevelDiamond:
		return vip.DiamondThresholdCents
	case model.LevelPlatinum:
		return vip.PlatinumThresholdCents
	default:
		return vip.GoldThresholdCents
	}
}

func (s *serviceImpl) invalidateVIPCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVIP)
		shared.InvalidateCaches(c, s.cache, cacheCountVIP)
	}()
}
