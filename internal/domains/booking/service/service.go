package service

import (
	"context"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	blacklistModel "lodge/internal/domains/blacklist/model"
	blacklistRepo "lodge/internal/domains/blacklist/repository"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepo "lodge/internal/domains/customer/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	vipModel "lodge/internal/domains/vip/model"
	vipRepo "lodge/internal/domains/vip/repository"
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
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string, req dto.CheckOutRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	roomTypeRepo roomRepo.RoomType
	customerRepo customerRepo.Customer
	blacklist    blacklistRepo.Blacklist
	vipRepo      vipRepo.VIP
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
	clock        clock.Clock

	roomLocks    keyedMutex
	bookingLocks keyedMutex
}

func New(
	repo repository.Booking,
	room roomRepo.Room,
	roomType roomRepo.RoomType,
	customer customerRepo.Customer,
	blacklist blacklistRepo.Blacklist,
	vip vipRepo.VIP,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
	clock clock.Clock,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     room,
		roomTypeRepo: roomType,
		customerRepo: customer,
		blacklist:    blacklist,
		vipRepo:      vip,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
		clock:        clock,
	}
}

// Create authorizes and prices a new booking. The guest must be in good
// standing and the room free for the whole range; the overlap check and the
// insert run under the room's lock so two workstations cannot both see the
// room as free.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()

	checkIn, checkOut, err := req.ParseDates()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) || nightsBetween(checkIn, checkOut) < 1 {
		return res, failure.BadRequestFromString("check-out date must be at least one night after check-in date") // nolint:wrapcheck
	}

	if !s.cfg.Hotel.AllowPastCheckIn && checkIn.Before(startOfDay(now)) {
		return res, failure.BadRequestFromString("check-in date must not be in the past") // nolint:wrapcheck
	}

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty || !customer.Active {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(room.RoomTypeID, roomModel.RoomTypeFieldID, roomModel.RoomTypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return res, failure.NotFound("room type not found") // nolint:wrapcheck
	}

	blacklisted, err := s.isBlacklisted(ctx, req.CustomerID, now)
	if err != nil {
		return res, err
	}

	if blacklisted {
		return res, failure.Forbidden("customer is blacklisted and cannot book") // nolint:wrapcheck
	}

	quote, err := s.quoteStay(ctx, req.CustomerID, roomType.BaseRateCents, nightsBetween(checkIn, checkOut), now)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(user, checkIn, checkOut)
	booking.TotalAmountCents = quote.TotalCents
	booking.DiscountAppliedCents = quote.DiscountCents

	// Overlap check and insert are one atomic unit per room.
	unlock := s.roomLocks.lock(room.ID)
	defer unlock()

	overlapping, err := s.repo.ExistOverlapping(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if overlapping {
		return res, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateListCaches(ctx)
	s.publishEvent(ctx, eventBookingCreated, booking.ID, booking.CustomerID, booking.RoomID, string(booking.Status), booking.TotalAmountCents)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// IsAvailable answers the availability question without reserving anything.
// Callers must not treat a true answer as a hold; Create re-checks under the
// room lock.
func (s *serviceImpl) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	overlapping, err := s.repo.ExistOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return !overlapping, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock := s.bookingLocks.lock(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.CanTransitionTo(model.StatusConfirmed) {
		return res, transitionError(booking.Status, model.StatusConfirmed)
	}

	if err = s.updateBooking(ctx, id, map[string]any{
		model.FieldStatus: string(model.StatusConfirmed),
	}); err != nil {
		return res, err
	}

	booking.Status = model.StatusConfirmed

	s.publishEvent(ctx, eventBookingConfirmed, booking.ID, booking.CustomerID, booking.RoomID, string(booking.Status), booking.TotalAmountCents)

	res.FromModel(booking)

	return res, nil
}

// CheckIn admits the guest. Standing is re-checked: a guest blacklisted
// after booking is still turned away at the desk.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	unlock := s.bookingLocks.lock(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusConfirmed {
		return res, transitionError(booking.Status, model.StatusCheckedIn)
	}

	blacklisted, err := s.isBlacklisted(ctx, booking.CustomerID, now)
	if err != nil {
		return res, err
	}

	if blacklisted {
		return res, failure.Forbidden("customer is blacklisted and cannot check in") // nolint:wrapcheck
	}

	if err = s.updateBooking(ctx, id, map[string]any{
		model.FieldStatus:        string(model.StatusCheckedIn),
		model.FieldActualCheckIn: now,
	}); err != nil {
		return res, err
	}

	if err = s.setRoomStatus(ctx, booking.RoomID, roomModel.StatusOccupied); err != nil {
		return res, err
	}

	booking.Status = model.StatusCheckedIn
	booking.ActualCheckIn = &now

	s.publishEvent(ctx, eventBookingCheckedIn, booking.ID, booking.CustomerID, booking.RoomID, string(booking.Status), booking.TotalAmountCents)

	res.FromModel(booking)

	return res, nil
}

// CheckOut closes the stay: prices the late-checkout penalty, frees the room
// into MAINTENANCE for housekeeping, and rolls the final total into the
// guest's cumulative spend.
func (s *serviceImpl) CheckOut(ctx context.Context, id string, req dto.CheckOutRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	actual, err := req.ParseActualCheckOut(s.clock.Now())
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	unlock := s.bookingLocks.lock(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusCheckedIn {
		return res, transitionError(booking.Status, model.StatusCheckedOut)
	}

	hoursLate, lateCharge := lateChargeCents(booking.CheckOutDate, actual, s.cfg.Hotel.LateFeePerHourCents)
	if lateCharge > 0 {
		log.Info().
			Str("booking_id", id).
			Int64("hours_late", hoursLate).
			Int64("late_charge_cents", lateCharge).
			Msg("applying late checkout charge")
	}

	extraCharges := booking.ExtraChargesCents + lateCharge
	totalAmount := booking.TotalAmountCents + lateCharge

	if err = s.updateBooking(ctx, id, map[string]any{
		model.FieldStatus:            string(model.StatusCheckedOut),
		model.FieldActualCheckOut:    actual,
		model.FieldExtraChargesCents: extraCharges,
		model.FieldTotalAmountCents:  totalAmount,
	}); err != nil {
		return res, err
	}

	if err = s.setRoomStatus(ctx, booking.RoomID, roomModel.StatusMaintenance); err != nil {
		return res, err
	}

	loyaltyPoints := int(totalAmount / constant.CentsPerUnit)
	if err = s.customerRepo.AddSpending(ctx, booking.CustomerID, totalAmount, loyaltyPoints); err != nil {
		log.Error().Err(err).Msg("failed to add customer spending")

		return res, fmt.Errorf("failed to add customer spending: %w", err)
	}

	booking.Status = model.StatusCheckedOut
	booking.ActualCheckOut = &actual
	booking.ExtraChargesCents = extraCharges
	booking.TotalAmountCents = totalAmount

	s.publishEvent(ctx, eventBookingCheckedOut, booking.ID, booking.CustomerID, booking.RoomID, string(booking.Status), booking.TotalAmountCents)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	unlock := s.bookingLocks.lock(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.CanTransitionTo(model.StatusCancelled) {
		return res, transitionError(booking.Status, model.StatusCancelled)
	}

	wasCheckedIn := booking.Status == model.StatusCheckedIn

	if err = s.updateBooking(ctx, id, map[string]any{
		model.FieldStatus: string(model.StatusCancelled),
	}); err != nil {
		return res, err
	}

	if wasCheckedIn {
		if err = s.setRoomStatus(ctx, booking.RoomID, roomModel.StatusMaintenance); err != nil {
			return res, err
		}
	}

	booking.Status = model.StatusCancelled

	s.publishEvent(ctx, eventBookingCancelled, booking.ID, booking.CustomerID, booking.RoomID, string(booking.Status), booking.TotalAmountCents)

	res.FromModel(booking)

	return res, nil
}

// MarkNoShow closes out a confirmed booking whose guest never arrived.
func (s *serviceImpl) MarkNoShow(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	unlock := s.bookingLocks.lock(id)
	defer unlock()

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.CanTransitionTo(model.StatusNoShow) {
		return res, transitionError(booking.Status, model.StatusNoShow)
	}

	if !booking.CheckInDate.Before(startOfDay(now)) {
		return res, failure.Conflict("booking cannot be marked as no-show before its check-in date has passed") // nolint:wrapcheck
	}

	if err = s.updateBooking(ctx, id, map[string]any{
		model.FieldStatus: string(model.StatusNoShow),
	}); err != nil {
		return res, err
	}

	booking.Status = model.StatusNoShow

	s.publishEvent(ctx, eventBookingNoShow, booking.ID, booking.CustomerID, booking.RoomID, string(booking.Status), booking.TotalAmountCents)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) updateBooking(ctx context.Context, id string, fields map[string]any) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = user

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, roomID string, status roomModel.Status) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		roomModel.FieldStatus:    string(status),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.roomRepo.Update(ctx, fields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

// isBlacklisted is the standing gate: true when any active entry without a
// past expiry exists for the customer.
func (s *serviceImpl) isBlacklisted(ctx context.Context, customerID string, now time.Time) (bool, error) {
	blacklisted, err := s.blacklist.Exist(ctx, blacklistModel.ActiveEntryFilter(customerID, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blacklist status")

		return false, fmt.Errorf("failed to check blacklist status: %w", err)
	}

	return blacklisted, nil
}

// quoteStay prices the stay, applying the customer's valid VIP discount when
// one exists.
func (s *serviceImpl) quoteStay(ctx context.Context, customerID string, baseRateCents, nights int64, now time.Time) (Quote, error) {
	membership, err := s.vipRepo.Get(ctx, vipModel.ValidMembershipFilter(customerID, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vip membership")

		return Quote{}, fmt.Errorf("failed to get vip membership: %w", err)
	}

	var discountPercent int64
	if membership.ID != constant.Empty {
		discountPercent = membership.DiscountPercent
	}

	return buildQuote(baseRateCents, nights, discountPercent), nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func transitionError(from, to model.Status) error {
	return failure.Conflict(fmt.Sprintf("invalid transition: booking is %s and cannot move to %s", from, to)) // nolint:wrapcheck
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
