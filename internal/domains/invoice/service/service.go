package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	catalogModel "lodge/internal/domains/catalog/model"
	catalogRepo "lodge/internal/domains/catalog/repository"
	"lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/model/dto"
	"lodge/internal/domains/invoice/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/clock"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetInvoice    = "invoice:get"
	cacheGetAllInvoice = "invoice:gets"
	cacheCountInvoice  = "invoice:count"

	eventInvoiceGenerated = "invoice.generated"
	eventInvoicePaid      = "invoice.paid"
	eventInvoiceCancelled = "invoice.cancelled"
)

type Invoice interface {
	Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (dto.InvoiceResponse, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	UpdatePayment(ctx context.Context, id string, req dto.UpdatePaymentRequest) (dto.InvoiceResponse, error)
	ListOverdue(ctx context.Context, req gDto.QueryParams) (dto.GetInvoicesResponse, error)
}

type serviceImpl struct {
	repo         repository.Invoice
	lineItemRepo repository.LineItem
	bookingRepo  bookingRepo.Booking
	usageRepo    catalogRepo.ServiceUsage
	serviceRepo  catalogRepo.RoomService
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
	clock        clock.Clock

	bookingLocks keyedMutex
}

func New(
	repo repository.Invoice,
	lineItem repository.LineItem,
	booking bookingRepo.Booking,
	usage catalogRepo.ServiceUsage,
	service catalogRepo.RoomService,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
	clock clock.Clock,
) Invoice {
	return &serviceImpl{
		repo:         repo,
		lineItemRepo: lineItem,
		bookingRepo:  booking,
		usageRepo:    usage,
		serviceRepo:  service,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
		clock:        clock,
	}
}

// Generate composes the bill for a completed stay. Exactly one non-cancelled
// invoice may exist per booking; the check and the insert run under the
// booking's lock, with the partial unique index as the storage backstop.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateInvoiceRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusCheckedOut {
		return res, failure.Conflict("invoice can only be generated for a checked-out booking") // nolint:wrapcheck
	}

	unlock := s.bookingLocks.lock(booking.ID)
	defer unlock()

	exist, err := s.repo.Exist(ctx, activeInvoiceFilter(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing invoice")

		return res, fmt.Errorf("failed to check existing invoice: %w", err)
	}

	if exist {
		return res, failure.Conflict("an invoice already exists for this booking") // nolint:wrapcheck
	}

	usages, err := s.usageRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(booking.ID, catalogModel.UsageFieldBookingID, catalogModel.UsageTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service usages")

		return res, fmt.Errorf("failed to get service usages: %w", err)
	}

	serviceNames, err := s.serviceNames(ctx, usages)
	if err != nil {
		return res, err
	}

	invoice := model.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: buildInvoiceNumber(now),
		BookingID:     booking.ID,
		CustomerID:    booking.CustomerID,
		InvoiceDate:   now,
		DueDate:       now.AddDate(0, 0, s.cfg.Hotel.InvoiceDueDays),
		PaymentStatus: model.PaymentPending,
		IssuedBy:      user,
		Metadata:      metadataFor(user),
	}

	taxRateBps := s.cfg.Hotel.DefaultTaxRateBps
	if req.TaxRateBps != nil {
		taxRateBps = *req.TaxRateBps
	}

	items := composeLineItems(invoice.ID, booking, usages, serviceNames, taxRateBps, user)
	invoice.SubtotalCents, invoice.TaxCents, invoice.DiscountCents, invoice.TotalCents = totalsFromItems(items)

	if err = s.repo.CreateWithItems(ctx, invoice, items); err != nil {
		log.Error().Err(err).Msg("failed to create invoice")

		return res, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.invalidateInvoiceCaches(ctx, invoice.ID)
	s.publishEvent(ctx, eventInvoiceGenerated, invoice)

	res.FromModel(invoice, now)
	res.WithLineItems(items)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return res, err
	}

	items, err := s.lineItemRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.LineItemFieldInvoiceID, model.LineItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice line items")

		return res, fmt.Errorf("failed to get invoice line items: %w", err)
	}

	res.FromModel(invoice, s.clock.Now())
	res.WithLineItems(items)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit, s.clock.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice count to cache")
		}
	}()

	return res, nil
}

// UpdatePayment settles or voids a pending invoice. Paid invoices are
// immutable; OVERDUE is a display state and is settled the same way a
// pending one is.
func (s *serviceImpl) UpdatePayment(ctx context.Context, id string, req dto.UpdatePaymentRequest) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()

	target := model.PaymentStatus(req.Status)
	if !target.Valid() || target == model.PaymentPending {
		return res, failure.BadRequestFromString("invalid payment status") // nolint:wrapcheck
	}

	paidAt, err := req.ParsePaymentDate()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if paidAt == nil {
		paidAt = &now
	}

	unlock := s.bookingLocks.lock(id)
	defer unlock()

	invoice, err := s.getInvoice(ctx, id)
	if err != nil {
		return res, err
	}

	if invoice.PaymentStatus != model.PaymentPending {
		return res, failure.Conflict(fmt.Sprintf("invoice is %s and cannot be updated", invoice.PaymentStatus)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldPaymentStatus: string(target),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	eventType := eventInvoiceCancelled
	if target == model.PaymentPaid {
		eventType = eventInvoicePaid
		fields[model.FieldPaymentDate] = *paidAt
		fields[model.FieldPaymentMethod] = req.PaymentMethod
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update invoice payment")

		return res, fmt.Errorf("failed to update invoice payment: %w", err)
	}

	invoice.PaymentStatus = target
	if target == model.PaymentPaid {
		invoice.PaymentDate = paidAt
		invoice.PaymentMethod = req.PaymentMethod
	}

	s.invalidateInvoiceCaches(ctx, id)
	s.publishEvent(ctx, eventType, invoice)

	res.FromModel(invoice, now)

	return res, nil
}

// ListOverdue reports pending invoices whose due date has passed. OVERDUE is
// computed here against the clock, never persisted.
func (s *serviceImpl) ListOverdue(ctx context.Context, req gDto.QueryParams) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()
	filter := overdueFilter(now)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overdue invoices")

		return res, fmt.Errorf("failed to count overdue invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overdue invoices")

		return res, fmt.Errorf("failed to get overdue invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit, now)

	return res, nil
}

func (s *serviceImpl) getInvoice(ctx context.Context, id string) (model.Invoice, error) {
	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return invoice, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	return invoice, nil
}

// serviceNames resolves catalog names for the usages so line items read as
// "Room Service: Laundry" rather than a bare ID.
func (s *serviceImpl) serviceNames(ctx context.Context, usages []catalogModel.ServiceUsage) (map[string]string, error) {
	names := make(map[string]string, len(usages))

	for _, usage := range usages {
		if _, ok := names[usage.ServiceID]; ok {
			continue
		}

		service, err := s.serviceRepo.Get(ctx, shared.FilterByID(usage.ServiceID, catalogModel.FieldID, catalogModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("service_id", usage.ServiceID).Msg("failed to get room service")

			return nil, fmt.Errorf("failed to get room service: %w", err)
		}

		names[usage.ServiceID] = service.Name
	}

	return names, nil
}

type invoiceEvent struct {
	Type          string    `json:"type"`
	InvoiceID     string    `json:"invoice_id"`
	InvoiceNumber string    `json:"invoice_number"`
	BookingID     string    `json:"booking_id"`
	CustomerID    string    `json:"customer_id"`
	TotalCents    int64     `json:"total_cents"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, invoice model.Invoice) {
	event := invoiceEvent{
		Type:          eventType,
		InvoiceID:     invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		BookingID:     invoice.BookingID,
		CustomerID:    invoice.CustomerID,
		TotalCents:    invoice.TotalCents,
		PaymentStatus: string(invoice.PaymentStatus),
		OccurredAt:    timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.InvoiceEvents, kafka.Message{
			Key:   invoice.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("invoice_id", invoice.ID).Msg("failed to publish invoice event")
		}
	}()
}

func (s *serviceImpl) invalidateInvoiceCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInvoice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete invoice from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoice)
		shared.InvalidateCaches(c, s.cache, cacheCountInvoice)
	}()
}

func activeInvoiceFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPaymentStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    string(model.PaymentCancelled),
				Table:    model.TableName,
			},
		},
	}
}

func overdueFilter(now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    string(model.PaymentPending),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDueDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
				Table:    model.TableName,
			},
		},
	}
}

func buildInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]

	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), suffix)
}
