package blacklist

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/blacklist/model"
	"lodge/internal/domains/blacklist/model/dto"
	"lodge/internal/domains/blacklist/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blacklist
	otel    otel.Otel
}

func New(service service.Blacklist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blacklist", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEntry)
		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Get("/customers/{id}", handler.GetCustomerStatus)
		routerGroup.Post("/{id}/lift", handler.LiftEntry)
	})
}

// CreateEntry bars a customer from new bookings and check-in.
// @Summary Blacklist a customer
// @Description Create a blacklist entry barring a customer, optionally with an expiry.
// @Tags Blacklist
// @Accept json
// @Produce json
// @Param request body dto.CreateBlacklistEntryRequest true "Create Blacklist Entry Request"
// @Success 201 {object} response.Data[dto.BlacklistEntryResponse] "Blacklist entry created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blacklist [post]
// @Security BearerAuth
func (handler *Handler) CreateEntry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEntry")
	defer scope.End()

	req := dto.CreateBlacklistEntryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	entry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blacklist entry")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blacklist entry created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, entry)
}

// GetEntries retrieves blacklist entries based on query parameters.
// @Summary Get blacklist entries
// @Description Retrieve blacklist entries with optional filtering and pagination.
// @Tags Blacklist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param customer_id query string false "Filter by customer"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetBlacklistEntriesResponse] "List of blacklist entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blacklist [get]
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if customerID := r.URL.Query().Get(model.FieldCustomerID); customerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Operator: gDto.FilterOperatorEq,
			Value:    customerID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	entries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blacklist entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blacklist entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// GetCustomerStatus reports whether a customer is currently barred.
// @Summary Check a customer's blacklist standing
// @Description Report whether the customer is currently barred, with expiry evaluated at read time.
// @Tags Blacklist
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.BlacklistStatusResponse] "Blacklist standing"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blacklist/customers/{id} [get]
func (handler *Handler) GetCustomerStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	status, err := handler.service.Status(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blacklist status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blacklist status retrieved successfully")

	response.WithJSON(w, http.StatusOK, status)
}

// LiftEntry deactivates a blacklist entry by its ID.
// @Summary Lift a blacklist entry
// @Description Deactivate a single blacklist entry; other entries keep their own force.
// @Tags Blacklist
// @Accept json
// @Produce json
// @Param id path string true "Blacklist Entry ID"
// @Success 200 {object} response.Message "Blacklist entry lifted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blacklist/{id}/lift [post]
// @Security BearerAuth
func (handler *Handler) LiftEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LiftEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Lift(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to lift blacklist entry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blacklist entry lifted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Blacklist entry lifted successfully")
}
