package catalog

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/catalog/model"
	"lodge/internal/domains/catalog/model/dto"
	"lodge/internal/domains/catalog/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomService)
		routerGroup.Get("/", handler.GetRoomServices)
		routerGroup.Get("/{id}", handler.GetRoomServiceByID)
		routerGroup.Put("/{id}", handler.UpdateRoomService)
	})

	router.Route("/service-usages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddUsage)
		routerGroup.Get("/bookings/{id}", handler.GetUsageByBooking)
		routerGroup.Patch("/{id}/complimentary", handler.SetComplimentary)
	})
}

// CreateRoomService creates a new room service in the catalog.
// @Summary Create a new room service
// @Description Create a new chargeable room service in the catalog.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomServiceRequest true "Create Room Service Request"
// @Success 201 {object} response.Data[dto.RoomServiceResponse] "Room service created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-services [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomService")
	defer scope.End()

	req := dto.CreateRoomServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	roomService, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room service")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room service created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, roomService)
}

// GetRoomServices retrieves room services based on query parameters.
// @Summary Get room services
// @Description Retrieve room services with optional filtering and pagination.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetRoomServicesResponse] "List of room services"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-services [get]
func (handler *Handler) GetRoomServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
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

	roomServices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room services retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomServices)
}

// GetRoomServiceByID retrieves a room service by its unique identifier.
// @Summary Get a room service by ID
// @Description Retrieve a room service by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Room Service ID"
// @Success 200 {object} response.Data[dto.RoomServiceResponse] "Room service details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-services/{id} [get]
func (handler *Handler) GetRoomServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomServiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	roomService, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room service retrieved successfully")

	response.WithJSON(w, http.StatusOK, roomService)
}

// UpdateRoomService updates an existing room service.
// @Summary Update a room service
// @Description Update an existing room service by its unique identifier.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Room Service ID"
// @Param request body dto.UpdateRoomServiceRequest true "Update Room Service Request"
// @Success 200 {object} response.Message "Room service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-services/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRoomServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room service updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room service updated successfully")
}

// AddUsage records a service usage against a checked-in booking.
// @Summary Record a service usage
// @Description Record a service usage against a checked-in booking at the current catalog price.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body dto.AddUsageRequest true "Add Usage Request"
// @Success 201 {object} response.Data[dto.ServiceUsageResponse] "Service usage recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-usages [post]
// @Security BearerAuth
func (handler *Handler) AddUsage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddUsage")
	defer scope.End()

	req := dto.AddUsageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	usage, err := handler.service.AddUsage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record service usage")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service usage recorded successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, usage)
}

// GetUsageByBooking retrieves all service usages recorded for a booking.
// @Summary Get service usages for a booking
// @Description Retrieve all service usages recorded against a booking.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.GetServiceUsagesResponse] "List of service usages"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-usages/bookings/{id} [get]
func (handler *Handler) GetUsageByBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsageByBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	usages, err := handler.service.GetUsageByBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service usages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service usages retrieved successfully")

	response.WithJSON(w, http.StatusOK, usages)
}

// SetComplimentary marks a service usage as complimentary or chargeable.
// @Summary Set the complimentary flag on a service usage
// @Description Mark a service usage as complimentary or chargeable; its billed total follows the flag.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Service Usage ID"
// @Param request body dto.SetComplimentaryRequest true "Set Complimentary Request"
// @Success 200 {object} response.Message "Service usage updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-usages/{id}/complimentary [patch]
// @Security BearerAuth
func (handler *Handler) SetComplimentary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetComplimentary")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetComplimentaryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetComplimentary(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service usage")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service usage updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service usage updated successfully")
}
