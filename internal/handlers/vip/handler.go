package vip

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/vip/model"
	"lodge/internal/domains/vip/model/dto"
	"lodge/internal/domains/vip/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.VIP
	otel    otel.Otel
}

func New(service service.VIP, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vip", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.PromoteCustomer)
		routerGroup.Get("/", handler.GetMemberships)
		routerGroup.Get("/customers/{id}", handler.GetCustomerMembership)
		routerGroup.Get("/customers/{id}/eligibility", handler.CheckEligibility)
		routerGroup.Post("/{id}/revoke", handler.RevokeMembership)
		routerGroup.Post("/renewals/process", handler.ProcessRenewals)
	})
}

// PromoteCustomer grants a customer the requested VIP tier.
// @Summary Promote a customer to a VIP tier
// @Description Grant the requested tier; the customer's spend must clear its threshold.
// @Tags VIP
// @Accept json
// @Produce json
// @Param request body dto.PromoteCustomerRequest true "Promote Customer Request"
// @Success 201 {object} response.Data[dto.VIPMembershipResponse] "Membership created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vip [post]
// @Security BearerAuth
func (handler *Handler) PromoteCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PromoteCustomer")
	defer scope.End()

	req := dto.PromoteCustomerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	membership, err := handler.service.Promote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to promote customer")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer promoted successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, membership)
}

// GetMemberships retrieves VIP memberships based on query parameters.
// @Summary Get VIP memberships
// @Description Retrieve VIP memberships with optional filtering and pagination.
// @Tags VIP
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param level query string false "Filter by level"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetVIPMembershipsResponse] "List of memberships"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vip [get]
func (handler *Handler) GetMemberships(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMemberships")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if level := r.URL.Query().Get(model.FieldLevel); level != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLevel,
			Operator: gDto.FilterOperatorEq,
			Value:    level,
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

	memberships, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vip memberships")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("VIP memberships retrieved successfully")

	response.WithJSON(w, http.StatusOK, memberships)
}

// GetCustomerMembership retrieves the customer's currently valid membership.
// @Summary Get a customer's VIP membership
// @Description Retrieve the customer's currently valid membership, if any.
// @Tags VIP
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.VIPMembershipResponse] "Membership details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vip/customers/{id} [get]
func (handler *Handler) GetCustomerMembership(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerMembership")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	membership, err := handler.service.GetByCustomer(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vip membership")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("VIP membership retrieved successfully")

	response.WithJSON(w, http.StatusOK, membership)
}

// CheckEligibility reports the tier a customer's spending qualifies them for.
// @Summary Check a customer's VIP eligibility
// @Description Report the tier the customer's cumulative spend qualifies them for.
// @Tags VIP
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.Data[dto.EligibilityResponse] "Eligibility details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vip/customers/{id}/eligibility [get]
func (handler *Handler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckEligibility")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	eligibility, err := handler.service.CheckEligibility(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check vip eligibility")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("VIP eligibility checked successfully")

	response.WithJSON(w, http.StatusOK, eligibility)
}

// RevokeMembership deactivates a VIP membership by its ID.
// @Summary Revoke a VIP membership
// @Description Deactivate a VIP membership by its unique identifier.
// @Tags VIP
// @Accept json
// @Produce json
// @Param id path string true "Membership ID"
// @Success 200 {object} response.Message "Membership revoked successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vip/{id}/revoke [post]
// @Security BearerAuth
func (handler *Handler) RevokeMembership(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RevokeMembership")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Revoke(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to revoke vip membership")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("VIP membership revoked successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "VIP membership revoked successfully")
}

// ProcessRenewals runs the renewal sweep on demand.
// @Summary Run the VIP renewal sweep
// @Description Retire every membership whose end date has passed. Idempotent.
// @Tags VIP
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.RenewalSweepResponse] "Sweep result"
// @Failure 500 {object} response.Error
// @Router /v1/vip/renewals/process [post]
// @Security BearerAuth
func (handler *Handler) ProcessRenewals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ProcessRenewals")
	defer scope.End()

	retired, err := handler.service.ProcessRenewals(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to process vip renewals")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("VIP renewal sweep completed successfully by user " + user)

	response.WithJSON(w, http.StatusOK, dto.RenewalSweepResponse{Retired: retired})
}
