package invoice

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/model/dto"
	"lodge/internal/domains/invoice/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Invoice
	otel    otel.Otel
}

func New(service service.Invoice, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/invoices", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.GenerateInvoice)
		routerGroup.Get("/", handler.GetInvoices)
		routerGroup.Get("/overdue", handler.GetOverdueInvoices)
		routerGroup.Get("/{id}", handler.GetInvoiceByID)
		routerGroup.Patch("/{id}/payment", handler.UpdatePayment)
	})
}

// GenerateInvoice composes and stores the invoice for a checked-out booking.
// @Summary Generate an invoice for a booking
// @Description Compose and store the invoice for a checked-out booking; one invoice per booking.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param request body dto.GenerateInvoiceRequest true "Generate Invoice Request"
// @Success 201 {object} response.Data[dto.InvoiceResponse] "Invoice generated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [post]
// @Security BearerAuth
func (handler *Handler) GenerateInvoice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateInvoice")
	defer scope.End()

	req := dto.GenerateInvoiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	invoice, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate invoice")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice generated successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, invoice)
}

// GetInvoices retrieves invoices based on query parameters.
// @Summary Get invoices
// @Description Retrieve invoices with optional filtering and pagination.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking ID"
// @Param customer_id query string false "Filter by customer ID"
// @Param payment_status query string false "Filter by payment status"
// @Success 200 {object} response.Data[dto.GetInvoicesResponse] "List of invoices"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices [get]
func (handler *Handler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if customerID := r.URL.Query().Get(model.FieldCustomerID); customerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Operator: gDto.FilterOperatorEq,
			Value:    customerID,
			Table:    model.TableName,
		})
	}

	if paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus); paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	invoices, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}

// GetOverdueInvoices retrieves unpaid invoices whose due date has passed.
// @Summary Get overdue invoices
// @Description Retrieve pending invoices whose due date has passed.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetInvoicesResponse] "List of overdue invoices"
// @Failure 500 {object} response.Error
// @Router /v1/invoices/overdue [get]
func (handler *Handler) GetOverdueInvoices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverdueInvoices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	invoices, err := handler.service.ListOverdue(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get overdue invoices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Overdue invoices retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoices)
}

// GetInvoiceByID retrieves an invoice with its line items.
// @Summary Get an invoice by ID
// @Description Retrieve an invoice and its line items by its unique identifier.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id} [get]
func (handler *Handler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoiceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	invoice, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get invoice")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Invoice retrieved successfully")

	response.WithJSON(w, http.StatusOK, invoice)
}

// UpdatePayment settles or cancels a pending invoice.
// @Summary Update an invoice's payment status
// @Description Mark a pending invoice as paid or cancelled.
// @Tags Invoice
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdatePaymentRequest true "Update Payment Request"
// @Success 200 {object} response.Data[dto.InvoiceResponse] "Invoice updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/invoices/{id}/payment [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	invoice, err := handler.service.UpdatePayment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update invoice payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Invoice payment updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, invoice)
}
