package booking

import (
	"net/http"
	"strconv"

	"popflea/infras/otel"
	"popflea/internal/domains/booking/model/dto"
	"popflea/internal/domains/booking/service"
	"popflea/shared/constant"
	"popflea/shared/failure"
	"popflea/shared/validator"
	"popflea/transport/http/middleware"
	"popflea/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.middleware.AdminOnly)
			adminGroup.Get("/", handler.GetBookings)
			adminGroup.Get("/stats", handler.GetStats)
			adminGroup.Post("/status", handler.UpdateStatus)
			adminGroup.Post("/cancel", handler.CancelBooking)
			adminGroup.Post("/confirm", handler.ConfirmPayment)
		})
	})

	router.Get("/slots", handler.GetSlots)
}

// CreateBooking reserves a table for a guest.
// @Summary Create a new booking
// @Description Reserve a table for a date, time slot and seating area. Accepts multipart form data with an optional payment screenshot.
// @Tags Booking
// @Accept mpfd
// @Produce json
// @Success 201 {object} dto.CreateBookingResponse "Booking created"
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req, err := handler.parseCreateRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse booking form")

		response.WithError(writer, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking form")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created with ref " + booking.RefID)

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{
		Message: "Booking received! Your reference id is " + booking.RefID + ".",
		Data:    booking,
	})
}

// GetBookings lists every booking on the sheet.
// @Summary List all bookings
// @Description Retrieve every booking row, newest last. Staff only.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetSlots reports per-slot availability for one event date.
// @Summary Get slot availability
// @Description For each time slot and seating area of the given date, report the occupied count, the limit and a traffic-light status.
// @Tags Booking
// @Produce json
// @Param date query string true "Event date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	if date != constant.Empty {
		if err := validator.ValidateVar(date, "datetime=2006-01-02"); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("date", date).Msg("rejected malformed availability date")

			response.WithError(w, err)

			return
		}
	}

	availability, err := handler.service.Availability(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateStatus moves a booking to a new lifecycle status.
// @Summary Update booking status
// @Description Move a booking along its lifecycle (Reserved, Arrived, Completed, Cancelled). Staff only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/bookings/status [post]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Transition(ctx, req.BookingRef, req.Status); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("refId", req.BookingRef).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + req.BookingRef + " moved to " + req.Status)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// CancelBooking cancels a booking and frees its capacity.
// @Summary Cancel a booking
// @Description Cancel a booking by reference id. Staff only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/bookings/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	req := dto.CancelBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, req.BookingRef); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("refId", req.BookingRef).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + req.BookingRef + " cancelled")

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// ConfirmPayment verifies a pending payment and reserves the booking.
// @Summary Confirm a booking payment
// @Description Mark a pending booking as payment-verified and reserved. Staff only.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ConfirmPaymentRequest true "Confirm Payment Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /v1/bookings/confirm [post]
func (handler *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	req := dto.ConfirmPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ConfirmPayment(ctx, req.BookingRef); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("refId", req.BookingRef).Msg("failed to confirm payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment confirmed for booking " + req.BookingRef)

	response.WithMessage(w, http.StatusOK, "Payment confirmed and booking reserved")
}

// GetStats summarizes bookings per lifecycle status.
// @Summary Get booking statistics
// @Description Report the total number of bookings and a per-status breakdown. Staff only.
// @Tags Booking
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /v1/bookings/stats [get]
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

func (handler *Handler) parseCreateRequest(request *http.Request) (dto.CreateBookingRequest, error) {
	req := dto.CreateBookingRequest{}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequestFromString("request body must be multipart form data") // nolint:wrapcheck
	}

	req.Name = request.FormValue(constant.FormFieldName)
	req.Phone = request.FormValue(constant.FormFieldPhone)
	req.Email = request.FormValue(constant.FormFieldEmail)
	req.Area = request.FormValue(constant.FormFieldArea)
	req.Date = request.FormValue(constant.FormFieldDate)
	req.TimeSlot = request.FormValue(constant.FormFieldTimeSlot)
	req.Comments = request.FormValue(constant.FormFieldComments)
	req.TransactionID = request.FormValue(constant.FormFieldTransactionID)
	req.UPIName = request.FormValue(constant.FormFieldUPIName)

	adults, err := strconv.Atoi(request.FormValue(constant.FormFieldAdults))
	if err != nil {
		return req, failure.BadRequestFromString("adults must be a number") // nolint:wrapcheck
	}

	req.Adults = adults

	if rawChildren := request.FormValue(constant.FormFieldChildren); rawChildren != constant.Empty {
		children, err := strconv.Atoi(rawChildren)
		if err != nil {
			return req, failure.BadRequestFromString("children must be a number") // nolint:wrapcheck
		}

		req.Children = children
	}

	if _, header, err := request.FormFile(constant.FormFieldScreenshot); err == nil {
		req.Screenshot = header
	}

	return req, nil
}
