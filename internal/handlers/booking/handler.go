package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frigate/infras/otel"
	"frigate/internal/domains/booking/model/dto"
	"frigate/internal/domains/booking/service"
	"frigate/shared/constant"
	"frigate/shared/failure"
	"frigate/shared/validator"
	"frigate/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", handler.CreateBooking)
		r.Get("/{bookingId}", handler.GuestLookup)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a room booking. The returned booking code is the reference for payment and lookup.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created with code " + booking.BookingCode)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GuestLookup retrieves a booking by code for the guest who owns it.
// @Summary Look up a booking
// @Description Retrieve a booking by its code. The guest email must match the one on the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking code"
// @Param email query string true "Guest email"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId} [get]
func (handler *Handler) GuestLookup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuestLookup")
	defer scope.End()

	bookingCode := chi.URLParam(r, constant.RequestParamBookingID)

	email := r.URL.Query().Get(constant.RequestParamEmail)
	if email == "" {
		err := failure.BadRequestFromString("email query parameter is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.GuestLookup(ctx, bookingCode, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to look up booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}
