package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frigate/infras/otel"
	bookingModel "frigate/internal/domains/booking/model"
	bookingDto "frigate/internal/domains/booking/model/dto"
	bookingService "frigate/internal/domains/booking/service"
	roomDto "frigate/internal/domains/room/model/dto"
	roomService "frigate/internal/domains/room/service"
	"frigate/shared/constant"
	gDto "frigate/shared/dto"
	"frigate/shared/validator"
	"frigate/transport/http/middleware"
	"frigate/transport/http/response"
)

type Handler struct {
	bookings bookingService.Booking
	rooms    roomService.Room
	auth     middleware.AuthRole
	otel     otel.Otel
}

func New(bookings bookingService.Booking, rooms roomService.Room, auth middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		bookings: bookings,
		rooms:    rooms,
		auth:     auth,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(handler.auth.Auth)
		r.Use(handler.auth.RBAC)

		r.Get("/bookings", handler.GetBookings)
		r.Patch("/bookings/{id}/status", handler.UpdateBookingStatus)
		r.Get("/stats", handler.GetStats)

		r.Post("/rooms", handler.CreateRoom)
		r.Patch("/rooms/{id}", handler.UpdateRoom)
		r.Delete("/rooms/{id}", handler.DeleteRoom)
	})
}

// GetBookings retrieves all bookings for the admin dashboard.
// @Summary Get all bookings
// @Description Retrieve all bookings, newest first, with optional filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (PENDING, CONFIRMED, CANCELLED)"
// @Param payment_status query string false "Filter by payment status (UNPAID, PAID)"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := r.URL.Query().Get(bookingModel.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    bookingModel.TableName,
		})
	}

	if paymentStatus := r.URL.Query().Get(bookingModel.FieldPaymentStatus); paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    bookingModel.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    bookingModel.TableName,
		})
	}

	bookings, err := handler.bookings.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateBookingStatus overwrites the status of a booking.
// @Summary Update booking status
// @Description Set a booking's status to PENDING, CONFIRMED, or CANCELLED. The guest is notified by email.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[bookingDto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.bookings.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking status updated to " + req.Status)

	response.WithJSON(w, http.StatusOK, booking)
}

// GetStats returns dashboard statistics.
// @Summary Get dashboard statistics
// @Description Retrieve booking counts, paid revenue, room availability, and the most recent bookings.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[bookingDto.StatsResponse] "Dashboard statistics"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.bookings.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// CreateRoom adds a room to the catalog.
// @Summary Create a new room
// @Description Create a room with the provided details.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body roomDto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := roomDto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.rooms.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// UpdateRoom updates a room in the catalog.
// @Summary Update a room
// @Description Update the provided fields of a room.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body roomDto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := roomDto.UpdateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.rooms.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom removes a room from the catalog.
// @Summary Delete a room
// @Description Delete a room by its unique identifier.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.rooms.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
