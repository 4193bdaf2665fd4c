package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frigate/config"
	"frigate/infras/kafka"
	"frigate/infras/mailer"
	"frigate/infras/otel"
	"frigate/internal/domains/booking/model"
	"frigate/internal/domains/booking/model/dto"
	"frigate/internal/domains/booking/repository"
	roomModel "frigate/internal/domains/room/model"
	roomRepo "frigate/internal/domains/room/repository"
	"frigate/shared"
	"frigate/shared/cache"
	"frigate/shared/constant"
	gDto "frigate/shared/dto"
	"frigate/shared/failure"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheBookingStats  = "booking:stats"

	eventBookingCreated = "booking.created"

	recentBookingsLimit = 5
)

type bookingEvent struct {
	Event       string  `json:"event"`
	BookingID   string  `json:"booking_id"`
	BookingCode string  `json:"booking_code"`
	RoomID      string  `json:"room_id"`
	GuestEmail  string  `json:"guest_email"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GuestLookup(ctx context.Context, bookingCode, email string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.BookingResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	mailer   mailer.Mailer
	events   kafka.Client
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, mailer mailer.Mailer, events kafka.Client) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		mailer:   mailer,
		events:   events,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	code, err := model.NewBookingCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate booking code")

		return res, fmt.Errorf("failed to generate booking code: %w", err)
	}

	booking, err := req.ToModel(code, req.GuestEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.RoomName = room.Name
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.sendBookingEmail(c, booking, room.Name)
		s.publishEvent(c, eventBookingCreated, booking)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheBookingStats)
	}()

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
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

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

// GuestLookup resolves a booking by its code and the guest's email. Both
// values must match exactly; the email acts as a weak capability check, so
// the result is never served from cache.
func (s *serviceImpl) GuestLookup(ctx context.Context, bookingCode, email string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GuestLookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingCode,
				Table:    model.TableName,
				Value:    bookingCode,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldGuestEmail,
				Table:    model.TableName,
				Value:    email,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		subject := fmt.Sprintf("Booking %s - %s", booking.Status, s.cfg.App.Name)
		body := fmt.Sprintf("Hello %s, your booking %s is now %s.", booking.GuestName, booking.BookingCode, booking.Status)

		if err := s.mailer.Send(c, booking.GuestEmail, subject, body); err != nil {
			log.Error().Err(err).Msg("failed to send status email")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheBookingStats)
	}()

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheBookingStats, "summary")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking stats")

		return res, nil
	}

	totalBookings, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	revenue, err := s.repo.SumTotalAmount(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentStatus,
				Table:    model.TableName,
				Value:    model.PaymentStatusPaid,
				Operator: gDto.FilterOperatorEq,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to sum revenue")

		return res, fmt.Errorf("failed to sum revenue: %w", err)
	}

	totalRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	availableRooms, err := s.roomRepo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldAvailable,
				Table:    roomModel.TableName,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	recent, err := s.repo.GetAll(ctx, gDto.QueryParams{
		Page:    1,
		Limit:   recentBookingsLimit,
		SortBy:  constant.DefaultValueSortBy,
		SortDir: gDto.SortDirDesc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.TotalBookings = totalBookings
	res.Revenue = revenue
	res.TotalRooms = totalRooms
	res.AvailableRooms = availableRooms

	res.RecentBookings = make([]dto.BookingResponse, len(recent))
	for i, mod := range recent {
		res.RecentBookings[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) sendBookingEmail(ctx context.Context, booking model.Booking, roomName string) {
	subject := fmt.Sprintf("Booking Confirmation - %s", s.cfg.App.Name)
	body := fmt.Sprintf(
		"Hello %s, we received your booking %s for %s (%s to %s). Complete the payment to confirm your stay.",
		booking.GuestName,
		booking.BookingCode,
		roomName,
		booking.CheckIn.Format("2006-01-02"),
		booking.CheckOut.Format("2006-01-02"),
	)

	if err := s.mailer.Send(ctx, booking.GuestEmail, subject, body); err != nil {
		log.Error().Err(err).Msg("failed to send booking email")
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	msg := kafka.Message{
		Key: booking.BookingCode,
		Value: bookingEvent{
			Event:       event,
			BookingID:   booking.ID,
			BookingCode: booking.BookingCode,
			RoomID:      booking.RoomID,
			GuestEmail:  booking.GuestEmail,
			TotalAmount: booking.TotalAmount,
			Status:      booking.Status,
		},
	}

	if err := s.events.SendMessages(ctx, s.cfg.Kafka.Topic.BookingEvents, msg); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}
