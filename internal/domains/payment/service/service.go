package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frigate/config"
	"frigate/infras/kafka"
	"frigate/infras/mailer"
	"frigate/infras/otel"
	"frigate/infras/payment"
	"frigate/internal/domains/booking/model"
	bookingRepo "frigate/internal/domains/booking/repository"
	"frigate/internal/domains/payment/model/dto"
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

	eventPaymentConfirmed = "payment.confirmed"
)

type paymentEvent struct {
	Event       string `json:"event"`
	BookingCode string `json:"booking_code"`
	OrderID     string `json:"order_id"`
	PaymentID   string `json:"payment_id"`
	Provider    string `json:"provider"`
}

type Payment interface {
	CreateOrder(ctx context.Context, provider string, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
}

type serviceImpl struct {
	providers payment.Providers
	bookings  bookingRepo.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	mailer    mailer.Mailer
	events    kafka.Client
}

func New(providers payment.Providers, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, mailer mailer.Mailer, events kafka.Client) Payment {
	return &serviceImpl{
		providers: providers,
		bookings:  bookings,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		mailer:    mailer,
		events:    events,
	}
}

// CreateOrder opens a payment order with the named provider for an existing
// booking. The booking code travels as the order receipt so the webhookless
// verify step can find its way back.
func (s *serviceImpl) CreateOrder(ctx context.Context, provider string, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	prov, err := s.providers.Get(provider)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown payment provider: %s", provider)) // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, req.BookingCode)
	if err != nil {
		return res, err
	}

	order, err := prov.CreateOrder(ctx, req.Amount, booking.BookingCode)
	if err != nil {
		log.Error().Err(err).Str("provider", provider).Msg("failed to create payment order")

		return res, failure.BadGateway("payment provider unavailable") // nolint:wrapcheck
	}

	res.FromOrder(provider, order)

	return res, nil
}

// Verify checks the processor signature for an order/payment pair and, when
// it holds, confirms the booking. The confirmation is a conditional update on
// PENDING, so replaying the same callback reports a conflict instead of
// rewriting the booking.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	prov, err := s.providers.Get(payment.ProviderRazorpay)
	if err != nil {
		return res, fmt.Errorf("failed to resolve payment provider: %w", err)
	}

	if !prov.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Warn().Str("bookingCode", req.BookingCode).Msg("payment signature mismatch")

		return res, failure.BadRequestFromString("invalid payment signature") // nolint:wrapcheck
	}

	confirmed, err := s.bookings.ConfirmPayment(ctx, req.BookingCode, req.PaymentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm payment")

		return res, fmt.Errorf("failed to confirm payment: %w", err)
	}

	if !confirmed {
		exist, err := s.bookings.Exist(ctx, s.filterByCode(req.BookingCode))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if booking exists")

			return res, fmt.Errorf("failed to check if booking exists: %w", err)
		}

		if !exist {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		return res, failure.Conflict("payment already processed") // nolint:wrapcheck
	}

	res.BookingCode = req.BookingCode
	res.Status = model.StatusConfirmed
	res.PaymentStatus = model.PaymentStatusPaid
	res.PaymentID = req.PaymentID

	go func() {
		c := context.WithoutCancel(ctx)

		s.sendConfirmationEmail(c, req.BookingCode)
		s.publishEvent(c, req)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheBookingStats)
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingCode string) (model.Booking, error) {
	booking, err := s.bookings.Get(ctx, s.filterByCode(bookingCode))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return model.Booking{}, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) filterByCode(bookingCode string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingCode,
				Table:    model.TableName,
				Value:    bookingCode,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}

func (s *serviceImpl) sendConfirmationEmail(ctx context.Context, bookingCode string) {
	booking, err := s.bookings.Get(ctx, s.filterByCode(bookingCode))
	if err != nil || booking.ID == constant.Empty {
		log.Error().Err(err).Str("bookingCode", bookingCode).Msg("failed to load booking for confirmation email")

		return
	}

	subject := fmt.Sprintf("Payment Received - %s", s.cfg.App.Name)
	body := fmt.Sprintf("Hello %s, your payment for booking %s has been received. Your stay is confirmed.", booking.GuestName, booking.BookingCode)

	if err := s.mailer.Send(ctx, booking.GuestEmail, subject, body); err != nil {
		log.Error().Err(err).Msg("failed to send confirmation email")
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, req dto.VerifyRequest) {
	msg := kafka.Message{
		Key: req.BookingCode,
		Value: paymentEvent{
			Event:       eventPaymentConfirmed,
			BookingCode: req.BookingCode,
			OrderID:     req.OrderID,
			PaymentID:   req.PaymentID,
			Provider:    payment.ProviderRazorpay,
		},
	}

	if err := s.events.SendMessages(ctx, s.cfg.Kafka.Topic.BookingEvents, msg); err != nil {
		log.Error().Err(err).Msg("failed to publish payment event")
	}
}
