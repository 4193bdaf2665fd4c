package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frigate/config"
	kafkaMocks "frigate/infras/kafka/mocks"
	mailerMocks "frigate/infras/mailer/mocks"
	"frigate/infras/otel/mocks"
	"frigate/infras/payment"
	paymentMocks "frigate/infras/payment/mocks"
	bookingMocks "frigate/internal/domains/booking/mocks"
	bookingModel "frigate/internal/domains/booking/model"
	"frigate/internal/domains/payment/model/dto"
	"frigate/internal/domains/payment/service"
	cacheMocks "frigate/shared/cache/mocks"
	"frigate/shared/failure"
)

type serviceMocks struct {
	razorpay *paymentMocks.MockProvider
	stripe   *paymentMocks.MockProvider
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	mailer   *mailerMocks.MockMailer
	events   *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Payment, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		razorpay: paymentMocks.NewMockProvider(ctrl),
		stripe:   paymentMocks.NewMockProvider(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		events:   kafkaMocks.NewMockClient(ctrl),
	}

	// Everything after a successful verify runs on a background goroutine;
	// allow those calls without requiring them.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Name = "Islay Frigate Hotel"
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	providers := payment.Providers{Razorpay: m.razorpay, Stripe: m.stripe}
	svc := service.New(providers, m.bookings, cfg, m.cache, mocks.NewOtel(), m.mailer, m.events)

	return svc, m
}

func TestPaymentService_CreateOrder(t *testing.T) {
	booking := bookingModel.Booking{ID: "test-id", BookingCode: "BK-A1B2C3D4E"}

	req := dto.CreateOrderRequest{BookingCode: booking.BookingCode, Amount: 100}

	tests := []struct {
		name      string
		provider  string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
		wantRes   dto.OrderResponse
	}{
		{
			name:     "razorpay order in minor units",
			provider: payment.ProviderRazorpay,
			setupMock: func(m serviceMocks) {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				m.razorpay.EXPECT().
					CreateOrder(gomock.Any(), 100.0, booking.BookingCode).
					Return(payment.Order{ID: "order_1", Amount: 10000, Currency: payment.CurrencyINR}, nil)
			},
			wantRes: dto.OrderResponse{
				OrderID:  "order_1",
				Amount:   10000,
				Currency: payment.CurrencyINR,
				Provider: payment.ProviderRazorpay,
			},
		},
		{
			name:     "stripe intent carries client secret",
			provider: payment.ProviderStripe,
			setupMock: func(m serviceMocks) {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				m.stripe.EXPECT().
					CreateOrder(gomock.Any(), 100.0, booking.BookingCode).
					Return(payment.Order{ID: "pi_1", Amount: 10000, Currency: payment.CurrencyUSD, ClientSecret: "pi_1_secret"}, nil)
			},
			wantRes: dto.OrderResponse{
				OrderID:      "pi_1",
				Amount:       10000,
				Currency:     payment.CurrencyUSD,
				Provider:     payment.ProviderStripe,
				ClientSecret: "pi_1_secret",
			},
		},
		{
			name:      "unknown provider",
			provider:  "paypal",
			setupMock: func(m serviceMocks) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:     "booking not found",
			provider: payment.ProviderRazorpay,
			setupMock: func(m serviceMocks) {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:     "provider unavailable",
			provider: payment.ProviderRazorpay,
			setupMock: func(m serviceMocks) {
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
				m.razorpay.EXPECT().
					CreateOrder(gomock.Any(), 100.0, booking.BookingCode).
					Return(payment.Order{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: 502,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.CreateOrder(context.Background(), tt.provider, req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRes, res)
		})
	}
}

func TestPaymentService_Verify(t *testing.T) {
	req := dto.VerifyRequest{
		BookingCode: "BK-A1B2C3D4E",
		OrderID:     "order_1",
		PaymentID:   "pay_1",
		Signature:   "c0ffee",
	}

	tests := []struct {
		name      string
		setupMock func(m serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "valid signature confirms booking",
			setupMock: func(m serviceMocks) {
				m.razorpay.EXPECT().
					VerifySignature(req.OrderID, req.PaymentID, req.Signature).
					Return(true)
				m.bookings.EXPECT().
					ConfirmPayment(gomock.Any(), req.BookingCode, req.PaymentID).
					Return(true, nil)
				m.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{ID: "test-id", BookingCode: req.BookingCode}, nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "forged signature never touches the booking",
			setupMock: func(m serviceMocks) {
				m.razorpay.EXPECT().
					VerifySignature(req.OrderID, req.PaymentID, req.Signature).
					Return(false)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "replayed verification conflicts",
			setupMock: func(m serviceMocks) {
				m.razorpay.EXPECT().
					VerifySignature(req.OrderID, req.PaymentID, req.Signature).
					Return(true)
				m.bookings.EXPECT().
					ConfirmPayment(gomock.Any(), req.BookingCode, req.PaymentID).
					Return(false, nil)
				m.bookings.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown booking",
			setupMock: func(m serviceMocks) {
				m.razorpay.EXPECT().
					VerifySignature(req.OrderID, req.PaymentID, req.Signature).
					Return(true)
				m.bookings.EXPECT().
					ConfirmPayment(gomock.Any(), req.BookingCode, req.PaymentID).
					Return(false, nil)
				m.bookings.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(m serviceMocks) {
				m.razorpay.EXPECT().
					VerifySignature(req.OrderID, req.PaymentID, req.Signature).
					Return(true)
				m.bookings.EXPECT().
					ConfirmPayment(gomock.Any(), req.BookingCode, req.PaymentID).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Verify(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, req.BookingCode, res.BookingCode)
			assert.Equal(t, bookingModel.StatusConfirmed, res.Status)
			assert.Equal(t, bookingModel.PaymentStatusPaid, res.PaymentStatus)
			assert.Equal(t, req.PaymentID, res.PaymentID)
		})
	}
}
