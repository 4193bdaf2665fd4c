package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"frigate/infras/otel"
	"frigate/infras/payment"
	"frigate/internal/domains/payment/model/dto"
	"frigate/internal/domains/payment/service"
	"frigate/shared/constant"
	"frigate/shared/validator"
	"frigate/transport/http/response"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/razorpay/order", handler.CreateRazorpayOrder)
		r.Post("/razorpay/verify", handler.VerifyRazorpayPayment)
		r.Post("/stripe/intent", handler.CreateStripeIntent)
	})
}

// CreateRazorpayOrder opens a Razorpay order for a booking.
// @Summary Create a Razorpay order
// @Description Create a Razorpay order for a booking. The amount is converted to minor units (paise).
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} response.Data[dto.OrderResponse] "Order created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/razorpay/order [post]
func (handler *Handler) CreateRazorpayOrder(w http.ResponseWriter, r *http.Request) {
	handler.createOrder(w, r, payment.ProviderRazorpay, "CreateRazorpayOrder")
}

// CreateStripeIntent opens a Stripe payment intent for a booking.
// @Summary Create a Stripe payment intent
// @Description Create a Stripe payment intent for a booking and return its client secret.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} response.Data[dto.OrderResponse] "Payment intent created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/stripe/intent [post]
func (handler *Handler) CreateStripeIntent(w http.ResponseWriter, r *http.Request) {
	handler.createOrder(w, r, payment.ProviderStripe, "CreateStripeIntent")
}

func (handler *Handler) createOrder(w http.ResponseWriter, r *http.Request, provider, scopeName string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+scopeName)
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.CreateOrder(ctx, provider, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("provider", provider).Msg("failed to create payment order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment order created for booking " + req.BookingCode)

	response.WithJSON(w, http.StatusCreated, order)
}

// VerifyRazorpayPayment verifies a Razorpay payment signature and confirms the booking.
// @Summary Verify a Razorpay payment
// @Description Verify the HMAC signature of a completed Razorpay payment. On success the booking is confirmed and marked paid.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Verify Request"
// @Success 200 {object} response.Data[dto.VerifyResponse] "Payment verified successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/razorpay/verify [post]
func (handler *Handler) VerifyRazorpayPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyRazorpayPayment")
	defer scope.End()

	req := dto.VerifyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Verify(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment verified for booking " + req.BookingCode)

	response.WithJSON(w, http.StatusOK, result)
}
