package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v81"
	stripeclient "github.com/stripe/stripe-go/v81/client"

	"frigate/config"
	"frigate/infras/otel"
	"frigate/shared/constant"
)

type stripeProvider struct {
	api           *stripeclient.API
	webhookSecret string
	otel          otel.Otel
}

// NewStripe builds the Stripe integration. Orders are payment intents opened
// in USD; the intent's client secret is handed back for the checkout flow.
func NewStripe(cfg *config.Config, otl otel.Otel) Provider {
	api := &stripeclient.API{}
	api.Init(cfg.Payment.Stripe.SecretKey, nil)

	return &stripeProvider{
		api:           api,
		webhookSecret: cfg.Payment.Stripe.WebhookSecret,
		otel:          otl,
	}
}

func (p *stripeProvider) Name() string {
	return ProviderStripe
}

func (p *stripeProvider) CreateOrder(ctx context.Context, amount float64, receipt string) (Order, error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.CreateOrder")
	defer scope.End()

	minor := MinorUnits(amount)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minor),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", receipt)

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		scope.TraceError(err)

		return Order{}, fmt.Errorf("failed to create stripe payment intent: %w", err)
	}

	scope.SetAttribute("payment.order_id", intent.ID)

	return Order{
		ID:           intent.ID,
		Amount:       minor,
		Currency:     CurrencyUSD,
		Receipt:      receipt,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (p *stripeProvider) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySign(p.webhookSecret, orderID, paymentID, signature)
}
