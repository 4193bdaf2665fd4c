package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"frigate/config"
	"frigate/infras/otel"
	"frigate/shared/constant"
)

type razorpayProvider struct {
	client *razorpay.Client
	secret string
	otel   otel.Otel
}

// NewRazorpay builds the Razorpay integration. Orders are opened in INR and
// callbacks are verified against the key secret.
func NewRazorpay(cfg *config.Config, otl otel.Otel) Provider {
	return &razorpayProvider{
		client: razorpay.NewClient(cfg.Payment.Razorpay.KeyID, cfg.Payment.Razorpay.KeySecret),
		secret: cfg.Payment.Razorpay.KeySecret,
		otel:   otl,
	}
}

func (p *razorpayProvider) Name() string {
	return ProviderRazorpay
}

func (p *razorpayProvider) CreateOrder(ctx context.Context, amount float64, receipt string) (Order, error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".razorpay.CreateOrder")
	defer scope.End()

	minor := MinorUnits(amount)

	data := map[string]interface{}{
		"amount":   minor,
		"currency": CurrencyINR,
		"receipt":  receipt,
	}

	body, err := p.client.Order.Create(data, nil)
	if err != nil {
		scope.TraceError(err)

		return Order{}, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, _ := body["id"].(string)
	scope.SetAttribute("payment.order_id", orderID)

	return Order{
		ID:       orderID,
		Amount:   minor,
		Currency: CurrencyINR,
		Receipt:  receipt,
		Raw:      body,
	}, nil
}

func (p *razorpayProvider) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySign(p.secret, orderID, paymentID, signature)
}
