package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frigate/config"
	"frigate/infras/otel"
)

const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"

	ProviderRazorpay = "razorpay"
	ProviderStripe   = "stripe"
)

// Order is the processor's handle for a pending charge. Raw carries the
// provider response verbatim so handlers can relay it unchanged.
type Order struct {
	ID           string         `json:"id"`
	Amount       int64          `json:"amount"`
	Currency     string         `json:"currency"`
	Receipt      string         `json:"receipt"`
	ClientSecret string         `json:"client_secret,omitempty"`
	Raw          map[string]any `json:"-"`
}

// Provider is the capability shared by every payment processor integration:
// open an order for an amount, and check a callback signature.
type Provider interface {
	Name() string
	CreateOrder(ctx context.Context, amount float64, receipt string) (Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// Providers bundles the configured processor integrations for injection.
type Providers struct {
	Razorpay Provider
	Stripe   Provider
}

func NewProviders(cfg *config.Config, otl otel.Otel) Providers {
	return Providers{
		Razorpay: NewRazorpay(cfg, otl),
		Stripe:   NewStripe(cfg, otl),
	}
}

// Get resolves a provider by its route name.
func (p Providers) Get(name string) (Provider, error) {
	switch name {
	case ProviderRazorpay:
		return p.Razorpay, nil
	case ProviderStripe:
		return p.Stripe, nil
	default:
		return nil, fmt.Errorf("unknown payment provider: %s", name)
	}
}
