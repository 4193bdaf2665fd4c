package dto

import (
	"frigate/infras/payment"
)

type CreateOrderRequest struct {
	BookingCode string  `json:"booking_code" validate:"required"`
	Amount      float64 `json:"amount"       validate:"required,gt=0"`
}

type OrderResponse struct {
	OrderID      string `json:"order_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Provider     string `json:"provider"`
	ClientSecret string `json:"client_secret,omitempty"`
}

func (r *OrderResponse) FromOrder(provider string, order payment.Order) {
	r.OrderID = order.ID
	r.Amount = order.Amount
	r.Currency = order.Currency
	r.Provider = provider
	r.ClientSecret = order.ClientSecret
}

type VerifyRequest struct {
	BookingCode string `json:"booking_code" validate:"required"`
	OrderID     string `json:"order_id"     validate:"required"`
	PaymentID   string `json:"payment_id"   validate:"required"`
	Signature   string `json:"signature"    validate:"required"`
}

type VerifyResponse struct {
	BookingCode   string `json:"booking_code"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	PaymentID     string `json:"payment_id"`
}
