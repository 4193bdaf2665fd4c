package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"frigate/infras/payment"
)

func referenceSign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func TestSign_MatchesReferenceDigest(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		orderID   string
		paymentID string
		expected  string
	}{
		{
			name:      "known vector with processor test secret",
			secret:    "rzp_test_mock_secret",
			orderID:   "order_MkQhgfyFxsbzfn",
			paymentID: "pay_MkQiPzLVoQMadA",
			expected:  "984840701a73829849baf9852a9d78b7fb6dcb168d47699990d30dd40b09277e",
		},
		{
			name:      "known vector with short identifiers",
			secret:    "test-secret",
			orderID:   "order_1",
			paymentID: "pay_1",
			expected:  "ba2a3986f33d5a6e148e445a747b407633361cc2fbc1d2faadd70ca5e101984e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := payment.Sign(tt.secret, tt.orderID, tt.paymentID)

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, referenceSign(tt.secret, tt.orderID, tt.paymentID), got)
		})
	}
}

func TestVerifySign(t *testing.T) {
	const (
		secret    = "rzp_test_mock_secret"
		orderID   = "order_MkQhgfyFxsbzfn"
		paymentID = "pay_MkQiPzLVoQMadA"
	)

	valid := payment.Sign(secret, orderID, paymentID)

	assert.True(t, payment.VerifySign(secret, orderID, paymentID, valid))
	assert.False(t, payment.VerifySign(secret, orderID, paymentID, "deadbeef"))

	// Tampering with a single character anywhere flips the result.
	tampered := []byte(valid)
	tampered[0] ^= 0x01
	assert.False(t, payment.VerifySign(secret, orderID, paymentID, string(tampered)))

	assert.False(t, payment.VerifySign(secret, orderID+"x", paymentID, valid))
	assert.False(t, payment.VerifySign(secret, orderID, paymentID+"x", valid))
	assert.False(t, payment.VerifySign(secret+"x", orderID, paymentID, valid))
}

func TestVerifySign_EmptySecretFailsClosed(t *testing.T) {
	sig := payment.Sign("", "order_1", "pay_1")

	assert.False(t, payment.VerifySign("", "order_1", "pay_1", sig))
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected int64
	}{
		{name: "whole amount", amount: 100, expected: 10000},
		{name: "fractional amount", amount: 149.99, expected: 14999},
		{name: "half rounds up", amount: 0.005, expected: 1},
		{name: "sub-cent rounds down", amount: 0.004, expected: 0},
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, payment.MinorUnits(tt.amount))
		})
	}
}
