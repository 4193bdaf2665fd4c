package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
)

// MinorUnits converts a major-unit amount to the processor's smallest
// currency unit, rounding half up.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Sign computes the lowercase hex HMAC-SHA256 digest of
// orderID + "|" + paymentID keyed with the processor secret.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySign recomputes the callback signature and compares it in constant
// time. An empty secret fails closed.
func VerifySign(secret, orderID, paymentID, signature string) bool {
	if secret == "" {
		return false
	}

	expected := Sign(secret, orderID, paymentID)

	return hmac.Equal([]byte(expected), []byte(signature))
}
