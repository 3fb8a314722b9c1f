package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signedWith(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := &RazorpayGateway{keySecret: "test-secret"}

	valid := signedWith("test-secret", "order_abc", "pay_123")
	assert.True(t, g.VerifySignature("order_abc", "pay_123", valid))
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	g := &RazorpayGateway{keySecret: "test-secret"}

	assert.False(t, g.VerifySignature("order_abc", "pay_123", signedWith("wrong-secret", "order_abc", "pay_123")))
	assert.False(t, g.VerifySignature("order_abc", "pay_999", signedWith("test-secret", "order_abc", "pay_123")))
	assert.False(t, g.VerifySignature("order_abc", "pay_123", "not-a-signature"))
}

func TestNewRazorpayFromEnvRequiresKeys(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := NewRazorpayFromEnv()
	assert.Error(t, err)
}
