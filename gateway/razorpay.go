// Package gateway wraps the Razorpay client behind the service-layer
// PaymentGateway interface.
package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/razorpay/razorpay-go"

	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayFromEnv() (*RazorpayGateway, error) {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("razorpay configuration missing")
	}
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(amountMinor int64, currency, receipt string) (*services.GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	id, _ := resp["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay returned no order id")
	}
	out := &services.GatewayOrder{ID: id, Amount: amountMinor, Currency: currency}
	if cur, ok := resp["currency"].(string); ok {
		out.Currency = cur
	}
	if amt, ok := resp["amount"].(float64); ok {
		out.Amount = int64(amt)
	}
	return out, nil
}

// VerifySignature checks the HMAC-SHA256 of "orderID|paymentID" that Razorpay
// hands to the client after a successful payment.
func (g *RazorpayGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
