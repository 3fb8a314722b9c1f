package services

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

const checkoutCurrency = "INR"

type CheckoutService struct {
	gateway PaymentGateway
}

func NewCheckoutService(gateway PaymentGateway) *CheckoutService {
	return &CheckoutService{gateway: gateway}
}

// CreateGatewayOrder registers an order for amount (major currency units)
// with the payment gateway and returns its handle. Gateway failures are not
// retried; the client re-initiates checkout.
func (s *CheckoutService) CreateGatewayOrder(amount float64) (*GatewayOrder, error) {
	if amount <= 0 {
		return nil, validationErr("amount must be greater than 0")
	}
	receipt := fmt.Sprintf("rcpt_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	order, err := s.gateway.CreateOrder(int64(math.Round(amount*100)), checkoutCurrency, receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: order creation failed", ErrGateway)
	}
	return order, nil
}
