package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Shubrajit22/Zestwear-sub000/mocks"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

func TestCreateGatewayOrderConvertsToMinorUnits(t *testing.T) {
	gw := new(mocks.MockPaymentGateway)
	svc := services.NewCheckoutService(gw)

	gw.On("CreateOrder", int64(129900), "INR", mock.Anything).
		Return(&services.GatewayOrder{ID: "order_abc", Amount: 129900, Currency: "INR"}, nil)

	order, err := svc.CreateGatewayOrder(1299)
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	gw.AssertExpectations(t)
}

func TestCreateGatewayOrderRoundsFractionalPaise(t *testing.T) {
	gw := new(mocks.MockPaymentGateway)
	svc := services.NewCheckoutService(gw)

	// 1299.3 * 100 is 129929.999... in float64; truncation would lose a paisa.
	gw.On("CreateOrder", int64(129930), "INR", mock.Anything).
		Return(&services.GatewayOrder{ID: "order_def", Amount: 129930, Currency: "INR"}, nil)

	_, err := svc.CreateGatewayOrder(1299.3)
	require.NoError(t, err)
	gw.AssertExpectations(t)
}

func TestCreateGatewayOrderRejectsNonPositiveAmount(t *testing.T) {
	gw := new(mocks.MockPaymentGateway)
	svc := services.NewCheckoutService(gw)

	_, err := svc.CreateGatewayOrder(0)
	assert.ErrorIs(t, err, services.ErrValidation)
	gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateGatewayOrderWrapsGatewayFailure(t *testing.T) {
	gw := new(mocks.MockPaymentGateway)
	svc := services.NewCheckoutService(gw)

	gw.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream down"))

	_, err := svc.CreateGatewayOrder(500)
	assert.ErrorIs(t, err, services.ErrGateway)
}
