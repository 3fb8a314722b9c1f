package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Shubrajit22/Zestwear-sub000/mocks"
	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type orderFixtures struct {
	orders  *mocks.MockOrderStore
	users   *mocks.MockUserStore
	catalog *mocks.MockCatalogStore
	gateway *mocks.MockPaymentGateway
	mail    *mocks.MockMailer
	svc     *services.OrderService
}

func newOrderFixtures() *orderFixtures {
	f := &orderFixtures{
		orders:  new(mocks.MockOrderStore),
		users:   new(mocks.MockUserStore),
		catalog: new(mocks.MockCatalogStore),
		gateway: new(mocks.MockPaymentGateway),
		mail:    new(mocks.MockMailer),
	}
	f.svc = services.NewOrderService(f.orders, f.users, f.catalog, f.gateway, f.mail, "orders@zestwear.in")
	return f
}

func confirmInput() services.ConfirmPaymentInput {
	return services.ConfirmPaymentInput{
		PaymentID:      "pay_123",
		GatewayOrderID: "order_abc",
		Signature:      "sig",
		Email:          "buyer@example.com",
		Amount:         1450,
		Address:        "12 MG Road, Guwahati",
		Items: []services.ConfirmPaymentItem{
			{ProductID: 7, Size: "M", Quantity: 2, Price: 450},
			{ProductID: 9, Size: "L", Quantity: 1, Price: 550},
		},
	}
}

func TestConfirmPaymentCreatesOrderWithServerPricing(t *testing.T) {
	f := newOrderFixtures()

	f.orders.On("ByPaymentID", "pay_123").Return(nil, nil)
	f.users.On("ByEmail", "buyer@example.com").Return(&models.User{ID: "u1", Name: "Riya", Email: "buyer@example.com"}, nil)
	f.gateway.On("VerifySignature", "order_abc", "pay_123", "sig").Return(true)
	f.catalog.On("SizeOption", uint(7), "M").Return(&models.SizeOption{ProductID: 7, Size: "M", Price: 450}, nil)
	f.catalog.On("ProductByID", uint(7)).Return(&models.Product{ID: 7, Name: "School Shirt"}, nil)
	f.catalog.On("SizeOption", uint(9), "L").Return(&models.SizeOption{ProductID: 9, Size: "L", Price: 550}, nil)
	f.catalog.On("ProductByID", uint(9)).Return(&models.Product{ID: 9, Name: "School Trousers"}, nil)
	f.orders.On("CreateWithItems", mock.MatchedBy(func(o *models.Order) bool {
		return o.UserID == "u1" &&
			o.TotalAmount == 1450 &&
			o.PaymentID == "pay_123" &&
			o.ShippingStatus == models.ShippingStatusProcessing &&
			len(o.Items) == 2 &&
			o.Items[0].ProductName == "School Shirt" &&
			o.Items[0].Price == 450
	}), "u1").Return(nil)
	f.mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	order, err := f.svc.ConfirmPayment(confirmInput())
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	f.orders.AssertExpectations(t)
	f.mail.AssertNumberOfCalls(t, "Send", 2)
}

func TestConfirmPaymentIsIdempotentPerPaymentID(t *testing.T) {
	f := newOrderFixtures()

	existing := &models.Order{ID: 41, PaymentID: "pay_123"}
	f.orders.On("ByPaymentID", "pay_123").Return(existing, nil)

	order, err := f.svc.ConfirmPayment(confirmInput())
	require.NoError(t, err)
	assert.Equal(t, uint(41), order.ID)
	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPaymentRejectsPriceDrift(t *testing.T) {
	f := newOrderFixtures()

	in := confirmInput()
	in.Items = in.Items[:1]
	in.Amount = 100 // far below the current size-option price

	f.orders.On("ByPaymentID", "pay_123").Return(nil, nil)
	f.users.On("ByEmail", "buyer@example.com").Return(&models.User{ID: "u1", Email: "buyer@example.com"}, nil)
	f.gateway.On("VerifySignature", "order_abc", "pay_123", "sig").Return(true)
	f.catalog.On("SizeOption", uint(7), "M").Return(&models.SizeOption{ProductID: 7, Size: "M", Price: 450}, nil)
	f.catalog.On("ProductByID", uint(7)).Return(&models.Product{ID: 7, Name: "School Shirt"}, nil)

	_, err := f.svc.ConfirmPayment(in)
	assert.ErrorIs(t, err, services.ErrValidation)
	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
}

func TestConfirmPaymentRejectsBadSignature(t *testing.T) {
	f := newOrderFixtures()

	f.orders.On("ByPaymentID", "pay_123").Return(nil, nil)
	f.users.On("ByEmail", "buyer@example.com").Return(&models.User{ID: "u1", Email: "buyer@example.com"}, nil)
	f.gateway.On("VerifySignature", "order_abc", "pay_123", "sig").Return(false)

	_, err := f.svc.ConfirmPayment(confirmInput())
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestConfirmPaymentRequiresSignature(t *testing.T) {
	f := newOrderFixtures()

	in := confirmInput()
	in.Signature = ""

	_, err := f.svc.ConfirmPayment(in)
	assert.ErrorIs(t, err, services.ErrValidation)
	f.gateway.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
}

func TestConfirmPaymentUnknownUser(t *testing.T) {
	f := newOrderFixtures()

	f.orders.On("ByPaymentID", "pay_123").Return(nil, nil)
	f.users.On("ByEmail", "buyer@example.com").Return(nil, nil)

	_, err := f.svc.ConfirmPayment(confirmInput())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestConfirmPaymentRejectsEmptyItems(t *testing.T) {
	f := newOrderFixtures()

	in := confirmInput()
	in.Items = nil

	_, err := f.svc.ConfirmPayment(in)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCancelOrderWhileProcessing(t *testing.T) {
	f := newOrderFixtures()

	order := &models.Order{
		ID:             5,
		UserID:         "u1",
		User:           models.User{ID: "u1", Name: "Riya", Email: "buyer@example.com"},
		ShippingStatus: models.ShippingStatusProcessing,
		Status:         models.OrderStatusConfirmed,
	}
	f.orders.On("ByID", uint(5)).Return(order, nil)
	f.orders.On("Save", order).Return(nil)
	f.mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	cancelled, err := f.svc.CancelOrder(5, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, models.ShippingStatusCancelled, cancelled.ShippingStatus)
	f.mail.AssertNumberOfCalls(t, "Send", 2)
}

func TestCancelOrderRejectedAfterShipping(t *testing.T) {
	f := newOrderFixtures()

	order := &models.Order{ID: 5, UserID: "u1", ShippingStatus: models.ShippingStatusShipped}
	f.orders.On("ByID", uint(5)).Return(order, nil)

	_, err := f.svc.CancelOrder(5, "u1")
	assert.ErrorIs(t, err, services.ErrState)
	assert.Equal(t, models.ShippingStatusShipped, order.ShippingStatus)
	f.orders.AssertNotCalled(t, "Save", mock.Anything)
}

func TestOrderForUserRejectsOtherUsers(t *testing.T) {
	f := newOrderFixtures()

	order := &models.Order{
		ID:      5,
		UserID:  "owner",
		User:    models.User{ID: "owner", Email: "owner@example.com"},
		Address: "12 MG Road, Guwahati",
	}
	f.orders.On("ByID", uint(5)).Return(order, nil)

	_, err := f.svc.OrderForUser(5, "intruder")
	assert.ErrorIs(t, err, services.ErrForbidden)

	got, err := f.svc.OrderForUser(5, "owner")
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
}

func TestCancelOrderRejectsOtherUsers(t *testing.T) {
	f := newOrderFixtures()

	order := &models.Order{ID: 5, UserID: "owner", ShippingStatus: models.ShippingStatusProcessing}
	f.orders.On("ByID", uint(5)).Return(order, nil)

	_, err := f.svc.CancelOrder(5, "intruder")
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestSetShippingStatusRejectsUnknownValue(t *testing.T) {
	f := newOrderFixtures()

	_, err := f.svc.SetShippingStatus(5, "teleported")
	assert.ErrorIs(t, err, services.ErrValidation)
	f.orders.AssertNotCalled(t, "ByID", mock.Anything)
}

func TestSetShippingStatusCancelledCancelsOrder(t *testing.T) {
	f := newOrderFixtures()

	order := &models.Order{ID: 5, Status: models.OrderStatusConfirmed, ShippingStatus: models.ShippingStatusProcessing}
	f.orders.On("ByID", uint(5)).Return(order, nil)
	f.orders.On("Save", order).Return(nil)

	updated, err := f.svc.SetShippingStatus(5, models.ShippingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
}
