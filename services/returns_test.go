package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Shubrajit22/Zestwear-sub000/mocks"
	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type returnFixtures struct {
	returns *mocks.MockReturnStore
	orders  *mocks.MockOrderStore
	users   *mocks.MockUserStore
	mail    *mocks.MockMailer
	svc     *services.ReturnService
}

func newReturnFixtures() *returnFixtures {
	f := &returnFixtures{
		returns: new(mocks.MockReturnStore),
		orders:  new(mocks.MockOrderStore),
		users:   new(mocks.MockUserStore),
		mail:    new(mocks.MockMailer),
	}
	f.svc = services.NewReturnService(f.returns, f.orders, f.users, f.mail, "orders@zestwear.in")
	return f
}

func deliveredOrder(age time.Duration) *models.Order {
	return &models.Order{
		ID:             5,
		UserID:         "u1",
		ShippingStatus: models.ShippingStatusDelivered,
		CreatedAt:      time.Now().Add(-age),
	}
}

func TestRequestReturnForDeliveredOrder(t *testing.T) {
	f := newReturnFixtures()

	f.orders.On("ByID", uint(5)).Return(deliveredOrder(48*time.Hour), nil)
	f.users.On("ByEmail", "buyer@example.com").Return(&models.User{ID: "u1", Name: "Riya", Email: "buyer@example.com"}, nil)
	f.returns.On("Create", mock.MatchedBy(func(req *models.ReturnRequest) bool {
		return req.OrderID == 5 && req.UserID == "u1" &&
			req.Status == models.ReturnStatusRequested && len(req.Items) == 1
	})).Return(nil)
	f.mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req, err := f.svc.Request(5, "buyer@example.com", "wrong size", []services.ReturnItemInput{
		{ProductID: 7, Name: "School Shirt", Quantity: 1, Size: "M"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReturnStatusRequested, req.Status)
	f.mail.AssertNumberOfCalls(t, "Send", 2)
}

func TestRequestReturnAfterWindowClosed(t *testing.T) {
	f := newReturnFixtures()

	f.orders.On("ByID", uint(5)).Return(deliveredOrder(8*24*time.Hour), nil)
	f.users.On("ByEmail", "buyer@example.com").Return(&models.User{ID: "u1", Email: "buyer@example.com"}, nil)

	_, err := f.svc.Request(5, "buyer@example.com", "wrong size", nil)
	assert.ErrorIs(t, err, services.ErrState)
	f.returns.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRequestReturnBeforeDelivery(t *testing.T) {
	f := newReturnFixtures()

	order := deliveredOrder(time.Hour)
	order.ShippingStatus = models.ShippingStatusShipped
	f.orders.On("ByID", uint(5)).Return(order, nil)
	f.users.On("ByEmail", "buyer@example.com").Return(&models.User{ID: "u1", Email: "buyer@example.com"}, nil)

	_, err := f.svc.Request(5, "buyer@example.com", "changed my mind", nil)
	assert.ErrorIs(t, err, services.ErrState)
}

func TestRequestReturnRejectsOtherUsersOrder(t *testing.T) {
	f := newReturnFixtures()

	f.orders.On("ByID", uint(5)).Return(deliveredOrder(time.Hour), nil)
	f.users.On("ByEmail", "other@example.com").Return(&models.User{ID: "u2", Email: "other@example.com"}, nil)

	_, err := f.svc.Request(5, "other@example.com", "not mine", nil)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestApproveRequestedReturn(t *testing.T) {
	f := newReturnFixtures()

	req := &models.ReturnRequest{ID: 2, OrderID: 5, Status: models.ReturnStatusRequested}
	f.returns.On("ByID", uint(2)).Return(req, nil)
	f.returns.On("Save", req).Return(nil)

	updated, err := f.svc.Approve(2)
	require.NoError(t, err)
	assert.Equal(t, models.ReturnStatusApproved, updated.Status)
}

func TestApproveRejectedReturnFails(t *testing.T) {
	f := newReturnFixtures()

	req := &models.ReturnRequest{ID: 2, Status: models.ReturnStatusRejected}
	f.returns.On("ByID", uint(2)).Return(req, nil)

	_, err := f.svc.Approve(2)
	assert.ErrorIs(t, err, services.ErrState)
	f.returns.AssertNotCalled(t, "Save", mock.Anything)
}

func TestMarkRefundedFlipsOrderPaymentStatus(t *testing.T) {
	f := newReturnFixtures()

	req := &models.ReturnRequest{ID: 2, OrderID: 5, Status: models.ReturnStatusApproved}
	order := &models.Order{ID: 5, PaymentStatus: models.PaymentStatusPaid}
	f.returns.On("ByID", uint(2)).Return(req, nil)
	f.returns.On("Save", req).Return(nil)
	f.orders.On("ByID", uint(5)).Return(order, nil)
	f.orders.On("Save", mock.MatchedBy(func(o *models.Order) bool {
		return o.PaymentStatus == models.PaymentStatusRefunded
	})).Return(nil)

	updated, err := f.svc.MarkRefunded(2)
	require.NoError(t, err)
	assert.Equal(t, models.ReturnStatusRefunded, updated.Status)
	f.orders.AssertExpectations(t)
}

func TestMarkRefundedRequiresApproval(t *testing.T) {
	f := newReturnFixtures()

	req := &models.ReturnRequest{ID: 2, Status: models.ReturnStatusRequested}
	f.returns.On("ByID", uint(2)).Return(req, nil)

	_, err := f.svc.MarkRefunded(2)
	assert.ErrorIs(t, err, services.ErrState)
}
