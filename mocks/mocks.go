// Package mocks provides testify mocks for the service-layer store,
// gateway and mailer interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) ProductByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogStore) SizeOption(productID uint, size string) (*models.SizeOption, error) {
	args := m.Called(productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SizeOption), args.Error(1)
}

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) ItemByID(id uint) (*models.CartItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartStore) FindLine(userID string, productID uint, size string) (*models.CartItem, error) {
	args := m.Called(userID, productID, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartItem), args.Error(1)
}

func (m *MockCartStore) ItemsForUser(userID string) ([]models.CartItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCartStore) Save(item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartStore) DeleteItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCartStore) ClearUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) ByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) ByPaymentID(paymentID string) (*models.Order, error) {
	args := m.Called(paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderStore) CreateWithItems(order *models.Order, clearCartOfUser string) error {
	args := m.Called(order, clearCartOfUser)
	return args.Error(0)
}

func (m *MockOrderStore) Save(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderStore) ListAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) ListForUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

type MockReturnStore struct {
	mock.Mock
}

func (m *MockReturnStore) ByID(id uint) (*models.ReturnRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReturnRequest), args.Error(1)
}

func (m *MockReturnStore) Create(req *models.ReturnRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockReturnStore) Save(req *models.ReturnRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockReturnStore) List(status models.ReturnStatus) ([]models.ReturnRequest, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReturnRequest), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(amountMinor int64, currency, receipt string) (*services.GatewayOrder, error) {
	args := m.Called(amountMinor, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.GatewayOrder), args.Error(1)
}

func (m *MockPaymentGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	args := m.Called(gatewayOrderID, paymentID, signature)
	return args.Bool(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
