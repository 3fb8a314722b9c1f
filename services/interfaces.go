package services

import "github.com/Shubrajit22/Zestwear-sub000/models"

// Store interfaces return (nil, nil) for a missing record; the services map
// that onto the not-found error class.

type CatalogStore interface {
	ProductByID(id uint) (*models.Product, error)
	SizeOption(productID uint, size string) (*models.SizeOption, error)
}

type CartStore interface {
	ItemByID(id uint) (*models.CartItem, error)
	FindLine(userID string, productID uint, size string) (*models.CartItem, error)
	ItemsForUser(userID string) ([]models.CartItem, error)
	Save(item *models.CartItem) error
	DeleteItem(id uint) error
	ClearUser(userID string) error
}

type UserStore interface {
	ByEmail(email string) (*models.User, error)
}

type OrderStore interface {
	ByID(id uint) (*models.Order, error)
	ByPaymentID(paymentID string) (*models.Order, error)
	// CreateWithItems persists the order with its items and clears the
	// user's cart in a single transaction.
	CreateWithItems(order *models.Order, clearCartOfUser string) error
	Save(order *models.Order) error
	ListAll() ([]models.Order, error)
	ListForUser(userID string) ([]models.Order, error)
}

type ReturnStore interface {
	ByID(id uint) (*models.ReturnRequest, error)
	Create(req *models.ReturnRequest) error
	Save(req *models.ReturnRequest) error
	List(status models.ReturnStatus) ([]models.ReturnRequest, error)
}

// GatewayOrder is the handle returned by the payment provider for a checkout.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
}

type PaymentGateway interface {
	CreateOrder(amountMinor int64, currency, receipt string) (*GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

type Mailer interface {
	Send(to, subject, body string) error
}
