package services

import (
	"log"
	"math"

	"github.com/Shubrajit22/Zestwear-sub000/mailer"
	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// Client totals may round differently than the server's; anything beyond this
// is treated as tampering and rejected.
const amountTolerance = 0.5

type OrderService struct {
	orders        OrderStore
	users         UserStore
	catalog       CatalogStore
	gateway       PaymentGateway
	mail          Mailer
	businessEmail string
}

func NewOrderService(orders OrderStore, users UserStore, catalog CatalogStore, gateway PaymentGateway, mail Mailer, businessEmail string) *OrderService {
	return &OrderService{
		orders:        orders,
		users:         users,
		catalog:       catalog,
		gateway:       gateway,
		mail:          mail,
		businessEmail: businessEmail,
	}
}

type ConfirmPaymentItem struct {
	ProductID uint    `json:"productId"`
	SizeID    uint    `json:"sizeId"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // client-reported; verified, never trusted
}

type ConfirmPaymentInput struct {
	PaymentID      string               `json:"razorpay_payment_id"`
	GatewayOrderID string               `json:"razorpay_order_id"`
	Signature      string               `json:"razorpay_signature"`
	Email          string               `json:"email"`
	Amount         float64              `json:"amount"`
	Address        string               `json:"address"`
	Items          []ConfirmPaymentItem `json:"items"`
}

// ConfirmPayment persists the order for a completed gateway payment. The
// order, its items and the cart clear happen in one transaction, and the
// gateway payment id makes retried confirmations idempotent. Unit prices are
// re-read from the size options so the persisted order never depends on
// client-supplied pricing.
func (s *OrderService) ConfirmPayment(in ConfirmPaymentInput) (*models.Order, error) {
	switch {
	case in.PaymentID == "":
		return nil, validationErr("razorpay_payment_id is required")
	case in.GatewayOrderID == "":
		return nil, validationErr("razorpay_order_id is required")
	case in.Signature == "":
		return nil, validationErr("razorpay_signature is required")
	case in.Email == "":
		return nil, validationErr("email is required")
	case in.Address == "":
		return nil, validationErr("address is required")
	case in.Amount <= 0:
		return nil, validationErr("amount must be greater than 0")
	case len(in.Items) == 0:
		return nil, validationErr("order must contain at least one item")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, validationErr("item quantity must be at least 1")
		}
	}

	// A network retry of the confirmation call must not create a second
	// order for the same payment.
	if existing, err := s.orders.ByPaymentID(in.PaymentID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	user, err := s.users.ByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundErr("no user with email %s", in.Email)
	}

	if !s.gateway.VerifySignature(in.GatewayOrderID, in.PaymentID, in.Signature) {
		return nil, validationErr("invalid payment signature")
	}

	var serverTotal float64
	orderItems := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		option, err := s.catalog.SizeOption(item.ProductID, item.Size)
		if err != nil {
			return nil, err
		}
		if option == nil {
			return nil, notFoundErr("size %q is no longer available for product %d", item.Size, item.ProductID)
		}
		product, err := s.catalog.ProductByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, notFoundErr("product %d not found", item.ProductID)
		}
		serverTotal += option.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       option.Price,
			Size:        item.Size,
		})
	}
	if math.Abs(serverTotal-in.Amount) > amountTolerance {
		return nil, validationErr("order amount %.2f does not match the current price %.2f", in.Amount, serverTotal)
	}

	order := &models.Order{
		UserID:         user.ID,
		Items:          orderItems,
		Address:        in.Address,
		TotalAmount:    serverTotal,
		Status:         models.OrderStatusConfirmed,
		PaymentStatus:  models.PaymentStatusPaid,
		ShippingStatus: models.ShippingStatusProcessing,
		GatewayOrderID: in.GatewayOrderID,
		PaymentID:      in.PaymentID,
	}
	if err := s.orders.CreateWithItems(order, user.ID); err != nil {
		return nil, err
	}

	s.sendBoth(user.Email,
		mailer.OrderConfirmationSubject(order.ID),
		mailer.OrderConfirmationBody(*order, user.Name),
		mailer.OrderPlacedAlertBody(*order, user.Name, user.Email))

	return order, nil
}

// CancelOrder cancels an order that has not left processing. Any other
// shipping status fails and leaves the order untouched. Refunds stay a
// manual/offline process; the emails say so.
func (s *OrderService) CancelOrder(orderID uint, userID string) (*models.Order, error) {
	order, err := s.orders.ByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFoundErr("order %d not found", orderID)
	}
	if order.UserID != userID {
		return nil, forbiddenErr("order belongs to another user")
	}
	if order.ShippingStatus != models.ShippingStatusProcessing {
		return nil, stateErr("cannot cancel after shipped")
	}

	order.Status = models.OrderStatusCancelled
	order.ShippingStatus = models.ShippingStatusCancelled
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	userName, userEmail := order.User.Name, order.User.Email
	s.sendBoth(userEmail,
		mailer.OrderCancellationSubject(order.ID),
		mailer.OrderCancellationBody(*order, userName),
		mailer.OrderCancellationAlertBody(*order, userName, userEmail))

	return order, nil
}

// SetShippingStatus is the admin-driven lifecycle transition. The status must
// belong to the enumerated set; arbitrary strings are rejected.
func (s *OrderService) SetShippingStatus(orderID uint, status models.ShippingStatus) (*models.Order, error) {
	if !models.ValidShippingStatus(status) {
		return nil, validationErr("unknown shipping status %q", status)
	}
	order, err := s.orders.ByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFoundErr("order %d not found", orderID)
	}
	order.ShippingStatus = status
	if status == models.ShippingStatusCancelled {
		order.Status = models.OrderStatusCancelled
	}
	if err := s.orders.Save(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Order is the unrestricted lookup for admin callers.
func (s *OrderService) Order(orderID uint) (*models.Order, error) {
	order, err := s.orders.ByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFoundErr("order %d not found", orderID)
	}
	return order, nil
}

// OrderForUser looks up an order on behalf of its owner. Reading someone
// else's order is forbidden; it carries their email and shipping address.
func (s *OrderService) OrderForUser(orderID uint, userID string) (*models.Order, error) {
	order, err := s.Order(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, forbiddenErr("order belongs to another user")
	}
	return order, nil
}

func (s *OrderService) Orders() ([]models.Order, error) {
	return s.orders.ListAll()
}

func (s *OrderService) OrdersForUser(userID string) ([]models.Order, error) {
	return s.orders.ListForUser(userID)
}

// sendBoth notifies the purchaser and the business inbox. Notification is
// best-effort relative to persistence: failures are logged, never returned.
func (s *OrderService) sendBoth(userEmail, subject, userBody, businessBody string) {
	if s.mail == nil {
		return
	}
	if userEmail != "" {
		if err := s.mail.Send(userEmail, subject, userBody); err != nil {
			log.Printf("mail: failed to notify %s: %v", userEmail, err)
		}
	}
	if s.businessEmail != "" {
		if err := s.mail.Send(s.businessEmail, subject, businessBody); err != nil {
			log.Printf("mail: failed to notify business inbox: %v", err)
		}
	}
}
