package services

import (
	"log"
	"time"

	"github.com/Shubrajit22/Zestwear-sub000/mailer"
	"github.com/Shubrajit22/Zestwear-sub000/models"
)

// Orders are returnable for 7 days after creation.
const returnWindow = 7 * 24 * time.Hour

type ReturnService struct {
	returns       ReturnStore
	orders        OrderStore
	users         UserStore
	mail          Mailer
	businessEmail string
}

func NewReturnService(returns ReturnStore, orders OrderStore, users UserStore, mail Mailer, businessEmail string) *ReturnService {
	return &ReturnService{
		returns:       returns,
		orders:        orders,
		users:         users,
		mail:          mail,
		businessEmail: businessEmail,
	}
}

type ReturnItemInput struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// Request opens a return for a delivered order inside the return window and
// notifies both parties. Eligibility is enforced here, not left to the UI.
func (s *ReturnService) Request(orderID uint, email, reason string, items []ReturnItemInput) (*models.ReturnRequest, error) {
	switch {
	case orderID == 0:
		return nil, validationErr("orderId is required")
	case email == "":
		return nil, validationErr("userEmail is required")
	case reason == "":
		return nil, validationErr("reason is required")
	}

	order, err := s.orders.ByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFoundErr("order %d not found", orderID)
	}
	user, err := s.users.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundErr("no user with email %s", email)
	}
	if order.UserID != user.ID {
		return nil, forbiddenErr("order belongs to another user")
	}
	if order.ShippingStatus != models.ShippingStatusDelivered {
		return nil, stateErr("only delivered orders can be returned")
	}
	if time.Since(order.CreatedAt) > returnWindow {
		return nil, stateErr("return window of 7 days has passed")
	}

	req := &models.ReturnRequest{
		OrderID: orderID,
		UserID:  user.ID,
		Reason:  reason,
		Status:  models.ReturnStatusRequested,
	}
	for _, item := range items {
		req.Items = append(req.Items, models.ReturnItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Size:        item.Size,
		})
	}
	if err := s.returns.Create(req); err != nil {
		return nil, err
	}

	if s.mail != nil {
		subject := mailer.ReturnRequestSubject(orderID)
		if err := s.mail.Send(s.businessEmail, subject, mailer.ReturnRequestAlertBody(*req, user.Name, user.Email)); err != nil {
			log.Printf("mail: failed to notify business inbox: %v", err)
		}
		if err := s.mail.Send(user.Email, subject, mailer.ReturnRequestBody(*req, user.Name)); err != nil {
			log.Printf("mail: failed to notify %s: %v", user.Email, err)
		}
	}
	return req, nil
}

func (s *ReturnService) Approve(id uint) (*models.ReturnRequest, error) {
	return s.transition(id, models.ReturnStatusRequested, models.ReturnStatusApproved)
}

func (s *ReturnService) Reject(id uint) (*models.ReturnRequest, error) {
	return s.transition(id, models.ReturnStatusRequested, models.ReturnStatusRejected)
}

// MarkRefunded records the manual refund of an approved return and flips the
// order's payment status. It does not move any money.
func (s *ReturnService) MarkRefunded(id uint) (*models.ReturnRequest, error) {
	req, err := s.transition(id, models.ReturnStatusApproved, models.ReturnStatusRefunded)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.ByID(req.OrderID)
	if err == nil && order != nil {
		order.PaymentStatus = models.PaymentStatusRefunded
		if err := s.orders.Save(order); err != nil {
			log.Printf("returns: failed to mark order %d refunded: %v", order.ID, err)
		}
	}
	return req, nil
}

func (s *ReturnService) List(status models.ReturnStatus) ([]models.ReturnRequest, error) {
	return s.returns.List(status)
}

func (s *ReturnService) transition(id uint, from, to models.ReturnStatus) (*models.ReturnRequest, error) {
	req, err := s.returns.ByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, notFoundErr("return request %d not found", id)
	}
	if req.Status != from {
		return nil, stateErr("return request is %s, expected %s", req.Status, from)
	}
	req.Status = to
	if err := s.returns.Save(req); err != nil {
		return nil, err
	}
	return req, nil
}
