package models

import "time"

type OrderStatus string
type PaymentStatus string
type ShippingStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"

	ShippingStatusProcessing     ShippingStatus = "processing"
	ShippingStatusShipped        ShippingStatus = "shipped"
	ShippingStatusOutForDelivery ShippingStatus = "out-for-delivery"
	ShippingStatusDelivered      ShippingStatus = "delivered"
	ShippingStatusCancelled      ShippingStatus = "cancelled"
)

// ValidShippingStatus reports whether s is one of the enumerated shipping
// states. Arbitrary strings are rejected at the service boundary.
func ValidShippingStatus(s ShippingStatus) bool {
	switch s {
	case ShippingStatusProcessing, ShippingStatusShipped, ShippingStatusOutForDelivery,
		ShippingStatusDelivered, ShippingStatusCancelled:
		return true
	}
	return false
}

// Order is the immutable record of a completed checkout. Address is a plain
// text snapshot so later address edits or deletes cannot change it.
type Order struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string         `gorm:"index;not null" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"user"`
	Items          []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Address        string         `gorm:"not null" json:"address"`
	TotalAmount    float64        `gorm:"not null" json:"total_amount"`
	Status         OrderStatus    `gorm:"type:VARCHAR(20);default:'confirmed'" json:"status"`
	PaymentStatus  PaymentStatus  `gorm:"type:VARCHAR(20);default:'paid'" json:"payment_status"`
	ShippingStatus ShippingStatus `gorm:"type:VARCHAR(20);default:'processing'" json:"shipping_status"`
	GatewayOrderID string         `json:"gateway_order_id"`
	PaymentID      string         `gorm:"uniqueIndex" json:"payment_id"` // idempotency key for confirmation retries
	CreatedAt      time.Time      `json:"created_at"`
}

// OrderItem snapshots a purchased line. Name and Price are denormalized at
// purchase time so later product edits cannot alter placed orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Product     Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductName string  `json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
	Size        string  `json:"size"`
}
