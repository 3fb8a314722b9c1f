package models

import "time"

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "requested"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusRefunded  ReturnStatus = "refunded"
)

// ReturnRequest is the queryable record of a return. Allowed transitions:
// requested -> approved | rejected, approved -> refunded.
type ReturnRequest struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint         `gorm:"index;not null" json:"order_id"`
	Order     Order        `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	UserID    string       `gorm:"index;not null" json:"user_id"`
	Reason    string       `gorm:"not null" json:"reason"`
	Status    ReturnStatus `gorm:"type:VARCHAR(20);default:'requested'" json:"status"`
	Items     []ReturnItem `gorm:"foreignKey:ReturnRequestID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ReturnItem struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReturnRequestID uint   `gorm:"index" json:"return_request_id"`
	ProductID       uint   `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	Size            string `json:"size"`
}
