package models

import "time"

// CartItem is one (user, product, size) line. Price is captured from the
// matching SizeOption when the line is first added, not recomputed live;
// rows created before price capture existed may have a NULL price.
// The composite unique index keeps concurrent adds from duplicating a line.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_product_size" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product_size" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Size      string    `gorm:"not null;uniqueIndex:idx_cart_user_product_size" json:"size"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     *float64  `json:"price"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
