package models

import "time"

type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Mobile    *string    `gorm:"uniqueIndex" json:"mobile,omitempty"` // nil when absent; "" would collide on the unique index
	Password  string     `json:"-"` // bcrypt hash, empty for OAuth-only accounts
	Name      string     `json:"name"`
	IsAdmin   bool       `json:"is_admin"`
	Image     string     `json:"image"`
	Provider  string     `json:"provider"` // "credentials" or "google"
	Addresses []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Reviews   []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// Address is a free-text shipping address owned by one user. Orders never
// reference it; they snapshot the text instead.
type Address struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
