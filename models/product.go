package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeUniform ProductType = "uniform"
	ProductTypeApparel ProductType = "apparel"
	ProductTypeGeneric ProductType = "generic"
)

type Product struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description"`
	Price       float64     `gorm:"not null" json:"price"`
	MRP         float64     `json:"mrp"`
	Discount    float64     `json:"discount"`
	CategoryID  *uint       `gorm:"index" json:"category_id"`
	Type        ProductType `gorm:"type:VARCHAR(20);default:'generic'" json:"type"`

	// Uniform-specific fields
	State       string `json:"state,omitempty"`
	District    string `json:"district,omitempty"`
	Institution string `json:"institution,omitempty"`

	// Apparel-specific fields
	Color    string `json:"color,omitempty"`
	Texture  string `json:"texture,omitempty"`
	Neckline string `json:"neckline,omitempty"`

	Rating   float64 `json:"rating"` // denormalized average, refreshed on review writes
	ImageURL string  `json:"image_url"`

	SizeOptions []SizeOption `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"size_options,omitempty"`
	StockImages []StockImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"stock_images,omitempty"`
	Reviews     []Review     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SizeOption carries the authoritative price for a (product, size) pair.
// It overrides the product base price at cart and order time.
type SizeOption struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Size      string  `gorm:"not null" json:"size"`
	Price     float64 `gorm:"not null" json:"price"`
}

type StockImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
}
