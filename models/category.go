package models

type ProductCategory struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"unique;not null" json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
