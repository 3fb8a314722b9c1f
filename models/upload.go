package models

import (
	"time"

	"gorm.io/gorm"
)

// UploadedFile records an image saved under the uploads directory by an admin
// (banners, loose stock imagery).
type UploadedFile struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FileName  string         `gorm:"not null" json:"file_name"`
	FileURL   string         `gorm:"not null" json:"file_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
