// Package repository holds the gorm-backed implementations of the service
// store interfaces. Missing records come back as (nil, nil).
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) services.CatalogStore {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ProductByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.Preload("SizeOptions").Preload("StockImages").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepo) SizeOption(productID uint, size string) (*models.SizeOption, error) {
	var opt models.SizeOption
	if err := r.db.Where("product_id = ? AND size = ?", productID, size).First(&opt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &opt, nil
}
