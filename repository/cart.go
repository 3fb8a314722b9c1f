package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) services.CartStore {
	return &cartRepo{db: db}
}

func (r *cartRepo) ItemByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Preload("Product.SizeOptions").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) FindLine(userID string, productID uint, size string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) ItemsForUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product.SizeOptions").
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepo) Save(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepo) DeleteItem(id uint) error {
	return r.db.Delete(&models.CartItem{}, "id = ?", id).Error
}

func (r *cartRepo) ClearUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
