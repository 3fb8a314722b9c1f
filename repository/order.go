package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) services.OrderStore {
	return &orderRepo{db: db}
}

func (r *orderRepo) ByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("User").Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) ByPaymentID(paymentID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Where("payment_id = ?", paymentID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// CreateWithItems writes the order, its items and the cart clear as one
// transaction, so a partial failure cannot leave an order without items or
// an uncleared cart behind.
func (r *orderRepo) CreateWithItems(order *models.Order, clearCartOfUser string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", clearCartOfUser).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepo) Save(order *models.Order) error {
	return r.db.Omit("Items", "User").Save(order).Error
}

func (r *orderRepo) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepo) ListForUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
