package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type returnRepo struct {
	db *gorm.DB
}

func NewReturnStore(db *gorm.DB) services.ReturnStore {
	return &returnRepo{db: db}
}

func (r *returnRepo) ByID(id uint) (*models.ReturnRequest, error) {
	var req models.ReturnRequest
	if err := r.db.Preload("Items").First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *returnRepo) Create(req *models.ReturnRequest) error {
	return r.db.Create(req).Error
}

func (r *returnRepo) Save(req *models.ReturnRequest) error {
	return r.db.Omit("Items", "Order").Save(req).Error
}

func (r *returnRepo) List(status models.ReturnStatus) ([]models.ReturnRequest, error) {
	q := r.db.Preload("Items").Preload("Order").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reqs []models.ReturnRequest
	if err := q.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}
