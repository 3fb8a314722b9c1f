package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) services.UserStore {
	return &userRepo{db: db}
}

func (r *userRepo) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
