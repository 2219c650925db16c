package repository

import (
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

func (r *AddressRepository) ListByUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

// FindOwned returns the address only when it belongs to the user.
func (r *AddressRepository) FindOwned(userID, id uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Address{}).Error
}
