package repository

import (
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// CreateOrder writes the order with its items, options and restaurant
// summaries in one go (gorm cascades the associations).
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Options").
		Preload("Restaurants").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) FindOwned(userID, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Items").
		Preload("Items.Options").
		Preload("Restaurants").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
