package repository

import (
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// MenuByRestaurant returns the menu rows in display order, section
// headers interleaved with the items they introduce.
func (r *RestaurantRepository) MenuByRestaurant(restaurantID uint) ([]entity.Menu, error) {
	var rows []entity.Menu
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Preload("Options").
		Preload("Options.Choices").
		Order("sort_order").
		Find(&rows).Error
	return rows, err
}
