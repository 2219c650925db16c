package entity

import (
	"gorm.io/gorm"
)

// OrderRestaurant is the per-restaurant summary embedded in an order:
// which restaurants the cart spanned, each with its own subtotal and
// delivery fee.
type OrderRestaurant struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryFee  float64 `json:"deliveryFee"`
}
