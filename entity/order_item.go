package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	ItemID       string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	RestaurantID string  `json:"restaurantId"`

	Options []OrderItemOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options"`
}

// OrderItemOption records one option choice made on a line item,
// e.g. {Name:"Taille", ChoiceName:"Grande", ChoicePrice:2}.
type OrderItemOption struct {
	gorm.Model
	OrderItemID uint      `json:"-"`
	OrderItem   OrderItem `json:"-"`

	Name        string  `json:"name"`
	ChoiceID    string  `json:"choiceId"`
	ChoiceName  string  `json:"choiceName"`
	ChoicePrice float64 `json:"choicePrice"`
}
