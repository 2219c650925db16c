package entity

import (
	"gorm.io/gorm"
)

// Delivery methods a customer can pick for an address.
const (
	DeliveryMethodHand    = "hand"
	DeliveryMethodDropoff = "dropoff"
)

type Address struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"-"`
	User   User `json:"-"`

	Label                string  `json:"label"`
	Address              string  `json:"address"`
	DeliveryInstructions string  `json:"deliveryInstructions,omitempty"`
	DeliveryMethod       string  `json:"deliveryMethod"`
	DeliveryOption       string  `json:"deliveryOption,omitempty"`
	Icon                 string  `json:"icon"`
	Latitude             float64 `json:"-"`
	Longitude            float64 `json:"-"`
}
