package entity

import (
	"gorm.io/gorm"
)

// Restaurant is read-only reference data, seeded at startup.
type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	DeliveryFee  float64 `json:"deliveryFee"`
	Address      string  `json:"address"`

	Menu []Menu `json:"-"`
}
