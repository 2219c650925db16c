package entity

import (
	"gorm.io/gorm"
)

// Menu row kinds. A section is a divider heading between groups of
// items ("Entrées", "Desserts", ...); only items are orderable.
const (
	MenuKindSection = "section"
	MenuKindItem    = "item"
)

type Menu struct {
	gorm.Model
	RestaurantID uint       `gorm:"index;not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	// SortOrder places rows within a restaurant's menu, sections included.
	SortOrder int `json:"-"`

	Options []MenuOption `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options,omitempty"`
}
