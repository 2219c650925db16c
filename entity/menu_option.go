package entity

import (
	"gorm.io/gorm"
)

// MenuOption is an option group on a menu item ("Taille", "Sauce"),
// with the choices the customer can pick from.
type MenuOption struct {
	gorm.Model
	MenuID uint `gorm:"index;not null" json:"-"`
	Menu   Menu `json:"-"`

	Name     string `json:"name"`
	Required bool   `json:"required"`

	Choices []MenuOptionChoice `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"choices"`
}

type MenuOptionChoice struct {
	gorm.Model
	MenuOptionID uint       `gorm:"index;not null" json:"-"`
	MenuOption   MenuOption `json:"-"`

	Name string `json:"name"`
	// Price delta added to the item's base price when chosen.
	Price float64 `json:"price"`
}
