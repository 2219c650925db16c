package entity

import (
	"gorm.io/gorm"
)

type PaymentMethod struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"-"`
	User   User `json:"-"`

	Type  string `json:"type"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	// At most one default per user, enforced transactionally in the service.
	IsDefault bool `json:"isDefault"`
}
