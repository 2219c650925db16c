package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl"`

	// Owned collections. The foreign key is the ownership relation;
	// there is no id-list on the user record to keep in sync.
	Addresses      []Address       `json:"-"`
	PaymentMethods []PaymentMethod `json:"-"`
	Orders         []Order         `json:"-"`
}
