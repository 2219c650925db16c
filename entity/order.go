package entity

import (
	"gorm.io/gorm"
)

// Initial order status. The backend never transitions it; later values
// ("pending", "completed", "cancelled") are written by an external process.
const OrderStatusPreparing = "En préparation"

// Order is the checkout payload persisted verbatim. The address and the
// per-restaurant summaries are denormalized copies taken at checkout time;
// they are not kept in sync with the source records.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"-"`
	User   User `json:"-"`

	OrderNumber  string  `json:"orderNumber"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryFees float64 `json:"deliveryFees"`
	Total        float64 `json:"total"`

	PaymentMethod string `json:"paymentMethod"`

	// Address snapshot.
	AddressLabel         string  `json:"-"`
	AddressText          string  `json:"-"`
	DeliveryInstructions string  `json:"-"`
	DeliveryMethod       string  `json:"-"`
	DeliveryOption       string  `json:"-"`
	Latitude             float64 `json:"-"`
	Longitude            float64 `json:"-"`

	Items       []OrderItem       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Restaurants []OrderRestaurant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"restaurants"`
}
