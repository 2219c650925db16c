package services

import (
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
	"github.com/TheLiloji/UberV3-sub000/repository"
)

type OrderService struct {
	DB   *gorm.DB
	repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, repo: repo}
}

// ----- DTOs from Controller -----

type OrderItemOptionIn struct {
	Name        string  `json:"name"`
	ChoiceID    string  `json:"choiceId"`
	ChoiceName  string  `json:"choiceName"`
	ChoicePrice float64 `json:"choicePrice"`
}

type OrderItemIn struct {
	ID           string              `json:"id" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	Price        float64             `json:"price"`
	Quantity     int                 `json:"quantity" binding:"required,min=1"`
	RestaurantID string              `json:"restaurantId"`
	Options      []OrderItemOptionIn `json:"options"`
}

type OrderAddressIn struct {
	Label                string         `json:"label" binding:"required"`
	Address              string         `json:"address" binding:"required"`
	DeliveryInstructions string         `json:"deliveryInstructions"`
	DeliveryMethod       string         `json:"deliveryMethod"`
	DeliveryOption       string         `json:"deliveryOption"`
	Coordinates          *CoordinatesIn `json:"coordinates"`
}

type OrderRestaurantIn struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryFee  float64 `json:"deliveryFee"`
}

// CreateOrderReq is the checkout payload assembled client-side. The
// backend persists it as-is; totals were computed by the order assembly.
// There is no idempotency key: posting the same payload twice creates
// two orders (known gap, kept as current behavior).
type CreateOrderReq struct {
	OrderNumber   string              `json:"orderNumber" binding:"required"`
	Date          string              `json:"date"`
	Items         []OrderItemIn       `json:"items" binding:"required,min=1,dive"`
	Address       *OrderAddressIn     `json:"address" binding:"required"`
	PaymentMethod string              `json:"paymentMethod"`
	Subtotal      float64             `json:"subtotal"`
	DeliveryFees  float64             `json:"deliveryFees"`
	Total         float64             `json:"total"`
	Restaurants   []OrderRestaurantIn `json:"restaurants"`
}

// Create persists the order with its line items, option choices and
// restaurant summaries in one transaction. Status always starts at
// "En préparation"; nothing in this codebase transitions it afterward.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	o := &entity.Order{
		UserID:        userID,
		OrderNumber:   req.OrderNumber,
		Date:          req.Date,
		Status:        entity.OrderStatusPreparing,
		Subtotal:      req.Subtotal,
		DeliveryFees:  req.DeliveryFees,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,

		AddressLabel:         req.Address.Label,
		AddressText:          req.Address.Address,
		DeliveryInstructions: req.Address.DeliveryInstructions,
		DeliveryMethod:       req.Address.DeliveryMethod,
		DeliveryOption:       req.Address.DeliveryOption,
	}
	if req.Address.Coordinates != nil {
		o.Latitude = req.Address.Coordinates.Latitude
		o.Longitude = req.Address.Coordinates.Longitude
	}

	for _, it := range req.Items {
		row := entity.OrderItem{
			ItemID:       it.ID,
			Name:         it.Name,
			Price:        it.Price,
			Quantity:     it.Quantity,
			RestaurantID: it.RestaurantID,
		}
		for _, op := range it.Options {
			row.Options = append(row.Options, entity.OrderItemOption{
				Name:        op.Name,
				ChoiceID:    op.ChoiceID,
				ChoiceName:  op.ChoiceName,
				ChoicePrice: op.ChoicePrice,
			})
		}
		o.Items = append(o.Items, row)
	}

	for _, rt := range req.Restaurants {
		o.Restaurants = append(o.Restaurants, entity.OrderRestaurant{
			RestaurantID: rt.RestaurantID,
			Name:         rt.Name,
			Image:        rt.Image,
			Subtotal:     rt.Subtotal,
			DeliveryFee:  rt.DeliveryFee,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.repo.CreateOrder(tx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(userID uint) ([]entity.Order, error) {
	return s.repo.ListByUser(userID)
}
