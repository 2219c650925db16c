// Package checkout turns the cart into the order payload posted to the
// backend: lines grouped per restaurant, each group with its own
// subtotal and delivery fee.
package checkout

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/TheLiloji/UberV3-sub000/client/cart"
)

// Fallbacks for lines missing restaurant information.
const (
	UnknownRestaurantID   = "unknown"
	UnknownRestaurantName = "Restaurant inconnu"
)

// DefaultDeliveryFee applies to restaurants absent from the fee table.
const DefaultDeliveryFee = 3.0

// FeeTable maps restaurant id to its delivery fee.
type FeeTable map[string]float64

func (t FeeTable) Fee(restaurantID string) float64 {
	if fee, ok := t[restaurantID]; ok {
		return fee
	}
	return DefaultDeliveryFee
}

// Group is the per-restaurant slice of the cart.
type Group struct {
	RestaurantID string      `json:"restaurantId"`
	Name         string      `json:"name"`
	Image        string      `json:"image"`
	Items        []cart.Item `json:"items"`
	Subtotal     float64     `json:"subtotal"`
}

// GroupByRestaurant folds the cart lines into one group per restaurant,
// in encounter order. Lines without a restaurant id land in the
// "unknown" group.
func GroupByRestaurant(items []cart.Item) []Group {
	var groups []Group
	index := map[string]int{}

	for _, it := range items {
		rid := it.RestaurantID
		if rid == "" {
			rid = UnknownRestaurantID
		}

		i, ok := index[rid]
		if !ok {
			name := it.RestaurantName
			if name == "" {
				name = UnknownRestaurantName
			}
			groups = append(groups, Group{
				RestaurantID: rid,
				Name:         name,
				Image:        it.RestaurantImage,
			})
			i = len(groups) - 1
			index[rid] = i
		}

		groups[i].Items = append(groups[i].Items, it)
		groups[i].Subtotal += it.Price * float64(it.Quantity)
	}

	return groups
}

// TotalWithFees sums subtotal plus delivery fee over all groups.
func TotalWithFees(groups []Group, fees FeeTable) float64 {
	var total float64
	for _, g := range groups {
		total += g.Subtotal + fees.Fee(g.RestaurantID)
	}
	return total
}

// AddressSnapshot is the denormalized address copy embedded in the
// order; it is not kept in sync with the source address afterward.
type AddressSnapshot struct {
	Label                string       `json:"label"`
	Address              string       `json:"address"`
	DeliveryInstructions string       `json:"deliveryInstructions,omitempty"`
	DeliveryMethod       string       `json:"deliveryMethod,omitempty"`
	DeliveryOption       string       `json:"deliveryOption,omitempty"`
	Coordinates          *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RestaurantSummary is the denormalized per-restaurant line of the
// order payload.
type RestaurantSummary struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Subtotal     float64 `json:"subtotal"`
	DeliveryFee  float64 `json:"deliveryFee"`
}

// Order is the checkout payload for POST /api/orders.
type Order struct {
	OrderNumber   string              `json:"orderNumber"`
	Date          string              `json:"date"`
	Items         []cart.Item         `json:"items"`
	Address       AddressSnapshot     `json:"address"`
	PaymentMethod string              `json:"paymentMethod"`
	Subtotal      float64             `json:"subtotal"`
	DeliveryFees  float64             `json:"deliveryFees"`
	Total         float64             `json:"total"`
	Restaurants   []RestaurantSummary `json:"restaurants"`
}

// NewOrderNumber returns a 6-digit random order number.
func NewOrderNumber() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// BuildOrder assembles the payload: the full cart snapshot, the grouped
// per-restaurant summaries, and the totals. No idempotency key is
// attached; resubmitting the same payload creates a second order.
func BuildOrder(items []cart.Item, addr AddressSnapshot, paymentMethod string, fees FeeTable, now time.Time) Order {
	groups := GroupByRestaurant(items)

	var subtotal, deliveryFees float64
	summaries := make([]RestaurantSummary, 0, len(groups))
	for _, g := range groups {
		fee := fees.Fee(g.RestaurantID)
		subtotal += g.Subtotal
		deliveryFees += fee
		summaries = append(summaries, RestaurantSummary{
			RestaurantID: g.RestaurantID,
			Name:         g.Name,
			Image:        g.Image,
			Subtotal:     g.Subtotal,
			DeliveryFee:  fee,
		})
	}

	return Order{
		OrderNumber:   NewOrderNumber(),
		Date:          now.Format("02/01/2006 15:04"),
		Items:         items,
		Address:       addr,
		PaymentMethod: paymentMethod,
		Subtotal:      subtotal,
		DeliveryFees:  deliveryFees,
		Total:         subtotal + deliveryFees,
		Restaurants:   summaries,
	}
}
