package checkout

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheLiloji/UberV3-sub000/client/cart"
)

func twoRestaurantCart() []cart.Item {
	return []cart.Item{
		{ID: "1", Name: "Classic Cheese", Price: 10, Quantity: 2, RestaurantID: "A", RestaurantName: "Burger Factory"},
		{ID: "2", Name: "California x6", Price: 5, Quantity: 1, RestaurantID: "B", RestaurantName: "Sushi Yama"},
	}
}

func TestGroupByRestaurant(t *testing.T) {
	groups := GroupByRestaurant(twoRestaurantCart())

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].RestaurantID)
	assert.Equal(t, "Burger Factory", groups[0].Name)
	assert.InDelta(t, 20.0, groups[0].Subtotal, 1e-9)
	assert.Len(t, groups[0].Items, 1)

	assert.Equal(t, "B", groups[1].RestaurantID)
	assert.InDelta(t, 5.0, groups[1].Subtotal, 1e-9)
}

func TestGroupSubtotalFoldsAllLines(t *testing.T) {
	items := append(twoRestaurantCart(),
		cart.Item{ID: "3", Price: 4.5, Quantity: 2, RestaurantID: "A"})

	groups := GroupByRestaurant(items)
	require.Len(t, groups, 2)
	assert.InDelta(t, 20+4.5*2, groups[0].Subtotal, 1e-9)
	assert.Len(t, groups[0].Items, 2)
}

func TestTotalWithFees(t *testing.T) {
	fees := FeeTable{"A": 2.5, "B": 3.0}
	groups := GroupByRestaurant(twoRestaurantCart())

	assert.InDelta(t, 30.5, TotalWithFees(groups, fees), 1e-9)
}

func TestFeeDefaultsWhenMissing(t *testing.T) {
	fees := FeeTable{"A": 2.5}
	assert.InDelta(t, 2.5, fees.Fee("A"), 1e-9)
	assert.InDelta(t, DefaultDeliveryFee, fees.Fee("Z"), 1e-9)
}

func TestUnknownRestaurantFallback(t *testing.T) {
	groups := GroupByRestaurant([]cart.Item{
		{ID: "9", Name: "Mystère", Price: 7, Quantity: 1},
	})

	require.Len(t, groups, 1)
	assert.Equal(t, UnknownRestaurantID, groups[0].RestaurantID)
	assert.Equal(t, UnknownRestaurantName, groups[0].Name)
}

func TestNewOrderNumber(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, NewOrderNumber())
	}
}

func TestBuildOrder(t *testing.T) {
	items := twoRestaurantCart()
	addr := AddressSnapshot{
		Label: "Maison", Address: "3 rue de la Paix, Paris",
		DeliveryMethod: "dropoff",
		Coordinates:    &Coordinates{Latitude: 48.86, Longitude: 2.33},
	}
	fees := FeeTable{"A": 2.5, "B": 3.0}
	now := time.Date(2024, 5, 17, 19, 30, 0, 0, time.UTC)

	o := BuildOrder(items, addr, "Visa •••• 4242", fees, now)

	assert.Regexp(t, `^\d{6}$`, o.OrderNumber)
	assert.Equal(t, "17/05/2024 19:30", o.Date)
	assert.Equal(t, items, o.Items)
	assert.Equal(t, addr, o.Address)
	assert.InDelta(t, 25.0, o.Subtotal, 1e-9)
	assert.InDelta(t, 5.5, o.DeliveryFees, 1e-9)
	assert.InDelta(t, 30.5, o.Total, 1e-9)

	require.Len(t, o.Restaurants, 2)
	assert.Equal(t, "A", o.Restaurants[0].RestaurantID)
	assert.InDelta(t, 20.0, o.Restaurants[0].Subtotal, 1e-9)
	assert.InDelta(t, 2.5, o.Restaurants[0].DeliveryFee, 1e-9)
	assert.InDelta(t, 3.0, o.Restaurants[1].DeliveryFee, 1e-9)
}
