// Package cart holds the in-memory cart state built up while browsing,
// before checkout posts it as an order. A Cart is mutated from a single
// goroutine (the app's event loop); it does no locking.
package cart

import (
	"sort"
	"strings"
)

// Choice is one selectable value of an option ("Grande" for "Taille").
type Choice struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SelectedOption pairs an option group name with the chosen value.
type SelectedOption struct {
	Name   string `json:"name"`
	Choice Choice `json:"choice"`
}

// Item is one cart line. Restaurant fields are carried on the line so
// checkout can group lines without another lookup.
type Item struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Price           float64          `json:"price"`
	Quantity        int              `json:"quantity"`
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
	RestaurantID    string           `json:"restaurantId"`
	RestaurantName  string           `json:"restaurantName,omitempty"`
	RestaurantImage string           `json:"restaurantImage,omitempty"`
}

// variantKey identifies a line for merging: same item, same restaurant,
// same set of option choices. Choice ids are sorted before joining so
// the key does not depend on the order options were picked in.
type variantKey struct {
	itemID       string
	restaurantID string
	choices      string
}

func keyOf(id, restaurantID string, options []SelectedOption) variantKey {
	ids := make([]string, 0, len(options))
	for _, op := range options {
		ids = append(ids, op.Choice.ID)
	}
	sort.Strings(ids)
	return variantKey{itemID: id, restaurantID: restaurantID, choices: strings.Join(ids, ",")}
}

type Cart struct {
	items []Item
}

func New() *Cart { return &Cart{} }

// Add appends the item, or bumps the quantity of the matching variant
// if the same item with the same options from the same restaurant is
// already in the cart. A non-positive quantity counts as 1.
func (c *Cart) Add(it Item) {
	if it.Quantity <= 0 {
		it.Quantity = 1
	}

	k := keyOf(it.ID, it.RestaurantID, it.SelectedOptions)
	for i := range c.items {
		if keyOf(c.items[i].ID, c.items[i].RestaurantID, c.items[i].SelectedOptions) == k {
			c.items[i].Quantity += it.Quantity
			return
		}
	}
	c.items = append(c.items, it)
}

// matches implements the three-tier selector shared by Remove and
// UpdateQuantity:
//   - options non-nil: exact variant (item + restaurant + same choices);
//     an empty non-nil slice matches the no-options variant,
//   - restaurantID set: every variant of the item at that restaurant,
//   - id alone: every line with that id regardless of restaurant.
//
// With the id-only form, callers in multi-restaurant flows must pass
// restaurantID or they will hit same-id items at other restaurants.
func matches(it Item, itemID, restaurantID string, options []SelectedOption) bool {
	if it.ID != itemID {
		return false
	}
	if restaurantID == "" {
		return true
	}
	if it.RestaurantID != restaurantID {
		return false
	}
	if options == nil {
		return true
	}
	return keyOf(it.ID, it.RestaurantID, it.SelectedOptions) == keyOf(itemID, restaurantID, options)
}

// Remove deletes every line matched by the selector and reports how
// many lines were removed.
func (c *Cart) Remove(itemID, restaurantID string, options []SelectedOption) int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if matches(it, itemID, restaurantID, options) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.items = kept
	return removed
}

// UpdateQuantity sets the quantity on every line matched by the
// selector; a quantity of zero or less removes the line instead.
// Reports whether anything matched.
func (c *Cart) UpdateQuantity(itemID string, quantity int, restaurantID string, options []SelectedOption) bool {
	if quantity <= 0 {
		return c.Remove(itemID, restaurantID, options) > 0
	}
	found := false
	for i := range c.items {
		if matches(c.items[i], itemID, restaurantID, options) {
			c.items[i].Quantity = quantity
			found = true
		}
	}
	return found
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price×quantity over all lines. No rounding is
// applied here; display formatting rounds.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Clear empties the cart; called after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
}
