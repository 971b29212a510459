package cart

import (
	"github.com/shopspring/decimal"

	"github.com/fashionhive/storefront/internal/domain"
	"github.com/fashionhive/storefront/internal/pricing"
)

// Key is the identity of a line item: one product variant.
type Key struct {
	ProductID string
	Size      string
	Color     string
}

// LineItem is one product variant in the cart. Product is a snapshot taken
// when the item was first added and is never refreshed from the catalog.
type LineItem struct {
	ProductID       string         `json:"productId"`
	Product         domain.Product `json:"product"`
	Quantity        int            `json:"quantity"`
	Size            string         `json:"size"`
	Color           string         `json:"color"`
	NumericPrice    float64        `json:"numericPrice"`
	BrandCollection string         `json:"brandCollection"`
}

// Key returns the item's identity key.
func (i LineItem) Key() Key {
	return Key{ProductID: i.ProductID, Size: i.Size, Color: i.Color}
}

// Subtotal is NumericPrice * Quantity.
func (i LineItem) Subtotal() float64 {
	return pricing.Float(pricing.LineTotal(i.NumericPrice, i.Quantity))
}

// Totals are the derived counters of a cart.
type Totals struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// State is the cart aggregate. Totals are computed when a State is built and
// cannot be set independently of the items.
type State struct {
	items  []LineItem
	totals Totals
}

// EmptyState returns a cart with no items.
func EmptyState() State {
	return newState(nil)
}

func newState(items []LineItem) State {
	if items == nil {
		items = []LineItem{}
	}
	return State{items: items, totals: computeTotals(items)}
}

func computeTotals(items []LineItem) Totals {
	count := 0
	sum := decimal.Zero
	for _, item := range items {
		count += item.Quantity
		sum = sum.Add(pricing.LineTotal(item.NumericPrice, item.Quantity))
	}
	return Totals{TotalItems: count, TotalPrice: pricing.Float(sum)}
}

// Items returns a copy of the line items in insertion order.
func (s State) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of line items.
func (s State) Len() int {
	return len(s.items)
}

// TotalItems is the sum of all quantities.
func (s State) TotalItems() int {
	return s.totals.TotalItems
}

// TotalPrice is the sum of NumericPrice * Quantity over all items.
func (s State) TotalPrice() float64 {
	return s.totals.TotalPrice
}

// Totals returns both derived counters.
func (s State) Totals() Totals {
	return s.totals
}

// Find returns the item with the given key.
func (s State) Find(key Key) (LineItem, bool) {
	if idx := s.indexOf(key); idx >= 0 {
		return s.items[idx], true
	}
	return LineItem{}, false
}

func (s State) indexOf(key Key) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}
