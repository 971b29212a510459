package cart

import (
	"fmt"
	"strings"

	"github.com/fashionhive/storefront/internal/pricing"
)

// Reduce applies cmd to state and returns the next state. It never modifies
// state. Only AddItem can fail; removals and updates of absent keys are no-ops.
func Reduce(state State, cmd Command) (State, error) {
	switch c := cmd.(type) {
	case AddItem:
		return reduceAdd(state, c)

	case UpdateQuantity:
		if c.Quantity <= 0 {
			return without(state, func(item LineItem) bool { return item.Key() == c.Key }), nil
		}
		idx := state.indexOf(c.Key)
		if idx < 0 {
			return state, nil
		}
		items := state.Items()
		items[idx].Quantity = c.Quantity
		return newState(items), nil

	case RemoveItem:
		return without(state, func(item LineItem) bool { return item.Key() == c.Key }), nil

	case ClearCart:
		return EmptyState(), nil

	case ClearBrand:
		return without(state, func(item LineItem) bool { return item.BrandCollection == c.Brand }), nil

	case SetCart:
		return newState(sanitize(c.Items)), nil

	default:
		return state, fmt.Errorf("unknown cart command %T", cmd)
	}
}

// Replay folds cmds over an empty cart, stopping at the first failing command.
func Replay(cmds ...Command) (State, error) {
	state := EmptyState()
	for i, cmd := range cmds {
		next, err := Reduce(state, cmd)
		if err != nil {
			return state, fmt.Errorf("command %d (%s): %w", i, cmd.Name(), err)
		}
		state = next
	}
	return state, nil
}

func reduceAdd(state State, c AddItem) (State, error) {
	if strings.TrimSpace(c.Size) == "" {
		return state, ErrMissingSize
	}
	if c.Quantity < 0 {
		return state, ErrInvalidQuantity
	}
	if c.Product.ID == "" {
		return state, ErrMissingProductID
	}

	quantity := c.Quantity
	if quantity == 0 {
		quantity = 1
	}

	key := Key{ProductID: c.Product.ID, Size: c.Size, Color: c.Color}
	items := state.Items()
	if idx := state.indexOf(key); idx >= 0 {
		items[idx].Quantity += quantity
		return newState(items), nil
	}

	// a missing price counts as 0
	numericPrice := pricing.Parse(c.Product.Price)

	items = append(items, LineItem{
		ProductID:       key.ProductID,
		Product:         c.Product,
		Quantity:        quantity,
		Size:            key.Size,
		Color:           key.Color,
		NumericPrice:    numericPrice,
		BrandCollection: c.Product.BrandName(),
	})
	return newState(items), nil
}

func without(state State, drop func(LineItem) bool) State {
	kept := make([]LineItem, 0, len(state.items))
	for _, item := range state.items {
		if !drop(item) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(state.items) {
		return state
	}
	return newState(kept)
}

// sanitize enforces the line item invariants on externally supplied items:
// lines without a size, product id or positive quantity are dropped, and
// lines sharing a key are merged in first-seen order.
func sanitize(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	index := make(map[Key]int, len(items))
	for _, item := range items {
		if item.Quantity < 1 || strings.TrimSpace(item.Size) == "" || item.ProductID == "" {
			continue
		}
		if idx, ok := index[item.Key()]; ok {
			out[idx].Quantity += item.Quantity
			continue
		}
		index[item.Key()] = len(out)
		out = append(out, item)
	}
	return out
}
