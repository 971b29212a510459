package cart

import (
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/domain"
)

// Store is the persistent slot a cart is saved to. Load returns nil, nil when
// nothing has been saved yet.
type Store interface {
	Load() ([]byte, error)
	Save(payload []byte) error
}

// Engine owns a cart for one client session. Every successful mutation is
// written through to the Store; the in-memory state stays authoritative when
// a save fails. An Engine has a single writer and is not safe for concurrent
// use.
type Engine struct {
	state  State
	store  Store
	logger *zap.Logger
}

// NewEngine creates an engine and restores the saved cart from store, if any.
// A nil store disables persistence. Unreadable saved data yields an empty cart.
func NewEngine(store Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		state:  EmptyState(),
		store:  store,
		logger: logger,
	}
	e.restore()
	return e
}

func (e *Engine) restore() {
	if e.store == nil {
		return
	}

	payload, err := e.store.Load()
	if err != nil {
		e.logger.Error("Failed to load saved cart", zap.Error(err))
		return
	}
	if payload == nil {
		return
	}

	items, err := Decode(payload)
	if err != nil {
		e.logger.Error("Discarding unreadable saved cart", zap.Error(err))
		return
	}

	state, err := Reduce(e.state, SetCart{Items: items})
	if err != nil {
		e.logger.Error("Failed to restore cart", zap.Error(err))
		return
	}
	e.state = state

	if dropped := len(items) - state.Len(); dropped > 0 {
		e.logger.Warn("Dropped invalid or duplicate saved cart lines", zap.Int("dropped", dropped))
	}
	e.logger.Debug("Cart restored",
		zap.Int("lines", state.Len()),
		zap.Int("total_items", state.TotalItems()),
	)
}

// Dispatch applies cmd and persists the result.
func (e *Engine) Dispatch(cmd Command) error {
	next, err := Reduce(e.state, cmd)
	if err != nil {
		return err
	}
	e.state = next

	e.logger.Debug("Cart command applied",
		zap.String("command", cmd.Name()),
		zap.Int("total_items", next.TotalItems()),
		zap.Float64("total_price", next.TotalPrice()),
	)

	e.persist()
	return nil
}

func (e *Engine) persist() {
	if e.store == nil {
		return
	}

	payload, err := Encode(e.state.items)
	if err != nil {
		e.logger.Error("Failed to encode cart", zap.Error(err))
		return
	}
	if err := e.store.Save(payload); err != nil {
		// In-memory state already reflects the mutation.
		e.logger.Warn("Failed to save cart", zap.Error(err))
	}
}

// AddItem adds quantity units of a product variant. It fails with
// ErrMissingSize when size is empty, leaving the cart untouched.
func (e *Engine) AddItem(product domain.Product, quantity int, size, color string) (Totals, error) {
	if err := e.Dispatch(AddItem{Product: product, Quantity: quantity, Size: size, Color: color}); err != nil {
		return e.state.Totals(), err
	}
	return e.state.Totals(), nil
}

// UpdateQuantity sets a line's quantity; quantity <= 0 removes the line.
func (e *Engine) UpdateQuantity(productID, size, color string, quantity int) {
	e.mustDispatch(UpdateQuantity{Key: Key{ProductID: productID, Size: size, Color: color}, Quantity: quantity})
}

// RemoveItem removes a line if present.
func (e *Engine) RemoveItem(productID, size, color string) {
	e.mustDispatch(RemoveItem{Key: Key{ProductID: productID, Size: size, Color: color}})
}

// ClearCart empties the cart.
func (e *Engine) ClearCart() {
	e.mustDispatch(ClearCart{})
}

// ClearBrand removes every line of one brand.
func (e *Engine) ClearBrand(brand string) {
	e.mustDispatch(ClearBrand{Brand: brand})
}

// mustDispatch is used for the commands Reduce never rejects.
func (e *Engine) mustDispatch(cmd Command) {
	if err := e.Dispatch(cmd); err != nil {
		e.logger.Error("Cart command rejected", zap.String("command", cmd.Name()), zap.Error(err))
	}
}

// State returns the current cart state.
func (e *Engine) State() State { return e.state }

// Items returns a copy of the line items.
func (e *Engine) Items() []LineItem { return e.state.Items() }

// TotalItems is the sum of all quantities.
func (e *Engine) TotalItems() int { return e.state.TotalItems() }

// TotalPrice is the cart total.
func (e *Engine) TotalPrice() float64 { return e.state.TotalPrice() }

// GroupByBrand partitions the current items by brand.
func (e *Engine) GroupByBrand() map[string][]LineItem { return e.state.GroupByBrand() }

// BrandGroups returns ordered brand partitions with totals.
func (e *Engine) BrandGroups() []BrandGroup { return e.state.BrandGroups() }

// BrandTotal returns the total for one brand.
func (e *Engine) BrandTotal(brand string) float64 { return e.state.BrandTotal(brand) }
