package cart

import "github.com/fashionhive/storefront/internal/domain"

// Command is a cart mutation. The set of commands is closed: AddItem,
// UpdateQuantity, RemoveItem, ClearCart, ClearBrand and SetCart.
type Command interface {
	Name() string
	isCommand()
}

// AddItem adds Quantity of a product variant, merging into an existing line
// with the same key. A zero Quantity means one.
type AddItem struct {
	Product  domain.Product
	Quantity int
	Size     string
	Color    string
}

// UpdateQuantity overwrites the quantity of a line; Quantity <= 0 removes it.
type UpdateQuantity struct {
	Key      Key
	Quantity int
}

// RemoveItem removes a line if present.
type RemoveItem struct {
	Key Key
}

// ClearCart removes every line.
type ClearCart struct{}

// ClearBrand removes every line whose brand collection equals Brand exactly.
type ClearBrand struct {
	Brand string
}

// SetCart replaces the cart contents, used when restoring a saved cart.
type SetCart struct {
	Items []LineItem
}

func (AddItem) Name() string        { return "add_item" }
func (UpdateQuantity) Name() string { return "update_quantity" }
func (RemoveItem) Name() string     { return "remove_item" }
func (ClearCart) Name() string      { return "clear_cart" }
func (ClearBrand) Name() string     { return "clear_brand" }
func (SetCart) Name() string        { return "set_cart" }

func (AddItem) isCommand()        {}
func (UpdateQuantity) isCommand() {}
func (RemoveItem) isCommand()     {}
func (ClearCart) isCommand()      {}
func (ClearBrand) isCommand()     {}
func (SetCart) isCommand()        {}
