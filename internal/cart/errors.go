package cart

import "errors"

var (
	// ErrMissingSize is returned by AddItem when no size was selected.
	ErrMissingSize = errors.New("missing size")
	// ErrInvalidQuantity is returned by AddItem for a negative quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrMissingProductID is returned by AddItem for a product without an id.
	ErrMissingProductID = errors.New("missing product id")
	// ErrEmptyBrand is returned by Checkout when the brand has no items.
	ErrEmptyBrand = errors.New("no items for brand")
	// ErrCorruptPayload is returned when a saved cart cannot be decoded.
	ErrCorruptPayload = errors.New("corrupt cart payload")
)
