package errors

import "fmt"

// ErrNotFound is returned when a catalog resource does not exist.
type ErrNotFound struct {
	Resource string
	ID       string
	// Available lists valid alternatives, when the caller can use them
	// (for example the known brand collections).
	Available []string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when caller input is malformed.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
