package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the catalog, ledger, and engines.
// Handlers map these onto HTTP status codes; the CLI prints them as-is.
var (
	ErrMaterialNotFound = errors.New("material not found")
	ErrPONotFound       = errors.New("purchase order not found")
	ErrNoRecipe         = errors.New("no recipe for product")
	ErrNoUser           = errors.New("no acting user")
	ErrInvalidQuantity  = errors.New("quantity must be a positive whole number")
	ErrInvalidValue     = errors.New("stock value must be a non-negative whole number")
)

// InsufficientStockError reports a material that cannot cover a requested
// consumption. It carries the exact shortfall so callers can render
// "need 10, have 5" style feedback.
type InsufficientStockError struct {
	Material  string
	Required  int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %q: required %d, available %d",
		e.Material, e.Required, e.Available)
}

// AsInsufficientStock unwraps err into an *InsufficientStockError if one is
// anywhere in the chain.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
