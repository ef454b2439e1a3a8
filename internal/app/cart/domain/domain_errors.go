package domain

import "errors"

// Domain errors as sentinel values. These are validation rejections:
// the cart is left unchanged and the caller decides what to show.
var (
	ErrItemAlreadyInCart  = errors.New("product is already in the cart")
	ErrItemNotInCart      = errors.New("product is not in the cart")
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and the available stock")
	ErrEmptyProductID     = errors.New("product id cannot be empty")
	ErrUnsupportedCountry = errors.New("country is not in the supported list")
)
