package command

import "errors"

var (
	// ErrProductNotFound is returned when a command targets a product that
	// does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when an OUT movement would exceed
	// the product's current stock. The check runs before anything is
	// recorded or applied.
	ErrInsufficientStock = errors.New("insufficient stock")
)
