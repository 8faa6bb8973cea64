package domain

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	// ErrTotalMismatch means the submitted subtotal/total do not match
	// the amounts recomputed from the line items.
	ErrTotalMismatch = errors.New("order totals do not match line items")

	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
