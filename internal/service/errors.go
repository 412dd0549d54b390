package service

import "errors"

// Business-rule errors surfaced to the HTTP layer. None of them leave the
// store in a partially written state: every rule is checked before any write.
var (
	// ErrDayNotStarted rejects catalog mutations and checkout while the
	// trading day is closed.
	ErrDayNotStarted = errors.New("trading day has not been started")

	// ErrProductNotFound is returned when an operation references an id that
	// is not in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyCart rejects checkout with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidCart rejects a cart line with a non-positive quantity.
	ErrInvalidCart = errors.New("invalid cart")

	// ErrInsufficientStock rejects a checkout line exceeding available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidPayment rejects an unknown payment method or a payment
	// amount below the sale total.
	ErrInvalidPayment = errors.New("invalid payment")

	// ErrInvalidProduct rejects a product with an empty name, negative
	// quantity or negative price.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidBackup rejects an import envelope missing the timestamp or
	// data fields.
	ErrInvalidBackup = errors.New("invalid backup format")

	// ErrHistoryNotFound is returned for an out-of-range history index.
	ErrHistoryNotFound = errors.New("history entry not found")
)
