package domain

import "errors"

// Authorization errors
var (
	// ErrAuthRequired indicates the operation was invoked without a verified identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrPermissionDenied indicates the caller's identity lacks the required capability.
	ErrPermissionDenied = errors.New("permission denied")
)

// Cart and checkout errors
var (
	// ErrEmptyCart indicates checkout was attempted with no cart or no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidQuantity indicates a non-positive quantity was supplied.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrCartItemNotFound indicates the referenced cart line does not exist.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrConflict indicates a concurrent operation invalidated an assumption;
	// the caller may retry.
	ErrConflict = errors.New("concurrent modification conflict")
)

// Order errors
var (
	// ErrInvalidPaymentMethod indicates an unknown payment method value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidOrderStatus indicates a status value outside the enumerated set.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrMissingDeliveryField indicates a required delivery contact field is empty.
	ErrMissingDeliveryField = errors.New("full name, phone and address are required")

	// ErrOrderNotFound indicates the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// Payment slip errors
var (
	// ErrSlipNotFound indicates the referenced payment slip does not exist.
	ErrSlipNotFound = errors.New("payment slip not found")

	// ErrMissingImageRef indicates a slip upload without an image reference.
	ErrMissingImageRef = errors.New("payment slip image reference is required")
)

// Product errors
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyProductName indicates a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")

	// ErrEmptyProductCategory indicates a product with an empty category.
	ErrEmptyProductCategory = errors.New("product category cannot be empty")

	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrZeroPrice indicates an attempt to set a zero price.
	ErrZeroPrice = errors.New("price cannot be zero")
)
