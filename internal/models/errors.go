package models

import "errors"

// Model validation and operation errors
var (
	// General errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// Member errors
	ErrMemberNotFound     = errors.New("member not found")
	ErrDuplicateMember    = errors.New("member with this name already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Item errors
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidItemType = errors.New("invalid item type")
	ErrNotEnoughStock  = errors.New("need more stock")

	// Order errors
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrOrderAlreadyCanceled = errors.New("order has already been canceled")
	ErrDeliveryCompleted    = errors.New("delivered orders cannot be canceled")
	ErrEmptyOrder           = errors.New("order must contain at least one item")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")
)

// IsNotFoundError returns true if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

// IsValidationError returns true if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidItemType) ||
		errors.Is(err, ErrInvalidOrderStatus) ||
		errors.Is(err, ErrEmptyOrder)
}

// IsConflictError returns true if the error is a conflict/duplicate error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrDuplicateMember) ||
		errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrNotEnoughStock) ||
		errors.Is(err, ErrOrderAlreadyCanceled) ||
		errors.Is(err, ErrDeliveryCompleted)
}

// IsAuthError returns true if the error is an authentication/authorization error
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidCredentials)
}
