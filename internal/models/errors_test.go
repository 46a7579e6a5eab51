package models

import (
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrNotFound", ErrNotFound, true},
		{"ErrMemberNotFound", ErrMemberNotFound, true},
		{"ErrItemNotFound", ErrItemNotFound, true},
		{"ErrOrderNotFound", ErrOrderNotFound, true},
		{"ErrCategoryNotFound", ErrCategoryNotFound, true},
		{"Non-NotFound error", ErrInvalidInput, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrInvalidInput", ErrInvalidInput, true},
		{"ErrInvalidItemType", ErrInvalidItemType, true},
		{"ErrInvalidOrderStatus", ErrInvalidOrderStatus, true},
		{"ErrEmptyOrder", ErrEmptyOrder, true},
		{"Non-validation error", ErrMemberNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.expected {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConflictError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrAlreadyExists", ErrAlreadyExists, true},
		{"ErrDuplicateMember", ErrDuplicateMember, true},
		{"ErrEmailAlreadyExists", ErrEmailAlreadyExists, true},
		{"ErrNotEnoughStock", ErrNotEnoughStock, true},
		{"ErrOrderAlreadyCanceled", ErrOrderAlreadyCanceled, true},
		{"ErrDeliveryCompleted", ErrDeliveryCompleted, true},
		{"Non-conflict error", ErrMemberNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConflictError(tt.err); got != tt.expected {
				t.Errorf("IsConflictError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrUnauthorized", ErrUnauthorized, true},
		{"ErrForbidden", ErrForbidden, true},
		{"ErrInvalidCredentials", ErrInvalidCredentials, true},
		{"Non-auth error", ErrMemberNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.expected {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
