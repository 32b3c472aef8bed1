package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidLimit  = errors.New("limit must be positive")
	ErrInvalidOffset = errors.New("offset must be non-negative")
)
