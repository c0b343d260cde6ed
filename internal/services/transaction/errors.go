package transaction

import "errors"

// Service errors
var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInvalidRequest      = errors.New("invalid request")
)
