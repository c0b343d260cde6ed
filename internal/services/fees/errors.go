package fees

import "errors"

// Calculation errors. Both are local and user-correctable: callers must
// reject the transaction before any network call is made.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrBelowMinimum  = errors.New("amount below minimum")
)
