package models

import "strings"

// CheckoutSession is the provider checkout handle returned by the backend
// when a payment order is created. The provider itself is opaque; the only
// decision this side makes is whether the session is live.
type CheckoutSession struct {
	OrderID          string `json:"order_id"`
	PaymentSessionID string `json:"payment_session_id"`
}

// IsLive reports whether the session points at a real provider checkout.
// Absent, "undefined", "null" and mock-prefixed ids are synthetic orders
// created in test mode; they bypass the external checkout step entirely.
func (s CheckoutSession) IsLive() bool {
	switch s.PaymentSessionID {
	case "", "undefined", "null":
		return false
	}
	return !strings.HasPrefix(s.PaymentSessionID, "mock_")
}
