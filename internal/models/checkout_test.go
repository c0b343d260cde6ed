package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutSession_IsLive(t *testing.T) {
	tests := []struct {
		sessionID string
		want      bool
	}{
		{"session_abc123", true},
		{"", false},
		{"undefined", false},
		{"null", false},
		{"mock_session_1", false},
		{"mock_", false},
		{"MOCK_session", true}, // only the exact lowercase prefix is synthetic
	}

	for _, tt := range tests {
		t.Run(tt.sessionID, func(t *testing.T) {
			s := CheckoutSession{OrderID: "ord_1", PaymentSessionID: tt.sessionID}
			assert.Equal(t, tt.want, s.IsLive())
		})
	}
}
