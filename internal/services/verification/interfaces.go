package verification

import (
	"context"

	"paygate/internal/backend"
	"paygate/internal/models"
)

// Action is a money-movement or privilege action the gate can authorize.
type Action string

const (
	ActionPay             Action = "pay"
	ActionPayout          Action = "payout"
	ActionOnboardRetailer Action = "onboard_retailer"
)

// Decision is the gate's answer for one action at one moment in time.
// When denied, Reason names the specific unmet precondition.
type Decision struct {
	Allowed bool                      `json:"allowed"`
	Reason  string                    `json:"reason,omitempty"`
	State   *models.VerificationState `json:"state,omitempty"`
}

// Fetcher reads the account's verification state from the backend.
// Implemented by backend.Client.
type Fetcher interface {
	FetchVerification(ctx context.Context, session models.AuthContext) (*backend.VerificationSnapshot, error)
}

// Service is the transaction authorization gate.
type Service interface {
	// Refresh re-derives the verification state from the backend's current
	// truth. It always performs a fresh network read.
	Refresh(ctx context.Context, session models.AuthContext) (*models.VerificationState, error)

	// Authorize refreshes and then decides whether the action is allowed.
	// A failed refresh yields a denial, never a stale approval.
	Authorize(ctx context.Context, session models.AuthContext, action Action) Decision
}
