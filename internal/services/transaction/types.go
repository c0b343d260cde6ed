package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"paygate/internal/models"
	"paygate/internal/services/status"
)

// State is one phase of the per-attempt submission state machine.
type State string

const (
	StateIdle             State = "idle"
	StateAuthorizing      State = "authorizing"
	StateComputing        State = "computing"
	StateSubmitting       State = "submitting"
	StateAwaitingProvider State = "awaiting_provider"
	StateVerifying        State = "verifying"
	StateSucceeded        State = "succeeded"
	StateFailed           State = "failed"
	StateIndeterminate    State = "indeterminate"
)

// PaymentRequest is one payment attempt. Requests are never reused: a retry
// builds a new request with a fresh client reference so no partial state from
// a previous attempt can leak into the next.
type PaymentRequest struct {
	Amount         decimal.Decimal
	CustomerMobile string
	Remarks        string
	ClientRef      string
	SubmittedAt    time.Time
}

func NewPaymentRequest(amount decimal.Decimal, customerMobile, remarks string) PaymentRequest {
	return PaymentRequest{
		Amount:         amount,
		CustomerMobile: customerMobile,
		Remarks:        remarks,
		ClientRef:      uuid.NewString(),
		SubmittedAt:    time.Now().UTC(),
	}
}

// PayoutRequest is one payout attempt against a linked bank account.
type PayoutRequest struct {
	Amount        decimal.Decimal
	BankAccountID string
	Remarks       string
	ClientRef     string
	SubmittedAt   time.Time
}

func NewPayoutRequest(amount decimal.Decimal, bankAccountID, remarks string) PayoutRequest {
	return PayoutRequest{
		Amount:        amount,
		BankAccountID: bankAccountID,
		Remarks:       remarks,
		ClientRef:     uuid.NewString(),
		SubmittedAt:   time.Now().UTC(),
	}
}

// Result is the terminal (or handed-off) outcome of one attempt.
//
// Indeterminate is a first-class outcome: the backend/provider may still be
// settling, so the user is directed to the status view rather than told a
// result the system cannot confirm.
type Result struct {
	State     State                     `json:"state"`
	Status    status.Internal           `json:"status,omitempty"`
	Reason    string                    `json:"reason,omitempty"`
	Retryable bool                      `json:"retryable,omitempty"`
	OrderID   string                    `json:"order_id,omitempty"`
	PayoutID  string                    `json:"payout_id,omitempty"`
	Breakdown *models.MonetaryBreakdown `json:"breakdown,omitempty"`
	Session   *models.CheckoutSession   `json:"session,omitempty"`
}

// Schedules holds the fee schedule for each transaction type.
type Schedules struct {
	Payment models.FeeSchedule
	Payout  models.FeeSchedule
}
