package backend

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationSnapshot is the backend's current account truth, consumed as-is.
type VerificationSnapshot struct {
	KYC struct {
		Status string `json:"status"`
	} `json:"kyc"`
	Bank struct {
		VerificationStatus string `json:"verificationStatus"`
	} `json:"bank"`
	Stats struct {
		AvailableBalance decimal.Decimal `json:"availableBalance"`
	} `json:"stats"`
}

// CreateOrderRequest creates a payment order. Amount is the authoritative
// total debit recomputed immediately before submission.
type CreateOrderRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	CustomerMobile string          `json:"customerMobile"`
	Remarks        string          `json:"remarks,omitempty"`
	ClientRef      string          `json:"clientRef"`
}

// OrderResponse carries the provider checkout session for a created order.
type OrderResponse struct {
	OrderID          string `json:"orderId"`
	PaymentSessionID string `json:"paymentSessionId"`
}

// CreatePayoutRequest submits a payout against a linked bank account.
type CreatePayoutRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	BankAccountID string          `json:"bankAccountId"`
	Remarks       string          `json:"remarks,omitempty"`
	ClientRef     string          `json:"clientRef"`
}

// PayoutResponse identifies a submitted payout.
type PayoutResponse struct {
	PayoutID string `json:"payoutId"`
}

// StatusResponse is a verification read for an order or payout. The backend
// reports its own status and, when present, the provider's verbatim code.
type StatusResponse struct {
	Status         string `json:"status"`
	ProviderStatus string `json:"cashfreeStatus,omitempty"`
}

// Raw returns the status string to normalize, preferring the provider's
// verbatim code over the backend's summary.
func (r StatusResponse) Raw() string {
	if r.ProviderStatus != "" {
		return r.ProviderStatus
	}
	return r.Status
}

// TransactionRecord is one row of the status/history view.
type TransactionRecord struct {
	ReferenceID string          `json:"referenceId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Remarks     string          `json:"remarks,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
