package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// KYC statuses reported by the backend.
type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "not_submitted"
	KYCPending      KYCStatus = "pending"
	KYCApproved     KYCStatus = "approved"
	KYCRejected     KYCStatus = "rejected"
	KYCFailed       KYCStatus = "failed"
)

// Bank verification statuses reported by the backend.
type BankStatus string

const (
	BankNotVerified BankStatus = "not_verified"
	BankPending     BankStatus = "pending"
	BankVerified    BankStatus = "verified"
	BankFailed      BankStatus = "failed"
)

var kycStatuses = map[string]KYCStatus{
	"not_submitted": KYCNotSubmitted,
	"pending":       KYCPending,
	"approved":      KYCApproved,
	"rejected":      KYCRejected,
	"failed":        KYCFailed,
}

var bankStatuses = map[string]BankStatus{
	"not_verified": BankNotVerified,
	"pending":      BankPending,
	"verified":     BankVerified,
	"failed":       BankFailed,
}

// ParseKYCStatus maps a backend kyc.status string onto the closed enum.
// Unrecognized values fall back to not_submitted; KYC never gates money
// movement, so the fallback is informational only.
func ParseKYCStatus(raw string) KYCStatus {
	if s, ok := kycStatuses[raw]; ok {
		return s
	}
	return KYCNotSubmitted
}

// ParseBankStatus maps a backend bank.verificationStatus string onto the
// closed enum. Unrecognized values fall back to not_verified so that a
// backend contract change can never widen authorization.
func ParseBankStatus(raw string) BankStatus {
	if s, ok := bankStatuses[raw]; ok {
		return s
	}
	return BankNotVerified
}

// VerificationState is the gate's snapshot of the backend's current truth.
// It is re-derived on every refresh and never persisted; a state instance is
// only as trustworthy as its LastRefreshedAt.
type VerificationState struct {
	KYCStatus        KYCStatus       `json:"kyc_status"`
	BankStatus       BankStatus      `json:"bank_status"`
	CanTransact      bool            `json:"can_transact"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	LastRefreshedAt  time.Time       `json:"last_refreshed_at"`
}
