// Package status normalizes provider-reported transaction statuses into the
// application's closed status vocabulary.
package status

// Internal is the application-side status vocabulary. Every provider or
// backend status string maps onto exactly one of these values.
type Internal string

const (
	Completed         Internal = "completed"
	SentToBeneficiary Internal = "sent_to_beneficiary"
	Failed            Internal = "failed"
	Reversed          Internal = "reversed"
	Rejected          Internal = "rejected"
	Received          Internal = "received"
	ApprovalPending   Internal = "approval_pending"
	Pending           Internal = "pending"
	Processing        Internal = "processing"
	Unknown           Internal = "unknown"
)

// providerCodes is the exact provider vocabulary. Matching is deliberately
// case-sensitive: a provider that starts emitting "success" instead of
// "SUCCESS" has changed its contract, and that should surface as Unknown
// rather than be silently case-folded away.
var providerCodes = map[string]Internal{
	"SUCCESS":             Completed,
	"SENT_TO_BENEFICIARY": SentToBeneficiary,
	"FAILED":              Failed,
	"REVERSED":            Reversed,
	"REJECTED":            Rejected,
	"RECEIVED":            Received,
	"APPROVAL_PENDING":    ApprovalPending,
	"PENDING":             Pending,
	"PROCESSING":          Processing,
}

// Normalize maps any raw status string onto the internal vocabulary.
// Total over all inputs: unrecognized strings, including the empty string,
// return Unknown. Never panics.
func Normalize(raw string) Internal {
	if s, ok := providerCodes[raw]; ok {
		return s
	}
	return Unknown
}

// IsSuccess reports whether the status is a confirmed terminal success.
func (s Internal) IsSuccess() bool {
	return s == Completed || s == Received
}

// IsFailure reports whether the status is a confirmed terminal failure.
func (s Internal) IsFailure() bool {
	return s == Failed || s == Rejected || s == Reversed
}

// IsSettled reports whether the provider has reached a terminal outcome.
// Everything else, Unknown included, is still in flight and must not be
// presented to the user as either success or failure.
func (s Internal) IsSettled() bool {
	return s.IsSuccess() || s.IsFailure()
}
