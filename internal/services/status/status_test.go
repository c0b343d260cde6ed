package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Internal
	}{
		{"SUCCESS", Completed},
		{"SENT_TO_BENEFICIARY", SentToBeneficiary},
		{"FAILED", Failed},
		{"REVERSED", Reversed},
		{"REJECTED", Rejected},
		{"RECEIVED", Received},
		{"APPROVAL_PENDING", ApprovalPending},
		{"PENDING", Pending},
		{"PROCESSING", Processing},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_TotalOverArbitraryInput(t *testing.T) {
	inputs := []string{
		"",
		"success",          // case matters; lowercase is a contract change
		"Pending",
		"SUCCESS ",         // trailing whitespace is not the provider code
		"COMPLETED",        // internal name, not a provider code
		"SETTLED",
		"garbage",
		"💥",
	}

	for _, raw := range inputs {
		assert.Equal(t, Unknown, Normalize(raw), "input %q", raw)
	}
}

func TestInternal_Classification(t *testing.T) {
	assert.True(t, Completed.IsSuccess())
	assert.True(t, Received.IsSuccess())
	assert.False(t, SentToBeneficiary.IsSuccess())

	assert.True(t, Failed.IsFailure())
	assert.True(t, Rejected.IsFailure())
	assert.True(t, Reversed.IsFailure())
	assert.False(t, Pending.IsFailure())

	// In-flight statuses are neither success nor failure.
	for _, s := range []Internal{SentToBeneficiary, ApprovalPending, Pending, Processing, Unknown} {
		assert.False(t, s.IsSettled(), "status %q", s)
	}
}
