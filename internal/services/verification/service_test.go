package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paygate/internal/backend"
	"paygate/internal/models"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchVerification(ctx context.Context, session models.AuthContext) (*backend.VerificationSnapshot, error) {
	args := m.Called(ctx, session)
	if snap := args.Get(0); snap != nil {
		return snap.(*backend.VerificationSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func snapshot(kyc, bank string, balance string) *backend.VerificationSnapshot {
	snap := &backend.VerificationSnapshot{}
	snap.KYC.Status = kyc
	snap.Bank.VerificationStatus = bank
	snap.Stats.AvailableBalance, _ = decimal.NewFromString(balance)
	return snap
}

func TestRefresh_DerivesState(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchVerification", mock.Anything, mock.Anything).
		Return(snapshot("approved", "verified", "1250.50"), nil)

	svc := NewService(fetcher, nil)
	state, err := svc.Refresh(context.Background(), models.AuthContext{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, models.KYCApproved, state.KYCStatus)
	assert.Equal(t, models.BankVerified, state.BankStatus)
	assert.True(t, state.CanTransact)
	assert.True(t, state.AvailableBalance.Equal(decimal.RequireFromString("1250.50")))
	assert.False(t, state.LastRefreshedAt.IsZero())

	fetcher.AssertExpectations(t)
}

func TestRefresh_UnrecognizedStatusesFailClosed(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchVerification", mock.Anything, mock.Anything).
		Return(snapshot("SOMETHING_NEW", "SOMETHING_NEW", "0"), nil)

	svc := NewService(fetcher, nil)
	state, err := svc.Refresh(context.Background(), models.AuthContext{})
	require.NoError(t, err)

	assert.Equal(t, models.KYCNotSubmitted, state.KYCStatus)
	assert.Equal(t, models.BankNotVerified, state.BankStatus)
	assert.False(t, state.CanTransact)
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		action      Action
		snap        *backend.VerificationSnapshot
		fetchErr    error
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "pay allowed when bank verified",
			action:      ActionPay,
			snap:        snapshot("approved", "verified", "100"),
			wantAllowed: true,
		},
		{
			name:        "kyc does not gate transacting",
			action:      ActionPay,
			snap:        snapshot("not_submitted", "verified", "100"),
			wantAllowed: true,
		},
		{
			name:        "payout denied when bank pending",
			action:      ActionPayout,
			snap:        snapshot("approved", "pending", "100"),
			wantAllowed: false,
			wantReason:  reasonBankPending,
		},
		{
			name:        "payout denied when bank failed",
			action:      ActionPayout,
			snap:        snapshot("approved", "failed", "100"),
			wantAllowed: false,
			wantReason:  reasonBankFailed,
		},
		{
			name:        "onboarding uses the same bank rule",
			action:      ActionOnboardRetailer,
			snap:        snapshot("approved", "not_verified", "100"),
			wantAllowed: false,
			wantReason:  reasonBankNotVerified,
		},
		{
			name:        "fetch failure fails closed",
			action:      ActionPay,
			fetchErr:    errors.New("connection refused"),
			wantAllowed: false,
			wantReason:  reasonUnavailable,
		},
		{
			name:        "unknown action denied",
			action:      Action("delete_everything"),
			snap:        snapshot("approved", "verified", "100"),
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			if tt.fetchErr != nil {
				fetcher.On("FetchVerification", mock.Anything, mock.Anything).Return(nil, tt.fetchErr)
			} else {
				fetcher.On("FetchVerification", mock.Anything, mock.Anything).Return(tt.snap, nil)
			}

			svc := NewService(fetcher, nil)
			d := svc.Authorize(context.Background(), models.AuthContext{UserID: 1}, tt.action)

			assert.Equal(t, tt.wantAllowed, d.Allowed)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, d.Reason)
			}
			fetcher.AssertExpectations(t)
		})
	}
}

// A previously successful authorization must not survive a later failed
// refresh: every Authorize performs its own fetch.
func TestAuthorize_NoStaleApproval(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchVerification", mock.Anything, mock.Anything).
		Return(snapshot("approved", "verified", "100"), nil).Once()
	fetcher.On("FetchVerification", mock.Anything, mock.Anything).
		Return(nil, errors.New("network down")).Once()

	svc := NewService(fetcher, nil)
	session := models.AuthContext{UserID: 1}

	assert.True(t, svc.Authorize(context.Background(), session, ActionPay).Allowed)
	assert.False(t, svc.Authorize(context.Background(), session, ActionPay).Allowed)

	fetcher.AssertExpectations(t)
}
