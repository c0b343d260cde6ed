package onboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"paygate/internal/models"
	"paygate/internal/services/verification"
)

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Refresh(ctx context.Context, session models.AuthContext) (*models.VerificationState, error) {
	args := m.Called(ctx, session)
	if state := args.Get(0); state != nil {
		return state.(*models.VerificationState), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGate) Authorize(ctx context.Context, session models.AuthContext, action verification.Action) verification.Decision {
	args := m.Called(ctx, session, action)
	return args.Get(0).(verification.Decision)
}

func TestEligibility_NonMasterBlockedWithoutFetch(t *testing.T) {
	gate := new(MockGate)
	svc := NewService(gate)

	d := svc.Eligibility(context.Background(), models.AuthContext{UserID: 1, Role: models.RoleRetailer})

	assert.False(t, d.Allowed)
	assert.Contains(t, d.Banner, "master accounts")
	gate.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything)
}

func TestEligibility_UnverifiedMasterGetsActionableBanner(t *testing.T) {
	gate := new(MockGate)
	gate.On("Authorize", mock.Anything, mock.Anything, verification.ActionOnboardRetailer).
		Return(verification.Decision{Allowed: false, Reason: "bank account not verified"})

	svc := NewService(gate)
	d := svc.Eligibility(context.Background(), models.AuthContext{UserID: 1, Role: models.RoleMaster})

	assert.False(t, d.Allowed)
	assert.Contains(t, d.Banner, "bank account not verified")
	gate.AssertExpectations(t)
}

func TestEligibility_VerifiedMasterAllowed(t *testing.T) {
	gate := new(MockGate)
	gate.On("Authorize", mock.Anything, mock.Anything, verification.ActionOnboardRetailer).
		Return(verification.Decision{Allowed: true})

	svc := NewService(gate)
	d := svc.Eligibility(context.Background(), models.AuthContext{UserID: 1, Role: models.RoleMaster})

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Banner)
}
