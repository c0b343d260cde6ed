// Package verification aggregates the backend's KYC and bank-verification
// state into a single authorization decision.
//
// The central rule of this package: authorization state is never trusted
// beyond its most recent fetch. Every Authorize call re-reads the backend, and
// a fetch failure is a denial — absence of proof of verification is never
// treated as verification.
package verification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"paygate/internal/models"
)

const (
	reasonUnavailable     = "verification status unavailable"
	reasonBankNotVerified = "bank account not verified"
	reasonBankPending     = "bank verification is pending"
	reasonBankFailed      = "bank verification failed"
)

type service struct {
	fetcher Fetcher
	log     *zap.Logger
}

// NewService creates the authorization gate.
func NewService(fetcher Fetcher, log *zap.Logger) Service {
	if fetcher == nil {
		panic("fetcher is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{fetcher: fetcher, log: log}
}

func (s *service) Refresh(ctx context.Context, session models.AuthContext) (*models.VerificationState, error) {
	snap, err := s.fetcher.FetchVerification(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("fetch verification state: %w", err)
	}

	bank := models.ParseBankStatus(snap.Bank.VerificationStatus)
	state := &models.VerificationState{
		KYCStatus:        models.ParseKYCStatus(snap.KYC.Status),
		BankStatus:       bank,
		CanTransact:      bank == models.BankVerified,
		AvailableBalance: snap.Stats.AvailableBalance,
		LastRefreshedAt:  time.Now().UTC(),
	}
	return state, nil
}

func (s *service) Authorize(ctx context.Context, session models.AuthContext, action Action) Decision {
	state, err := s.Refresh(ctx, session)
	if err != nil {
		// Fail closed. A network error is not a verdict.
		s.log.Warn("authorization refresh failed",
			zap.Uint("user_id", session.UserID),
			zap.String("action", string(action)),
			zap.Error(err))
		return Decision{Allowed: false, Reason: reasonUnavailable}
	}

	switch action {
	case ActionPay, ActionPayout, ActionOnboardRetailer:
		// Bank verification alone gates money movement and retailer
		// onboarding. KYC is informational here; it does not gate
		// transacting in this system.
		if state.CanTransact {
			return Decision{Allowed: true, State: state}
		}
		return Decision{Allowed: false, Reason: bankDenialReason(state.BankStatus), State: state}
	default:
		return Decision{Allowed: false, Reason: fmt.Sprintf("unknown action %q", action), State: state}
	}
}

func bankDenialReason(status models.BankStatus) string {
	switch status {
	case models.BankPending:
		return reasonBankPending
	case models.BankFailed:
		return reasonBankFailed
	default:
		return reasonBankNotVerified
	}
}
