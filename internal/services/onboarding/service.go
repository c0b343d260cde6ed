// Package onboarding gates retailer sub-account creation behind the master
// account's own verification. It holds no state of its own; the decision is
// the verification gate's, specialized with the master-role requirement and a
// user-facing banner so the blocked cause is visible, never a silent disable.
package onboarding

import (
	"context"

	"paygate/internal/models"
	"paygate/internal/services/verification"
)

// Decision tells the UI whether retailer creation may proceed and, if not,
// what banner to render.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Banner  string `json:"banner,omitempty"`
}

type Service interface {
	// Eligibility checks whether the session may create retailer
	// sub-accounts right now.
	Eligibility(ctx context.Context, session models.AuthContext) Decision
}

type service struct {
	gate verification.Service
}

func NewService(gate verification.Service) Service {
	if gate == nil {
		panic("verification gate is required")
	}
	return &service{gate: gate}
}

func (s *service) Eligibility(ctx context.Context, session models.AuthContext) Decision {
	if session.Role != models.RoleMaster {
		return Decision{Allowed: false, Banner: "Only master accounts can create retailer accounts."}
	}

	d := s.gate.Authorize(ctx, session, verification.ActionOnboardRetailer)
	if !d.Allowed {
		return Decision{
			Allowed: false,
			Banner:  "Complete bank verification to create retailer accounts: " + d.Reason + ".",
		}
	}
	return Decision{Allowed: true}
}
