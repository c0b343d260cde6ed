package transaction

import (
	"context"

	"github.com/shopspring/decimal"

	"paygate/internal/backend"
	"paygate/internal/models"
)

// Service drives the submission protocol for payments and payouts.
type Service interface {
	// SubmitPayment runs authorize → compute → submit. If the backend opens
	// a live provider checkout session the result stops at
	// awaiting_provider and carries the session for handoff; synthetic
	// orders go straight to verification.
	SubmitPayment(ctx context.Context, session models.AuthContext, req PaymentRequest) (*Result, error)

	// SubmitPayout runs authorize → compute → balance check → submit →
	// single verification call.
	SubmitPayout(ctx context.Context, session models.AuthContext, req PayoutRequest) (*Result, error)

	// VerifyPayment re-verifies an order against the backend. Called
	// whenever control returns from the provider; the provider's own
	// callback is never the source of truth.
	VerifyPayment(ctx context.Context, session models.AuthContext, orderID string) (*Result, error)

	// VerifyPayout re-verifies a payout against the backend.
	VerifyPayout(ctx context.Context, session models.AuthContext, payoutID string) (*Result, error)
}

// Gateway is the slice of the backend API the orchestrator needs.
// Implemented by backend.Client.
type Gateway interface {
	CreatePaymentOrder(ctx context.Context, session models.AuthContext, req backend.CreateOrderRequest) (*backend.OrderResponse, error)
	GetOrderStatus(ctx context.Context, session models.AuthContext, orderID string) (*backend.StatusResponse, error)
	CreatePayout(ctx context.Context, session models.AuthContext, req backend.CreatePayoutRequest) (*backend.PayoutResponse, error)
	GetPayoutStatus(ctx context.Context, session models.AuthContext, payoutID string) (*backend.StatusResponse, error)
}

// Calculator computes monetary breakdowns. Implemented by fees.Calculator.
type Calculator interface {
	ComputePayment(principal decimal.Decimal, schedule models.FeeSchedule) (models.MonetaryBreakdown, error)
	ComputePayout(principal decimal.Decimal, schedule models.FeeSchedule) (models.MonetaryBreakdown, error)
}
