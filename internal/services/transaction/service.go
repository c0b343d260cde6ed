// Package transaction orchestrates the payment and payout submission
// protocols against the backend and the external gateway provider.
//
// Each user action is one strictly sequential pass through the state machine
//
//	idle → authorizing → computing → submitting → awaiting_provider →
//	verifying → succeeded | failed | indeterminate
//
// Authorization and fee errors fail locally before any order exists
// server-side. Network failures after submission are never auto-retried;
// a retry is a new user action with a brand-new request object.
package transaction

import (
	"context"

	"go.uber.org/zap"

	"paygate/internal/backend"
	"paygate/internal/models"
	"paygate/internal/services/status"
	"paygate/internal/services/verification"
)

const (
	reasonOrderCreateFailed  = "order creation failed, no money was moved"
	reasonPayoutCreateFailed = "payout submission failed"
	reasonVerifyUnavailable  = "verification pending, check the status page"
)

type service struct {
	gate      verification.Service
	calc      Calculator
	gateway   Gateway
	schedules Schedules
	log       *zap.Logger
}

// NewService creates the orchestrator.
func NewService(gate verification.Service, calc Calculator, gateway Gateway, schedules Schedules, log *zap.Logger) Service {
	if gate == nil {
		panic("verification gate is required")
	}
	if calc == nil {
		panic("calculator is required")
	}
	if gateway == nil {
		panic("gateway is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		gate:      gate,
		calc:      calc,
		gateway:   gateway,
		schedules: schedules,
		log:       log,
	}
}

func (s *service) SubmitPayment(ctx context.Context, session models.AuthContext, req PaymentRequest) (*Result, error) {
	// Authorizing. A denial is a local failure: no order is created
	// server-side for a request that was never allowed.
	decision := s.gate.Authorize(ctx, session, verification.ActionPay)
	if !decision.Allowed {
		return &Result{State: StateFailed, Reason: decision.Reason}, nil
	}

	// Computing. The breakdown is recomputed here, immediately before
	// submission — a total displayed earlier is never trusted.
	breakdown, err := s.calc.ComputePayment(req.Amount, s.schedules.Payment)
	if err != nil {
		return &Result{State: StateFailed, Reason: err.Error()}, nil
	}

	// Submitting.
	order, err := s.gateway.CreatePaymentOrder(ctx, session, backend.CreateOrderRequest{
		Amount:         breakdown.TotalDebit,
		CustomerMobile: req.CustomerMobile,
		Remarks:        req.Remarks,
		ClientRef:      req.ClientRef,
	})
	if err != nil {
		s.log.Warn("payment order creation failed",
			zap.Uint("user_id", session.UserID),
			zap.String("client_ref", req.ClientRef),
			zap.Error(err))
		return &Result{State: StateFailed, Reason: reasonOrderCreateFailed, Retryable: true}, nil
	}

	checkout := models.CheckoutSession{
		OrderID:          order.OrderID,
		PaymentSessionID: order.PaymentSessionID,
	}
	if checkout.IsLive() {
		// Hand control to the provider's checkout flow. The caller comes
		// back through VerifyPayment once the redirect returns.
		return &Result{
			State:     StateAwaitingProvider,
			OrderID:   order.OrderID,
			Breakdown: &breakdown,
			Session:   &checkout,
		}, nil
	}

	// Synthetic/test-mode order: no live session, verify directly.
	result, err := s.VerifyPayment(ctx, session, order.OrderID)
	if err != nil {
		return nil, err
	}
	result.Breakdown = &breakdown
	return result, nil
}

func (s *service) SubmitPayout(ctx context.Context, session models.AuthContext, req PayoutRequest) (*Result, error) {
	decision := s.gate.Authorize(ctx, session, verification.ActionPayout)
	if !decision.Allowed {
		return &Result{State: StateFailed, Reason: decision.Reason}, nil
	}

	breakdown, err := s.calc.ComputePayout(req.Amount, s.schedules.Payout)
	if err != nil {
		return &Result{State: StateFailed, Reason: err.Error()}, nil
	}

	// The wallet must cover the full debit, fee included. Checked against
	// the balance from the fresh authorization snapshot, before any
	// submission reaches the backend.
	if decision.State != nil && decision.State.AvailableBalance.LessThan(breakdown.TotalDebit) {
		return &Result{
			State:     StateFailed,
			Reason:    ErrInsufficientBalance.Error(),
			Breakdown: &breakdown,
		}, nil
	}

	payout, err := s.gateway.CreatePayout(ctx, session, backend.CreatePayoutRequest{
		Amount:        breakdown.TotalDebit,
		BankAccountID: req.BankAccountID,
		Remarks:       req.Remarks,
		ClientRef:     req.ClientRef,
	})
	if err != nil {
		s.log.Warn("payout submission failed",
			zap.Uint("user_id", session.UserID),
			zap.String("client_ref", req.ClientRef),
			zap.Error(err))
		return &Result{State: StateFailed, Reason: reasonPayoutCreateFailed, Retryable: true}, nil
	}

	result, err := s.VerifyPayout(ctx, session, payout.PayoutID)
	if err != nil {
		return nil, err
	}
	result.Breakdown = &breakdown
	return result, nil
}

func (s *service) VerifyPayment(ctx context.Context, session models.AuthContext, orderID string) (*Result, error) {
	if orderID == "" {
		return nil, ErrInvalidRequest
	}

	resp, err := s.gateway.GetOrderStatus(ctx, session, orderID)
	if err != nil {
		// The order may still settle server-side; a transport failure or
		// timeout here must never read as a failed payment.
		s.log.Warn("order verification unavailable",
			zap.String("order_id", orderID),
			zap.Bool("timeout", backend.IsTimeout(err)),
			zap.Error(err))
		return &Result{State: StateIndeterminate, OrderID: orderID, Reason: reasonVerifyUnavailable}, nil
	}

	result := s.outcome(status.Normalize(resp.Raw()))
	result.OrderID = orderID
	return result, nil
}

func (s *service) VerifyPayout(ctx context.Context, session models.AuthContext, payoutID string) (*Result, error) {
	if payoutID == "" {
		return nil, ErrInvalidRequest
	}

	resp, err := s.gateway.GetPayoutStatus(ctx, session, payoutID)
	if err != nil {
		s.log.Warn("payout verification unavailable",
			zap.String("payout_id", payoutID),
			zap.Bool("timeout", backend.IsTimeout(err)),
			zap.Error(err))
		return &Result{State: StateIndeterminate, PayoutID: payoutID, Reason: reasonVerifyUnavailable}, nil
	}

	result := s.outcome(status.Normalize(resp.Raw()))
	result.PayoutID = payoutID
	return result, nil
}

// outcome maps a normalized status onto a terminal machine state. Anything
// not settled — unknown included — is indeterminate, and the orchestrator
// does not poll; the user refreshes from the status view.
func (s *service) outcome(st status.Internal) *Result {
	switch {
	case st.IsSuccess():
		return &Result{State: StateSucceeded, Status: st}
	case st.IsFailure():
		return &Result{State: StateFailed, Status: st, Reason: "provider reported " + string(st)}
	default:
		return &Result{State: StateIndeterminate, Status: st, Reason: reasonVerifyUnavailable}
	}
}
