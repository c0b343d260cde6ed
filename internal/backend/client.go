// Package backend is the HTTP client for the platform's REST API. The API is
// an opaque collaborator: this package owns no wire format, it consumes what
// the backend returns and surfaces transport failures distinctly from
// business refusals.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"paygate/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchVerification reads the account's current KYC/bank/balance state.
// Always a network read; there is no cached fallback by design.
func (c *Client) FetchVerification(ctx context.Context, session models.AuthContext) (*VerificationSnapshot, error) {
	var snap VerificationSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/account/verification", session.Token, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// CreatePaymentOrder creates a payment order and returns the provider
// checkout session the backend opened for it.
func (c *Client) CreatePaymentOrder(ctx context.Context, session models.AuthContext, req CreateOrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", session.Token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrderStatus verifies a payment order against the backend's stored truth.
func (c *Client) GetOrderStatus(ctx context.Context, session models.AuthContext, orderID string) (*StatusResponse, error) {
	var resp StatusResponse
	path := fmt.Sprintf("/api/orders/%s/status", orderID)
	if err := c.do(ctx, http.MethodGet, path, session.Token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePayout submits a payout to the account's linked bank account.
func (c *Client) CreatePayout(ctx context.Context, session models.AuthContext, req CreatePayoutRequest) (*PayoutResponse, error) {
	var resp PayoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/payouts", session.Token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPayoutStatus verifies a payout against the backend's stored truth.
func (c *Client) GetPayoutStatus(ctx context.Context, session models.AuthContext, payoutID string) (*StatusResponse, error) {
	var resp StatusResponse
	path := fmt.Sprintf("/api/payouts/%s/status", payoutID)
	if err := c.do(ctx, http.MethodGet, path, session.Token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTransactions returns recent transaction records for the history view.
func (c *Client) ListTransactions(ctx context.Context, session models.AuthContext, limit, offset int) ([]TransactionRecord, error) {
	var records []TransactionRecord
	path := fmt.Sprintf("/api/transactions?limit=%d&offset=%d", limit, offset)
	if err := c.do(ctx, http.MethodGet, path, session.Token, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		c.log.Warn("backend server error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%w: %s", ErrRejected, apiErr.Error)
		}
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}
