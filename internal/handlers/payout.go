package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"paygate/internal/middleware"
	"paygate/internal/services/fees"
	"paygate/internal/services/transaction"
	"paygate/internal/utils/response"
)

type PayoutHandler struct {
	svc      transaction.Service
	history  HistoryInvalidator
	validate *validator.Validate
}

func NewPayoutHandler(svc transaction.Service, history HistoryInvalidator, validate *validator.Validate) *PayoutHandler {
	return &PayoutHandler{svc: svc, history: history, validate: validate}
}

// CreatePayout submits one payout attempt to the user's linked bank account.
func (h *PayoutHandler) CreatePayout(c *fiber.Ctx) error {
	session := middleware.Session(c)

	var input struct {
		Amount        string `json:"amount" validate:"required"`
		BankAccountID string `json:"bank_account_id" validate:"required"`
		Remarks       string `json:"remarks" validate:"max=200"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := h.validate.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	amount, err := fees.ParseAmount(input.Amount)
	if err != nil {
		return response.BadRequest(c, "invalid amount")
	}

	req := transaction.NewPayoutRequest(amount, input.BankAccountID, input.Remarks)
	result, err := h.svc.SubmitPayout(c.Context(), session, req)
	if err != nil {
		return response.ServerError(c, "payout submission failed")
	}

	if h.history != nil && result.State != transaction.StateFailed {
		_ = h.history.Invalidate(c.Context(), session.UserID)
	}
	return response.Success(c, "Payout "+string(result.State), result)
}

// VerifyPayout re-checks a payout against the backend for the status view's
// manual refresh.
func (h *PayoutHandler) VerifyPayout(c *fiber.Ctx) error {
	session := middleware.Session(c)

	result, err := h.svc.VerifyPayout(c.Context(), session, c.Params("payoutID"))
	if err != nil {
		return response.BadRequest(c, "invalid payout reference")
	}
	return response.Success(c, "Payout "+string(result.State), result)
}
