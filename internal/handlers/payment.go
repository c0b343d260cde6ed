package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"paygate/internal/middleware"
	"paygate/internal/services/fees"
	"paygate/internal/services/transaction"
	"paygate/internal/utils/response"
)

// HistoryInvalidator drops cached history pages after a submission so the
// status view reflects the new attempt.
type HistoryInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}

type PaymentHandler struct {
	svc      transaction.Service
	history  HistoryInvalidator
	validate *validator.Validate
}

func NewPaymentHandler(svc transaction.Service, history HistoryInvalidator, validate *validator.Validate) *PaymentHandler {
	return &PaymentHandler{svc: svc, history: history, validate: validate}
}

// CreatePayment submits one payment attempt. Every call builds a brand-new
// request object; the handler never resubmits on behalf of the user.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	session := middleware.Session(c)

	var input struct {
		Amount         string `json:"amount" validate:"required"`
		CustomerMobile string `json:"customer_mobile" validate:"required,min=10,max=15"`
		Remarks        string `json:"remarks" validate:"max=200"`
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

	req := transaction.NewPaymentRequest(amount, input.CustomerMobile, input.Remarks)
	result, err := h.svc.SubmitPayment(c.Context(), session, req)
	if err != nil {
		return response.ServerError(c, "payment submission failed")
	}

	if h.history != nil && result.State != transaction.StateFailed {
		_ = h.history.Invalidate(c.Context(), session.UserID)
	}
	return response.Success(c, "Payment "+string(result.State), result)
}

// VerifyPayment re-checks an order against the backend. Called when the
// provider redirect returns, regardless of what the provider's own callback
// claimed.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	session := middleware.Session(c)

	result, err := h.svc.VerifyPayment(c.Context(), session, c.Params("orderID"))
	if err != nil {
		return response.BadRequest(c, "invalid order reference")
	}
	return response.Success(c, "Payment "+string(result.State), result)
}
