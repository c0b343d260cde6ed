package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paygate/internal/services/fees"
	"paygate/internal/services/transaction"
	"paygate/internal/utils/response"
)

type FeeHandler struct {
	calc      *fees.Calculator
	schedules transaction.Schedules
}

func NewFeeHandler(calc *fees.Calculator, schedules transaction.Schedules) *FeeHandler {
	return &FeeHandler{calc: calc, schedules: schedules}
}

// Quote previews the monetary breakdown for an amount before submission.
// Display only — the orchestrator recomputes the authoritative amount at
// submit time.
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	principal, err := fees.ParseAmount(c.Query("amount"))
	if err != nil {
		return response.BadRequest(c, "invalid amount")
	}

	var breakdown interface{}
	switch c.Query("type", "payment") {
	case "payment":
		breakdown, err = h.calc.ComputePayment(principal, h.schedules.Payment)
	case "payout":
		breakdown, err = h.calc.ComputePayout(principal, h.schedules.Payout)
	default:
		return response.BadRequest(c, "type must be payment or payout")
	}

	if err != nil {
		if errors.Is(err, fees.ErrBelowMinimum) || errors.Is(err, fees.ErrInvalidAmount) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "fee computation failed")
	}
	return response.Success(c, "Fee quote", breakdown)
}
