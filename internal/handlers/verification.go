// Package handlers exposes the portal core over HTTP for the UI shell.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paygate/internal/middleware"
	"paygate/internal/services/verification"
	"paygate/internal/utils/response"
)

type VerificationHandler struct {
	gate verification.Service
}

func NewVerificationHandler(gate verification.Service) *VerificationHandler {
	return &VerificationHandler{gate: gate}
}

// GetVerification is the page-mount fetch: it re-derives the verification
// state from the backend on every call. A failed fetch is surfaced as
// unavailable so the page renders its fail-closed state, never a stale one.
func (h *VerificationHandler) GetVerification(c *fiber.Ctx) error {
	session := middleware.Session(c)

	state, err := h.gate.Refresh(c.Context(), session)
	if err != nil {
		return response.ServiceUnavailable(c, "verification status unavailable")
	}
	return response.Success(c, "Verification status", state)
}
