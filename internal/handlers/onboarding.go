package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paygate/internal/middleware"
	"paygate/internal/services/onboarding"
	"paygate/internal/utils/response"
)

type OnboardingHandler struct {
	svc onboarding.Service
}

func NewOnboardingHandler(svc onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// RetailerEligibility tells the UI whether the "create retailer" action may
// proceed, with the banner to render when it may not.
func (h *OnboardingHandler) RetailerEligibility(c *fiber.Ctx) error {
	session := middleware.Session(c)

	decision := h.svc.Eligibility(c.Context(), session)
	return response.Success(c, "Retailer onboarding eligibility", decision)
}
