package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"paygate/internal/backend"
	"paygate/internal/middleware"
	"paygate/internal/repositories/cache"
	"paygate/internal/services/status"
	"paygate/internal/utils/response"
)

type TransactionHandler struct {
	client  *backend.Client
	history *cache.HistoryCache
}

func NewTransactionHandler(client *backend.Client, history *cache.HistoryCache) *TransactionHandler {
	return &TransactionHandler{client: client, history: history}
}

type transactionView struct {
	ReferenceID string          `json:"reference_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Status      status.Internal `json:"status"`
	RawStatus   string          `json:"raw_status"`
	Remarks     string          `json:"remarks,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// ListTransactions backs the status/history view. Records come from the
// short-TTL cache when fresh, otherwise from the backend; each record's
// provider status is normalized before rendering.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	session := middleware.Session(c)

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, hit := h.history.Get(c.Context(), session.UserID, limit, offset)
	if !hit {
		var err error
		records, err = h.client.ListTransactions(c.Context(), session, limit, offset)
		if err != nil {
			return response.ServiceUnavailable(c, "transaction history unavailable")
		}
		_ = h.history.Set(c.Context(), session.UserID, limit, offset, records)
	}

	views := make([]transactionView, 0, len(records))
	for _, r := range records {
		views = append(views, transactionView{
			ReferenceID: r.ReferenceID,
			Type:        r.Type,
			Amount:      r.Amount,
			Status:      status.Normalize(r.Status),
			RawStatus:   r.Status,
			Remarks:     r.Remarks,
			CreatedAt:   r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return response.Success(c, "Transaction history", views)
}
