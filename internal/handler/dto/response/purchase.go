package response

import (
	"time"

	"lead-exchange/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteLineResponse struct {
	InventoryID    uuid.UUID `json:"inventory_id"`
	LeadID         uuid.UUID `json:"lead_id"`
	AgeBucket      string    `json:"age_bucket"`
	Classification string    `json:"classification"`
	PriceCents     int64     `json:"price_cents"`
}

type QuoteResponse struct {
	Items         []QuoteLineResponse `json:"items"`
	SubtotalCents int64               `json:"subtotal_cents"`
	Currency      string              `json:"currency"`
	CreatedAt     time.Time           `json:"created_at"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

func FromQuote(q *commands.Quote) (*QuoteResponse, error) {
	var resp QuoteResponse
	if err := copier.Copy(&resp, q); err != nil {
		return nil, err
	}
	return &resp, nil
}

type PurchaseResponse struct {
	Success        bool        `json:"success"`
	SaleIDs        []uuid.UUID `json:"sale_ids"`
	TotalPaidCents int64       `json:"total_paid_cents"`
	Currency       string      `json:"currency,omitempty"`
	ItemsRequested int         `json:"items_requested"`
	ItemsPurchased int         `json:"items_purchased"`
	ItemsReplaced  int         `json:"items_replaced"`
	Errors         []string    `json:"errors,omitempty"`
}

func FromPurchaseResult(r *commands.PurchaseResult) (*PurchaseResponse, error) {
	var resp PurchaseResponse
	if err := copier.Copy(&resp, r); err != nil {
		return nil, err
	}
	return &resp, nil
}

type AlternativeResponse struct {
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	AvailableCount int64  `json:"available_count"`
}

// InsufficientInventoryResponse is the conflict payload when allocation
// cannot satisfy a criterion.
type InsufficientInventoryResponse struct {
	Criteria     string                `json:"criteria"`
	Requested    int                   `json:"requested"`
	Available    int64                 `json:"available"`
	ItemIndex    *int                  `json:"item_index,omitempty"`
	Alternatives []AlternativeResponse `json:"alternatives"`
}

func FromInsufficientInventory(e *commands.InsufficientInventoryError) *InsufficientInventoryResponse {
	alternatives := make([]AlternativeResponse, len(e.Alternatives))
	for i, alt := range e.Alternatives {
		alternatives[i] = AlternativeResponse(alt)
	}
	return &InsufficientInventoryResponse{
		Criteria:     e.Criteria.Describe(),
		Requested:    e.Requested,
		Available:    e.Available,
		ItemIndex:    e.ItemIndex,
		Alternatives: alternatives,
	}
}

type AvailabilityResponse struct {
	Counts map[string]int64 `json:"counts"`
}
