package commands

import (
	"context"
	"time"

	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/clock"
	"lead-exchange/internal/pkg/errs"
	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrPricingNotFound   = errs.New("no active pricing rule for requested item")
	ErrItemsUnavailable  = errs.New("one or more requested items are unavailable")
	ErrEmptyQuoteRequest = errs.New("quote request contains no items")
)

type QuoteLine struct {
	InventoryID    uuid.UUID `json:"inventory_id"`
	LeadID         uuid.UUID `json:"lead_id"`
	AgeBucket      string    `json:"age_bucket"`
	Classification string    `json:"classification"`
	PriceCents     int64     `json:"price_cents"`
}

// Quote is a priced snapshot of specific inventory items. It holds nothing:
// any item may be sold to someone else before the buyer commits.
type Quote struct {
	Items         []QuoteLine `json:"items"`
	SubtotalCents int64       `json:"subtotal_cents"`
	Currency      string      `json:"currency"`
	CreatedAt     time.Time   `json:"created_at"`
	ExpiresAt     time.Time   `json:"expires_at"`
}

func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

type QuoteCommands interface {
	// QuoteByIDs prices the given available items. Any requested item that is
	// missing or already sold fails the whole quote.
	QuoteByIDs(ctx context.Context, ids []uuid.UUID) (*Quote, error)
	// QuoteItems prices already-fetched items without re-reading the store.
	QuoteItems(ctx context.Context, items []*queries.AvailableInventoryItem) (*Quote, error)
}

type quoteCommandsImpl struct {
	inventory queries.InventoryQueries
	pricing   PricingRepository
	clock     clock.Clock
	validity  time.Duration
}

func NewQuoteCommands(inventory queries.InventoryQueries, pricing PricingRepository, clk clock.Clock, validity time.Duration) QuoteCommands {
	return &quoteCommandsImpl{
		inventory: inventory,
		pricing:   pricing,
		clock:     clk,
		validity:  validity,
	}
}

func (c *quoteCommandsImpl) QuoteByIDs(ctx context.Context, ids []uuid.UUID) (*Quote, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyQuoteRequest
	}

	items, err := c.inventory.FindByIDs(ctx, ids, true)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch items for quote")
	}
	if len(items) != len(ids) {
		return nil, ErrItemsUnavailable
	}

	return c.QuoteItems(ctx, items)
}

func (c *quoteCommandsImpl) QuoteItems(ctx context.Context, items []*queries.AvailableInventoryItem) (*Quote, error) {
	if len(items) == 0 {
		return nil, ErrEmptyQuoteRequest
	}

	lines := make([]QuoteLine, 0, len(items))
	var subtotal int64
	currency := ""

	for _, item := range items {
		price, cur, err := c.pricing.ActivePriceCents(ctx, item.Classification, item.AgeBucket)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrPricingNotFound)
			}
			return nil, errs.Wrap(err, "failed to resolve price")
		}
		if currency == "" {
			currency = cur
		}

		lines = append(lines, QuoteLine{
			InventoryID:    item.InventoryID,
			LeadID:         item.LeadID,
			AgeBucket:      item.AgeBucket.String(),
			Classification: item.Classification.String(),
			PriceCents:     price,
		})
		subtotal += price
	}

	now := c.clock.Now()
	return &Quote{
		Items:         lines,
		SubtotalCents: subtotal,
		Currency:      currency,
		CreatedAt:     now,
		ExpiresAt:     now.Add(c.validity),
	}, nil
}
