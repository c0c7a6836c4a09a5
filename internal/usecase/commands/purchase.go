package commands

import (
	"context"
	"fmt"
	"log/slog"

	"lead-exchange/internal/pkg/clock"
	"lead-exchange/internal/pkg/errs"
	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound = errs.New("client not found")
	ErrEmptyPurchase  = errs.New("purchase request contains no items")
	ErrQuoteExpired   = errs.New("quote expired before purchase completed")
)

// PurchaseState tracks orchestration progress for logging and diagnostics.
type PurchaseState string

const (
	StateValidating PurchaseState = "validating"
	StateFetching   PurchaseState = "fetching"
	StateQuoting    PurchaseState = "quoting"
	StateSelling    PurchaseState = "selling"
	StateReplacing  PurchaseState = "replacing"
	StateCommitted  PurchaseState = "committed"
	StateRejected   PurchaseState = "rejected"
)

// PurchaseResult reports the outcome of one purchase attempt. When Success is
// false no purchase is reported even if individual sales committed before the
// failure; those sales are not rolled back.
type PurchaseResult struct {
	Success        bool        `json:"success"`
	SaleIDs        []uuid.UUID `json:"sale_ids"`
	TotalPaidCents int64       `json:"total_paid_cents"`
	Currency       string      `json:"currency"`
	ItemsRequested int         `json:"items_requested"`
	ItemsPurchased int         `json:"items_purchased"`
	ItemsReplaced  int         `json:"items_replaced"`
	Errors         []string    `json:"errors,omitempty"`
}

type PurchaseCommands interface {
	// Execute purchases the given inventory items for the client. Each item
	// is sold atomically; an item lost to a concurrent buyer is replaced at
	// most once with an equivalent available item. The overall purchase is
	// all-or-nothing in its reporting.
	Execute(ctx context.Context, clientID uuid.UUID, inventoryIDs []uuid.UUID) (*PurchaseResult, error)
	// ExecuteByCriteria allocates concrete items for the criteria and then
	// purchases them.
	ExecuteByCriteria(ctx context.Context, clientID uuid.UUID, criteria []AllocationCriteria) (*PurchaseResult, error)
}

type purchaseCommandsImpl struct {
	clients    ClientRepository
	inventory  InventoryWriteRepository
	reads      queries.InventoryQueries
	quotes     QuoteCommands
	allocation AllocationCommands
	clock      clock.Clock
	logger     *slog.Logger
}

func NewPurchaseCommands(
	clients ClientRepository,
	inventory InventoryWriteRepository,
	reads queries.InventoryQueries,
	quotes QuoteCommands,
	allocation AllocationCommands,
	clk clock.Clock,
	logger *slog.Logger,
) PurchaseCommands {
	return &purchaseCommandsImpl{
		clients:    clients,
		inventory:  inventory,
		reads:      reads,
		quotes:     quotes,
		allocation: allocation,
		clock:      clk,
		logger:     logger,
	}
}

const replacementSearchLimit = 10

func (c *purchaseCommandsImpl) Execute(ctx context.Context, clientID uuid.UUID, inventoryIDs []uuid.UUID) (*PurchaseResult, error) {
	if len(inventoryIDs) == 0 {
		return nil, ErrEmptyPurchase
	}

	log := c.logger.With("client_id", clientID, "items_requested", len(inventoryIDs))

	log.InfoContext(ctx, "purchase started", "state", StateValidating)
	buyer, err := c.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to load client"), ErrClientNotFound)
	}
	if !buyer.CanPurchase() {
		log.WarnContext(ctx, "purchase rejected", "state", StateRejected, "reason", "client not eligible")
		return c.rejected(len(inventoryIDs), "client account is not eligible to purchase"), nil
	}

	log.InfoContext(ctx, "fetching requested items", "state", StateFetching)
	items, err := c.reads.FindByIDs(ctx, inventoryIDs, true)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fetch requested items")
	}
	if len(items) != len(inventoryIDs) {
		log.WarnContext(ctx, "purchase rejected", "state", StateRejected, "reason", "items unavailable",
			"found", len(items))
		return c.rejected(len(inventoryIDs),
			fmt.Sprintf("requested %d items, only %d available", len(inventoryIDs), len(items))), nil
	}

	log.InfoContext(ctx, "quoting items", "state", StateQuoting)
	quote, err := c.quotes.QuoteItems(ctx, items)
	if err != nil {
		return nil, errs.Wrap(err, "failed to quote purchase")
	}
	if quote.IsExpired(c.clock.Now()) {
		return nil, ErrQuoteExpired
	}

	priceByInventory := make(map[uuid.UUID]int64, len(quote.Items))
	for _, line := range quote.Items {
		priceByInventory[line.InventoryID] = line.PriceCents
	}

	log.InfoContext(ctx, "selling items", "state", StateSelling)

	// Replacements may never pick an item that is part of this purchase,
	// whether already attempted or still pending.
	excluded := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		excluded[item.InventoryID] = struct{}{}
	}

	var (
		saleIDs   []uuid.UUID
		totalPaid int64
		replaced  int
		failures  []string
	)

	for _, item := range items {
		sold, saleID := c.sellOne(ctx, buyer.ID(), item.InventoryID, priceByInventory[item.InventoryID], quote.Currency)
		if sold {
			saleIDs = append(saleIDs, saleID)
			totalPaid += priceByInventory[item.InventoryID]
			continue
		}

		// Lost to a concurrent buyer. One replacement attempt with an
		// equivalent item, never retrying anything already tried.
		log.InfoContext(ctx, "item lost, searching replacement", "state", StateReplacing,
			"inventory_id", item.InventoryID)
		replacement, repErr := c.findReplacement(ctx, item, excluded)
		if repErr != nil {
			return nil, repErr
		}
		if replacement == nil {
			failures = append(failures,
				fmt.Sprintf("item %s was sold to another buyer and no replacement was available", item.InventoryID))
			continue
		}
		excluded[replacement.InventoryID] = struct{}{}

		repPrice, repCurrency, priceErr := c.priceFor(ctx, replacement)
		if priceErr != nil {
			return nil, priceErr
		}

		sold, saleID = c.sellOne(ctx, buyer.ID(), replacement.InventoryID, repPrice, repCurrency)
		if sold {
			saleIDs = append(saleIDs, saleID)
			totalPaid += repPrice
			replaced++
			continue
		}

		failures = append(failures,
			fmt.Sprintf("item %s and its replacement %s were both sold to other buyers",
				item.InventoryID, replacement.InventoryID))
	}

	if len(failures) > 0 {
		// All-or-nothing reporting: any unfillable item fails the whole
		// purchase. Sales that already committed are not reversed; they
		// simply are not reported as purchased.
		log.WarnContext(ctx, "purchase rejected", "state", StateRejected,
			"failures", len(failures), "committed_sales", len(saleIDs))
		result := c.rejected(len(inventoryIDs), failures...)
		return result, nil
	}

	log.InfoContext(ctx, "purchase committed", "state", StateCommitted,
		"items_purchased", len(saleIDs), "items_replaced", replaced, "total_paid_cents", totalPaid)

	return &PurchaseResult{
		Success:        true,
		SaleIDs:        saleIDs,
		TotalPaidCents: totalPaid,
		Currency:       quote.Currency,
		ItemsRequested: len(inventoryIDs),
		ItemsPurchased: len(saleIDs),
		ItemsReplaced:  replaced,
	}, nil
}

func (c *purchaseCommandsImpl) ExecuteByCriteria(ctx context.Context, clientID uuid.UUID, criteria []AllocationCriteria) (*PurchaseResult, error) {
	items, err := c.allocation.Allocate(ctx, criteria)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.InventoryID
	}
	return c.Execute(ctx, clientID, ids)
}

// sellOne runs one atomic sale attempt. Contention, already-sold outcomes and
// storage-level sale failures all count as losing the item; nothing here is
// fatal to the purchase.
func (c *purchaseCommandsImpl) sellOne(ctx context.Context, clientID, inventoryID uuid.UUID, priceCents int64, currency string) (bool, uuid.UUID) {
	result, err := c.inventory.TrySell(ctx, inventoryID, clientID, priceCents, currency, c.clock.Now())
	if err != nil {
		// A failed sale transaction is indistinguishable from losing the row
		// to another transaction, so it is treated as contention.
		c.logger.WarnContext(ctx, "atomic sale failed, treating as contention",
			"inventory_id", inventoryID, "error", err)
		return false, uuid.Nil
	}
	if !result.Sold {
		return false, uuid.Nil
	}
	return true, result.SaleID
}

func (c *purchaseCommandsImpl) priceFor(ctx context.Context, item *queries.AvailableInventoryItem) (int64, string, error) {
	quote, err := c.quotes.QuoteItems(ctx, []*queries.AvailableInventoryItem{item})
	if err != nil {
		return 0, "", errs.Wrap(err, "failed to price item")
	}
	return quote.Items[0].PriceCents, quote.Currency, nil
}

// findReplacement looks for an available item with the same classification,
// bucket, state and county, excluding every item already part of this
// purchase.
func (c *purchaseCommandsImpl) findReplacement(ctx context.Context, lost *queries.AvailableInventoryItem, excluded map[uuid.UUID]struct{}) (*queries.AvailableInventoryItem, error) {
	f := queries.NewFilters()
	f.Classifications = append(f.Classifications, lost.Classification)
	f.AgeBuckets = append(f.AgeBuckets, lost.AgeBucket)
	f.States = []string{lost.State}
	if lost.County != nil {
		f.Counties = []string{*lost.County}
	}

	candidates, err := c.reads.Browse(ctx, f, replacementSearchLimit, 0)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search for replacement")
	}

	for _, candidate := range candidates {
		if _, skip := excluded[candidate.InventoryID]; skip {
			continue
		}
		return candidate, nil
	}
	return nil, nil
}

func (c *purchaseCommandsImpl) rejected(requested int, reasons ...string) *PurchaseResult {
	return &PurchaseResult{
		Success:        false,
		SaleIDs:        []uuid.UUID{},
		ItemsRequested: requested,
		ItemsPurchased: 0,
		Errors:         reasons,
	}
}
