package queries

import (
	"context"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errs.New("mixed request quantity must be positive")

// InventoryReadStore is the store-side contract for filtered inventory reads.
// Pagination is the store's responsibility; callers only pass limit/offset.
type InventoryReadStore interface {
	FindAvailable(ctx context.Context, f Filters, limit, offset int32) ([]*AvailableInventoryItem, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, availableOnly bool) ([]*AvailableInventoryItem, error)
	CountAvailable(ctx context.Context, f Filters) (int64, error)
	Summary(ctx context.Context) (*InventorySummary, error)
}

type InventoryQueries interface {
	Browse(ctx context.Context, f Filters, limit, offset int32) ([]*AvailableInventoryItem, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID, availableOnly bool) ([]*AvailableInventoryItem, error)
	// Mixed runs one independent query per request, each capped at that
	// request's quantity, and concatenates the results. No cross-request
	// deduplication happens here: until the atomic sale no allocation lock
	// exists, so overlapping requests may both see the same item and the
	// combined count can overstate distinct availability.
	Mixed(ctx context.Context, requests []MixedRequest) ([]*AvailableInventoryItem, error)
	Count(ctx context.Context, f Filters) (int64, error)
	Summary(ctx context.Context) (*InventorySummary, error)
}

const defaultBrowseLimit = 100

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) Browse(ctx context.Context, f Filters, limit, offset int32) ([]*AvailableInventoryItem, error) {
	if limit <= 0 {
		limit = defaultBrowseLimit
	}
	return q.store.FindAvailable(ctx, f, limit, offset)
}

func (q *inventoryQueriesImpl) FindByIDs(ctx context.Context, ids []uuid.UUID, availableOnly bool) ([]*AvailableInventoryItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return q.store.FindByIDs(ctx, ids, availableOnly)
}

func (q *inventoryQueriesImpl) Mixed(ctx context.Context, requests []MixedRequest) ([]*AvailableInventoryItem, error) {
	var all []*AvailableInventoryItem

	for _, req := range requests {
		if req.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		f := NewFilters()
		f.Classifications = []lead.Classification{req.Classification}
		f.AgeBuckets = []bucket.Bucket{req.AgeBucket}
		f.States = req.States
		f.Counties = req.Counties

		items, err := q.store.FindAvailable(ctx, f, int32(req.Quantity), 0)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	return all, nil
}

func (q *inventoryQueriesImpl) Count(ctx context.Context, f Filters) (int64, error) {
	return q.store.CountAvailable(ctx, f)
}

func (q *inventoryQueriesImpl) Summary(ctx context.Context) (*InventorySummary, error) {
	return q.store.Summary(ctx)
}
