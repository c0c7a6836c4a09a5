//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/client"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/infra/memstore"
	"lead-exchange/internal/pkg/clock"
	"lead-exchange/internal/usecase/commands"
	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedBuyer(store *memstore.Store, active, verified bool) uuid.UUID {
	status := client.StatusActive
	if !active {
		status = client.StatusSuspended
	}
	buyer := client.ReconstructClient(
		uuid.New(), "buyer@example.com", status, verified,
		nil, nil, nil, seedTime, nil,
	)
	store.PutClient(buyer, "$2a$10$hash")
	return buyer.ID()
}

// lostFirstSale wraps the store and reports the configured item as lost to a
// concurrent buyer on its first sale attempt.
type lostFirstSale struct {
	commands.InventoryWriteRepository
	loseID uuid.UUID

	mu   sync.Mutex
	lost bool
}

func (w *lostFirstSale) TrySell(ctx context.Context, inventoryID, clientID uuid.UUID, priceCents int64, currency string, soldAt time.Time) (*commands.AtomicSaleResult, error) {
	w.mu.Lock()
	shouldLose := inventoryID == w.loseID && !w.lost
	if shouldLose {
		w.lost = true
	}
	w.mu.Unlock()

	if shouldLose {
		return &commands.AtomicSaleResult{Sold: false, Reason: commands.SaleReasonContention}, nil
	}
	return w.InventoryWriteRepository.TrySell(ctx, inventoryID, clientID, priceCents, currency, soldAt)
}

type purchaseEnv struct {
	store     *memstore.Store
	purchases commands.PurchaseCommands
	clock     *clock.MockClock
}

func newPurchaseEnv(t *testing.T, inventory commands.InventoryWriteRepository, store *memstore.Store) purchaseEnv {
	t.Helper()

	store.PutPricing(lead.Gold, bucket.Month6To8, 2000, "USD")
	store.PutPricing(lead.Gold, bucket.Month9To11, 1500, "USD")
	store.PutPricing(lead.Silver, bucket.Month3To5, 1500, "USD")

	mockClock := clock.NewMockClock(seedTime.Add(200 * 24 * time.Hour))
	reads := queries.NewInventoryQueries(store)
	quotes := commands.NewQuoteCommands(reads, store, mockClock, 15*time.Minute)
	allocation := commands.NewAllocationCommands(reads)

	if inventory == nil {
		inventory = store
	}
	purchases := commands.NewPurchaseCommands(
		store, inventory, reads, quotes, allocation, mockClock, discardLogger(),
	)
	return purchaseEnv{store: store, purchases: purchases, clock: mockClock}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("purchases every requested item", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 3, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, true)
		env := newPurchaseEnv(t, nil, store)

		result, err := env.purchases.Execute(ctx, buyerID, ids)
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Len(t, result.SaleIDs, 3)
		assert.Equal(t, 3, result.ItemsRequested)
		assert.Equal(t, 3, result.ItemsPurchased)
		assert.Equal(t, 0, result.ItemsReplaced)
		assert.Equal(t, int64(6000), result.TotalPaidCents)
		assert.Equal(t, "USD", result.Currency)
		assert.Equal(t, 3, store.SaleCount())
	})

	t.Run("unverified client is rejected without selling", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 1, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, false)
		env := newPurchaseEnv(t, nil, store)

		result, err := env.purchases.Execute(ctx, buyerID, ids)
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Zero(t, result.ItemsPurchased)
		assert.NotEmpty(t, result.Errors)
		assert.Zero(t, store.SaleCount())
	})

	t.Run("unknown client is an error", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 1, lead.Gold, bucket.Month6To8, "LA", nil)
		env := newPurchaseEnv(t, nil, store)

		_, err := env.purchases.Execute(ctx, uuid.New(), ids)
		assert.ErrorIs(t, err, commands.ErrClientNotFound)
	})

	t.Run("missing item rejects before any sale", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 1, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, true)
		env := newPurchaseEnv(t, nil, store)

		result, err := env.purchases.Execute(ctx, buyerID, append(ids, uuid.New()))
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Zero(t, store.SaleCount())
	})

	t.Run("lost item is replaced by an equivalent one", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 3, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, true)

		wrapper := &lostFirstSale{InventoryWriteRepository: store, loseID: ids[0]}
		env := newPurchaseEnv(t, wrapper, store)

		result, err := env.purchases.Execute(ctx, buyerID, ids[:2])
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 2, result.ItemsPurchased)
		assert.Equal(t, 1, result.ItemsReplaced)
		assert.Equal(t, int64(4000), result.TotalPaidCents)
		assert.Equal(t, 2, store.SaleCount())
	})

	t.Run("no replacement fails the purchase but keeps committed sales unreversed", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 2, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, true)

		// Both items are requested; losing one leaves no replacement pool.
		wrapper := &lostFirstSale{InventoryWriteRepository: store, loseID: ids[1]}
		env := newPurchaseEnv(t, wrapper, store)

		result, err := env.purchases.Execute(ctx, buyerID, ids)
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Zero(t, result.ItemsPurchased)
		assert.Empty(t, result.SaleIDs)
		assert.NotEmpty(t, result.Errors)
		// The first item's sale committed before the failure and stays sold.
		assert.Equal(t, 1, store.SaleCount())
	})

	t.Run("two buyers racing one item produce exactly one sale", func(t *testing.T) {
		store := memstore.New()
		ids := seedInventory(t, store, 1, lead.Gold, bucket.Month6To8, "LA", nil)
		firstID := seedBuyer(store, true, true)

		second := client.ReconstructClient(
			uuid.New(), "rival@example.com", client.StatusActive, true,
			nil, nil, nil, seedTime, nil,
		)
		store.PutClient(second, "$2a$10$hash")

		env := newPurchaseEnv(t, nil, store)

		var wg sync.WaitGroup
		results := make([]*commands.PurchaseResult, 2)
		for i, buyer := range []uuid.UUID{firstID, second.ID()} {
			wg.Add(1)
			go func(i int, buyer uuid.UUID) {
				defer wg.Done()
				result, err := env.purchases.Execute(ctx, buyer, ids)
				assert.NoError(t, err)
				results[i] = result
			}(i, buyer)
		}
		wg.Wait()

		successes := 0
		for _, result := range results {
			if result != nil && result.Success {
				successes++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, store.SaleCount())
	})
}

func TestExecuteByCriteria(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates then purchases", func(t *testing.T) {
		store := memstore.New()
		seedInventory(t, store, 5, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, true)
		env := newPurchaseEnv(t, nil, store)

		result, err := env.purchases.ExecuteByCriteria(ctx, buyerID, []commands.AllocationCriteria{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 2, State: strPtr("LA")},
		})
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 2, result.ItemsPurchased)
	})

	t.Run("insufficient inventory surfaces the allocation error", func(t *testing.T) {
		store := memstore.New()
		seedInventory(t, store, 1, lead.Gold, bucket.Month6To8, "LA", nil)
		buyerID := seedBuyer(store, true, true)
		env := newPurchaseEnv(t, nil, store)

		_, err := env.purchases.ExecuteByCriteria(ctx, buyerID, []commands.AllocationCriteria{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 5},
		})

		var insufficient *commands.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		assert.Zero(t, store.SaleCount())
	})
}
