//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/infra/memstore"
	"lead-exchange/internal/usecase/commands"
	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedTime = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// seedInventory creates n leads with one inventory record each.
func seedInventory(t *testing.T, store *memstore.Store, n int, classification lead.Classification, b bucket.Bucket, state string, county *string) []uuid.UUID {
	t.Helper()
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		l := lead.ReconstructLead(
			uuid.New(), "web", state,
			county, strPtr("Springfield"), strPtr("70001"),
			strPtr("Jane"), strPtr("Doe"), strPtr("555-0100"),
			classification, seedTime,
		)
		store.PutLead(l)

		id, err := store.CreateRecord(ctx, l.ID(), b, seedTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	newAllocator := func(store *memstore.Store) commands.AllocationCommands {
		return commands.NewAllocationCommands(queries.NewInventoryQueries(store))
	}

	t.Run("fills each criterion in order", func(t *testing.T) {
		store := memstore.New()
		seedInventory(t, store, 5, lead.Gold, bucket.Month6To8, "LA", strPtr("Orleans"))
		seedInventory(t, store, 5, lead.Silver, bucket.Month3To5, "TX", nil)

		items, err := newAllocator(store).Allocate(ctx, []commands.AllocationCriteria{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 3, State: strPtr("LA")},
			{Classification: lead.Silver, AgeBucket: bucket.Month3To5, Quantity: 2},
		})
		require.NoError(t, err)
		require.Len(t, items, 5)

		for _, item := range items[:3] {
			assert.Equal(t, lead.Gold, item.Classification)
			assert.Equal(t, bucket.Month6To8, item.AgeBucket)
			assert.Equal(t, "LA", item.State)
		}
		for _, item := range items[3:] {
			assert.Equal(t, lead.Silver, item.Classification)
		}
	})

	t.Run("empty criteria rejected", func(t *testing.T) {
		_, err := newAllocator(memstore.New()).Allocate(ctx, nil)
		assert.ErrorIs(t, err, commands.ErrEmptyCriteria)
	})

	t.Run("shortfall aborts the whole call", func(t *testing.T) {
		store := memstore.New()
		seedInventory(t, store, 5, lead.Gold, bucket.Month6To8, "LA", nil)
		seedInventory(t, store, 20, lead.Silver, bucket.Month3To5, "TX", nil)

		_, err := newAllocator(store).Allocate(ctx, []commands.AllocationCriteria{
			{Classification: lead.Silver, AgeBucket: bucket.Month3To5, Quantity: 2},
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 10, State: strPtr("LA")},
		})

		var insufficient *commands.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, 10, insufficient.Requested)
		assert.Equal(t, int64(5), insufficient.Available)
		require.NotNil(t, insufficient.ItemIndex)
		assert.Equal(t, 1, *insufficient.ItemIndex)
	})

	t.Run("alternatives offer partial then wider location then adjacent buckets", func(t *testing.T) {
		store := memstore.New()
		// 5 in LA, 3 more elsewhere in the same bucket, and deep adjacent buckets.
		seedInventory(t, store, 5, lead.Gold, bucket.Month6To8, "LA", nil)
		seedInventory(t, store, 3, lead.Gold, bucket.Month6To8, "TX", nil)
		seedInventory(t, store, 12, lead.Gold, bucket.Month9To11, "LA", nil)
		seedInventory(t, store, 15, lead.Gold, bucket.Month3To5, "LA", nil)

		_, err := newAllocator(store).Allocate(ctx, []commands.AllocationCriteria{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 10, State: strPtr("LA")},
		})

		var insufficient *commands.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		require.Len(t, insufficient.Alternatives, 4)

		assert.Equal(t, commands.AlternativePartial, insufficient.Alternatives[0].Kind)
		assert.Equal(t, int64(5), insufficient.Alternatives[0].AvailableCount)

		assert.Equal(t, commands.AlternativeNoLocation, insufficient.Alternatives[1].Kind)
		assert.Equal(t, int64(8), insufficient.Alternatives[1].AvailableCount)

		// Adjacent buckets that can satisfy the full quantity, older first.
		assert.Equal(t, commands.AlternativeDifferentBucket, insufficient.Alternatives[2].Kind)
		assert.Equal(t, int64(12), insufficient.Alternatives[2].AvailableCount)
		assert.Contains(t, insufficient.Alternatives[2].Description, bucket.Month9To11.String())

		assert.Equal(t, commands.AlternativeDifferentBucket, insufficient.Alternatives[3].Kind)
		assert.Equal(t, int64(15), insufficient.Alternatives[3].AvailableCount)
		assert.Contains(t, insufficient.Alternatives[3].Description, bucket.Month3To5.String())
	})

	t.Run("adjacent bucket too shallow is not offered", func(t *testing.T) {
		store := memstore.New()
		seedInventory(t, store, 2, lead.Gold, bucket.Month6To8, "LA", nil)
		seedInventory(t, store, 4, lead.Gold, bucket.Month9To11, "LA", nil)

		_, err := newAllocator(store).Allocate(ctx, []commands.AllocationCriteria{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 10, State: strPtr("LA")},
		})

		var insufficient *commands.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		for _, alt := range insufficient.Alternatives {
			assert.NotEqual(t, commands.AlternativeDifferentBucket, alt.Kind)
		}
	})

	t.Run("nothing available yields no partial alternative", func(t *testing.T) {
		store := memstore.New()

		_, err := newAllocator(store).Allocate(ctx, []commands.AllocationCriteria{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 1},
		})

		var insufficient *commands.InsufficientInventoryError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(0), insufficient.Available)
		assert.Empty(t, insufficient.Alternatives)
	})
}

func TestValidateAvailability(t *testing.T) {
	ctx := context.Background()

	store := memstore.New()
	seedInventory(t, store, 4, lead.Gold, bucket.Month6To8, "LA", nil)
	seedInventory(t, store, 7, lead.Silver, bucket.Month12To23, "TX", nil)

	allocator := commands.NewAllocationCommands(queries.NewInventoryQueries(store))

	criteria := []commands.AllocationCriteria{
		{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 10, State: strPtr("LA")},
		{Classification: lead.Silver, AgeBucket: bucket.Month12To23, Quantity: 1},
	}
	counts, err := allocator.ValidateAvailability(ctx, criteria)
	require.NoError(t, err)

	assert.Equal(t, int64(4), counts[criteria[0].Describe()])
	assert.Equal(t, int64(7), counts[criteria[1].Describe()])
}
