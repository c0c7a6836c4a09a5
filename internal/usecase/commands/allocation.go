package commands

import (
	"context"
	"fmt"
	"strings"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/pkg/errs"
	"lead-exchange/internal/usecase/queries"
)

var ErrEmptyCriteria = errs.New("allocation requires at least one criterion")

// AllocationCriteria asks for a quantity of one classification+bucket
// combination, optionally narrowed to a state and county.
type AllocationCriteria struct {
	Classification lead.Classification
	AgeBucket      bucket.Bucket
	Quantity       int
	State          *string
	County         *string
}

// Describe renders the criterion for error messages and alternatives,
// e.g. "Gold MONTH_6_TO_8 state=LA qty=10".
func (c AllocationCriteria) Describe() string {
	var sb strings.Builder
	sb.WriteString(c.Classification.String())
	sb.WriteString(" ")
	sb.WriteString(c.AgeBucket.String())
	if c.State != nil {
		fmt.Fprintf(&sb, " state=%s", *c.State)
	}
	if c.County != nil {
		fmt.Fprintf(&sb, " county=%s", *c.County)
	}
	fmt.Fprintf(&sb, " qty=%d", c.Quantity)
	return sb.String()
}

func (c AllocationCriteria) filters() queries.Filters {
	f := queries.NewFilters()
	f.Classifications = []lead.Classification{c.Classification}
	f.AgeBuckets = []bucket.Bucket{c.AgeBucket}
	if c.State != nil {
		f.States = []string{*c.State}
	}
	if c.County != nil {
		f.Counties = []string{*c.County}
	}
	return f
}

const (
	AlternativePartial         = "partial"
	AlternativeNoLocation      = "no_location_filter"
	AlternativeDifferentBucket = "different_age_bucket"
)

// Alternative is a concrete substitute offered when a criterion cannot be
// satisfied as requested.
type Alternative struct {
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	AvailableCount int64  `json:"available_count"`
}

// InsufficientInventoryError reports the first criterion that could not be
// satisfied in full, with whatever alternatives exist. Allocation is
// all-or-nothing per call, so nothing was reserved when this is returned.
type InsufficientInventoryError struct {
	Requested    int
	Available    int64
	Criteria     AllocationCriteria
	Alternatives []Alternative
	// ItemIndex is the position of the failing criterion in the request.
	ItemIndex *int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for %s: requested %d, available %d",
		e.Criteria.Describe(), e.Requested, e.Available)
}

type AllocationCommands interface {
	// Allocate resolves each criterion in order against current availability.
	// The first shortfall aborts the whole call with an
	// InsufficientInventoryError; no inventory is reserved either way.
	Allocate(ctx context.Context, criteria []AllocationCriteria) ([]*queries.AvailableInventoryItem, error)
	// ValidateAvailability reports available counts per criterion without
	// selecting items. Keys are criterion descriptions.
	ValidateAvailability(ctx context.Context, criteria []AllocationCriteria) (map[string]int64, error)
}

type allocationCommandsImpl struct {
	inventory queries.InventoryQueries
}

func NewAllocationCommands(inventory queries.InventoryQueries) AllocationCommands {
	return &allocationCommandsImpl{inventory: inventory}
}

func (c *allocationCommandsImpl) Allocate(ctx context.Context, criteria []AllocationCriteria) ([]*queries.AvailableInventoryItem, error) {
	if len(criteria) == 0 {
		return nil, ErrEmptyCriteria
	}

	var selected []*queries.AvailableInventoryItem

	for i, criterion := range criteria {
		if criterion.Quantity <= 0 {
			return nil, errs.Newf("criterion %d: quantity must be positive", i)
		}

		items, err := c.inventory.Browse(ctx, criterion.filters(), int32(criterion.Quantity), 0)
		if err != nil {
			return nil, errs.Wrap(err, "failed to query inventory for allocation")
		}

		if len(items) < criterion.Quantity {
			idx := i
			alternatives, altErr := c.buildAlternatives(ctx, criterion, int64(len(items)))
			if altErr != nil {
				return nil, altErr
			}
			return nil, &InsufficientInventoryError{
				Requested:    criterion.Quantity,
				Available:    int64(len(items)),
				Criteria:     criterion,
				Alternatives: alternatives,
				ItemIndex:    &idx,
			}
		}

		selected = append(selected, items...)
	}

	return selected, nil
}

func (c *allocationCommandsImpl) ValidateAvailability(ctx context.Context, criteria []AllocationCriteria) (map[string]int64, error) {
	if len(criteria) == 0 {
		return nil, ErrEmptyCriteria
	}

	counts := make(map[string]int64, len(criteria))
	for _, criterion := range criteria {
		n, err := c.inventory.Count(ctx, criterion.filters())
		if err != nil {
			return nil, errs.Wrap(err, "failed to count inventory")
		}
		counts[criterion.Describe()] = n
	}
	return counts, nil
}

// buildAlternatives suggests, in order: a partial fill when anything matched,
// the same request without its location filter when that strictly widens the
// pool, and up to two adjacent buckets that can satisfy the full quantity
// (older neighbor first).
func (c *allocationCommandsImpl) buildAlternatives(ctx context.Context, criterion AllocationCriteria, available int64) ([]Alternative, error) {
	var alternatives []Alternative

	if available > 0 {
		alternatives = append(alternatives, Alternative{
			Kind:           AlternativePartial,
			Description:    fmt.Sprintf("partial fill of %d for %s", available, criterion.Describe()),
			AvailableCount: available,
		})
	}

	if criterion.State != nil || criterion.County != nil {
		widened := criterion
		widened.State = nil
		widened.County = nil
		n, err := c.inventory.Count(ctx, widened.filters())
		if err != nil {
			return nil, errs.Wrap(err, "failed to count without location filter")
		}
		if n > available {
			alternatives = append(alternatives, Alternative{
				Kind:           AlternativeNoLocation,
				Description:    fmt.Sprintf("drop location filter: %d available for %s %s", n, criterion.Classification, criterion.AgeBucket),
				AvailableCount: n,
			})
		}
	}

	suggested := 0
	for _, neighbor := range criterion.AgeBucket.Adjacent() {
		if suggested >= 2 {
			break
		}
		shifted := criterion
		shifted.AgeBucket = neighbor
		n, err := c.inventory.Count(ctx, shifted.filters())
		if err != nil {
			return nil, errs.Wrap(err, "failed to count adjacent bucket")
		}
		if n >= int64(criterion.Quantity) {
			alternatives = append(alternatives, Alternative{
				Kind:           AlternativeDifferentBucket,
				Description:    fmt.Sprintf("use %s instead: %d available", neighbor, n),
				AvailableCount: n,
			})
			suggested++
		}
	}

	return alternatives, nil
}
