package queries

import (
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// AvailableInventoryItem joins inventory metadata with denormalized lead data
// for browsing and matching.
type AvailableInventoryItem struct {
	InventoryID uuid.UUID     `json:"inventory_id"`
	LeadID      uuid.UUID     `json:"lead_id"`
	AgeBucket   bucket.Bucket `json:"age_bucket"`
	CreatedAt   time.Time     `json:"created_at"`

	State          string              `json:"state"`
	County         *string             `json:"county,omitempty"`
	Classification lead.Classification `json:"classification"`

	// Contact preview for buyers to assess lead quality.
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	City      *string `json:"city,omitempty"`
	Zip       *string `json:"zip,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Filters are independently optional: a nil dimension imposes no constraint
// on that dimension. Construct with NewFilters so AvailableOnly defaults to
// true.
type Filters struct {
	Classifications []lead.Classification
	AgeBuckets      []bucket.Bucket
	States          []string
	Counties        []string
	AvailableOnly   bool
}

func NewFilters() Filters {
	return Filters{AvailableOnly: true}
}

// MixedRequest asks for a specific quantity of one classification+bucket
// combination, optionally narrowed by location.
type MixedRequest struct {
	Classification lead.Classification
	AgeBucket      bucket.Bucket
	Quantity       int
	States         []string
	Counties       []string
}

type InventorySummary struct {
	TotalAvailable   int64                         `json:"total_available"`
	TotalSold        int64                         `json:"total_sold"`
	ByBucket         map[bucket.Bucket]int64       `json:"by_bucket"`
	ByClassification map[lead.Classification]int64 `json:"by_classification"`
}
