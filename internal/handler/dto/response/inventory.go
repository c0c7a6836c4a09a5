package response

import (
	"time"

	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InventoryItemResponse struct {
	InventoryID    uuid.UUID `json:"inventory_id"`
	LeadID         uuid.UUID `json:"lead_id"`
	AgeBucket      string    `json:"age_bucket"`
	CreatedAt      time.Time `json:"created_at"`
	State          string    `json:"state"`
	County         *string   `json:"county,omitempty"`
	Classification string    `json:"classification"`
	FirstName      *string   `json:"first_name,omitempty"`
	LastName       *string   `json:"last_name,omitempty"`
	City           *string   `json:"city,omitempty"`
	Zip            *string   `json:"zip,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
}

func FromInventoryItem(item *queries.AvailableInventoryItem) (*InventoryItemResponse, error) {
	var resp InventoryItemResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	// copier cannot convert the typed enums to strings
	resp.AgeBucket = item.AgeBucket.String()
	resp.Classification = item.Classification.String()
	return &resp, nil
}

func FromInventoryItems(items []*queries.AvailableInventoryItem) ([]*InventoryItemResponse, error) {
	out := make([]*InventoryItemResponse, len(items))
	for i, item := range items {
		resp, err := FromInventoryItem(item)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

type InventorySummaryResponse struct {
	TotalAvailable   int64            `json:"total_available"`
	TotalSold        int64            `json:"total_sold"`
	ByBucket         map[string]int64 `json:"by_bucket"`
	ByClassification map[string]int64 `json:"by_classification"`
}

func FromInventorySummary(s *queries.InventorySummary) *InventorySummaryResponse {
	resp := &InventorySummaryResponse{
		TotalAvailable:   s.TotalAvailable,
		TotalSold:        s.TotalSold,
		ByBucket:         map[string]int64{},
		ByClassification: map[string]int64{},
	}
	for b, n := range s.ByBucket {
		resp.ByBucket[b.String()] = n
	}
	for c, n := range s.ByClassification {
		resp.ByClassification[c.String()] = n
	}
	return resp
}
