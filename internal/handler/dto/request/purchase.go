package request

import (
	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/usecase/commands"

	"github.com/google/uuid"
)

type PurchaseRequest struct {
	InventoryIDs []uuid.UUID `json:"inventory_ids" binding:"required,min=1"`
}

type CriteriaItemRequest struct {
	Classification string  `json:"classification" binding:"required"`
	AgeBucket      string  `json:"age_bucket" binding:"required"`
	Quantity       int     `json:"quantity" binding:"required,gt=0"`
	State          *string `json:"state,omitempty"`
	County         *string `json:"county,omitempty"`
}

type PurchaseByCriteriaRequest struct {
	Items []CriteriaItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r PurchaseByCriteriaRequest) ToDomain() ([]commands.AllocationCriteria, error) {
	out := make([]commands.AllocationCriteria, 0, len(r.Items))
	for _, item := range r.Items {
		c, err := lead.ParseClassification(item.Classification)
		if err != nil {
			return nil, err
		}
		b, err := bucket.Parse(item.AgeBucket)
		if err != nil {
			return nil, err
		}
		out = append(out, commands.AllocationCriteria{
			Classification: c,
			AgeBucket:      b,
			Quantity:       item.Quantity,
			State:          item.State,
			County:         item.County,
		})
	}
	return out, nil
}

type QuoteRequest struct {
	InventoryIDs []uuid.UUID `json:"inventory_ids" binding:"required,min=1"`
}

type ExportRequest struct {
	SaleIDs []uuid.UUID `json:"sale_ids" binding:"required,min=1"`
}
