package request

import (
	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/usecase/queries"
)

// BrowseInventoryQuery maps the browse query string. Every dimension is
// optional; leaving one out imposes no constraint.
type BrowseInventoryQuery struct {
	Classifications []string `form:"classification"`
	AgeBuckets      []string `form:"age_bucket"`
	States          []string `form:"state"`
	Counties        []string `form:"county"`
	IncludeSold     bool     `form:"include_sold"`
	Limit           int32    `form:"limit"`
	Offset          int32    `form:"offset"`
}

func (q BrowseInventoryQuery) ToFilters() (queries.Filters, error) {
	f := queries.NewFilters()

	for _, raw := range q.Classifications {
		c, err := lead.ParseClassification(raw)
		if err != nil {
			return queries.Filters{}, err
		}
		f.Classifications = append(f.Classifications, c)
	}
	for _, raw := range q.AgeBuckets {
		b, err := bucket.Parse(raw)
		if err != nil {
			return queries.Filters{}, err
		}
		f.AgeBuckets = append(f.AgeBuckets, b)
	}
	f.States = q.States
	f.Counties = q.Counties
	if q.IncludeSold {
		f.AvailableOnly = false
	}
	return f, nil
}

type MixedItemRequest struct {
	Classification string   `json:"classification" binding:"required"`
	AgeBucket      string   `json:"age_bucket" binding:"required"`
	Quantity       int      `json:"quantity" binding:"required,gt=0"`
	States         []string `json:"states,omitempty"`
	Counties       []string `json:"counties,omitempty"`
}

type MixedInventoryRequest struct {
	Requests []MixedItemRequest `json:"requests" binding:"required,min=1,dive"`
}

func (r MixedInventoryRequest) ToDomain() ([]queries.MixedRequest, error) {
	out := make([]queries.MixedRequest, 0, len(r.Requests))
	for _, item := range r.Requests {
		c, err := lead.ParseClassification(item.Classification)
		if err != nil {
			return nil, err
		}
		b, err := bucket.Parse(item.AgeBucket)
		if err != nil {
			return nil, err
		}
		out = append(out, queries.MixedRequest{
			Classification: c,
			AgeBucket:      b,
			Quantity:       item.Quantity,
			States:         item.States,
			Counties:       item.Counties,
		})
	}
	return out, nil
}
