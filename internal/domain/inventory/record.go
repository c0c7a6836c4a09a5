// Package inventory models sellable eligibility per (lead, age bucket).
// Two invariants live here: at most one record ever exists per
// (lead_id, age_bucket), and a record transitions from available to sold
// exactly once. State transitions return new values; prior values stay valid.
package inventory

import (
	"errors"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrAlreadySold = errors.New("inventory record is already sold for this age bucket")
	ErrNoRecord    = errors.New("no inventory record exists for (lead_id, age_bucket)")
)

// Record is the sellable-eligibility unit for one lead in one bucket.
// inventory_id is opaque and system-generated; availability is defined as
// soldAt being unset.
type Record struct {
	inventoryID uuid.UUID
	leadID      uuid.UUID
	ageBucket   bucket.Bucket
	createdAt   time.Time
	soldAt      *time.Time
}

func NewRecord(inventoryID, leadID uuid.UUID, b bucket.Bucket, createdAt time.Time) (Record, error) {
	if err := timeutil.RequireUTC("created_at", createdAt); err != nil {
		return Record{}, err
	}
	return Record{
		inventoryID: inventoryID,
		leadID:      leadID,
		ageBucket:   b,
		createdAt:   createdAt,
	}, nil
}

func ReconstructRecord(inventoryID, leadID uuid.UUID, b bucket.Bucket, createdAt time.Time, soldAt *time.Time) Record {
	return Record{
		inventoryID: inventoryID,
		leadID:      leadID,
		ageBucket:   b,
		createdAt:   createdAt,
		soldAt:      soldAt,
	}
}

func (r Record) InventoryID() uuid.UUID   { return r.inventoryID }
func (r Record) LeadID() uuid.UUID        { return r.leadID }
func (r Record) AgeBucket() bucket.Bucket { return r.ageBucket }
func (r Record) CreatedAt() time.Time     { return r.createdAt }

func (r Record) SoldAt() *time.Time {
	if r.soldAt == nil {
		return nil
	}
	t := *r.soldAt
	return &t
}

func (r Record) IsAvailable() bool {
	return r.soldAt == nil
}

// Sold returns a copy marked as sold. A record already sold can never be sold
// again nor have its sold timestamp reassigned.
func (r Record) Sold(soldAt time.Time) (Record, error) {
	if err := timeutil.RequireUTC("sold_at", soldAt); err != nil {
		return Record{}, err
	}
	if r.soldAt != nil {
		return Record{}, ErrAlreadySold
	}

	sold := r
	sold.soldAt = &soldAt
	return sold, nil
}
