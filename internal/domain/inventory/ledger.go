package inventory

import (
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/pkg/timeutil"

	"github.com/google/uuid"
)

// Ledger is the in-memory inventory history of a single lead. All mutating
// operations return a new ledger value; the receiver is never modified, so a
// ledger may be shared freely across readers.
type Ledger struct {
	leadID   uuid.UUID
	byBucket map[bucket.Bucket]Record
}

func NewLedger(leadID uuid.UUID) Ledger {
	return Ledger{leadID: leadID, byBucket: map[bucket.Bucket]Record{}}
}

func (l Ledger) LeadID() uuid.UUID {
	return l.leadID
}

func (l Ledger) Get(b bucket.Bucket) (Record, bool) {
	r, ok := l.byBucket[b]
	return r, ok
}

func (l Ledger) Has(b bucket.Bucket) bool {
	_, ok := l.byBucket[b]
	return ok
}

func (l Ledger) Len() int {
	return len(l.byBucket)
}

// Buckets returns the buckets with a record, youngest first.
func (l Ledger) Buckets() []bucket.Bucket {
	var out []bucket.Bucket
	for _, b := range bucket.Ordered() {
		if _, ok := l.byBucket[b]; ok {
			out = append(out, b)
		}
	}
	return out
}

// EnsureRecord inserts a record for the bucket unless one already exists.
// First write wins: a later call with a different inventory id or timestamp
// returns the ledger unchanged and keeps the original record's identity.
func (l Ledger) EnsureRecord(b bucket.Bucket, inventoryID uuid.UUID, createdAt time.Time) (Ledger, error) {
	if err := timeutil.RequireUTC("created_at", createdAt); err != nil {
		return Ledger{}, err
	}

	if _, ok := l.byBucket[b]; ok {
		return l, nil
	}

	record, err := NewRecord(inventoryID, l.leadID, b, createdAt)
	if err != nil {
		return Ledger{}, err
	}

	updated := l.copyRecords()
	updated[b] = record
	return Ledger{leadID: l.leadID, byBucket: updated}, nil
}

// SaleEvent is the ledger-level fact that a bucket was sold. Price and buyer
// are attached later when the sale is persisted.
type SaleEvent struct {
	LeadID    uuid.UUID
	AgeBucket bucket.Bucket
	SoldAt    time.Time
}

// RecordSale transitions exactly one record from available to sold. Every
// other bucket's record is carried over unchanged, so sibling records compare
// equal before and after.
func (l Ledger) RecordSale(b bucket.Bucket, soldAt time.Time) (Ledger, SaleEvent, error) {
	if err := timeutil.RequireUTC("sold_at", soldAt); err != nil {
		return Ledger{}, SaleEvent{}, err
	}

	record, ok := l.byBucket[b]
	if !ok {
		return Ledger{}, SaleEvent{}, ErrNoRecord
	}

	sold, err := record.Sold(soldAt)
	if err != nil {
		return Ledger{}, SaleEvent{}, err
	}

	updated := l.copyRecords()
	updated[b] = sold

	event := SaleEvent{LeadID: l.leadID, AgeBucket: b, SoldAt: soldAt}
	return Ledger{leadID: l.leadID, byBucket: updated}, event, nil
}

func (l Ledger) copyRecords() map[bucket.Bucket]Record {
	out := make(map[bucket.Bucket]Record, len(l.byBucket)+1)
	for k, v := range l.byBucket {
		out[k] = v
	}
	return out
}
