package commands

import (
	"context"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/client"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/domain/sale"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in infra/repository; tests use
// generated mocks or the in-process memstore.

type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	// FindByEmail also returns the stored password hash for login.
	FindByEmail(ctx context.Context, email string) (*client.Client, string, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type PricingRepository interface {
	// ActivePriceCents resolves the current price for a classification and
	// bucket. A missing rule is a NOT_FOUND repository error and fatal for
	// the caller: no price means no sale.
	ActivePriceCents(ctx context.Context, classification lead.Classification, b bucket.Bucket) (int64, string, error)
}

// AtomicSaleResult reports a single conditional sale attempt.
type AtomicSaleResult struct {
	Sold   bool
	SaleID uuid.UUID
	// Reason is set when Sold is false: "already_sold", "not_found" or
	// "contention".
	Reason string
}

const (
	SaleReasonAlreadySold = "already_sold"
	SaleReasonNotFound    = "not_found"
	SaleReasonContention  = "contention"
)

type InventoryWriteRepository interface {
	// TrySell performs the atomic check-and-set: lock the inventory row
	// without waiting, verify it is unsold, mark it sold and insert the sale
	// in one transaction. Losing a lock race is a normal outcome, not an
	// error.
	TrySell(ctx context.Context, inventoryID, clientID uuid.UUID, priceCents int64, currency string, soldAt time.Time) (*AtomicSaleResult, error)
	// CreateRecord registers a lead in a bucket. Duplicate (lead, bucket)
	// pairs surface as DUPLICATE_KEY.
	CreateRecord(ctx context.Context, leadID uuid.UUID, b bucket.Bucket, createdAt time.Time) (uuid.UUID, error)
}

type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*sale.Sale, error)
}

type LeadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error)
}
