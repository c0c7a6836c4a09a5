package repository

import (
	"context"
	"errors"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/pgconv"
	"lead-exchange/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgCodeLockNotAvailable = "55P03"
	pgCodeUniqueViolation  = "23505"
)

type inventoryWriteRepository struct {
	pool *pgxpool.Pool
}

func NewInventoryWriteRepository(pool *pgxpool.Pool) commands.InventoryWriteRepository {
	return &inventoryWriteRepository{pool: pool}
}

// TrySell locks the inventory row without waiting, verifies it is unsold and
// records the sale in the same transaction. The row-level lock plus the
// sold_at check make double-selling impossible regardless of concurrency.
func (r *inventoryWriteRepository) TrySell(ctx context.Context, inventoryID, clientID uuid.UUID, priceCents int64, currency string, soldAt time.Time) (*commands.AtomicSaleResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin sale transaction", err, infra.KindDBFailure)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		leadID   uuid.UUID
		bucketID string
		soldPrev *time.Time
	)
	err = tx.QueryRow(ctx, `
		SELECT lead_id, age_bucket, sold_at
		FROM inventory
		WHERE id = $1
		FOR UPDATE NOWAIT
	`, inventoryID).Scan(&leadID, &bucketID, &soldPrev)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return &commands.AtomicSaleResult{Sold: false, Reason: commands.SaleReasonNotFound}, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCodeLockNotAvailable {
			return &commands.AtomicSaleResult{Sold: false, Reason: commands.SaleReasonContention}, nil
		}
		return nil, infra.WrapRepoErr("failed to lock inventory row", err, infra.KindDBFailure)
	}

	if soldPrev != nil {
		return &commands.AtomicSaleResult{Sold: false, Reason: commands.SaleReasonAlreadySold}, nil
	}

	if _, err := tx.Exec(ctx, `
		UPDATE inventory SET sold_at = $2 WHERE id = $1
	`, inventoryID, pgconv.TimeToPgtype(soldAt)); err != nil {
		return nil, infra.WrapRepoErr("failed to mark inventory sold", err, infra.KindDBFailure)
	}

	var saleID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (id, lead_id, client_id, age_bucket, sold_at, price_cents, currency, payment_status, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 'pending', $4)
		RETURNING id
	`, leadID, clientID, bucketID, pgconv.TimeToPgtype(soldAt), priceCents, currency).Scan(&saleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert sale", err, infra.KindDBFailure)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit sale", err, infra.KindDBFailure)
	}

	return &commands.AtomicSaleResult{Sold: true, SaleID: saleID}, nil
}

func (r *inventoryWriteRepository) CreateRecord(ctx context.Context, leadID uuid.UUID, b bucket.Bucket, createdAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO inventory (id, lead_id, age_bucket, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3)
		RETURNING id
	`, leadID, b.String(), pgconv.TimeToPgtype(createdAt)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("inventory record already exists for this lead and bucket", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create inventory record", err, infra.KindDBFailure)
	}
	return id, nil
}
