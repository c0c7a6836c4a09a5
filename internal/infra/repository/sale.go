package repository

import (
	"context"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/sale"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/pgconv"
	"lead-exchange/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type saleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) commands.SaleRepository {
	return &saleRepository{pool: pool}
}

const saleColumns = `id, lead_id, client_id, age_bucket, sold_at, price_cents, currency, payment_status, transaction_id, created_at`

func (r *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	found, err := scanSale(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale", err, infra.KindDBFailure)
	}
	return found, nil
}

func (r *saleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*sale.Sale, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query sales", err, infra.KindDBFailure)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale", err, infra.KindDBFailure)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sales", err, infra.KindDBFailure)
	}
	return sales, nil
}

func scanSale(row rowScanner) (*sale.Sale, error) {
	var (
		id            uuid.UUID
		leadID        uuid.UUID
		clientID      uuid.UUID
		ageBucket     string
		soldAt        pgtype.Timestamptz
		priceCents    int64
		currency      string
		paymentStatus pgtype.Text
		transactionID pgtype.Text
		createdAt     pgtype.Timestamptz
	)

	if err := row.Scan(&id, &leadID, &clientID, &ageBucket, &soldAt, &priceCents,
		&currency, &paymentStatus, &transactionID, &createdAt); err != nil {
		return nil, err
	}

	var status *sale.PaymentStatus
	if s := pgconv.StringPtrFromPgtype(paymentStatus); s != nil {
		ps := sale.PaymentStatus(*s)
		status = &ps
	}

	return sale.ReconstructSale(
		id, leadID, clientID,
		bucket.Bucket(ageBucket),
		pgconv.TimeFromPgtype(soldAt),
		priceCents,
		currency,
		status,
		pgconv.StringPtrFromPgtype(transactionID),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
