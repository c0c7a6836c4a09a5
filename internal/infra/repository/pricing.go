package repository

import (
	"context"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/pgconv"
	"lead-exchange/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pricingRepository struct {
	pool *pgxpool.Pool
}

func NewPricingRepository(pool *pgxpool.Pool) commands.PricingRepository {
	return &pricingRepository{pool: pool}
}

// ActivePriceCents reads the open-ended pricing rule for the combination.
// Exactly one rule per (classification, bucket) has effective_to IS NULL;
// superseded rules keep their close timestamp for audit.
func (r *pricingRepository) ActivePriceCents(ctx context.Context, classification lead.Classification, b bucket.Bucket) (int64, string, error) {
	var (
		priceCents int64
		currency   string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT price_cents, currency
		FROM pricing_rules
		WHERE classification = $1
		  AND age_bucket = $2
		  AND effective_to IS NULL
		ORDER BY effective_from DESC
		LIMIT 1
	`, classification.String(), b.String()).Scan(&priceCents, &currency)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, "", infra.WrapRepoErr("no active pricing rule", err, infra.KindNotFound)
		}
		return 0, "", infra.WrapRepoErr("failed to resolve pricing rule", err, infra.KindDBFailure)
	}
	return priceCents, currency, nil
}
