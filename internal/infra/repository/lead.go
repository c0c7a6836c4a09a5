package repository

import (
	"context"

	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/pgconv"
	"lead-exchange/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type leadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) commands.LeadRepository {
	return &leadRepository{pool: pool}
}

func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	var (
		source         string
		state          string
		county         pgtype.Text
		city           pgtype.Text
		zip            pgtype.Text
		firstName      pgtype.Text
		lastName       pgtype.Text
		phone          pgtype.Text
		classification string
		createdAt      pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT source, state, county, city, zip, first_name, last_name, phone, classification, created_at
		FROM leads
		WHERE id = $1
	`, id).Scan(&source, &state, &county, &city, &zip, &firstName, &lastName, &phone, &classification, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lead not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lead", err, infra.KindDBFailure)
	}

	return lead.ReconstructLead(
		id,
		source,
		state,
		pgconv.StringPtrFromPgtype(county),
		pgconv.StringPtrFromPgtype(city),
		pgconv.StringPtrFromPgtype(zip),
		pgconv.StringPtrFromPgtype(firstName),
		pgconv.StringPtrFromPgtype(lastName),
		pgconv.StringPtrFromPgtype(phone),
		lead.Classification(classification),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
