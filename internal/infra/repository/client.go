package repository

import (
	"context"
	"time"

	"lead-exchange/internal/domain/client"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/pgconv"
	"lead-exchange/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type clientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) commands.ClientRepository {
	return &clientRepository{pool: pool}
}

const clientColumns = `id, email, status, email_verified, company_name, contact_name, phone, created_at, last_login_at`

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	found, _, err := scanClient(row, false)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err, infra.KindDBFailure)
	}
	return found, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*client.Client, string, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+clientColumns+`, password_hash FROM clients WHERE email = $1`, email)
	found, hash, err := scanClient(row, true)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find client by email", err, infra.KindDBFailure)
	}
	return found, hash, nil
}

func (r *clientRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE clients SET last_login_at = $2 WHERE id = $1`, id, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err, infra.KindDBFailure)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("client not found", infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner, withHash bool) (*client.Client, string, error) {
	var (
		id            uuid.UUID
		email         string
		status        string
		emailVerified bool
		companyName   pgtype.Text
		contactName   pgtype.Text
		phone         pgtype.Text
		createdAt     pgtype.Timestamptz
		lastLoginAt   pgtype.Timestamptz
		passwordHash  string
	)

	dest := []any{&id, &email, &status, &emailVerified, &companyName, &contactName, &phone, &createdAt, &lastLoginAt}
	if withHash {
		dest = append(dest, &passwordHash)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, "", err
	}

	found := client.ReconstructClient(
		id,
		email,
		client.Status(status),
		emailVerified,
		pgconv.StringPtrFromPgtype(companyName),
		pgconv.StringPtrFromPgtype(contactName),
		pgconv.StringPtrFromPgtype(phone),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimePtrFromPgtype(lastLoginAt),
	)
	return found, passwordHash, nil
}
