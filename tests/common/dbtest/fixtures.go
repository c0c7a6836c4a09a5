//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lead-exchange/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every fixture client logs in with.
const TestPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		testPasswordHash = h
	})
	return testPasswordHash
}

func CreateTestClient(t *testing.T, db DBLike, email string, verified bool) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO clients (id, email, password_hash, status, email_verified) VALUES ($1, $2, $3, 'active', $4) ON CONFLICT (email) DO NOTHING",
		clientID, email, passwordHash(t), verified)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM clients WHERE email = $1", email).Scan(&clientID)
	}

	return clientID
}

func CreateTestLead(t *testing.T, db DBLike, classification, state string, createdAt time.Time) uuid.UUID {
	t.Helper()

	leadID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO leads (id, source, state, county, city, zip, first_name, last_name, phone, classification, created_at)
		 VALUES ($1, 'e2e', $2, 'Orleans', 'New Orleans', '70112', 'Jane', 'Doe', '555-0100', $3, $4)`,
		leadID, state, classification, createdAt)
	require.NoError(t, err)

	return leadID
}

func CreateTestInventory(t *testing.T, db DBLike, leadID uuid.UUID, ageBucket string, createdAt time.Time) uuid.UUID {
	t.Helper()

	inventoryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO inventory (id, lead_id, age_bucket, created_at) VALUES ($1, $2, $3, $4)",
		inventoryID, leadID, ageBucket, createdAt)
	require.NoError(t, err)

	return inventoryID
}

// inserts the pricing rules every purchase path depends on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO pricing_rules (classification, age_bucket, price_cents, currency) VALUES
		    ('Gold',   'MONTH_3_TO_5',   2500, 'USD'),
		    ('Gold',   'MONTH_6_TO_8',   2000, 'USD'),
		    ('Gold',   'MONTH_9_TO_11',  1500, 'USD'),
		    ('Gold',   'MONTH_12_TO_23', 1000, 'USD'),
		    ('Gold',   'MONTH_24_PLUS',   500, 'USD'),
		    ('Silver', 'MONTH_3_TO_5',   1500, 'USD'),
		    ('Silver', 'MONTH_6_TO_8',   1200, 'USD'),
		    ('Silver', 'MONTH_9_TO_11',   900, 'USD'),
		    ('Silver', 'MONTH_12_TO_23',  600, 'USD'),
		    ('Silver', 'MONTH_24_PLUS',   300, 'USD')
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
