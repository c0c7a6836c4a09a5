package readstore

import (
	"context"
	"fmt"
	"strings"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/pkg/pgconv"
	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type inventoryReadStore struct {
	pool *pgxpool.Pool
}

func NewInventoryReadStore(pool *pgxpool.Pool) queries.InventoryReadStore {
	return &inventoryReadStore{pool: pool}
}

const itemColumns = `
	i.id, i.lead_id, i.age_bucket, i.created_at,
	l.state, l.county, l.classification,
	l.first_name, l.last_name, l.city, l.zip, l.phone`

const itemFrom = ` FROM inventory i JOIN leads l ON l.id = i.lead_id`

// buildWhere renders the independently-optional filter dimensions. An empty
// dimension contributes no predicate at all.
func buildWhere(f queries.Filters) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.AvailableOnly {
		conds = append(conds, "i.sold_at IS NULL")
	}
	if len(f.Classifications) > 0 {
		add("l.classification = ANY($%d)", classificationStrings(f.Classifications))
	}
	if len(f.AgeBuckets) > 0 {
		add("i.age_bucket = ANY($%d)", bucketStrings(f.AgeBuckets))
	}
	if len(f.States) > 0 {
		add("l.state = ANY($%d)", f.States)
	}
	if len(f.Counties) > 0 {
		add("l.county = ANY($%d)", f.Counties)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (s *inventoryReadStore) FindAvailable(ctx context.Context, f queries.Filters, limit, offset int32) ([]*queries.AvailableInventoryItem, error) {
	where, args := buildWhere(f)

	query := "SELECT" + itemColumns + itemFrom + where +
		fmt.Sprintf(" ORDER BY i.created_at, i.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query inventory", err, infra.KindDBFailure)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (s *inventoryReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID, availableOnly bool) ([]*queries.AvailableInventoryItem, error) {
	query := "SELECT" + itemColumns + itemFrom + " WHERE i.id = ANY($1)"
	if availableOnly {
		query += " AND i.sold_at IS NULL"
	}

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query inventory by ids", err, infra.KindDBFailure)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (s *inventoryReadStore) CountAvailable(ctx context.Context, f queries.Filters) (int64, error) {
	where, args := buildWhere(f)

	var n int64
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*)"+itemFrom+where, args...).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count inventory", err, infra.KindDBFailure)
	}
	return n, nil
}

func (s *inventoryReadStore) Summary(ctx context.Context) (*queries.InventorySummary, error) {
	summary := &queries.InventorySummary{
		ByBucket:         map[bucket.Bucket]int64{},
		ByClassification: map[lead.Classification]int64{},
	}

	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE sold_at IS NULL),
			COUNT(*) FILTER (WHERE sold_at IS NOT NULL)
		FROM inventory
	`).Scan(&summary.TotalAvailable, &summary.TotalSold)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count inventory totals", err, infra.KindDBFailure)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT age_bucket, COUNT(*)
		FROM inventory
		WHERE sold_at IS NULL
		GROUP BY age_bucket
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count by bucket", err, infra.KindDBFailure)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			b string
			n int64
		)
		if err := rows.Scan(&b, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bucket count", err, infra.KindDBFailure)
		}
		summary.ByBucket[bucket.Bucket(b)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bucket counts", err, infra.KindDBFailure)
	}

	classRows, err := s.pool.Query(ctx, `
		SELECT l.classification, COUNT(*)
		FROM inventory i JOIN leads l ON l.id = i.lead_id
		WHERE i.sold_at IS NULL
		GROUP BY l.classification
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count by classification", err, infra.KindDBFailure)
	}
	defer classRows.Close()
	for classRows.Next() {
		var (
			c string
			n int64
		)
		if err := classRows.Scan(&c, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan classification count", err, infra.KindDBFailure)
		}
		summary.ByClassification[lead.Classification(c)] = n
	}
	if err := classRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate classification counts", err, infra.KindDBFailure)
	}

	return summary, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

type itemRows interface {
	Next() bool
	Err() error
	Scan(dest ...any) error
}

func scanItems(rows itemRows) ([]*queries.AvailableInventoryItem, error) {
	var items []*queries.AvailableInventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory item", err, infra.KindDBFailure)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inventory items", err, infra.KindDBFailure)
	}
	return items, nil
}

func scanItem(row rowScanner) (*queries.AvailableInventoryItem, error) {
	var (
		inventoryID    uuid.UUID
		leadID         uuid.UUID
		ageBucket      string
		createdAt      pgtype.Timestamptz
		state          string
		county         pgtype.Text
		classification string
		firstName      pgtype.Text
		lastName       pgtype.Text
		city           pgtype.Text
		zip            pgtype.Text
		phone          pgtype.Text
	)

	if err := row.Scan(&inventoryID, &leadID, &ageBucket, &createdAt,
		&state, &county, &classification,
		&firstName, &lastName, &city, &zip, &phone); err != nil {
		return nil, err
	}

	return &queries.AvailableInventoryItem{
		InventoryID:    inventoryID,
		LeadID:         leadID,
		AgeBucket:      bucket.Bucket(ageBucket),
		CreatedAt:      pgconv.TimeFromPgtype(createdAt),
		State:          state,
		County:         pgconv.StringPtrFromPgtype(county),
		Classification: lead.Classification(classification),
		FirstName:      pgconv.StringPtrFromPgtype(firstName),
		LastName:       pgconv.StringPtrFromPgtype(lastName),
		City:           pgconv.StringPtrFromPgtype(city),
		Zip:            pgconv.StringPtrFromPgtype(zip),
		Phone:          pgconv.StringPtrFromPgtype(phone),
	}, nil
}

func classificationStrings(cs []lead.Classification) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

func bucketStrings(bs []bucket.Bucket) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.String()
	}
	return out
}
