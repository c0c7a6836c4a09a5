// Package memstore is an in-process implementation of the write repositories
// and the inventory read store, backed by plain maps under one mutex. It gives
// unit tests the same observable semantics as the SQL implementations,
// including single-sale-per-item under concurrency.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/client"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/domain/sale"
	"lead-exchange/internal/infra"
	"lead-exchange/internal/usecase/commands"
	"lead-exchange/internal/usecase/queries"

	"github.com/google/uuid"
)

type inventoryRow struct {
	id        uuid.UUID
	leadID    uuid.UUID
	ageBucket bucket.Bucket
	createdAt time.Time
	soldAt    *time.Time
}

type pricingRule struct {
	classification lead.Classification
	ageBucket      bucket.Bucket
	priceCents     int64
	currency       string
}

// Store holds every table. The zero value is not usable; construct with New.
type Store struct {
	mu        sync.Mutex
	leads     map[uuid.UUID]*lead.Lead
	clients   map[uuid.UUID]*client.Client
	passwords map[uuid.UUID]string
	inventory map[uuid.UUID]*inventoryRow
	sales     map[uuid.UUID]*sale.Sale
	pricing   []pricingRule
}

func New() *Store {
	return &Store{
		leads:     map[uuid.UUID]*lead.Lead{},
		clients:   map[uuid.UUID]*client.Client{},
		passwords: map[uuid.UUID]string{},
		inventory: map[uuid.UUID]*inventoryRow{},
		sales:     map[uuid.UUID]*sale.Sale{},
	}
}

// Seeding helpers for tests.

func (s *Store) PutLead(l *lead.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[l.ID()] = l
}

func (s *Store) PutClient(c *client.Client, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID()] = c
	s.passwords[c.ID()] = passwordHash
}

func (s *Store) PutPricing(classification lead.Classification, b bucket.Bucket, priceCents int64, currency string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pricing = append(s.pricing, pricingRule{
		classification: classification,
		ageBucket:      b,
		priceCents:     priceCents,
		currency:       currency,
	})
}

func (s *Store) SaleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

// --- commands.InventoryWriteRepository ---

func (s *Store) TrySell(_ context.Context, inventoryID, clientID uuid.UUID, priceCents int64, currency string, soldAt time.Time) (*commands.AtomicSaleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.inventory[inventoryID]
	if !ok {
		return &commands.AtomicSaleResult{Sold: false, Reason: commands.SaleReasonNotFound}, nil
	}
	if row.soldAt != nil {
		return &commands.AtomicSaleResult{Sold: false, Reason: commands.SaleReasonAlreadySold}, nil
	}

	at := soldAt
	row.soldAt = &at

	saleID := uuid.New()
	status := sale.PaymentPending
	s.sales[saleID] = sale.ReconstructSale(
		saleID, row.leadID, clientID, row.ageBucket, soldAt,
		priceCents, currency, &status, nil, soldAt,
	)
	return &commands.AtomicSaleResult{Sold: true, SaleID: saleID}, nil
}

func (s *Store) CreateRecord(_ context.Context, leadID uuid.UUID, b bucket.Bucket, createdAt time.Time) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.inventory {
		if row.leadID == leadID && row.ageBucket == b {
			return uuid.Nil, infra.NewRepoErr("inventory record already exists for this lead and bucket", infra.KindDuplicateKey)
		}
	}

	id := uuid.New()
	s.inventory[id] = &inventoryRow{id: id, leadID: leadID, ageBucket: b, createdAt: createdAt}
	return id, nil
}

// --- commands.ClientRepository ---

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, infra.NewRepoErr("client not found", infra.KindNotFound)
	}
	return c, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (*client.Client, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.clients {
		if c.Email() == email {
			return c, s.passwords[id], nil
		}
	}
	return nil, "", infra.NewRepoErr("client not found", infra.KindNotFound)
}

func (s *Store) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return infra.NewRepoErr("client not found", infra.KindNotFound)
	}
	s.clients[id] = client.ReconstructClient(
		c.ID(), c.Email(), c.Status(), c.EmailVerified(),
		c.CompanyName(), c.ContactName(), c.Phone(), c.CreatedAt(), &at,
	)
	return nil
}

// --- commands.PricingRepository ---

func (s *Store) ActivePriceCents(_ context.Context, classification lead.Classification, b bucket.Bucket) (int64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rule := range s.pricing {
		if rule.classification == classification && rule.ageBucket == b {
			return rule.priceCents, rule.currency, nil
		}
	}
	return 0, "", infra.NewRepoErr("no active pricing rule", infra.KindNotFound)
}

// --- commands.SaleRepository ---

func (s *Store) FindSaleByID(_ context.Context, id uuid.UUID) (*sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := s.sales[id]
	if !ok {
		return nil, infra.NewRepoErr("sale not found", infra.KindNotFound)
	}
	return found, nil
}

func (s *Store) FindSalesByIDs(_ context.Context, ids []uuid.UUID) ([]*sale.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*sale.Sale
	for _, id := range ids {
		if found, ok := s.sales[id]; ok {
			out = append(out, found)
		}
	}
	return out, nil
}

// --- commands.LeadRepository ---

func (s *Store) FindLeadByID(_ context.Context, id uuid.UUID) (*lead.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return nil, infra.NewRepoErr("lead not found", infra.KindNotFound)
	}
	return l, nil
}

// Sales and Leads return the Store under the repository interfaces whose
// method names collide with the client repository's.

type saleView struct{ store *Store }

func (v saleView) FindByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	return v.store.FindSaleByID(ctx, id)
}

func (v saleView) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*sale.Sale, error) {
	return v.store.FindSalesByIDs(ctx, ids)
}

func (s *Store) Sales() commands.SaleRepository {
	return saleView{store: s}
}

type leadView struct{ store *Store }

func (v leadView) FindByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	return v.store.FindLeadByID(ctx, id)
}

func (s *Store) Leads() commands.LeadRepository {
	return leadView{store: s}
}

// --- queries.InventoryReadStore ---

func (s *Store) FindAvailable(_ context.Context, f queries.Filters, limit, offset int32) ([]*queries.AvailableInventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := s.match(f)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].InventoryID.String() < matched[j].InventoryID.String()
	})

	start := int(offset)
	if start >= len(matched) {
		return nil, nil
	}
	end := start + int(limit)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (s *Store) FindByIDs(_ context.Context, ids []uuid.UUID, availableOnly bool) ([]*queries.AvailableInventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*queries.AvailableInventoryItem
	for _, id := range ids {
		row, ok := s.inventory[id]
		if !ok {
			continue
		}
		if availableOnly && row.soldAt != nil {
			continue
		}
		out = append(out, s.toItem(row))
	}
	return out, nil
}

func (s *Store) CountAvailable(_ context.Context, f queries.Filters) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.match(f))), nil
}

func (s *Store) Summary(_ context.Context) (*queries.InventorySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := &queries.InventorySummary{
		ByBucket:         map[bucket.Bucket]int64{},
		ByClassification: map[lead.Classification]int64{},
	}
	for _, row := range s.inventory {
		if row.soldAt != nil {
			summary.TotalSold++
			continue
		}
		summary.TotalAvailable++
		summary.ByBucket[row.ageBucket]++
		if l, ok := s.leads[row.leadID]; ok {
			summary.ByClassification[l.Classification()]++
		}
	}
	return summary, nil
}

// match applies the independently-optional filters. Callers hold the mutex.
func (s *Store) match(f queries.Filters) []*queries.AvailableInventoryItem {
	var out []*queries.AvailableInventoryItem
	for _, row := range s.inventory {
		if f.AvailableOnly && row.soldAt != nil {
			continue
		}
		l, ok := s.leads[row.leadID]
		if !ok {
			continue
		}
		if len(f.Classifications) > 0 && !containsClassification(f.Classifications, l.Classification()) {
			continue
		}
		if len(f.AgeBuckets) > 0 && !containsBucket(f.AgeBuckets, row.ageBucket) {
			continue
		}
		if len(f.States) > 0 && !containsString(f.States, l.State()) {
			continue
		}
		if len(f.Counties) > 0 && (l.County() == nil || !containsString(f.Counties, *l.County())) {
			continue
		}
		out = append(out, s.toItem(row))
	}
	return out
}

func (s *Store) toItem(row *inventoryRow) *queries.AvailableInventoryItem {
	item := &queries.AvailableInventoryItem{
		InventoryID: row.id,
		LeadID:      row.leadID,
		AgeBucket:   row.ageBucket,
		CreatedAt:   row.createdAt,
	}
	if l, ok := s.leads[row.leadID]; ok {
		item.State = l.State()
		item.County = l.County()
		item.Classification = l.Classification()
		item.FirstName = l.FirstName()
		item.LastName = l.LastName()
		item.City = l.City()
		item.Zip = l.Zip()
		item.Phone = l.Phone()
	}
	return item
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsClassification(haystack []lead.Classification, needle lead.Classification) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}
	return false
}

func containsBucket(haystack []bucket.Bucket, needle bucket.Bucket) bool {
	for _, b := range haystack {
		if b == needle {
			return true
		}
	}
	return false
}
