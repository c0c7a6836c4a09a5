//go:build e2e

package purchase_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"lead-exchange/tests/common/dbtest"
	"lead-exchange/tests/common/httptest"
	"lead-exchange/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PurchaseE2ETestSuite struct {
	e2e.SharedSuite
}

func TestPurchaseE2ESuite(t *testing.T) {
	suite.Run(t, new(PurchaseE2ETestSuite))
}

func (s *PurchaseE2ETestSuite) login(email string) string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
		map[string]any{"email": email, "password": dbtest.TestPassword}, "")

	var response struct {
		AccessToken string `json:"access_token"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.AccessToken)
	return response.AccessToken
}

// seedGoldInventory creates n Gold MONTH_6_TO_8 items in LA and returns their
// inventory ids.
func (s *PurchaseE2ETestSuite) seedGoldInventory(n int) []uuid.UUID {
	createdAt := time.Now().UTC().Add(-200 * 24 * time.Hour)

	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		leadID := dbtest.CreateTestLead(s.T(), s.DB, "Gold", "LA", createdAt)
		ids = append(ids, dbtest.CreateTestInventory(s.T(), s.DB, leadID, "MONTH_6_TO_8", createdAt))
	}
	return ids
}

func (s *PurchaseE2ETestSuite) TestPurchaseFlow() {
	s.Run("quote then purchase then export", func() {
		ids := s.seedGoldInventory(2)
		dbtest.CreateTestClient(s.T(), s.DB, "buyer@example.com", true)
		token := s.login("buyer@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/quotes",
			map[string]any{"inventory_ids": ids}, token)

		var quote struct {
			SubtotalCents int64  `json:"subtotal_cents"`
			Currency      string `json:"currency"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &quote)
		s.Equal(int64(4000), quote.SubtotalCents)
		s.Equal("USD", quote.Currency)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
			map[string]any{"inventory_ids": ids}, token)

		var purchase struct {
			Success        bool        `json:"success"`
			SaleIDs        []uuid.UUID `json:"sale_ids"`
			TotalPaidCents int64       `json:"total_paid_cents"`
			ItemsPurchased int         `json:"items_purchased"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &purchase)
		s.True(purchase.Success)
		s.Len(purchase.SaleIDs, 2)
		s.Equal(int64(4000), purchase.TotalPaidCents)

		// Sold items disappear from browsing.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/inventory", nil, token)
		var browse []any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &browse)
		s.Empty(browse)

		// The buyer can export the purchased leads.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases/export",
			map[string]any{"sale_ids": purchase.SaleIDs}, token)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Disposition"), "leads.csv")

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		s.Len(lines, 3) // header + 2 rows
		s.Contains(lines[0], "sale_id")
	})

	s.Run("an already sold item cannot be purchased again", func() {
		ids := s.seedGoldInventory(1)
		dbtest.CreateTestClient(s.T(), s.DB, "buyer@example.com", true)
		dbtest.CreateTestClient(s.T(), s.DB, "rival@example.com", true)
		first := s.login("buyer@example.com")
		second := s.login("rival@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
			map[string]any{"inventory_ids": ids}, first)
		var win struct {
			Success bool `json:"success"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &win)
		s.True(win.Success)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
			map[string]any{"inventory_ids": ids}, second)
		var lose struct {
			Success        bool     `json:"success"`
			ItemsPurchased int      `json:"items_purchased"`
			Errors         []string `json:"errors"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &lose)
		s.False(lose.Success)
		s.Zero(lose.ItemsPurchased)
		s.NotEmpty(lose.Errors)
	})

	s.Run("unverified client cannot purchase", func() {
		ids := s.seedGoldInventory(1)
		dbtest.CreateTestClient(s.T(), s.DB, "unverified@example.com", false)
		token := s.login("unverified@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
			map[string]any{"inventory_ids": ids}, token)

		var result struct {
			Success bool `json:"success"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
		s.False(result.Success)
	})

	s.Run("purchase by criteria with too little inventory returns alternatives", func() {
		s.seedGoldInventory(1)
		dbtest.CreateTestClient(s.T(), s.DB, "buyer@example.com", true)
		token := s.login("buyer@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases/by-criteria",
			map[string]any{"items": []map[string]any{
				{"classification": "Gold", "age_bucket": "MONTH_6_TO_8", "quantity": 5, "state": "LA"},
			}}, token)

		s.Equal(http.StatusConflict, rec.Code)

		var conflict struct {
			Requested    int   `json:"requested"`
			Available    int64 `json:"available"`
			Alternatives []struct {
				Kind string `json:"kind"`
			} `json:"alternatives"`
		}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &conflict))
		s.Equal(5, conflict.Requested)
		s.Equal(int64(1), conflict.Available)
		s.NotEmpty(conflict.Alternatives)
		s.Equal("partial", conflict.Alternatives[0].Kind)
	})

	s.Run("export of another client's sale is forbidden", func() {
		ids := s.seedGoldInventory(1)
		dbtest.CreateTestClient(s.T(), s.DB, "buyer@example.com", true)
		dbtest.CreateTestClient(s.T(), s.DB, "rival@example.com", true)
		owner := s.login("buyer@example.com")
		other := s.login("rival@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases",
			map[string]any{"inventory_ids": ids}, owner)
		var purchase struct {
			SaleIDs []uuid.UUID `json:"sale_ids"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &purchase)
		s.Require().Len(purchase.SaleIDs, 1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/purchases/export",
			map[string]any{"sale_ids": purchase.SaleIDs}, other)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("requests without a token are rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/inventory", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
