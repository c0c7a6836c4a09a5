//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/handler/api"
	resdto "lead-exchange/internal/handler/dto/response"
	"lead-exchange/internal/usecase/commands"
	"lead-exchange/tests/common/httptest"
	commandsmock "lead-exchange/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockPurchases  *commandsmock.MockPurchaseCommands
	mockQuotes     *commandsmock.MockQuoteCommands
	mockAllocation *commandsmock.MockAllocationCommands
	mockExports    *commandsmock.MockExportCommands
	handler        *api.PurchaseHandler

	clientID uuid.UUID
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPurchases = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQuotes = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockAllocation = commandsmock.NewMockAllocationCommands(s.mockCtrl)
	s.mockExports = commandsmock.NewMockExportCommands(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockPurchases, s.mockQuotes, s.mockAllocation, s.mockExports)
	s.clientID = uuid.New()

	// Stands in for the auth middleware.
	withAuth := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("client_id", s.clientID)
			}
			next(c)
		}
	}

	s.router.POST("/quotes", withAuth(s.handler.Quote))
	s.router.POST("/purchases", withAuth(s.handler.Purchase))
	s.router.POST("/purchases/by-criteria", withAuth(s.handler.PurchaseByCriteria))
	s.router.POST("/purchases/availability", withAuth(s.handler.ValidateAvailability))
	s.router.POST("/purchases/export", withAuth(s.handler.Export))
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

func (s *PurchaseHandlerTestSuite) TestQuote() {
	url := "/quotes"
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	reqBody := map[string]any{"inventory_ids": ids}

	s.Run("success: returns the priced quote", func() {
		now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)
		s.mockQuotes.EXPECT().QuoteByIDs(gomock.Any(), ids).
			Return(&commands.Quote{
				Items: []commands.QuoteLine{
					{InventoryID: ids[0], LeadID: uuid.New(), AgeBucket: "MONTH_6_TO_8", Classification: "Gold", PriceCents: 2000},
					{InventoryID: ids[1], LeadID: uuid.New(), AgeBucket: "MONTH_6_TO_8", Classification: "Gold", PriceCents: 2000},
				},
				SubtotalCents: 4000,
				Currency:      "USD",
				CreatedAt:     now,
				ExpiresAt:     now.Add(15 * time.Minute),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal(int64(4000), response.SubtotalCents)
		s.Equal("USD", response.Currency)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "items unavailable", commandsError: commands.ErrItemsUnavailable, expectedStatus: http.StatusConflict},
			{name: "pricing missing", commandsError: commands.ErrPricingNotFound, expectedStatus: http.StatusUnprocessableEntity},
			{name: "internal error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQuotes.EXPECT().QuoteByIDs(gomock.Any(), ids).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 Bad Request on empty id list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"inventory_ids": []uuid.UUID{}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *PurchaseHandlerTestSuite) TestPurchase() {
	url := "/purchases"
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	reqBody := map[string]any{"inventory_ids": ids}

	s.Run("success: reports the committed purchase", func() {
		saleIDs := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockPurchases.EXPECT().Execute(gomock.Any(), s.clientID, ids).
			Return(&commands.PurchaseResult{
				Success:        true,
				SaleIDs:        saleIDs,
				TotalPaidCents: 4000,
				Currency:       "USD",
				ItemsRequested: 2,
				ItemsPurchased: 2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(saleIDs, response.SaleIDs)
		s.Equal(int64(4000), response.TotalPaidCents)
	})

	s.Run("success: a rejected purchase is still a 200 with details", func() {
		s.mockPurchases.EXPECT().Execute(gomock.Any(), s.clientID, ids).
			Return(&commands.PurchaseResult{
				Success:        false,
				SaleIDs:        []uuid.UUID{},
				ItemsRequested: 2,
				Errors:         []string{"item was sold to another buyer and no replacement was available"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
		s.Zero(response.ItemsPurchased)
		s.NotEmpty(response.Errors)
	})

	s.Run("error: unknown client maps to 404", func() {
		s.mockPurchases.EXPECT().Execute(gomock.Any(), s.clientID, ids).
			Return(nil, commands.ErrClientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})

	s.Run("error: 500 when client_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *PurchaseHandlerTestSuite) TestPurchaseByCriteria() {
	url := "/purchases/by-criteria"
	reqBody := map[string]any{
		"items": []map[string]any{
			{"classification": "Gold", "age_bucket": "MONTH_6_TO_8", "quantity": 2, "state": "LA"},
		},
	}

	s.Run("success: allocates and purchases", func() {
		s.mockPurchases.EXPECT().ExecuteByCriteria(gomock.Any(), s.clientID, gomock.Any()).
			Return(&commands.PurchaseResult{
				Success:        true,
				SaleIDs:        []uuid.UUID{uuid.New(), uuid.New()},
				TotalPaidCents: 4000,
				Currency:       "USD",
				ItemsRequested: 2,
				ItemsPurchased: 2,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})

	s.Run("error: insufficient inventory yields 409 with alternatives", func() {
		idx := 0
		state := "LA"
		s.mockPurchases.EXPECT().ExecuteByCriteria(gomock.Any(), s.clientID, gomock.Any()).
			Return(nil, &commands.InsufficientInventoryError{
				Requested: 2,
				Available: 1,
				Criteria: commands.AllocationCriteria{
					Classification: lead.Gold,
					AgeBucket:      bucket.Month6To8,
					Quantity:       2,
					State:          &state,
				},
				Alternatives: []commands.Alternative{
					{Kind: commands.AlternativePartial, Description: "partial fill of 1", AvailableCount: 1},
				},
				ItemIndex: &idx,
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.InsufficientInventoryResponse
		s.Equal(http.StatusConflict, rec.Code)
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(2, response.Requested)
		s.Equal(int64(1), response.Available)
		s.Len(response.Alternatives, 1)
		s.Equal(commands.AlternativePartial, response.Alternatives[0].Kind)
	})

	s.Run("error: unparseable classification is a 400", func() {
		badBody := map[string]any{
			"items": []map[string]any{
				{"classification": "Platinum", "age_bucket": "MONTH_6_TO_8", "quantity": 1},
			},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, badBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *PurchaseHandlerTestSuite) TestValidateAvailability() {
	url := "/purchases/availability"
	reqBody := map[string]any{
		"items": []map[string]any{
			{"classification": "Gold", "age_bucket": "MONTH_6_TO_8", "quantity": 10, "state": "LA"},
		},
	}

	s.Run("success: returns counts per criterion", func() {
		s.mockAllocation.EXPECT().ValidateAvailability(gomock.Any(), gomock.Any()).
			Return(map[string]int64{"Gold MONTH_6_TO_8 state=LA qty=10": 4}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(4), response.Counts["Gold MONTH_6_TO_8 state=LA qty=10"])
	})
}

func (s *PurchaseHandlerTestSuite) TestExport() {
	url := "/purchases/export"
	saleIDs := []uuid.UUID{uuid.New()}
	reqBody := map[string]any{"sale_ids": saleIDs}

	s.Run("success: streams CSV with attachment headers", func() {
		csv := "sale_id,lead_id\nabc,def\n"
		s.mockExports.EXPECT().GenerateForSales(gomock.Any(), s.clientID, saleIDs).
			Return([]byte(csv), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(csv, rec.Body.String())
		s.Equal("text/csv", rec.Header().Get("Content-Type"))
		s.Contains(rec.Header().Get("Content-Disposition"), "leads.csv")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "foreign sale", commandsError: commands.ErrExportForbidden, expectedStatus: http.StatusForbidden},
			{name: "missing sale", commandsError: commands.ErrSaleNotFound, expectedStatus: http.StatusNotFound},
			{name: "internal error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockExports.EXPECT().GenerateForSales(gomock.Any(), s.clientID, saleIDs).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
