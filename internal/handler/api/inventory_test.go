//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"lead-exchange/internal/domain/bucket"
	"lead-exchange/internal/domain/lead"
	"lead-exchange/internal/handler/api"
	resdto "lead-exchange/internal/handler/dto/response"
	"lead-exchange/internal/usecase/queries"
	"lead-exchange/tests/common/httptest"
	queriesmock "lead-exchange/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockInventory *queriesmock.MockInventoryQueries
	handler       *api.InventoryHandler
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockInventory = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockInventory)

	s.router.GET("/inventory", s.handler.Browse)
	s.router.POST("/inventory/mixed", s.handler.Mixed)
	s.router.GET("/inventory/summary", s.handler.Summary)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func sampleItem(b bucket.Bucket, c lead.Classification) *queries.AvailableInventoryItem {
	state := "LA"
	return &queries.AvailableInventoryItem{
		InventoryID:    uuid.New(),
		LeadID:         uuid.New(),
		AgeBucket:      b,
		CreatedAt:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		State:          state,
		Classification: c,
	}
}

func (s *InventoryHandlerTestSuite) TestBrowse() {
	s.Run("success: returns items as a top-level array", func() {
		items := []*queries.AvailableInventoryItem{
			sampleItem(bucket.Month6To8, lead.Gold),
			sampleItem(bucket.Month9To11, lead.Silver),
		}
		expectedFilters := queries.NewFilters()
		expectedFilters.Classifications = []lead.Classification{lead.Gold, lead.Silver}
		s.mockInventory.EXPECT().
			Browse(gomock.Any(), expectedFilters, int32(10), int32(0)).
			Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/inventory?classification=Gold&classification=Silver&limit=10", nil, "")

		var resp []resdto.InventoryItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 2)
		s.Equal(items[0].InventoryID, resp[0].InventoryID)
		s.Equal("MONTH_6_TO_8", resp[0].AgeBucket)
		s.Equal("Silver", resp[1].Classification)
	})

	s.Run("success: include_sold widens the filter", func() {
		expectedFilters := queries.NewFilters()
		expectedFilters.AvailableOnly = false
		s.mockInventory.EXPECT().
			Browse(gomock.Any(), expectedFilters, int32(0), int32(0)).
			Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/inventory?include_sold=true", nil, "")

		var resp []resdto.InventoryItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Empty(resp)
	})

	s.Run("error: unknown classification rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/inventory?classification=Platinum", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown age bucket rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/inventory?age_bucket=MONTH_1_TO_2", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: store failure maps to 500", func() {
		s.mockInventory.EXPECT().
			Browse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("store down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *InventoryHandlerTestSuite) TestMixed() {
	url := "/inventory/mixed"

	s.Run("success: concatenated results come back as one array", func() {
		items := []*queries.AvailableInventoryItem{
			sampleItem(bucket.Month6To8, lead.Gold),
			sampleItem(bucket.Month12To23, lead.Silver),
		}
		expected := []queries.MixedRequest{
			{Classification: lead.Gold, AgeBucket: bucket.Month6To8, Quantity: 1},
			{Classification: lead.Silver, AgeBucket: bucket.Month12To23, Quantity: 1, States: []string{"LA"}},
		}
		s.mockInventory.EXPECT().Mixed(gomock.Any(), expected).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"requests": []map[string]any{
				{"classification": "Gold", "age_bucket": "MONTH_6_TO_8", "quantity": 1},
				{"classification": "Silver", "age_bucket": "MONTH_12_TO_23", "quantity": 1, "states": []string{"LA"}},
			},
		}, "")

		var resp []resdto.InventoryItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("error: empty request list rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"requests": []map[string]any{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: zero quantity rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"requests": []map[string]any{
				{"classification": "Gold", "age_bucket": "MONTH_6_TO_8", "quantity": 0},
			},
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: invalid quantity from the query layer maps to 400", func() {
		s.mockInventory.EXPECT().Mixed(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidQuantity)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"requests": []map[string]any{
				{"classification": "Gold", "age_bucket": "MONTH_6_TO_8", "quantity": 1},
			},
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Quantity must be positive")
	})
}

func (s *InventoryHandlerTestSuite) TestSummary() {
	s.Run("success: availability counts by bucket and classification", func() {
		s.mockInventory.EXPECT().Summary(gomock.Any()).Return(&queries.InventorySummary{
			TotalAvailable: 4,
			TotalSold:      1,
			ByBucket: map[bucket.Bucket]int64{
				bucket.Month6To8:  3,
				bucket.Month9To11: 1,
			},
			ByClassification: map[lead.Classification]int64{
				lead.Gold:   2,
				lead.Silver: 2,
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/summary", nil, "")

		var resp resdto.InventorySummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(4), resp.TotalAvailable)
		s.Equal(int64(1), resp.TotalSold)
		s.Equal(int64(3), resp.ByBucket["MONTH_6_TO_8"])
		s.Equal(int64(2), resp.ByClassification["Gold"])
	})

	s.Run("error: store failure maps to 500", func() {
		s.mockInventory.EXPECT().Summary(gomock.Any()).Return(nil, errors.New("store down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/inventory/summary", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
