package api

import (
	"errors"
	"net/http"

	reqdto "lead-exchange/internal/handler/dto/request"
	resdto "lead-exchange/internal/handler/dto/response"
	"lead-exchange/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventory queries.InventoryQueries
}

func NewInventoryHandler(inventory queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// @Summary Browse inventory
// @Description List available inventory items with optional filters
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param classification query []string false "Classification filter"
// @Param age_bucket query []string false "Age bucket filter"
// @Param state query []string false "State filter"
// @Param county query []string false "County filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.InventoryItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /inventory [get]
func (h *InventoryHandler) Browse(c *gin.Context) {
	var q reqdto.BrowseInventoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filters, err := q.ToFilters()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.inventory.Browse(c.Request.Context(), filters, q.Limit, q.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromInventoryItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Mixed inventory query
// @Description Fetch specific quantities across several classification and bucket combinations
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MixedInventoryRequest true "Mixed request"
// @Success 200 {array} resdto.InventoryItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /inventory/mixed [post]
func (h *InventoryHandler) Mixed(c *gin.Context) {
	var req reqdto.MixedInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	requests, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	items, err := h.inventory.Mixed(c.Request.Context(), requests)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidQuantity) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromInventoryItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Inventory summary
// @Description Availability counts by bucket and classification
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.InventorySummaryResponse
// @Failure 401 {object} map[string]string
// @Router /inventory/summary [get]
func (h *InventoryHandler) Summary(c *gin.Context) {
	summary, err := h.inventory.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventorySummary(summary))
}
