package api

import (
	"errors"
	"net/http"

	reqdto "lead-exchange/internal/handler/dto/request"
	resdto "lead-exchange/internal/handler/dto/response"
	"lead-exchange/internal/handler/middleware"
	"lead-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchases  commands.PurchaseCommands
	quotes     commands.QuoteCommands
	allocation commands.AllocationCommands
	exports    commands.ExportCommands
}

func NewPurchaseHandler(
	purchases commands.PurchaseCommands,
	quotes commands.QuoteCommands,
	allocation commands.AllocationCommands,
	exports commands.ExportCommands,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchases:  purchases,
		quotes:     quotes,
		allocation: allocation,
		exports:    exports,
	}
}

// @Summary Quote items
// @Description Price specific inventory items without committing to a purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Items to quote"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes [post]
func (h *PurchaseHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	quote, err := h.quotes.QuoteByIDs(c.Request.Context(), req.InventoryIDs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemsUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "One or more items are no longer available",
			})
		case errors.Is(err, commands.ErrPricingNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No active pricing for one or more items",
			})
		case errors.Is(err, commands.ErrEmptyQuoteRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No items to quote",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromQuote(quote)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Purchase items
// @Description Purchase specific inventory items. The purchase either fills
// @Description every requested item (with at most one replacement each) or
// @Description reports zero purchased.
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseRequest true "Items to purchase"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.purchases.Execute(c.Request.Context(), clientID, req.InventoryIDs)
	if err != nil {
		h.renderPurchaseError(c, err)
		return
	}

	resp, err := resdto.FromPurchaseResult(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Purchase by criteria
// @Description Allocate and purchase inventory matching classification, bucket and location criteria
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseByCriteriaRequest true "Purchase criteria"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} resdto.InsufficientInventoryResponse
// @Router /purchases/by-criteria [post]
func (h *PurchaseHandler) PurchaseByCriteria(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PurchaseByCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	criteria, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.purchases.ExecuteByCriteria(c.Request.Context(), clientID, criteria)
	if err != nil {
		h.renderPurchaseError(c, err)
		return
	}

	resp, err := resdto.FromPurchaseResult(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Validate availability
// @Description Report available counts for purchase criteria without buying
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PurchaseByCriteriaRequest true "Criteria to validate"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /purchases/availability [post]
func (h *PurchaseHandler) ValidateAvailability(c *gin.Context) {
	var req reqdto.PurchaseByCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	criteria, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	counts, err := h.allocation.ValidateAvailability(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, commands.ErrEmptyCriteria) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No criteria provided",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Counts: counts})
}

// @Summary Export purchased leads
// @Description Download purchased leads as CSV. Only the buyer's own sales can be exported.
// @Tags purchases
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param request body reqdto.ExportRequest true "Sales to export"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /purchases/export [post]
func (h *PurchaseHandler) Export(c *gin.Context) {
	clientID, ok := middleware.GetClientID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	data, err := h.exports.GenerateForSales(c.Request.Context(), clientID, req.SaleIDs)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrExportForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "One or more sales belong to another client",
			})
		case errors.Is(err, commands.ErrSaleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "One or more sales were not found",
			})
		case errors.Is(err, commands.ErrEmptyExport):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No sales to export",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *PurchaseHandler) renderPurchaseError(c *gin.Context, err error) {
	var insufficient *commands.InsufficientInventoryError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, resdto.FromInsufficientInventory(insufficient))
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Client not found",
		})
	case errors.Is(err, commands.ErrEmptyPurchase), errors.Is(err, commands.ErrEmptyCriteria):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No items to purchase",
		})
	case errors.Is(err, commands.ErrQuoteExpired):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Quote expired before purchase completed",
		})
	case errors.Is(err, commands.ErrPricingNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "No active pricing for one or more items",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
