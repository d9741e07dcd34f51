package handler

import (
	"github.com/Hardik699/hanuram-sale-new/internal/application/service"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/dto/request"
	"github.com/Hardik699/hanuram-sale-new/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SalesHandler handles sales aggregation HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// GetItemSales handles the per-item sales aggregation query
func (h *SalesHandler) GetItemSales(c *gin.Context) {
	itemID := c.Param("item_id")
	if itemID == "" {
		response.BadRequest(c, "Item ID is required")
		return
	}

	var req request.SalesQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	agg, err := h.salesService.GetItemSales(c.Request.Context(), itemID, req.StartDate, req.EndDate, req.Restaurant)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item sales retrieved successfully", agg)
}

// ListRestaurants handles listing distinct restaurant names
func (h *SalesHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.salesService.ListRestaurants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurants retrieved successfully", restaurants)
}
