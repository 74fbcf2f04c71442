package handler

import (
	"log"
	"net/http"

	"invoice-analytics/internal/service"
	"invoice-analytics/pkg/response"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	vendorService    service.VendorService
	analyticsService service.AnalyticsService
}

func NewVendorHandler(vendorService service.VendorService, analyticsService service.AnalyticsService) *VendorHandler {
	return &VendorHandler{
		vendorService:    vendorService,
		analyticsService: analyticsService,
	}
}

func (h *VendorHandler) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/api/vendors")
	{
		vendors.GET("", h.ListVendors)
		vendors.GET("/top10", h.GetTopVendors)
	}
}

// @Summary      List vendors
// @Description  All vendors with their invoice counts
// @Tags         vendors
// @Produce      json
// @Success      200 {array} model.VendorSummary
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching vendors: %v", err)
		response.Internal(c, "Failed to fetch vendors")
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// @Summary      Get top vendors by spend
// @Description  Top 10 vendors ranked by total invoice spend
// @Tags         vendors
// @Produce      json
// @Success      200 {array} model.VendorSpend
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/vendors/top10 [get]
func (h *VendorHandler) GetTopVendors(c *gin.Context) {
	vendors, err := h.analyticsService.GetTopVendors(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching top vendors: %v", err)
		response.Internal(c, "Failed to fetch top vendors")
		return
	}
	c.JSON(http.StatusOK, vendors)
}
