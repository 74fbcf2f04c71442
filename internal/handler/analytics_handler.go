package handler

import (
	"log"
	"net/http"

	"invoice-analytics/internal/service"
	"invoice-analytics/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/stats", h.GetStats)

	trends := router.Group("/api/invoice-trends")
	{
		trends.GET("", h.GetMonthlyTrends)
		trends.GET("/category", h.GetCategorySpend)
		trends.GET("/cash-outflow", h.GetCashOutflow)
	}

	// Flat aliases kept for dashboard clients
	router.GET("/api/category-spend", h.GetCategorySpend)
	router.GET("/api/cash-outflow", h.GetCashOutflow)
}

// @Summary      Get overview statistics
// @Description  Year-to-date spend, invoice counts and average invoice value
// @Tags         analytics
// @Produce      json
// @Success      200 {object} model.OverviewStats
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/stats [get]
func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	stats, err := h.analyticsService.GetOverviewStats(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching stats: %v", err)
		response.Internal(c, "Failed to fetch statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary      Get monthly invoice trends
// @Description  Invoice count and spend per month for the trailing six months
// @Tags         analytics
// @Produce      json
// @Success      200 {array} model.MonthlyTrend
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/invoice-trends [get]
func (h *AnalyticsHandler) GetMonthlyTrends(c *gin.Context) {
	trends, err := h.analyticsService.GetMonthlyTrends(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching invoice trends: %v", err)
		response.Internal(c, "Failed to fetch invoice trends")
		return
	}
	c.JSON(http.StatusOK, trends)
}

// @Summary      Get spend by category
// @Description  Total spend rolled up per non-null invoice category
// @Tags         analytics
// @Produce      json
// @Success      200 {array} model.CategorySpend
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/invoice-trends/category [get]
func (h *AnalyticsHandler) GetCategorySpend(c *gin.Context) {
	rollup, err := h.analyticsService.GetCategorySpend(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching category spend: %v", err)
		response.Internal(c, "Failed to fetch category spend")
		return
	}
	c.JSON(http.StatusOK, rollup)
}

// @Summary      Get cash outflow forecast
// @Description  Outstanding invoice totals due in the next three months, bucketed per week
// @Tags         analytics
// @Produce      json
// @Success      200 {array} model.CashOutflowBucket
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/invoice-trends/cash-outflow [get]
func (h *AnalyticsHandler) GetCashOutflow(c *gin.Context) {
	outflow, err := h.analyticsService.GetCashOutflow(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching cash outflow: %v", err)
		response.Internal(c, "Failed to fetch cash outflow")
		return
	}
	c.JSON(http.StatusOK, outflow)
}
