package handler

import (
	"errors"
	"log"
	"net/http"

	"invoice-analytics/internal/service"
	"invoice-analytics/pkg/pagination"
	"invoice-analytics/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
	}
}

// @Summary      List invoices
// @Description  Invoices with free-text search, status filter, sorting and pagination
// @Tags         invoices
// @Produce      json
// @Param        search query string false "Substring match on invoice number or vendor name"
// @Param        status query string false "Exact status filter (pending, partial, paid)"
// @Param        sortBy query string false "Invoice field to sort by" default(invoiceDate)
// @Param        order  query string false "asc or desc" default(desc)
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(50)
// @Success      200 {object} service.InvoiceListResult
// @Failure      400 {object} map[string]interface{} "Invalid sort field or order"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	page := pagination.Parse(c)

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), service.InvoiceListQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			response.Error(c, http.StatusBadRequest, vErr.Msg)
			return
		}
		log.Printf("Error fetching invoices: %v", err)
		response.Internal(c, "Failed to fetch invoices")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Get invoice
// @Description  Full invoice detail with vendor, customer, line items and payments
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} model.Invoice
// @Failure      400 {object} map[string]interface{} "Invalid invoice id"
// @Failure      404 {object} map[string]interface{} "Invoice not found"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.Error(c, http.StatusBadRequest, vErr.Msg)
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "Invoice not found")
		default:
			log.Printf("Error fetching invoice: %v", err)
			response.Internal(c, "Failed to fetch invoice")
		}
		return
	}
	c.JSON(http.StatusOK, invoice)
}
