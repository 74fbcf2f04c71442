package service

import (
	"context"
	"fmt"

	"invoice-analytics/internal/model"
	"invoice-analytics/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

// InvoiceListQuery is the validated filter set for the invoice list endpoint.
type InvoiceListQuery struct {
	Search string // case-insensitive substring over invoice number and vendor name
	Status string // exact match, empty for all
	SortBy string // invoice field name, defaults to invoiceDate
	Order  string // asc or desc, defaults to desc
	Page   int
	Limit  int
}

type InvoiceListResult struct {
	Data       []model.Invoice `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// ValidationError marks caller input problems so handlers can answer 400
// instead of 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// sortColumns whitelists sortable invoice fields against their DB columns.
// Anything else is rejected rather than interpolated into SQL.
var sortColumns = map[string]string{
	"invoiceNumber": "invoice_number",
	"invoiceDate":   "invoice_date",
	"dueDate":       "due_date",
	"totalAmount":   "total_amount",
	"status":        "status",
	"category":      "category",
	"createdAt":     "created_at",
}

// --- Interface ---

type InvoiceService interface {
	ListInvoices(ctx context.Context, q InvoiceListQuery) (InvoiceListResult, error)
	GetInvoice(ctx context.Context, id string) (*model.Invoice, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

// --- Implementation ---

func (s *invoiceService) ListInvoices(ctx context.Context, q InvoiceListQuery) (InvoiceListResult, error) {
	if q.SortBy == "" {
		q.SortBy = "invoiceDate"
	}
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return InvoiceListResult{}, &ValidationError{Msg: fmt.Sprintf("unsortable field: %s", q.SortBy)}
	}

	switch q.Order {
	case "":
		q.Order = "desc"
	case "asc", "desc":
	default:
		return InvoiceListResult{}, &ValidationError{Msg: "order must be asc or desc"}
	}

	offset := (q.Page - 1) * q.Limit
	invoices, total, err := s.invoiceRepo.List(ctx, q.Search, q.Status, column, q.Order, offset, q.Limit)
	if err != nil {
		return InvoiceListResult{}, err
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))

	return InvoiceListResult{
		Data:       invoices,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ValidationError{Msg: "invalid invoice id"}
	}
	return s.invoiceRepo.FindByID(ctx, invoiceID)
}
