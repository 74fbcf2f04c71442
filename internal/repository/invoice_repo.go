package repository

import (
	"context"

	"invoice-analytics/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, search, status, sortColumn, order string, offset, limit int) ([]model.Invoice, int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Customer").
		Preload("LineItems").
		Preload("Payments").
		First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List applies free-text search (invoice number or vendor name, case
// insensitive), exact status filter, field sort and offset/limit pagination.
// sortColumn must already be validated against the invoice column whitelist.
func (r *invoiceRepository) List(ctx context.Context, search, status, sortColumn, order string, offset, limit int) ([]model.Invoice, int64, error) {
	var invoices []model.Invoice
	var total int64

	db := r.db.WithContext(ctx)

	applyFilters := func(q *gorm.DB) *gorm.DB {
		if search != "" {
			q = q.Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
				Where("invoices.invoice_number ILIKE ? OR vendors.name ILIKE ?",
					"%"+search+"%", "%"+search+"%")
		}
		if status != "" {
			q = q.Where("invoices.status = ?", status)
		}
		return q
	}

	if err := applyFilters(db.Model(&model.Invoice{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetchQuery := applyFilters(db.Model(&model.Invoice{})).
		Preload("Vendor").
		Preload("Customer").
		Order("invoices." + sortColumn + " " + order).
		Offset(offset).
		Limit(limit)
	if err := fetchQuery.Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}
