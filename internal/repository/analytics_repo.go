package repository

import (
	"context"
	"fmt"
	"time"

	"invoice-analytics/internal/model"

	"gorm.io/gorm"
)

// InvoiceDateAmount is the raw row the trend bucketing consumes.
type InvoiceDateAmount struct {
	InvoiceDate time.Time `gorm:"column:invoice_date"`
	TotalAmount float64   `gorm:"column:total_amount"`
}

// DueDateAmount is the raw row the cash-outflow bucketing consumes.
type DueDateAmount struct {
	DueDate     time.Time `gorm:"column:due_date"`
	TotalAmount float64   `gorm:"column:total_amount"`
}

type AnalyticsRepository interface {
	SumTotalSince(ctx context.Context, since time.Time) (float64, error)
	CountInvoices(ctx context.Context) (int64, error)
	CountWithDocument(ctx context.Context) (int64, error)
	AverageInvoiceValue(ctx context.Context) (float64, error)
	ListAmountsSince(ctx context.Context, since time.Time) ([]InvoiceDateAmount, error)
	ListDueBetween(ctx context.Context, from, to time.Time, statuses []string) ([]DueDateAmount, error)
	CategoryTotals(ctx context.Context) ([]model.CategorySpend, error)
	VendorTotals(ctx context.Context) ([]model.VendorSpend, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SumTotalSince(ctx context.Context, since time.Time) (float64, error) {
	var result struct {
		Value float64
	}
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0) as value").
		Where("invoice_date >= ?", since).
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to sum invoice totals: %w", err)
	}
	return result.Value, nil
}

func (r *analyticsRepository) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

func (r *analyticsRepository) CountWithDocument(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("document_url IS NOT NULL").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return count, nil
}

// AverageInvoiceValue averages over all invoices; COALESCE keeps the empty
// table at 0 instead of NULL.
func (r *analyticsRepository) AverageInvoiceValue(ctx context.Context) (float64, error) {
	var result struct {
		Value float64
	}
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Select("COALESCE(AVG(total_amount), 0) as value").
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to average invoice totals: %w", err)
	}
	return result.Value, nil
}

func (r *analyticsRepository) ListAmountsSince(ctx context.Context, since time.Time) ([]InvoiceDateAmount, error) {
	var rows []InvoiceDateAmount
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Select("invoice_date, total_amount").
		Where("invoice_date >= ?", since).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query invoice amounts: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepository) ListDueBetween(ctx context.Context, from, to time.Time, statuses []string) ([]DueDateAmount, error) {
	var rows []DueDateAmount
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Select("due_date, total_amount").
		Where("due_date IS NOT NULL AND due_date >= ? AND due_date <= ?", from, to).
		Where("status IN ?", statuses).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query due invoices: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepository) CategoryTotals(ctx context.Context) ([]model.CategorySpend, error) {
	var rows []model.CategorySpend
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Select("category, COALESCE(SUM(total_amount), 0) as total").
		Where("category IS NOT NULL").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	return rows, nil
}

// VendorTotals returns one row per vendor, LEFT JOIN so vendors without
// invoices still appear with zero total and count.
func (r *analyticsRepository) VendorTotals(ctx context.Context) ([]model.VendorSpend, error) {
	var rows []model.VendorSpend
	if err := r.db.WithContext(ctx).Table("vendors").
		Select("vendors.id::text as id, vendors.name as name, COALESCE(SUM(invoices.total_amount), 0) as total, COUNT(invoices.id) as invoice_count").
		Joins("LEFT JOIN invoices ON invoices.vendor_id = vendors.id").
		Group("vendors.id, vendors.name").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query vendor totals: %w", err)
	}
	return rows, nil
}
