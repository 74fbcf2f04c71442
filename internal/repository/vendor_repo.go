package repository

import (
	"context"
	"fmt"

	"invoice-analytics/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository interface {
	ListWithInvoiceCount(ctx context.Context) ([]model.VendorSummary, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// ListWithInvoiceCount returns all vendors, each carrying the number of
// invoices referencing it.
func (r *vendorRepository) ListWithInvoiceCount(ctx context.Context) ([]model.VendorSummary, error) {
	var vendors []model.Vendor
	if err := r.db.WithContext(ctx).Order("name asc").Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	var counts []struct {
		VendorID uuid.UUID `gorm:"column:vendor_id"`
		Count    int64     `gorm:"column:count"`
	}
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Select("vendor_id, COUNT(*) as count").
		Group("vendor_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count vendor invoices: %w", err)
	}

	countByVendor := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		countByVendor[c.VendorID] = c.Count
	}

	summaries := make([]model.VendorSummary, 0, len(vendors))
	for _, v := range vendors {
		summaries = append(summaries, model.VendorSummary{
			Vendor:       v,
			InvoiceCount: countByVendor[v.ID],
		})
	}
	return summaries, nil
}
