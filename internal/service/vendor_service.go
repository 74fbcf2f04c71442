package service

import (
	"context"

	"invoice-analytics/internal/model"
	"invoice-analytics/internal/repository"
)

type VendorService interface {
	ListVendors(ctx context.Context) ([]model.VendorSummary, error)
}

type vendorService struct {
	vendorRepo repository.VendorRepository
}

func NewVendorService(vendorRepo repository.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) ListVendors(ctx context.Context) ([]model.VendorSummary, error) {
	return s.vendorRepo.ListWithInvoiceCount(ctx)
}
