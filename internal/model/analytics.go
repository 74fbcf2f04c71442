package model

// OverviewStats aggregates the dashboard headline numbers. TotalSpend is
// year-to-date; AverageInvoiceValue is computed over all invoices.
type OverviewStats struct {
	TotalSpend          float64 `json:"totalSpend"`
	TotalInvoices       int64   `json:"totalInvoices"`
	DocumentsUploaded   int64   `json:"documentsUploaded"`
	AverageInvoiceValue float64 `json:"averageInvoiceValue"`
}

// MonthlyTrend is one month bucket of the trailing-six-month invoice trend.
// Month is a "YYYY-MM" key, lexicographic order equals chronological order.
type MonthlyTrend struct {
	Month string  `json:"month"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// CategorySpend is total spend rolled up per non-null invoice category.
type CategorySpend struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CashOutflowBucket is one week of forecast outflow. Week is the "YYYY-MM-DD"
// date of the Sunday starting the week.
type CashOutflowBucket struct {
	Week  string  `json:"week"`
	Total float64 `json:"total"`
}

// VendorSpend ranks a vendor by total invoice spend across all invoices.
type VendorSpend struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Total        float64 `json:"total"`
	InvoiceCount int64   `json:"invoiceCount"`
}

// VendorSummary is a vendor row with its invoice count, for the vendors listing.
type VendorSummary struct {
	Vendor
	InvoiceCount int64 `json:"invoiceCount"`
}
