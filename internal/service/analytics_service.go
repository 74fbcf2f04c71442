package service

import (
	"context"
	"sort"
	"time"

	"invoice-analytics/internal/model"
	"invoice-analytics/internal/repository"

	"golang.org/x/sync/errgroup"
)

// All date bucketing is done in UTC: year start, month keys and week starts
// are derived from the UTC clock so keys are stable across server timezones.

const topVendorLimit = 10

type AnalyticsService interface {
	GetOverviewStats(ctx context.Context) (model.OverviewStats, error)
	GetMonthlyTrends(ctx context.Context) ([]model.MonthlyTrend, error)
	GetCategorySpend(ctx context.Context) ([]model.CategorySpend, error)
	GetCashOutflow(ctx context.Context) ([]model.CashOutflowBucket, error)
	GetTopVendors(ctx context.Context) ([]model.VendorSpend, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo, now: time.Now}
}

// GetOverviewStats issues the four independent aggregate reads concurrently;
// they are read-only and do not depend on each other.
func (s *analyticsService) GetOverviewStats(ctx context.Context) (model.OverviewStats, error) {
	now := s.now().UTC()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	var stats model.OverviewStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := s.repo.SumTotalSince(gctx, yearStart)
		stats.TotalSpend = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.CountInvoices(gctx)
		stats.TotalInvoices = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.CountWithDocument(gctx)
		stats.DocumentsUploaded = v
		return err
	})
	g.Go(func() error {
		v, err := s.repo.AverageInvoiceValue(gctx)
		stats.AverageInvoiceValue = v
		return err
	})

	if err := g.Wait(); err != nil {
		return model.OverviewStats{}, err
	}
	return stats, nil
}

// GetMonthlyTrends buckets the trailing six months of invoices by calendar
// month. Only observed months appear; the sequence is sorted ascending.
func (s *analyticsService) GetMonthlyTrends(ctx context.Context) ([]model.MonthlyTrend, error) {
	since := s.now().UTC().AddDate(0, -6, 0)
	rows, err := s.repo.ListAmountsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return bucketByMonth(rows), nil
}

func (s *analyticsService) GetCategorySpend(ctx context.Context) ([]model.CategorySpend, error) {
	return s.repo.CategoryTotals(ctx)
}

// GetCashOutflow forecasts outstanding payments due within the next three
// calendar months, bucketed by the Sunday starting each week.
func (s *analyticsService) GetCashOutflow(ctx context.Context) ([]model.CashOutflowBucket, error) {
	today := s.now().UTC()
	rows, err := s.repo.ListDueBetween(ctx, today, today.AddDate(0, 3, 0),
		[]string{model.StatusPending, model.StatusPartial})
	if err != nil {
		return nil, err
	}
	return bucketByWeek(rows), nil
}

func (s *analyticsService) GetTopVendors(ctx context.Context) ([]model.VendorSpend, error) {
	totals, err := s.repo.VendorTotals(ctx)
	if err != nil {
		return nil, err
	}
	return rankVendors(totals, topVendorLimit), nil
}

func bucketByMonth(rows []repository.InvoiceDateAmount) []model.MonthlyTrend {
	buckets := make(map[string]*model.MonthlyTrend)
	for _, row := range rows {
		key := row.InvoiceDate.UTC().Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &model.MonthlyTrend{Month: key}
			buckets[key] = b
		}
		b.Count++
		b.Total += row.TotalAmount
	}

	trends := make([]model.MonthlyTrend, 0, len(buckets))
	for _, b := range buckets {
		trends = append(trends, *b)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

func bucketByWeek(rows []repository.DueDateAmount) []model.CashOutflowBucket {
	totals := make(map[string]float64)
	for _, row := range rows {
		totals[weekStart(row.DueDate)] += row.TotalAmount
	}

	outflow := make([]model.CashOutflowBucket, 0, len(totals))
	for week, total := range totals {
		outflow = append(outflow, model.CashOutflowBucket{Week: week, Total: total})
	}
	sort.Slice(outflow, func(i, j int) bool { return outflow[i].Week < outflow[j].Week })
	return outflow
}

// weekStart maps a date to the Sunday starting its week, formatted YYYY-MM-DD.
// time.Weekday numbers Sunday as 0, so subtracting it lands on the Sunday.
func weekStart(t time.Time) string {
	d := t.UTC()
	return d.AddDate(0, 0, -int(d.Weekday())).Format("2006-01-02")
}

// rankVendors sorts descending by total spend and keeps the first limit
// entries. Ties break ascending by vendor id so the ranking is deterministic.
func rankVendors(totals []model.VendorSpend, limit int) []model.VendorSpend {
	ranked := make([]model.VendorSpend, len(totals))
	copy(ranked, totals)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
