package service

import (
	"context"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
)

// DaySummary aggregates one trading day's sales for reporting.
type DaySummary struct {
	Date       string             `json:"date,omitempty"`
	SaleCount  int                `json:"saleCount"`
	TotalSales float64            `json:"totalSales"`
	TotalHST   float64            `json:"totalHst"`
	ByPayment  map[string]float64 `json:"byPayment"`
	UnitsSold  map[string]int     `json:"unitsSold"`
}

// ReportService aggregates sales data for the reporting screens.
type ReportService struct {
	store repository.RecordStore
}

// NewReportService creates a new report service.
// Returns nil if store is nil (required dependency).
func NewReportService(store repository.RecordStore) *ReportService {
	if store == nil {
		return nil
	}
	return &ReportService{store: store}
}

// DailySummary aggregates the current day's sales: count, totals, HST
// collected, per-payment-method totals and units sold per product.
func (s *ReportService) DailySummary(ctx context.Context) (DaySummary, error) {
	record, err := s.store.GetSales(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	return summarize("", record.DailySales), nil
}

// HistorySummary aggregates an archived day by its history index.
func (s *ReportService) HistorySummary(ctx context.Context, index int) (DaySummary, error) {
	history, err := s.store.GetSalesHistory(ctx)
	if err != nil {
		return DaySummary{}, err
	}
	if index < 0 || index >= len(history) {
		return DaySummary{}, ErrHistoryNotFound
	}
	entry := history[index]
	return summarize(entry.Date, entry.Sales), nil
}

func summarize(date string, sales []model.Sale) DaySummary {
	summary := DaySummary{
		Date:      date,
		SaleCount: len(sales),
		ByPayment: make(map[string]float64),
		UnitsSold: make(map[string]int),
	}

	for _, sale := range sales {
		summary.TotalSales += sale.Total
		summary.TotalHST += sale.HST
		summary.ByPayment[string(sale.PaymentMethod)] += sale.Total
		for _, item := range sale.Items {
			summary.UnitsSold[item.Name] += item.Quantity
		}
	}

	summary.TotalSales = roundCents(summary.TotalSales)
	summary.TotalHST = roundCents(summary.TotalHST)
	for method, total := range summary.ByPayment {
		summary.ByPayment[method] = roundCents(total)
	}
	return summary
}
