package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary totales de recaudo de un período, separados por modo de pago.
// Siempre viene en cero cuando el período no tiene ventas (nunca null).
type SalesSummary struct {
	TotalAmount  decimal.Decimal
	TotalBills   int
	CashAmount   decimal.Decimal
	OnlineAmount decimal.Decimal
}

// BestSellingResult producto del ranking de más vendidos.
type BestSellingResult struct {
	ProductID     int64
	Name          string
	ImageURL      string
	Price         decimal.Decimal
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	TimesSold     int
}

// ProductSalesResult desglose por producto de un reporte diario o mensual.
type ProductSalesResult struct {
	ProductID    int64
	Name         string
	QuantitySold int
	Revenue      decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre ventas. Sin efectos
// secundarios: todo se deriva de bills/bill_items, nada se materializa.
type AnalyticsRepository interface {
	SummaryForDate(ctx context.Context, date time.Time) (*SalesSummary, error)
	SummaryForMonth(ctx context.Context, year, month int) (*SalesSummary, error)
	BestSelling(ctx context.Context, limit int) ([]BestSellingResult, error)
	ProductSalesForDate(ctx context.Context, date time.Time) ([]ProductSalesResult, error)
	ProductSalesForMonth(ctx context.Context, year, month int) ([]ProductSalesResult, error)
}
