package dto

import "github.com/shopspring/decimal"

// SalesSummaryResponse totales de un período separados por modo de pago.
// Los montos siempre son cero cuando no hay ventas, nunca null.
type SalesSummaryResponse struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalBills   int             `json:"total_bills"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	OnlineAmount decimal.Decimal `json:"online_amount"`
}

// BestSellingProductResponse entrada del ranking de más vendidos.
type BestSellingProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	ImageURL      string          `json:"image_url,omitempty"`
	Price         decimal.Decimal `json:"price"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TimesSold     int             `json:"times_sold"`
}

// ProductSalesResponse desglose por producto de un reporte.
type ProductSalesResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// DailySalesResponse reporte detallado de un día.
type DailySalesResponse struct {
	Summary  SalesSummaryResponse   `json:"summary"`
	Products []ProductSalesResponse `json:"products"`
	Date     string                 `json:"date"`
}

// MonthlySalesResponse reporte detallado de un mes.
type MonthlySalesResponse struct {
	Summary  SalesSummaryResponse   `json:"summary"`
	Products []ProductSalesResponse `json:"products"`
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
}
