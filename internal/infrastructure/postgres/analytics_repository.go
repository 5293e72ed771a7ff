package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre ventas (recaudos y rankings).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// summaryColumns recaudo total, número de ventas y separación cash/online.
// COALESCE garantiza ceros (no null) en períodos sin ventas.
const summaryColumns = `
	COALESCE(SUM(total), 0)                                                   AS total_amount,
	COUNT(*)                                                                  AS total_bills,
	COALESCE(SUM(CASE WHEN payment_mode = 'cash'   THEN total ELSE 0 END), 0) AS cash_amount,
	COALESCE(SUM(CASE WHEN payment_mode = 'online' THEN total ELSE 0 END), 0) AS online_amount`

// SummaryForDate devuelve el recaudo de un día calendario.
func (r *AnalyticsRepo) SummaryForDate(ctx context.Context, date time.Time) (*repository.SalesSummary, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM bills
		WHERE DATE(created_at) = $1`
	var s repository.SalesSummary
	err := r.pool.QueryRow(ctx, query, date.Format("2006-01-02")).
		Scan(&s.TotalAmount, &s.TotalBills, &s.CashAmount, &s.OnlineAmount)
	if err != nil {
		return nil, fmt.Errorf("analytics.SummaryForDate: %w", err)
	}
	return &s, nil
}

// SummaryForMonth devuelve el recaudo de un mes calendario.
func (r *AnalyticsRepo) SummaryForMonth(ctx context.Context, year, month int) (*repository.SalesSummary, error) {
	query := `
		SELECT ` + summaryColumns + `
		FROM bills
		WHERE EXTRACT(YEAR FROM created_at) = $1 AND EXTRACT(MONTH FROM created_at) = $2`
	var s repository.SalesSummary
	err := r.pool.QueryRow(ctx, query, year, month).
		Scan(&s.TotalAmount, &s.TotalBills, &s.CashAmount, &s.OnlineAmount)
	if err != nil {
		return nil, fmt.Errorf("analytics.SummaryForMonth: %w", err)
	}
	return &s, nil
}

// BestSelling devuelve los `limit` productos con más unidades vendidas.
// Excluye productos nunca vendidos; empates quedan en orden natural de id.
func (r *AnalyticsRepo) BestSelling(ctx context.Context, limit int) ([]repository.BestSellingResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    COALESCE(p.image_url, '')                   AS image_url,
	    p.price,
	    COALESCE(SUM(bi.quantity), 0)               AS total_quantity,
	    COALESCE(SUM(bi.quantity * bi.price), 0)    AS total_revenue,
	    COUNT(DISTINCT bi.bill_id)                  AS times_sold
	FROM products p
	LEFT JOIN bill_items bi ON bi.product_id = p.id
	GROUP BY p.id, p.name, p.image_url, p.price
	HAVING COALESCE(SUM(bi.quantity), 0) > 0
	ORDER BY total_quantity DESC, p.id
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.BestSelling: %w", err)
	}
	defer rows.Close()

	results := []repository.BestSellingResult{}
	for rows.Next() {
		var row repository.BestSellingResult
		if err := rows.Scan(
			&row.ProductID, &row.Name, &row.ImageURL, &row.Price,
			&row.TotalQuantity, &row.TotalRevenue, &row.TimesSold,
		); err != nil {
			return nil, fmt.Errorf("analytics.BestSelling scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// productSalesColumns desglose por producto: unidades y recaudo a precio congelado.
const productSalesColumns = `
	p.id,
	p.name,
	SUM(bi.quantity)            AS quantity_sold,
	SUM(bi.quantity * bi.price) AS revenue`

// ProductSalesForDate desglose por producto de las ventas de un día.
func (r *AnalyticsRepo) ProductSalesForDate(ctx context.Context, date time.Time) ([]repository.ProductSalesResult, error) {
	query := `
	SELECT ` + productSalesColumns + `
	FROM bills b
	JOIN bill_items bi ON bi.bill_id = b.id
	JOIN products p ON p.id = bi.product_id
	WHERE DATE(b.created_at) = $1
	GROUP BY p.id, p.name
	ORDER BY quantity_sold DESC`
	return r.queryProductSales(ctx, query, date.Format("2006-01-02"))
}

// ProductSalesForMonth desglose por producto de las ventas de un mes.
func (r *AnalyticsRepo) ProductSalesForMonth(ctx context.Context, year, month int) ([]repository.ProductSalesResult, error) {
	query := `
	SELECT ` + productSalesColumns + `
	FROM bills b
	JOIN bill_items bi ON bi.bill_id = b.id
	JOIN products p ON p.id = bi.product_id
	WHERE EXTRACT(YEAR FROM b.created_at) = $1 AND EXTRACT(MONTH FROM b.created_at) = $2
	GROUP BY p.id, p.name
	ORDER BY quantity_sold DESC`
	return r.queryProductSales(ctx, query, year, month)
}

func (r *AnalyticsRepo) queryProductSales(ctx context.Context, query string, args ...any) ([]repository.ProductSalesResult, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.productSales: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductSalesResult{}
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.QuantitySold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.productSales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
