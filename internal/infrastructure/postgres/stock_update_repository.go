package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.StockUpdateRepository = (*StockUpdateRepo)(nil)

// StockUpdateRepo implementación del historial de correcciones de stock (append-only).
type StockUpdateRepo struct {
	q Querier
}

// NewStockUpdateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockUpdateRepository(q Querier) *StockUpdateRepo {
	return &StockUpdateRepo{q: q}
}

// Create persiste una entrada del historial.
func (r *StockUpdateRepo) Create(ctx context.Context, update *entity.StockUpdate) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO stock_updates (product_id, old_stock, new_stock, updated_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		update.ProductID, update.OldStock, update.NewStock, update.UpdatedBy,
	).Scan(&update.ID, &update.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock update: %w", err)
	}
	return nil
}

const stockUpdateColumns = `
	su.id, su.product_id, p.name, su.old_stock, su.new_stock, su.updated_by, su.created_at`

// ListRecent devuelve las últimas entradas del historial, más nuevas primero.
func (r *StockUpdateRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockUpdate, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+stockUpdateColumns+`
		FROM stock_updates su
		JOIN products p ON p.id = su.product_id
		ORDER BY su.created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock updates: %w", err)
	}
	return scanStockUpdates(rows)
}

// ListByProduct devuelve el historial completo de un producto.
func (r *StockUpdateRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockUpdate, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+stockUpdateColumns+`
		FROM stock_updates su
		JOIN products p ON p.id = su.product_id
		WHERE su.product_id = $1
		ORDER BY su.created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock updates by product: %w", err)
	}
	return scanStockUpdates(rows)
}

// DeleteByProduct elimina todas las entradas de un producto.
func (r *StockUpdateRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_updates WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete stock updates by product: %w", err)
	}
	return nil
}

func scanStockUpdates(rows pgx.Rows) ([]*entity.StockUpdate, error) {
	defer rows.Close()
	list := []*entity.StockUpdate{}
	for rows.Next() {
		var su entity.StockUpdate
		if err := rows.Scan(&su.ID, &su.ProductID, &su.ProductName,
			&su.OldStock, &su.NewStock, &su.UpdatedBy, &su.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock update: %w", err)
		}
		list = append(list, &su)
	}
	return list, rows.Err()
}
