package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// StockUpdateRepository define el puerto del historial de correcciones de stock.
type StockUpdateRepository interface {
	Create(ctx context.Context, update *entity.StockUpdate) error
	// ListRecent devuelve las últimas entradas (product_name incluido), más nuevas primero.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockUpdate, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.StockUpdate, error)
	// DeleteByProduct elimina el historial de un producto; se usa al borrar el
	// producto mismo (no hay nada que auditar de un producto inexistente).
	DeleteByProduct(ctx context.Context, productID int64) error
}
