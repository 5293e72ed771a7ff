package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para ventas y sus líneas.
// Las líneas son inmutables una vez creadas: no hay update de BillItem.
type BillRepository interface {
	// Create inserta la cabecera y asigna bill.ID (RETURNING id).
	Create(ctx context.Context, bill *entity.Bill) error
	SetTotal(ctx context.Context, id int64, total decimal.Decimal) error
	CreateItem(ctx context.Context, item *entity.BillItem) error
	// ListWithItems devuelve las ventas más recientes primero, cada una con sus líneas.
	ListWithItems(ctx context.Context) ([]*entity.Bill, error)
	GetByID(ctx context.Context, id int64) (*entity.Bill, error)
	// Delete borra líneas y cabecera. Devuelve domain.ErrNotFound si la venta no existe.
	Delete(ctx context.Context, id int64) error
	// CountItemsByProduct cuenta líneas de venta que referencian al producto
	// (guardia referencial para el borrado de productos).
	CountItemsByProduct(ctx context.Context, productID int64) (int, error)
}
