package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) error
	// DecrementStock descuenta unidades vendidas. El caller valida stock suficiente
	// bajo el lock de GetForUpdate antes de llamar.
	DecrementStock(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	// ResetIdentity reinicia la secuencia de ids en 1. Conveniencia cosmética
	// cuando el inventario queda vacío, no una garantía de correctitud.
	ResetIdentity(ctx context.Context) error
}
