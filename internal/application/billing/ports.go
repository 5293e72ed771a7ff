package billing

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la venta: o se
// persisten cabecera, líneas y descuentos de stock, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptPDFGenerator renderiza el recibo imprimible de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, bill *entity.Bill, shopName string) ([]byte, error)
}
