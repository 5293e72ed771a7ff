package billing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// CreateBillUseCase registra una venta descontando inventario en una sola
// transacción con bloqueo de fila (SELECT FOR UPDATE) por producto.
type CreateBillUseCase struct {
	txRunner TxRunner
}

// NewCreateBillUseCase construye el caso de uso.
func NewCreateBillUseCase(txRunner TxRunner) *CreateBillUseCase {
	return &CreateBillUseCase{txRunner: txRunner}
}

// Create ejecuta el contrato de la venta:
//
//  1. Inserta la cabecera con total 0 para obtener el id.
//  2. Por cada línea, en el orden pedido: bloquea la fila del producto,
//     verifica existencia y stock suficiente, descuenta y congela el precio
//     vigente en la línea, acumulando el total calculado.
//  3. Fija el total definitivo: el pactado (CustomTotal) si vino, si no el calculado.
//
// Cualquier fallo hace rollback completo: no quedan descuentos parciales ni
// cabeceras huérfanas. El lock por producto serializa ventas concurrentes del
// mismo ítem, así dos ventas nunca venden la misma unidad dos veces.
//
// Los descuentos por venta NO escriben en el historial de correcciones de
// stock; ese historial es solo para la corrección manual.
func (uc *CreateBillUseCase) Create(ctx context.Context, in dto.CreateBillRequest) (*dto.CreateBillResponse, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		customerName = entity.AnonymousCustomer
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.CustomTotal != nil && in.CustomTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	bill := &entity.Bill{
		CustomerName: customerName,
		Total:        decimal.Zero,
		PaymentMode:  entity.ValidPaymentMode(in.PaymentMode),
	}

	err := uc.txRunner.Run(ctx, func(
		billRepo repository.BillRepository,
		productRepo repository.ProductRepository,
	) error {
		// Cabecera con total 0: reserva el id para las líneas.
		if err := billRepo.Create(ctx, bill); err != nil {
			return err
		}

		computedTotal := decimal.Zero
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Remaining:   product.Stock,
				}
			}
			if err := productRepo.DecrementStock(ctx, product.ID, item.Quantity); err != nil {
				return err
			}
			line := &entity.BillItem{
				BillID:      bill.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       product.Price, // precio congelado al momento de la venta
			}
			if err := billRepo.CreateItem(ctx, line); err != nil {
				return err
			}
			bill.Items = append(bill.Items, line)
			computedTotal = computedTotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		finalTotal := computedTotal
		if in.CustomTotal != nil {
			finalTotal = *in.CustomTotal
		}
		if err := billRepo.SetTotal(ctx, bill.ID, finalTotal); err != nil {
			return err
		}
		bill.Total = finalTotal
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toBillResponse(bill)
	return &dto.CreateBillResponse{Bill: out, Items: out.Items}, nil
}

func toBillResponse(b *entity.Bill) dto.BillResponse {
	items := make([]dto.BillItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, dto.BillItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return dto.BillResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Total:        b.Total,
		PaymentMode:  b.PaymentMode,
		CreatedAt:    b.CreatedAt,
		Items:        items,
	}
}
