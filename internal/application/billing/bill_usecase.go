package billing

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// BillUseCase consultas y borrado de ventas existentes.
type BillUseCase struct {
	billRepo repository.BillRepository
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(billRepo repository.BillRepository) *BillUseCase {
	return &BillUseCase{billRepo: billRepo}
}

// List devuelve todas las ventas con sus líneas, más recientes primero.
func (uc *BillUseCase) List(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := uc.billRepo.ListWithItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *BillUseCase) GetByID(ctx context.Context, id int64) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	out := toBillResponse(bill)
	return &out, nil
}

// Delete elimina la venta y sus líneas. El stock NO se restaura: anular una
// venta no devuelve unidades al inventario.
func (uc *BillUseCase) Delete(ctx context.Context, id int64) error {
	return uc.billRepo.Delete(ctx, id)
}
