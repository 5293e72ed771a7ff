package billing

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// PDFUseCase arma el recibo imprimible de una venta.
type PDFUseCase struct {
	billRepo  repository.BillRepository
	generator ReceiptPDFGenerator
	shopName  string
}

// NewPDFUseCase construye el caso de uso. shopName encabeza el recibo.
func NewPDFUseCase(billRepo repository.BillRepository, generator ReceiptPDFGenerator, shopName string) *PDFUseCase {
	return &PDFUseCase{billRepo: billRepo, generator: generator, shopName: shopName}
}

// GenerateReceipt carga la venta con sus líneas y la renderiza como PDF.
func (uc *PDFUseCase) GenerateReceipt(ctx context.Context, billID int64) ([]byte, error) {
	bill, err := uc.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceiptPDF(ctx, bill, uc.shopName)
}
