package usecase

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// historyLimit entradas máximas del listado general del historial.
const historyLimit = 100

// StockUpdateUseCase lecturas del historial de correcciones de stock.
type StockUpdateUseCase struct {
	stockUpdateRepo repository.StockUpdateRepository
}

// NewStockUpdateUseCase construye el caso de uso.
func NewStockUpdateUseCase(stockUpdateRepo repository.StockUpdateRepository) *StockUpdateUseCase {
	return &StockUpdateUseCase{stockUpdateRepo: stockUpdateRepo}
}

// History devuelve las últimas correcciones, más nuevas primero.
func (uc *StockUpdateUseCase) History(ctx context.Context) ([]dto.StockUpdateResponse, error) {
	updates, err := uc.stockUpdateRepo.ListRecent(ctx, historyLimit)
	if err != nil {
		return nil, err
	}
	return toStockUpdateResponses(updates), nil
}

// HistoryByProduct devuelve el historial completo de un producto.
func (uc *StockUpdateUseCase) HistoryByProduct(ctx context.Context, productID int64) ([]dto.StockUpdateResponse, error) {
	updates, err := uc.stockUpdateRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toStockUpdateResponses(updates), nil
}

func toStockUpdateResponses(updates []*entity.StockUpdate) []dto.StockUpdateResponse {
	out := make([]dto.StockUpdateResponse, 0, len(updates))
	for _, su := range updates {
		out = append(out, dto.StockUpdateResponse{
			ID:          su.ID,
			ProductID:   su.ProductID,
			ProductName: su.ProductName,
			OldStock:    su.OldStock,
			NewStock:    su.NewStock,
			UpdatedBy:   su.UpdatedBy,
			CreatedAt:   su.CreatedAt,
		})
	}
	return out
}
