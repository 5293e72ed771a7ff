package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso de inventario: alta, listado, corrección de
// stock con auditoría y borrado con guardia referencial.
type ProductUseCase struct {
	productRepo     repository.ProductRepository
	billRepo        repository.BillRepository
	stockUpdateRepo repository.StockUpdateRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	billRepo repository.BillRepository,
	stockUpdateRepo repository.StockUpdateRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:     productRepo,
		billRepo:        billRepo,
		stockUpdateRepo: stockUpdateRepo,
	}
}

// Create da de alta un producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil || in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:     name,
		Price:    *in.Price,
		Stock:    *in.Stock,
		ImageURL: in.ImageURL,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// List devuelve el inventario ordenado por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// UpdateStock corrige el stock a un valor absoluto y deja una entrada en el
// historial con el valor anterior, el nuevo y el actor. El actor es
// obligatorio: una corrección sin responsable identificado se rechaza.
//
// Lee y escribe en dos sentencias sin lock explícito: ruta exclusiva de
// administración, de baja frecuencia; la ventana entre lectura y escritura
// es un riesgo aceptado para corrección de inventario (no para ventas).
func (uc *ProductUseCase) UpdateStock(ctx context.Context, id int64, newStock int, actor string) (*dto.ProductResponse, error) {
	if newStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(actor) == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	oldStock := product.Stock
	if err := uc.productRepo.UpdateStock(ctx, id, newStock); err != nil {
		return nil, err
	}
	update := &entity.StockUpdate{
		ProductID: id,
		OldStock:  oldStock,
		NewStock:  newStock,
		UpdatedBy: actor,
	}
	if err := uc.stockUpdateRepo.Create(ctx, update); err != nil {
		return nil, err
	}
	product.Stock = newStock
	out := toProductResponse(product)
	return &out, nil
}

// Delete elimina un producto que nunca se haya vendido. Si aparece en alguna
// línea de venta la operación falla con error (no un no-op silencioso): el
// historial de ventas referencia precios congelados de ese producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	references, err := uc.billRepo.CountItemsByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if references > 0 {
		return nil, &domain.ProductInUseError{ProductID: id}
	}
	// El historial de correcciones se va con el producto: su FK bloquearía el
	// borrado y no hay nada que auditar de un producto inexistente.
	if err := uc.stockUpdateRepo.DeleteByProduct(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	// Conveniencia cosmética: inventario vacío vuelve a numerar desde 1.
	remaining, err := uc.productRepo.Count(ctx)
	if err == nil && remaining == 0 {
		_ = uc.productRepo.ResetIdentity(ctx)
	}

	return &dto.DeleteProductResponse{
		Message: fmt.Sprintf("%s removed from inventory.", product.Name),
		Product: toProductResponse(product),
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}
