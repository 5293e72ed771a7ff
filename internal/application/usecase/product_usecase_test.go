package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products      map[int64]*entity.Product
	nextID        int64
	identityReset bool
}

func newStubProductRepo(products ...*entity.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *stubProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubProductRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *stubProductRepo) DecrementStock(_ context.Context, id int64, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock -= quantity
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int, error) {
	return len(r.products), nil
}

func (r *stubProductRepo) ResetIdentity(_ context.Context) error {
	r.identityReset = true
	return nil
}

// stubBillRepo solo implementa lo que el caso de uso de productos consulta.
type stubBillRepo struct {
	itemsByProduct map[int64]int
}

func (r *stubBillRepo) Create(_ context.Context, _ *entity.Bill) error           { return nil }
func (r *stubBillRepo) SetTotal(_ context.Context, _ int64, _ decimal.Decimal) error {
	return nil
}
func (r *stubBillRepo) CreateItem(_ context.Context, _ *entity.BillItem) error   { return nil }
func (r *stubBillRepo) ListWithItems(_ context.Context) ([]*entity.Bill, error)  { return nil, nil }
func (r *stubBillRepo) GetByID(_ context.Context, _ int64) (*entity.Bill, error) { return nil, nil }
func (r *stubBillRepo) Delete(_ context.Context, _ int64) error                  { return nil }
func (r *stubBillRepo) CountItemsByProduct(_ context.Context, productID int64) (int, error) {
	return r.itemsByProduct[productID], nil
}

type stubStockUpdateRepo struct {
	created []*entity.StockUpdate
}

func (r *stubStockUpdateRepo) Create(_ context.Context, u *entity.StockUpdate) error {
	cp := *u
	r.created = append(r.created, &cp)
	return nil
}

func (r *stubStockUpdateRepo) ListRecent(_ context.Context, _ int) ([]*entity.StockUpdate, error) {
	return r.created, nil
}

func (r *stubStockUpdateRepo) DeleteByProduct(_ context.Context, productID int64) error {
	kept := r.created[:0]
	for _, u := range r.created {
		if u.ProductID != productID {
			kept = append(kept, u)
		}
	}
	r.created = kept
	return nil
}

func (r *stubStockUpdateRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.StockUpdate, error) {
	out := make([]*entity.StockUpdate, 0)
	for _, u := range r.created {
		if u.ProductID == productID {
			out = append(out, u)
		}
	}
	return out, nil
}

func buildProductUC(productRepo *stubProductRepo, billRepo *stubBillRepo, auditRepo *stubStockUpdateRepo) *usecase.ProductUseCase {
	if billRepo == nil {
		billRepo = &stubBillRepo{itemsByProduct: map[int64]int{}}
	}
	if auditRepo == nil {
		auditRepo = &stubStockUpdateRepo{}
	}
	return usecase.NewProductUseCase(productRepo, billRepo, auditRepo)
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Valido(t *testing.T) {
	repo := newStubProductRepo()
	uc := buildProductUC(repo, nil, nil)

	p := amount("49.99")
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "  Dog Food  ",
		Price: &p,
		Stock: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dog Food", out.Name, "el nombre debe llegar sin espacios alrededor")
	assert.Equal(t, 10, out.Stock)
	assert.NotZero(t, out.ID)
}

func TestProductCreate_CamposFaltantes_Rechazado(t *testing.T) {
	uc := buildProductUC(newStubProductRepo(), nil, nil)

	p := amount("10")
	cases := []dto.CreateProductRequest{
		{Name: "", Price: &p, Stock: intPtr(1)},
		{Name: "X", Price: nil, Stock: intPtr(1)},
		{Name: "X", Price: &p, Stock: nil},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestProductCreate_Negativos_Rechazado(t *testing.T) {
	uc := buildProductUC(newStubProductRepo(), nil, nil)

	neg := amount("-5")
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "X", Price: &neg, Stock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	p := amount("5")
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "X", Price: &p, Stock: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStock — corrección con auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_DejaEntradaDeAuditoria(t *testing.T) {
	repo := newStubProductRepo(&entity.Product{ID: 1, Name: "Dog Food", Price: amount("500"), Stock: 4})
	audit := &stubStockUpdateRepo{}
	uc := buildProductUC(repo, nil, audit)

	out, err := uc.UpdateStock(context.Background(), 1, 20, "admin")
	require.NoError(t, err)
	assert.Equal(t, 20, out.Stock)
	assert.Equal(t, 20, repo.products[1].Stock)

	require.Len(t, audit.created, 1, "debe quedar exactamente una entrada de auditoría")
	entry := audit.created[0]
	assert.Equal(t, int64(1), entry.ProductID)
	assert.Equal(t, 4, entry.OldStock, "la auditoría conserva el valor anterior")
	assert.Equal(t, 20, entry.NewStock)
	assert.Equal(t, "admin", entry.UpdatedBy)
}

func TestUpdateStock_SinActor_Rechazado(t *testing.T) {
	repo := newStubProductRepo(&entity.Product{ID: 1, Name: "Dog Food", Price: amount("500"), Stock: 4})
	audit := &stubStockUpdateRepo{}
	uc := buildProductUC(repo, nil, audit)

	_, err := uc.UpdateStock(context.Background(), 1, 20, "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput, "una corrección sin responsable debe rechazarse")
	assert.Equal(t, 4, repo.products[1].Stock, "el stock no debe cambiar")
	assert.Empty(t, audit.created)
}

func TestUpdateStock_NegativoONoExiste(t *testing.T) {
	repo := newStubProductRepo(&entity.Product{ID: 1, Name: "Dog Food", Price: amount("500"), Stock: 4})
	uc := buildProductUC(repo, nil, nil)

	_, err := uc.UpdateStock(context.Background(), 1, -3, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStock(context.Background(), 99, 5, "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete — guarda referencial y renumeración
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_ConHistorialDeVentas_Rechazado(t *testing.T) {
	repo := newStubProductRepo(&entity.Product{ID: 1, Name: "Dog Food", Price: amount("500"), Stock: 4})
	bills := &stubBillRepo{itemsByProduct: map[int64]int{1: 3}}
	uc := buildProductUC(repo, bills, nil)

	out, err := uc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, out)

	var inUse *domain.ProductInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Contains(t, inUse.Error(), "sales history")
	assert.Contains(t, repo.products, int64(1), "el producto debe seguir existiendo")
}

func TestProductDelete_SinVentas_EliminaYConfirma(t *testing.T) {
	repo := newStubProductRepo(
		&entity.Product{ID: 1, Name: "Dog Food", Price: amount("500"), Stock: 4},
		&entity.Product{ID: 2, Name: "Cat Litter", Price: amount("800"), Stock: 2},
	)
	uc := buildProductUC(repo, nil, nil)

	out, err := uc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dog Food removed from inventory.", out.Message)
	assert.NotContains(t, repo.products, int64(1))
	assert.False(t, repo.identityReset, "con productos restantes no se renumera")
}

func TestProductDelete_UltimoProducto_ReiniciaNumeracion(t *testing.T) {
	repo := newStubProductRepo(&entity.Product{ID: 7, Name: "Dog Food", Price: amount("500"), Stock: 4})
	uc := buildProductUC(repo, nil, nil)

	_, err := uc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, repo.identityReset, "inventario vacío debe renumerar desde 1")
}

// Un producto con correcciones de stock pero sin ventas sí puede borrarse;
// su historial de auditoría se elimina junto con él.
func TestProductDelete_ConHistorialDeCorrecciones_EliminaProductoYAuditoria(t *testing.T) {
	repo := newStubProductRepo(
		&entity.Product{ID: 1, Name: "Dog Food", Price: amount("500"), Stock: 4},
		&entity.Product{ID: 2, Name: "Cat Litter", Price: amount("800"), Stock: 2},
	)
	audit := &stubStockUpdateRepo{}
	uc := buildProductUC(repo, nil, audit)

	_, err := uc.UpdateStock(context.Background(), 1, 10, "admin")
	require.NoError(t, err)
	_, err = uc.UpdateStock(context.Background(), 2, 5, "admin")
	require.NoError(t, err)
	require.Len(t, audit.created, 2)

	out, err := uc.Delete(context.Background(), 1)
	require.NoError(t, err, "las correcciones de stock no deben bloquear el borrado")
	assert.Equal(t, "Dog Food removed from inventory.", out.Message)
	assert.NotContains(t, repo.products, int64(1))

	require.Len(t, audit.created, 1, "solo debe irse la auditoría del producto borrado")
	assert.Equal(t, int64(2), audit.created[0].ProductID)
}

func TestProductDelete_NoExiste_Retorna404(t *testing.T) {
	uc := buildProductUC(newStubProductRepo(), nil, nil)

	_, err := uc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
