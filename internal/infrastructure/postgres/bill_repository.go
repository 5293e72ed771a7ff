package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository sobre PostgreSQL (usable con pool o tx).
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create inserta la cabecera de la venta y asigna bill.ID.
func (r *BillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (customer_name, total, payment_mode)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, bill.CustomerName, bill.Total, bill.PaymentMode).
		Scan(&bill.ID, &bill.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// SetTotal fija el total definitivo de la venta (calculado o pactado).
func (r *BillRepo) SetTotal(ctx context.Context, id int64, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx, `UPDATE bills SET total = $2 WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("set bill total: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de venta con su precio congelado.
func (r *BillRepo) CreateItem(ctx context.Context, item *entity.BillItem) error {
	query := `
		INSERT INTO bill_items (bill_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, item.BillID, item.ProductID, item.Quantity, item.Price).
		Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert bill item: %w", err)
	}
	return nil
}

// ListWithItems devuelve las ventas más recientes primero con sus líneas.
// Dos consultas y armado en memoria: evita el json_agg y deja el mapeo en Go.
func (r *BillRepo) ListWithItems(ctx context.Context) ([]*entity.Bill, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, customer_name, total, payment_mode, created_at
		FROM bills ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []*entity.Bill
	byID := make(map[int64]*entity.Bill)
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.Total, &b.PaymentMode, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		b.Items = []*entity.BillItem{}
		bills = append(bills, &b)
		byID[b.ID] = &b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bills rows: %w", err)
	}
	if len(bills) == 0 {
		return []*entity.Bill{}, nil
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT bi.id, bi.bill_id, bi.product_id, bi.quantity, bi.price, p.name
		FROM bill_items bi
		JOIN products p ON p.id = bi.product_id
		ORDER BY bi.id`)
	if err != nil {
		return nil, fmt.Errorf("list bill items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.BillItem
		if err := itemRows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.Quantity, &it.Price, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		if b, ok := byID[it.BillID]; ok {
			b.Items = append(b.Items, &it)
		}
	}
	return bills, itemRows.Err()
}

// GetByID obtiene una venta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *BillRepo) GetByID(ctx context.Context, id int64) (*entity.Bill, error) {
	var b entity.Bill
	err := r.q.QueryRow(ctx, `
		SELECT id, customer_name, total, payment_mode, created_at
		FROM bills WHERE id = $1`, id).
		Scan(&b.ID, &b.CustomerName, &b.Total, &b.PaymentMode, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT bi.id, bi.bill_id, bi.product_id, bi.quantity, bi.price, p.name
		FROM bill_items bi
		JOIN products p ON p.id = bi.product_id
		WHERE bi.bill_id = $1
		ORDER BY bi.id`, id)
	if err != nil {
		return nil, fmt.Errorf("get bill items: %w", err)
	}
	defer rows.Close()
	b.Items = []*entity.BillItem{}
	for rows.Next() {
		var it entity.BillItem
		if err := rows.Scan(&it.ID, &it.BillID, &it.ProductID, &it.Quantity, &it.Price, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan bill item: %w", err)
		}
		b.Items = append(b.Items, &it)
	}
	return &b, rows.Err()
}

// Delete borra líneas y cabecera. El stock no se restaura: anular una venta
// no devuelve unidades al inventario.
func (r *BillRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM bill_items WHERE bill_id = $1`, id); err != nil {
		return fmt.Errorf("delete bill items: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountItemsByProduct cuenta líneas de venta que referencian al producto.
func (r *BillRepo) CountItemsByProduct(ctx context.Context, productID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM bill_items WHERE product_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bill items by product: %w", err)
	}
	return n, nil
}
