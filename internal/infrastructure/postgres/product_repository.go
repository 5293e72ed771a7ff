package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna su id.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, stock, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Price, product.Stock, nullIfEmpty(product.ImageURL),
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT ... FOR UPDATE).
// Dentro de una transacción serializa los chequeos de stock entre ventas concurrentes.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, id, true)
}

func (r *ProductRepo) get(ctx context.Context, id int64, forUpdate bool) (*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, image_url, created_at
		FROM products WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Product
	var imageURL *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &imageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.ImageURL = derefOrEmpty(imageURL)
	return &p, nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, stock, image_url, created_at
		FROM products ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var imageURL *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &imageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.ImageURL = derefOrEmpty(imageURL)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateStock fija el stock en un valor absoluto (corrección manual).
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock: producto %d no existe", id)
	}
	return nil
}

// DecrementStock descuenta unidades vendidas. El caller valida stock suficiente
// bajo el lock de GetForUpdate; el CHECK (stock >= 0) del esquema es la última red.
func (r *ProductRepo) DecrementStock(ctx context.Context, id int64, quantity int) error {
	_, err := r.q.Exec(ctx, `UPDATE products SET stock = stock - $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por id.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete product: producto %d no existe", id)
	}
	return nil
}

// Count devuelve la cantidad de productos en inventario.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// ResetIdentity reinicia la secuencia de ids en 1. Cosmético: se llama solo
// cuando el inventario quedó vacío, para que una tienda recién reseteada
// vuelva a numerar desde 1.
func (r *ProductRepo) ResetIdentity(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `ALTER SEQUENCE products_id_seq RESTART WITH 1`); err != nil {
		return fmt.Errorf("reset products sequence: %w", err)
	}
	return nil
}
