package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Sentencias idempotentes del esquema, en orden de dependencia.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id SERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		total NUMERIC(12,2) NOT NULL DEFAULT 0,
		payment_mode TEXT DEFAULT 'cash' CHECK (payment_mode IN ('cash', 'online')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bill_items (
		id SERIAL PRIMARY KEY,
		bill_id INTEGER NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_updates (
		id SERIAL PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products(id),
		old_stock INTEGER NOT NULL,
		new_stock INTEGER NOT NULL,
		updated_by TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate crea el esquema completo dentro de una transacción.
// Todas las sentencias son CREATE IF NOT EXISTS: correr dos veces es inocuo.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// EnsureDefaultAdmin siembra la credencial por defecto si el username no existe.
// Devuelve true si la creó (para que el CLI avise que hay que cambiar la contraseña).
func EnsureDefaultAdmin(ctx context.Context, pool *pgxpool.Pool, username, password string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check default admin: %w", err)
	}
	if exists {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash default admin password: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2)`, username, string(hash))
	if err != nil {
		return false, fmt.Errorf("insert default admin: %w", err)
	}
	return true, nil
}
