package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador de administradores.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// FindByUsername busca un administrador por username. Devuelve (nil, nil) si no existe:
// el caso de uso de login decide el error uniforme, no la capa de datos.
func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var a entity.Admin
	err := r.q.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM admins WHERE username = $1`, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &a, nil
}

// Create persiste un administrador nuevo.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`, admin.Username, admin.PasswordHash).
		Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// UpdatePasswordHash reemplaza el hash de un administrador existente.
func (r *AdminRepo) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE admins SET password_hash = $2 WHERE username = $1`, username, passwordHash)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
