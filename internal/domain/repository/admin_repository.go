package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// AdminRepository define el puerto de persistencia para credenciales de administrador.
type AdminRepository interface {
	// FindByUsername devuelve (nil, nil) si el usuario no existe.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
	Create(ctx context.Context, admin *entity.Admin) error
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
}
