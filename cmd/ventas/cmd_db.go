package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ventas-api/pkg/config"
)

// bootDB carga la configuración y abre el pool de PostgreSQL.
func bootDB(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

// ventas migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create database tables and seed the default admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cfg, pool, err := bootDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		fmt.Println("Running migrations…")
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		created, err := postgres.EnsureDefaultAdmin(ctx, pool, cfg.Admin.DefaultUsername, cfg.Admin.DefaultPassword)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Default admin %q created.\n", cfg.Admin.DefaultUsername)
		}
		fmt.Println("Done.")
		return nil
	},
}

// ventas create-admin <username> <password>
var createAdminCmd = &cobra.Command{
	Use:   "create-admin <username> <password>",
	Short: "Create an admin account (or reset its password if it exists)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, password := args[0], args[1]

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, pool, err := bootDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashear contraseña: %w", err)
		}

		created, err := upsertAdminPassword(ctx, postgres.NewAdminRepository(pool), username, string(hash))
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Admin %q created.\n", username)
		} else {
			fmt.Printf("Admin %q already existed; password reset.\n", username)
		}
		return nil
	},
}

// upsertAdminPassword crea el administrador o, si el username ya existe,
// reemplaza su hash. Devuelve true si lo creó.
func upsertAdminPassword(ctx context.Context, repo repository.AdminRepository, username, hash string) (bool, error) {
	err := repo.Create(ctx, &entity.Admin{Username: username, PasswordHash: hash})
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		return false, err
	}
	if err := repo.UpdatePasswordHash(ctx, username, hash); err != nil {
		return false, err
	}
	return false, nil
}
