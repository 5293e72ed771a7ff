package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Ventas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub del repositorio de administradores
// ──────────────────────────────────────────────────────────────────────────────

type stubAdminRepo struct {
	admins map[string]*entity.Admin
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *stubAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	if _, ok := r.admins[a.Username]; ok {
		return domain.ErrDuplicate
	}
	r.admins[a.Username] = a
	return nil
}

func (r *stubAdminRepo) UpdatePasswordHash(_ context.Context, username, hash string) error {
	a, ok := r.admins[username]
	if !ok {
		return domain.ErrNotFound
	}
	a.PasswordHash = hash
	return nil
}

const (
	authTestSecret = "auth-test-secret"
	authTestIssuer = "ventas-api-test"
)

func buildAuthUC(t *testing.T, username, password string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &stubAdminRepo{admins: map[string]*entity.Admin{
		username: {ID: 1, Username: username, PasswordHash: string(hash)},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 480,
		Issuer:     authTestIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	uc := buildAuthUC(t, "admin", "admin123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "admin", out.Admin.Username)
	assert.Equal(t, int64(1), out.Admin.ID)

	// El token emitido debe ser verificable con el mismo secret.
	adminID, username, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), adminID)
	assert.Equal(t, "admin", username)
}

func TestLogin_UsernameConEspacios_SeNormaliza(t *testing.T) {
	uc := buildAuthUC(t, "admin", "admin123")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "  admin  ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Admin.Username)
}

// Usuario inexistente y contraseña incorrecta deben devolver el MISMO error:
// la respuesta no puede revelar cuál de los dos falló.
func TestLogin_UsuarioNoExiste_MismoErrorQueClaveIncorrecta(t *testing.T) {
	uc := buildAuthUC(t, "admin", "admin123")

	_, errUnknownUser := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "admin123"})
	_, errWrongPassword := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "incorrecta"})

	require.ErrorIs(t, errUnknownUser, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknownUser, errWrongPassword,
		"ambos fallos deben ser indistinguibles para el cliente")
}

func TestLogin_CamposVacios_Rechazado(t *testing.T) {
	uc := buildAuthUC(t, "admin", "admin123")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
