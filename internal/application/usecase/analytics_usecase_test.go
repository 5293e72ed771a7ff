package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub del repositorio de analítica: registra los parámetros consultados
// ──────────────────────────────────────────────────────────────────────────────

type stubAnalyticsRepo struct {
	summary *repository.SalesSummary

	queriedDate  time.Time
	queriedYear  int
	queriedMonth int
}

func newStubAnalyticsRepo() *stubAnalyticsRepo {
	return &stubAnalyticsRepo{summary: &repository.SalesSummary{
		TotalAmount:  decimal.RequireFromString("1500"),
		TotalBills:   2,
		CashAmount:   decimal.RequireFromString("1000"),
		OnlineAmount: decimal.RequireFromString("500"),
	}}
}

func (r *stubAnalyticsRepo) SummaryForDate(_ context.Context, date time.Time) (*repository.SalesSummary, error) {
	r.queriedDate = date
	return r.summary, nil
}

func (r *stubAnalyticsRepo) SummaryForMonth(_ context.Context, year, month int) (*repository.SalesSummary, error) {
	r.queriedYear, r.queriedMonth = year, month
	return r.summary, nil
}

func (r *stubAnalyticsRepo) BestSelling(_ context.Context, _ int) ([]repository.BestSellingResult, error) {
	return []repository.BestSellingResult{}, nil
}

func (r *stubAnalyticsRepo) ProductSalesForDate(_ context.Context, date time.Time) ([]repository.ProductSalesResult, error) {
	return []repository.ProductSalesResult{}, nil
}

func (r *stubAnalyticsRepo) ProductSalesForMonth(_ context.Context, _, _ int) ([]repository.ProductSalesResult, error) {
	return []repository.ProductSalesResult{}, nil
}

// fixedNow reloj congelado para tests: 15 de marzo de 2024.
func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func buildAnalyticsUC(repo *stubAnalyticsRepo) *usecase.AnalyticsUseCase {
	uc := usecase.NewAnalyticsUseCase(repo)
	uc.SetNow(fixedNow)
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DailySales
// ──────────────────────────────────────────────────────────────────────────────

func TestDailySales_SinParametro_UsaElDiaActual(t *testing.T) {
	repo := newStubAnalyticsRepo()
	uc := buildAnalyticsUC(repo)

	out, err := uc.DailySales(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", out.Date, "sin parámetro debe reportarse el día actual")
	assert.Equal(t, 2, out.Summary.TotalBills)
	assert.NotNil(t, out.Products, "products debe ser lista vacía, no null")
}

func TestDailySales_FechaExplicita(t *testing.T) {
	repo := newStubAnalyticsRepo()
	uc := buildAnalyticsUC(repo)

	out, err := uc.DailySales(context.Background(), "2024-01-20")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-20", out.Date)
	assert.Equal(t, "2024-01-20", repo.queriedDate.Format("2006-01-02"))
}

func TestDailySales_FechaMalformada_Rechazada(t *testing.T) {
	uc := buildAnalyticsUC(newStubAnalyticsRepo())

	for _, bad := range []string{"20-01-2024", "2024/01/20", "ayer", "2024-13-01"} {
		_, err := uc.DailySales(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q debe rechazarse", bad)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MonthlySales
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlySales_SinParametros_UsaElMesActual(t *testing.T) {
	repo := newStubAnalyticsRepo()
	uc := buildAnalyticsUC(repo)

	out, err := uc.MonthlySales(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Month)
	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 3, repo.queriedMonth)
	assert.Equal(t, 2024, repo.queriedYear)
}

func TestMonthlySales_ParametrosExplicitos(t *testing.T) {
	repo := newStubAnalyticsRepo()
	uc := buildAnalyticsUC(repo)

	out, err := uc.MonthlySales(context.Background(), 12, 2023)
	require.NoError(t, err)
	assert.Equal(t, 12, out.Month)
	assert.Equal(t, 2023, out.Year)
}

func TestMonthlySales_FueraDeRango_Rechazado(t *testing.T) {
	uc := buildAnalyticsUC(newStubAnalyticsRepo())

	cases := []struct {
		month, year int
	}{
		{13, 2024},
		{-1, 2024},
		{6, 1999},
		{6, 2101},
	}
	for _, c := range cases {
		_, err := uc.MonthlySales(context.Background(), c.month, c.year)
		assert.ErrorIs(t, err, domain.ErrInvalidInput,
			"mes %d / año %d debe rechazarse", c.month, c.year)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Today / CurrentMonth
// ──────────────────────────────────────────────────────────────────────────────

func TestToday_ConsultaConElReloj(t *testing.T) {
	repo := newStubAnalyticsRepo()
	uc := buildAnalyticsUC(repo)

	out, err := uc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", repo.queriedDate.Format("2006-01-02"))
	assert.True(t, decimal.RequireFromString("1500").Equal(out.TotalAmount))
}

func TestCurrentMonth_ConsultaAnioYMesActuales(t *testing.T) {
	repo := newStubAnalyticsRepo()
	uc := buildAnalyticsUC(repo)

	_, err := uc.CurrentMonth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, repo.queriedYear)
	assert.Equal(t, 3, repo.queriedMonth)
}
