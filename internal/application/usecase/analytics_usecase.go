package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// bestSellingLimit tamaño del ranking de más vendidos.
const bestSellingLimit = 10

// AnalyticsUseCase consultas agregadas de ventas. Valida parámetros de fecha
// antes de tocar la BD: parámetros inválidos se rechazan, nunca se ajustan.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// Today recaudo del día actual separado por modo de pago.
func (uc *AnalyticsUseCase) Today(ctx context.Context) (*dto.SalesSummaryResponse, error) {
	summary, err := uc.analyticsRepo.SummaryForDate(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	out := toSummaryResponse(summary)
	return &out, nil
}

// CurrentMonth recaudo del mes actual separado por modo de pago.
func (uc *AnalyticsUseCase) CurrentMonth(ctx context.Context) (*dto.SalesSummaryResponse, error) {
	now := uc.now()
	summary, err := uc.analyticsRepo.SummaryForMonth(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	out := toSummaryResponse(summary)
	return &out, nil
}

// BestSelling top de productos por unidades vendidas.
func (uc *AnalyticsUseCase) BestSelling(ctx context.Context) ([]dto.BestSellingProductResponse, error) {
	results, err := uc.analyticsRepo.BestSelling(ctx, bestSellingLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BestSellingProductResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.BestSellingProductResponse{
			ID:            r.ProductID,
			Name:          r.Name,
			ImageURL:      r.ImageURL,
			Price:         r.Price,
			TotalQuantity: r.TotalQuantity,
			TotalRevenue:  r.TotalRevenue,
			TimesSold:     r.TimesSold,
		})
	}
	return out, nil
}

// DailySales reporte detallado de un día. dateParam vacío usa el día actual;
// un valor malformado es error del cliente (no se interpreta "lo más cercano").
func (uc *AnalyticsUseCase) DailySales(ctx context.Context, dateParam string) (*dto.DailySalesResponse, error) {
	date := uc.now()
	if dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}
	summary, err := uc.analyticsRepo.SummaryForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	products, err := uc.analyticsRepo.ProductSalesForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return &dto.DailySalesResponse{
		Summary:  toSummaryResponse(summary),
		Products: toProductSalesResponses(products),
		Date:     date.Format("2006-01-02"),
	}, nil
}

// MonthlySales reporte detallado de un mes. Parámetros vacíos usan el mes
// actual; mes fuera de 1..12 o año fuera de 2000..2100 se rechazan.
func (uc *AnalyticsUseCase) MonthlySales(ctx context.Context, month, year int) (*dto.MonthlySalesResponse, error) {
	now := uc.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	if year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	summary, err := uc.analyticsRepo.SummaryForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	products, err := uc.analyticsRepo.ProductSalesForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlySalesResponse{
		Summary:  toSummaryResponse(summary),
		Products: toProductSalesResponses(products),
		Month:    month,
		Year:     year,
	}, nil
}

func toSummaryResponse(s *repository.SalesSummary) dto.SalesSummaryResponse {
	return dto.SalesSummaryResponse{
		TotalAmount:  s.TotalAmount,
		TotalBills:   s.TotalBills,
		CashAmount:   s.CashAmount,
		OnlineAmount: s.OnlineAmount,
	}
}

func toProductSalesResponses(results []repository.ProductSalesResult) []dto.ProductSalesResponse {
	out := make([]dto.ProductSalesResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.ProductSalesResponse{
			ID:           r.ProductID,
			Name:         r.Name,
			QuantitySold: r.QuantitySold,
			Revenue:      r.Revenue,
		})
	}
	return out
}
