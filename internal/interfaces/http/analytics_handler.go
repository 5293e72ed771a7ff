package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// AnalyticsHandler maneja los agregados de ventas.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Today godoc
// @Summary      Resumen de ventas de hoy
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/analytics/today [get]
func (h *AnalyticsHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// CurrentMonth godoc
// @Summary      Resumen de ventas del mes en curso
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryResponse
// @Router       /api/analytics/monthly [get]
func (h *AnalyticsHandler) CurrentMonth(c *fiber.Ctx) error {
	out, err := h.uc.CurrentMonth(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// BestSelling godoc
// @Summary      Productos más vendidos (top 10)
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  dto.BestSellingProductResponse
// @Router       /api/analytics/best-selling [get]
func (h *AnalyticsHandler) BestSelling(c *fiber.Ctx) error {
	out, err := h.uc.BestSelling(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// DailySales godoc
// @Summary      Ventas de una fecha (YYYY-MM-DD; por defecto hoy)
// @Tags         analytics
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.DailySalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analytics/daily-sales [get]
func (h *AnalyticsHandler) DailySales(c *fiber.Ctx) error {
	out, err := h.uc.DailySales(c.UserContext(), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Invalid date format. Use YYYY-MM-DD."})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// MonthlySales godoc
// @Summary      Ventas de un mes (por defecto el mes en curso)
// @Tags         analytics
// @Produce      json
// @Param        month  query  int  false  "Mes 1-12"
// @Param        year   query  int  false  "Año 2000-2100"
// @Success      200    {object}  dto.MonthlySalesResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/analytics/monthly-sales [get]
func (h *AnalyticsHandler) MonthlySales(c *fiber.Ctx) error {
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	out, err := h.uc.MonthlySales(c.UserContext(), month, year)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Invalid month or year."})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
