package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
)

// StockUpdateHandler expone el historial de ajustes de stock (protegido).
type StockUpdateHandler struct {
	uc *usecase.StockUpdateUseCase
}

// NewStockUpdateHandler construye el handler.
func NewStockUpdateHandler(uc *usecase.StockUpdateUseCase) *StockUpdateHandler {
	return &StockUpdateHandler{uc: uc}
}

// History godoc
// @Summary      Historial de ajustes de stock (últimos 100)
// @Tags         stock-updates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockUpdateResponse
// @Router       /api/stock-updates [get]
func (h *StockUpdateHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// HistoryByProduct godoc
// @Summary      Historial de ajustes de un producto
// @Tags         stock-updates
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {array}  dto.StockUpdateResponse
// @Router       /api/stock-updates/product/{id} [get]
func (h *StockUpdateHandler) HistoryByProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Invalid product id."})
	}
	out, err := h.uc.HistoryByProduct(c.UserContext(), int64(id))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
