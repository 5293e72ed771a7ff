package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// localInternalError guarda el error real de un 500 para el log de la petición.
const localInternalError = "internal_error"

// internalError responde 500 con mensaje genérico. El detalle nunca viaja al
// cliente: queda en c.Locals y RequestLogger lo registra.
func internalError(c *fiber.Ctx, err error) error {
	c.Locals(localInternalError, err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Internal server error",
	})
}
