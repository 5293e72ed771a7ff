package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// HeaderRequestID header de correlación; se respeta si el cliente lo envía.
const HeaderRequestID = "X-Request-Id"

// RequestLogger asigna un request id y registra cada petición con latencia y status.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		logErr := err
		if v, ok := c.Locals(localInternalError).(error); ok && logErr == nil {
			logErr = v
		}
		event := log.Info()
		if logErr != nil || status >= fiber.StatusInternalServerError {
			event = log.Error().Err(logErr)
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.IP()).
			Msg("request")
		return err
	}
}
