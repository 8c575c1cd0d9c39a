package http

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// NewErrorHandler construye el ErrorHandler global de Fiber: registra el fallo
// y responde 500 con mensaje genérico. El detalle y el stack solo se incluyen
// en modo development.
func NewErrorHandler(log *logger.Logger, env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			// Errores propios de Fiber (ruta no encontrada, body demasiado grande, etc.)
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")

		resp := dto.ErrorResponse{Code: "INTERNAL", Message: "Error interno del servidor"}
		if env == "development" {
			resp.Detail = err.Error()
			resp.StackTrace = string(debug.Stack())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}
