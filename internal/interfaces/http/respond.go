package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
)

// respondError traduce errores de dominio al status HTTP correspondiente.
// Un error desconocido se devuelve tal cual para que el ErrorHandler global
// lo registre y responda 500 sin filtrar detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrNameAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NAME_EXISTS", Message: "ya existe un registro con ese nombre"})
	case errors.Is(err, domain.ErrRoleChange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ROLE_CHANGE", Message: "no tienes permisos para cambiar el rol"})
	case errors.Is(err, domain.ErrLastAdmin):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "LAST_ADMIN", Message: "no se puede eliminar el último administrador del sistema"})
	case errors.Is(err, domain.ErrWrongPassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "la contraseña actual es incorrecta"})
	case errors.Is(err, domain.ErrHasProducts):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "HAS_PRODUCTS", Message: "no se puede eliminar porque tiene productos asociados"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
	case errors.Is(err, domain.ErrIDMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_MISMATCH", Message: "el ID no coincide"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email o contraseña incorrectos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return err
	}
}

// parseID lee el parámetro de ruta como entero positivo.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return int64(id), nil
}

// badRequestFields responde 400 con los errores de validación por campo.
func badRequestFields(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "entrada inválida",
		Fields:  fields,
	})
}
