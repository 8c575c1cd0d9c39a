package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain/authz"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalRol       = "rol"
)

// AuthMiddleware valida el Bearer Token JWT (firma, issuer, audience, expiración)
// y deja usuario_id y rol en c.Locals. Cualquier fallo responde 401 sin detallar
// cuál de las verificaciones falló.
func AuthMiddleware(jwtCfg config.JWTConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		usuarioID, rol, err := jwt.Parse(jwtCfg.Secret, jwtCfg.Issuer, jwtCfg.Audience, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireRol devuelve un middleware que exige uno de los roles indicados.
// Debe usarse DESPUÉS de AuthMiddleware. Token sin rol → 401; rol no permitido → 403.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		for _, permitido := range roles {
			if rol == permitido {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente para esta operación"})
	}
}

// GetUsuarioID devuelve el ID del usuario autenticado (0 si no hay).
func GetUsuarioID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRol devuelve el rol del usuario autenticado ("" si no hay).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// CallerFrom arma el Caller para la política de acceso a partir del contexto.
func CallerFrom(c *fiber.Ctx) authz.Caller {
	return authz.Caller{ID: GetUsuarioID(c), Rol: GetRol(c)}
}
