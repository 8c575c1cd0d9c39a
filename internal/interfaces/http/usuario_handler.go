package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/application/validate"
)

// UsuarioHandler maneja las peticiones HTTP para usuarios (todas protegidas).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios activos
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usuarios)
}

// GetByID godoc
// @Summary      Obtener usuario por ID (propio perfil o Admin)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	usuario, err := h.uc.GetByID(CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(usuario)
}

// Create godoc
// @Summary      Crear usuario (solo Admin)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	usuario, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}

// Update godoc
// @Summary      Actualizar usuario (propio perfil o Admin; rol solo Admin)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.ActualizarUsuarioRequest  true  "Datos del usuario"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	if err := h.uc.Update(CallerFrom(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Usuario actualizado correctamente"})
}

// Delete godoc
// @Summary      Eliminar usuario (solo Admin, baja lógica)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Usuario eliminado correctamente"})
}

// CambiarPassword godoc
// @Summary      Cambiar contraseña (propia o Admin)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.CambiarPasswordRequest  true  "passwordActual, passwordNueva"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/cambiar-password [put]
func (h *UsuarioHandler) CambiarPassword(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	if err := h.uc.CambiarPassword(CallerFrom(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Contraseña actualizada correctamente"})
}
