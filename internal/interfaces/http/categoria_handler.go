package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/application/validate"
)

// CategoriaHandler maneja las peticiones HTTP para categorías.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías activas
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	categorias, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categorias)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categorias
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	categoria, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categoria)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCategoriaRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	categoria, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.ActualizarCategoriaRequest  true  "Datos de la categoría"
// @Success      200   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	categoria, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categoria)
}

// Delete godoc
// @Summary      Eliminar categoría (baja lógica, falla con productos activos)
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Categoría eliminada correctamente"})
}
