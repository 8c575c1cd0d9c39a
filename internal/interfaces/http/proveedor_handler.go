package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/application/validate"
)

// ProveedorHandler maneja las peticiones HTTP para proveedores.
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores activos
// @Tags         proveedores
// @Produce      json
// @Success      200  {array}  dto.ProveedorResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	proveedores, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proveedores)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         proveedores
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.ProveedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	proveedor, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proveedor)
}

// ListProductos godoc
// @Summary      Listar productos activos de un proveedor
// @Tags         proveedores
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {array}   dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id}/productos [get]
func (h *ProveedorHandler) ListProductos(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productos, err := h.uc.ListProductos(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productos)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProveedorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	proveedor, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proveedor)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  dto.ActualizarProveedorRequest  true  "Datos del proveedor"
// @Success      200   {object}  dto.ProveedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [put]
func (h *ProveedorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	proveedor, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proveedor)
}

// Delete godoc
// @Summary      Eliminar proveedor (baja lógica, falla con productos activos)
// @Tags         proveedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Proveedor eliminado correctamente"})
}
