package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/inventory"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/application/validate"
)

// ProductoHandler maneja las peticiones HTTP para productos y movimientos de stock.
type ProductoHandler struct {
	uc         *usecase.ProductoUseCase
	movimiento *inventory.RegistrarMovimientoUseCase
}

func NewProductoHandler(uc *usecase.ProductoUseCase, movimiento *inventory.RegistrarMovimientoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc, movimiento: movimiento}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productos)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	producto, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(producto)
}

// ListByCategoria godoc
// @Summary      Listar productos activos de una categoría
// @Tags         productos
// @Produce      json
// @Param        categoriaId  path  int  true  "ID de la categoría"
// @Success      200  {array}   dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/categoria/{categoriaId} [get]
func (h *ProductoHandler) ListByCategoria(c *fiber.Ctx) error {
	categoriaID, err := parseID(c, "categoriaId")
	if err != nil {
		return respondError(c, err)
	}
	productos, err := h.uc.ListByCategoria(categoriaID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(productos)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	producto, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Datos del producto"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	if err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Producto actualizado correctamente"})
}

// Delete godoc
// @Summary      Eliminar producto (baja lógica)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "Producto eliminado correctamente"})
}

// RegistrarMovimiento godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "Movimiento de stock"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/stock [post]
func (h *ProductoHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return badRequestFields(c, fields)
	}
	movimiento, err := h.movimiento.Registrar(c.Context(), GetUsuarioID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movimiento)
}

// ListHistorial godoc
// @Summary      Consultar historial de movimientos de un producto (solo Admin)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/historial [get]
func (h *ProductoHandler) ListHistorial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	historial, err := h.movimiento.ListHistorial(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(historial)
}
