package usecase

import (
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// ProductoUseCase aplica reglas de negocio para productos: existencia de las
// claves foráneas activas antes de crear/actualizar y baja lógica.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository, proveedorRepo repository.ProveedorRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo, proveedorRepo: proveedorRepo}
}

// List devuelve los productos activos con nombres de categoría y proveedor.
func (uc *ProductoUseCase) List() ([]*dto.ProductoResponse, error) {
	productos, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	return toProductoResponses(productos), nil
}

// GetByID devuelve un producto activo.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// ListByCategoria devuelve los productos activos de una categoría.
func (uc *ProductoUseCase) ListByCategoria(categoriaID int64) ([]*dto.ProductoResponse, error) {
	productos, err := uc.repo.ListByCategoria(categoriaID)
	if err != nil {
		return nil, err
	}
	return toProductoResponses(productos), nil
}

// Create crea un producto validando precio positivo y que categoría y proveedor
// existan y estén activos.
func (uc *ProductoUseCase) Create(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if !in.Precio.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.verificarRelaciones(in.CategoriaID, in.ProveedorID); err != nil {
		return nil, err
	}
	producto := &entity.Producto{
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		Precio:           in.Precio,
		Stock:            in.Stock,
		CategoriaID:      in.CategoriaID,
		ProveedorID:      in.ProveedorID,
		FechaVencimiento: in.FechaVencimiento,
		FechaCreacion:    time.Now(),
		Activo:           true,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	// Releer con JOIN para poblar los nombres de las relaciones.
	creado, err := uc.repo.GetByID(producto.ID)
	if err != nil {
		return nil, err
	}
	return toProductoResponse(creado), nil
}

// Update actualiza un producto con las mismas verificaciones de relaciones.
func (uc *ProductoUseCase) Update(id int64, in dto.ActualizarProductoRequest) error {
	if !in.Precio.IsPositive() {
		return domain.ErrInvalidInput
	}
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	if err := uc.verificarRelaciones(in.CategoriaID, in.ProveedorID); err != nil {
		return err
	}
	producto.Nombre = in.Nombre
	producto.Descripcion = in.Descripcion
	producto.Precio = in.Precio
	producto.Stock = in.Stock
	producto.CategoriaID = in.CategoriaID
	producto.ProveedorID = in.ProveedorID
	producto.FechaVencimiento = in.FechaVencimiento
	producto.Activo = in.Activo
	return uc.repo.Update(producto)
}

// Delete da de baja lógica un producto.
func (uc *ProductoUseCase) Delete(id int64) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func (uc *ProductoUseCase) verificarRelaciones(categoriaID, proveedorID int64) error {
	categoria, err := uc.categoriaRepo.GetByID(categoriaID)
	if err != nil {
		return err
	}
	if categoria == nil || !categoria.Activa {
		return domain.ErrInvalidInput
	}
	proveedor, err := uc.proveedorRepo.GetByID(proveedorID)
	if err != nil {
		return err
	}
	if proveedor == nil || !proveedor.Activo {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		Precio:           p.Precio,
		Stock:            p.Stock,
		CategoriaID:      p.CategoriaID,
		CategoriaNombre:  p.CategoriaNombre,
		ProveedorID:      p.ProveedorID,
		ProveedorNombre:  p.ProveedorNombre,
		FechaVencimiento: p.FechaVencimiento,
		FechaCreacion:    p.FechaCreacion,
		Activo:           p.Activo,
	}
}

func toProductoResponses(productos []*entity.Producto) []*dto.ProductoResponse {
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out
}
