package usecase

import (
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// ProveedorUseCase aplica reglas de negocio para proveedores.
type ProveedorUseCase struct {
	repo         repository.ProveedorRepository
	productoRepo repository.ProductoRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository, productoRepo repository.ProductoRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, productoRepo: productoRepo}
}

// List devuelve los proveedores activos ordenados por nombre.
func (uc *ProveedorUseCase) List() ([]*dto.ProveedorResponse, error) {
	proveedores, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, toProveedorResponse(p))
	}
	return out, nil
}

// GetByID devuelve un proveedor activo.
func (uc *ProveedorUseCase) GetByID(id int64) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil || !proveedor.Activo {
		return nil, domain.ErrNotFound
	}
	return toProveedorResponse(proveedor), nil
}

// Create crea un proveedor. El email, si viene, es único entre activos sin
// distinguir mayúsculas.
func (uc *ProveedorUseCase) Create(in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Email != "" {
		exists, err := uc.repo.ExistsByEmail(in.Email, 0)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	proveedor := &entity.Proveedor{
		Nombre:        in.Nombre,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Direccion:     in.Direccion,
		FechaCreacion: time.Now(),
		Activo:        true,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Update actualiza un proveedor. Si el body trae ID, debe coincidir con el de la ruta.
func (uc *ProveedorUseCase) Update(id int64, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.ID != 0 && in.ID != id {
		return nil, domain.ErrIDMismatch
	}
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != "" {
		exists, err := uc.repo.ExistsByEmail(in.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	proveedor.Nombre = in.Nombre
	proveedor.Telefono = in.Telefono
	proveedor.Email = in.Email
	proveedor.Direccion = in.Direccion
	proveedor.Activo = in.Activo
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Delete da de baja lógica un proveedor, bloqueado mientras existan productos
// activos que lo referencien.
func (uc *ProveedorUseCase) Delete(id int64) error {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrNotFound
	}
	tieneProductos, err := uc.productoRepo.ExistsActivoByProveedor(id)
	if err != nil {
		return err
	}
	if tieneProductos {
		return domain.ErrHasProducts
	}
	return uc.repo.SoftDelete(id)
}

// ListProductos lista los productos activos del proveedor (404 si el proveedor
// no existe o está inactivo).
func (uc *ProveedorUseCase) ListProductos(id int64) ([]*dto.ProductoResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil || !proveedor.Activo {
		return nil, domain.ErrNotFound
	}
	productos, err := uc.productoRepo.ListByProveedor(id)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Telefono:      p.Telefono,
		Email:         p.Email,
		Direccion:     p.Direccion,
		FechaCreacion: p.FechaCreacion,
		Activo:        p.Activo,
	}
}
