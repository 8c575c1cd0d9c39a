package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
// Las lecturas traen los nombres de categoría y proveedor con JOIN explícito.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoSelect = `
	SELECT p.id, p.nombre, p.descripcion, p.precio, p.stock,
	       p.categoria_id, c.nombre, p.proveedor_id, pr.nombre,
	       p.fecha_vencimiento, p.fecha_creacion, p.activo
	FROM productos p
	JOIN categorias c ON c.id = p.categoria_id
	JOIN proveedores pr ON pr.id = p.proveedor_id`

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, precio, stock, categoria_id, proveedor_id, fecha_vencimiento, fecha_creacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.CategoriaID, producto.ProveedorID, producto.FechaVencimiento,
		producto.FechaCreacion, producto.Activo,
	).Scan(&producto.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no) con relaciones pobladas.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	row := r.q.QueryRow(context.Background(), productoSelect+` WHERE p.id = $1`, id)
	p, err := scanProducto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by id: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila para update (SELECT FOR UPDATE).
// Dos movimientos concurrentes sobre el mismo producto se serializan aquí; sin el
// bloqueo, ambos leerían el mismo stock y la verificación de salida quedaría burlada.
func (r *ProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, descripcion, precio, stock, categoria_id, proveedor_id,
		       fecha_vencimiento, fecha_creacion, activo
		FROM productos WHERE id = $1
		FOR UPDATE`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock,
		&p.CategoriaID, &p.ProveedorID,
		&p.FechaVencimiento, &p.FechaCreacion, &p.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto for update: %w", err)
	}
	return &p, nil
}

// Update actualiza todos los campos editables del producto.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, stock = $5,
		    categoria_id = $6, proveedor_id = $7, fecha_vencimiento = $8, activo = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Precio, producto.Stock,
		producto.CategoriaID, producto.ProveedorID, producto.FechaVencimiento, producto.Activo,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock fija el stock del producto (usado dentro de la tx de movimientos).
func (r *ProductoRepo) UpdateStock(id int64, stock int) error {
	_, err := r.q.Exec(context.Background(), `UPDATE productos SET stock = $2 WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// ListActivos lista productos activos ordenados por nombre.
func (r *ProductoRepo) ListActivos() ([]*entity.Producto, error) {
	return r.list(productoSelect + ` WHERE p.activo ORDER BY p.nombre`)
}

// ListByCategoria lista productos activos de una categoría ordenados por nombre.
func (r *ProductoRepo) ListByCategoria(categoriaID int64) ([]*entity.Producto, error) {
	return r.list(productoSelect+` WHERE p.categoria_id = $1 AND p.activo ORDER BY p.nombre`, categoriaID)
}

// ListByProveedor lista productos activos de un proveedor ordenados por nombre.
func (r *ProductoRepo) ListByProveedor(proveedorID int64) ([]*entity.Producto, error) {
	return r.list(productoSelect+` WHERE p.proveedor_id = $1 AND p.activo ORDER BY p.nombre`, proveedorID)
}

// ExistsActivoByCategoria indica si hay productos activos en la categoría.
func (r *ProductoRepo) ExistsActivoByCategoria(categoriaID int64) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM productos WHERE categoria_id = $1 AND activo)`, categoriaID)
}

// ExistsActivoByProveedor indica si hay productos activos del proveedor.
func (r *ProductoRepo) ExistsActivoByProveedor(proveedorID int64) (bool, error) {
	return r.exists(`SELECT EXISTS(SELECT 1 FROM productos WHERE proveedor_id = $1 AND activo)`, proveedorID)
}

// SoftDelete marca el producto como inactivo; el registro se conserva.
func (r *ProductoRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE productos SET activo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) list(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductoRepo) exists(query string, args ...any) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists producto: %w", err)
	}
	return exists, nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock,
		&p.CategoriaID, &p.CategoriaNombre, &p.ProveedorID, &p.ProveedorNombre,
		&p.FechaVencimiento, &p.FechaCreacion, &p.Activo,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
