package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorCols = `id, nombre, telefono, email, direccion, fecha_creacion, activo`

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (nombre, telefono, email, direccion, fecha_creacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		proveedor.Nombre, proveedor.Telefono, proveedor.Email, proveedor.Direccion,
		proveedor.FechaCreacion, proveedor.Activo,
	).Scan(&proveedor.ID)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID, activo o no.
func (r *ProveedorRepo) GetByID(id int64) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.FechaCreacion, &p.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor by id: %w", err)
	}
	return &p, nil
}

// ExistsByEmail verifica unicidad de email en minúsculas, solo entre activos.
func (r *ProveedorRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM proveedores WHERE LOWER(email) = LOWER($1) AND id <> $2 AND activo)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists proveedor by email: %w", err)
	}
	return exists, nil
}

// Update actualiza los datos de contacto y estado.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, telefono = $3, email = $4, direccion = $5, activo = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.Telefono, proveedor.Email,
		proveedor.Direccion, proveedor.Activo,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// ListActivos lista proveedores activos ordenados por nombre.
func (r *ProveedorRepo) ListActivos() ([]*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE activo ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.FechaCreacion, &p.Activo); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SoftDelete marca el proveedor como inactivo; el registro se conserva.
func (r *ProveedorRepo) SoftDelete(id int64) error {
	_, err := r.q.Exec(context.Background(), `UPDATE proveedores SET activo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete proveedor: %w", err)
	}
	return nil
}
