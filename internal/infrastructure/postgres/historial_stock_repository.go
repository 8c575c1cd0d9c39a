package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

var _ repository.HistorialStockRepository = (*HistorialStockRepo)(nil)

// HistorialStockRepo implementación del puerto HistorialStockRepository sobre PostgreSQL.
type HistorialStockRepo struct {
	q Querier
}

// NewHistorialStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistorialStockRepository(q Querier) *HistorialStockRepo {
	return &HistorialStockRepo{q: q}
}

// Create persiste un movimiento de stock y asigna el ID generado.
func (r *HistorialStockRepo) Create(movimiento *entity.HistorialStock) error {
	query := `
		INSERT INTO historial_stock (producto_id, usuario_id, tipo_movimiento, cantidad, fecha, motivo, precio_unitario)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movimiento.ProductoID, movimiento.UsuarioID, movimiento.TipoMovimiento,
		movimiento.Cantidad, movimiento.Fecha, movimiento.Motivo, movimiento.PrecioUnitario,
	).Scan(&movimiento.ID)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByProducto lista los movimientos de un producto, el más reciente primero.
func (r *HistorialStockRepo) ListByProducto(productoID int64) ([]*entity.HistorialStock, error) {
	query := `
		SELECT id, producto_id, usuario_id, tipo_movimiento, cantidad, fecha, motivo, precio_unitario
		FROM historial_stock WHERE producto_id = $1 ORDER BY fecha DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialStock
	for rows.Next() {
		var m entity.HistorialStock
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.UsuarioID, &m.TipoMovimiento, &m.Cantidad, &m.Fecha, &m.Motivo, &m.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
