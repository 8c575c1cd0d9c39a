package repository

import "github.com/jhoicas/supermercado-api/internal/domain/entity"

// HistorialStockRepository define el puerto de persistencia para HistorialStock (DIP).
type HistorialStockRepository interface {
	Create(movimiento *entity.HistorialStock) error
	ListByProducto(productoID int64) ([]*entity.HistorialStock, error)
}
