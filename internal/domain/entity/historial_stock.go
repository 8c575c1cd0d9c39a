package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada = "Entrada"
	MovimientoSalida  = "Salida"
)

// HistorialStock registra un movimiento de inventario sobre un producto,
// con el usuario que lo ejecutó y el precio unitario al momento del movimiento.
type HistorialStock struct {
	ID             int64
	ProductoID     int64
	UsuarioID      int64
	TipoMovimiento string // Entrada, Salida
	Cantidad       int
	Fecha          time.Time
	Motivo         string
	PrecioUnitario *decimal.Decimal
}
