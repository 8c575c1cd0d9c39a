package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repos atados a ella.
// Lo implementa postgres.TxRunner; el uso de interfaz permite fakes en tests.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		historialRepo repository.HistorialStockRepository,
	) error) error
}

// RegistrarMovimientoUseCase registra entradas y salidas de stock: ajusta
// Producto.Stock y apendiza HistorialStock en la misma transacción.
type RegistrarMovimientoUseCase struct {
	tx            TxRunner
	historialRepo repository.HistorialStockRepository
	productoRepo  repository.ProductoRepository
}

// NewRegistrarMovimientoUseCase construye el caso de uso.
func NewRegistrarMovimientoUseCase(tx TxRunner, historialRepo repository.HistorialStockRepository, productoRepo repository.ProductoRepository) *RegistrarMovimientoUseCase {
	return &RegistrarMovimientoUseCase{tx: tx, historialRepo: historialRepo, productoRepo: productoRepo}
}

// Registrar aplica un movimiento sobre el producto. Una Salida nunca deja el
// stock negativo. usuarioID es la identidad del token, no viene del body.
// La lectura dentro de la tx bloquea la fila (FOR UPDATE): dos movimientos
// concurrentes sobre el mismo producto se serializan en vez de pisarse el stock.
func (uc *RegistrarMovimientoUseCase) Registrar(ctx context.Context, usuarioID, productoID int64, in dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	var movimiento *entity.HistorialStock
	err := uc.tx.Run(ctx, func(productoRepo repository.ProductoRepository, historialRepo repository.HistorialStockRepository) error {
		producto, err := productoRepo.GetForUpdate(productoID)
		if err != nil {
			return err
		}
		if producto == nil || !producto.Activo {
			return domain.ErrNotFound
		}

		nuevoStock := producto.Stock
		switch in.TipoMovimiento {
		case entity.MovimientoEntrada:
			nuevoStock += in.Cantidad
		case entity.MovimientoSalida:
			if in.Cantidad > producto.Stock {
				return domain.ErrInsufficientStock
			}
			nuevoStock -= in.Cantidad
		default:
			return domain.ErrInvalidInput
		}

		if err := productoRepo.UpdateStock(productoID, nuevoStock); err != nil {
			return err
		}

		movimiento = &entity.HistorialStock{
			ProductoID:     productoID,
			UsuarioID:      usuarioID,
			TipoMovimiento: in.TipoMovimiento,
			Cantidad:       in.Cantidad,
			Fecha:          time.Now(),
			Motivo:         in.Motivo,
			PrecioUnitario: in.PrecioUnitario,
		}
		return historialRepo.Create(movimiento)
	})
	if err != nil {
		return nil, err
	}
	return toMovimientoResponse(movimiento), nil
}

// ListHistorial lista los movimientos de un producto, el más reciente primero.
func (uc *RegistrarMovimientoUseCase) ListHistorial(productoID int64) ([]*dto.MovimientoResponse, error) {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	movimientos, err := uc.historialRepo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, toMovimientoResponse(m))
	}
	return out, nil
}

func toMovimientoResponse(m *entity.HistorialStock) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimientoResponse{
		ID:             m.ID,
		ProductoID:     m.ProductoID,
		UsuarioID:      m.UsuarioID,
		TipoMovimiento: m.TipoMovimiento,
		Cantidad:       m.Cantidad,
		Fecha:          m.Fecha,
		Motivo:         m.Motivo,
		PrecioUnitario: m.PrecioUnitario,
	}
}
