package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente, aplicado en el arranque.
// usuarios.email lleva índice único como respaldo del check de unicidad en el
// use case (la política de usuarios incluye a los inactivos, así que el índice
// es global). Los nombres de categorías/proveedores no llevan índice: su
// unicidad es solo entre activos y se verifica en el use case.
const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
	id             BIGSERIAL PRIMARY KEY,
	nombre         VARCHAR(100) NOT NULL,
	email          VARCHAR(150) NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	rol            VARCHAR(20) NOT NULL DEFAULT 'Empleado',
	fecha_creacion TIMESTAMPTZ NOT NULL DEFAULT now(),
	activo         BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS categorias (
	id             BIGSERIAL PRIMARY KEY,
	nombre         VARCHAR(100) NOT NULL,
	descripcion    VARCHAR(300) NOT NULL DEFAULT '',
	fecha_creacion TIMESTAMPTZ NOT NULL DEFAULT now(),
	activa         BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS proveedores (
	id             BIGSERIAL PRIMARY KEY,
	nombre         VARCHAR(150) NOT NULL,
	telefono       VARCHAR(20) NOT NULL DEFAULT '',
	email          VARCHAR(150) NOT NULL DEFAULT '',
	direccion      VARCHAR(250) NOT NULL DEFAULT '',
	fecha_creacion TIMESTAMPTZ NOT NULL DEFAULT now(),
	activo         BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS productos (
	id                BIGSERIAL PRIMARY KEY,
	nombre            VARCHAR(200) NOT NULL,
	descripcion       VARCHAR(500) NOT NULL DEFAULT '',
	precio            NUMERIC(10,2) NOT NULL,
	stock             INTEGER NOT NULL DEFAULT 0,
	categoria_id      BIGINT NOT NULL REFERENCES categorias(id),
	proveedor_id      BIGINT NOT NULL REFERENCES proveedores(id),
	fecha_vencimiento TIMESTAMPTZ,
	fecha_creacion    TIMESTAMPTZ NOT NULL DEFAULT now(),
	activo            BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS historial_stock (
	id              BIGSERIAL PRIMARY KEY,
	producto_id     BIGINT NOT NULL REFERENCES productos(id) ON DELETE CASCADE,
	usuario_id      BIGINT NOT NULL REFERENCES usuarios(id),
	tipo_movimiento VARCHAR(20) NOT NULL,
	cantidad        INTEGER NOT NULL CHECK (cantidad > 0),
	fecha           TIMESTAMPTZ NOT NULL DEFAULT now(),
	motivo          VARCHAR(300) NOT NULL DEFAULT '',
	precio_unitario NUMERIC(10,2)
);

CREATE INDEX IF NOT EXISTS idx_productos_categoria ON productos(categoria_id) WHERE activo;
CREATE INDEX IF NOT EXISTS idx_productos_proveedor ON productos(proveedor_id) WHERE activo;
CREATE INDEX IF NOT EXISTS idx_historial_producto ON historial_stock(producto_id);
`

// EnsureSchema crea las tablas si no existen (equivalente a una migración inicial).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
