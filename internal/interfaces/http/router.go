package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/supermercado-api/internal/application/auth"
	"github.com/jhoicas/supermercado-api/internal/application/inventory"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	ProductoUC   *usecase.ProductoUseCase
	MovimientoUC *inventory.RegistrarMovimientoUseCase
	JWT          config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	autenticado := AuthMiddleware(deps.JWT)
	soloAdmin := RequireRol(entity.RolAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Usuarios (todo protegido; gestión solo Admin, perfil propio permitido)
	usuarios := api.Group("/usuarios", autenticado)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", soloAdmin, usuarioHandler.List)
	usuarios.Post("/", soloAdmin, usuarioHandler.Create)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", soloAdmin, usuarioHandler.Delete)
	usuarios.Put("/:id/cambiar-password", usuarioHandler.CambiarPassword)

	// Categorías (lectura pública, escritura protegida)
	categorias := api.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Post("/", autenticado, categoriaHandler.Create)
	categorias.Put("/:id", autenticado, categoriaHandler.Update)
	categorias.Delete("/:id", autenticado, soloAdmin, categoriaHandler.Delete)

	// Proveedores (lectura pública, escritura protegida)
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Get("/:id/productos", proveedorHandler.ListProductos)
	proveedores.Post("/", autenticado, proveedorHandler.Create)
	proveedores.Put("/:id", autenticado, proveedorHandler.Update)
	proveedores.Delete("/:id", autenticado, soloAdmin, proveedorHandler.Delete)

	// Productos (lectura pública, escritura protegida)
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.MovimientoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/categoria/:categoriaId", productoHandler.ListByCategoria)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Post("/", autenticado, productoHandler.Create)
	productos.Put("/:id", autenticado, productoHandler.Update)
	productos.Delete("/:id", autenticado, soloAdmin, productoHandler.Delete)

	// Movimientos de stock (protegido; historial solo Admin)
	productos.Post("/:id/stock", autenticado, productoHandler.RegistrarMovimiento)
	productos.Get("/:id/historial", autenticado, soloAdmin, productoHandler.ListHistorial)
}
