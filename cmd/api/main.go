package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/supermercado-api/internal/application/auth"
	"github.com/jhoicas/supermercado-api/internal/application/inventory"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/supermercado-api/internal/interfaces/http"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET no configurado")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	historialRepo := postgres.NewHistorialStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
	})
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo, productoRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, productoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo, proveedorRepo)
	movimientoUC := inventory.NewRegistrarMovimientoUseCase(txRunner, historialRepo, productoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log.WithComponent("http"), cfg.App.Env),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermercado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UsuarioUC:    usuarioUC,
		CategoriaUC:  categoriaUC,
		ProveedorUC:  proveedorUC,
		ProductoUC:   productoUC,
		MovimientoUC: movimientoUC,
		JWT:          cfg.JWT,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
