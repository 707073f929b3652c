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

	"github.com/jcastro/llantera-api/internal/application/auth"
	"github.com/jcastro/llantera-api/internal/application/ledger"
	"github.com/jcastro/llantera-api/internal/application/usecase"
	"github.com/jcastro/llantera-api/internal/infrastructure/excel"
	"github.com/jcastro/llantera-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/llantera-api/internal/interfaces/http"
	"github.com/jcastro/llantera-api/pkg/config"
	"github.com/jcastro/llantera-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	barcodeRepo := postgres.NewBarcodeRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewUseCase(txRunner)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, barcodeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	barcodeUC := usecase.NewBarcodeUseCase(barcodeRepo, productRepo)
	recordUC := usecase.NewRecordUseCase(movementRepo, excel.NewMovementExporter())
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Llantera API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		LedgerUC:    ledgerUC,
		BarcodeUC:   barcodeUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		RecordUC:    recordUC,
		DashboardUC: dashboardUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
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
