package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/filtros-erp/internal/application/auth"
	"github.com/jhoicas/filtros-erp/internal/application/catalog"
	"github.com/jhoicas/filtros-erp/internal/application/counterparty"
	"github.com/jhoicas/filtros-erp/internal/application/dashboard"
	"github.com/jhoicas/filtros-erp/internal/application/inventory"
	"github.com/jhoicas/filtros-erp/internal/application/orders"
	"github.com/jhoicas/filtros-erp/internal/application/purchases"
	"github.com/jhoicas/filtros-erp/internal/application/reports"
	infraexcel "github.com/jhoicas/filtros-erp/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/filtros-erp/internal/infrastructure/pdf"
	"github.com/jhoicas/filtros-erp/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/filtros-erp/internal/interfaces/http"
	"github.com/jhoicas/filtros-erp/pkg/config"
	"github.com/jhoicas/filtros-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.App.RunMigrations {
		if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(itemRepo)
	stockUC := inventory.NewStockUseCase(txRunner, itemRepo, movementRepo)
	orderUC := orders.NewUseCase(orderRepo, distributorRepo, itemRepo)
	orderPDFUC := orders.NewPDFUseCase(orderRepo, distributorRepo, infrapdf.NewOrderSheetGenerator())
	purchaseUC := purchases.NewUseCase(purchaseRepo, supplierRepo, itemRepo)
	counterpartyUC := counterparty.NewUseCase(distributorRepo, supplierRepo)
	dashboardUC := dashboard.NewUseCase(orderRepo, purchaseRepo, catalogUC)
	reportUC := reports.NewUseCase(itemRepo, movementRepo, infraexcel.NewExporter())

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
		Title:    "Filtros ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CatalogUC:      catalogUC,
		StockUC:        stockUC,
		OrderUC:        orderUC,
		OrderPDFUC:     orderPDFUC,
		PurchaseUC:     purchaseUC,
		CounterpartyUC: counterpartyUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
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
