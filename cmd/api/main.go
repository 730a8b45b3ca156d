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

	"github.com/tumaini/duka-api/internal/application/approval"
	"github.com/tumaini/duka-api/internal/application/auth"
	"github.com/tumaini/duka-api/internal/application/inventory"
	"github.com/tumaini/duka-api/internal/application/receipt"
	"github.com/tumaini/duka-api/internal/application/reports"
	"github.com/tumaini/duka-api/internal/application/usecase"
	infrapdf "github.com/tumaini/duka-api/internal/infrastructure/pdf"
	"github.com/tumaini/duka-api/internal/infrastructure/postgres"
	httpRouter "github.com/tumaini/duka-api/internal/interfaces/http"
	"github.com/tumaini/duka-api/pkg/config"
	"github.com/tumaini/duka-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(profileRepo, orgRepo, locationRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, profileRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	inventoryListUC := inventory.NewListUseCase(inventoryRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, productRepo, locationRepo)
	saleUC := inventory.NewSaleUseCase(txRunner, locationRepo)
	approvalUC := approval.NewUseCase(txnRepo, productRepo, locationRepo)
	salesReportUC := reports.NewSalesUseCase(txnRepo)

	// PDF: printable receipt for a committed sale
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewUseCase(txnRepo, productRepo, locationRepo, orgRepo, profileRepo, receiptGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Duka API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OrganizationUC: orgUC,
		LocationUC:     locationUC,
		ProductUC:      productUC,
		InventoryList:  inventoryListUC,
		TransferUC:     transferUC,
		SaleUC:         saleUC,
		ApprovalUC:     approvalUC,
		ReceiptUC:      receiptUC,
		SalesReportUC:  salesReportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
