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

	"github.com/jhoicas/maderas-pos/internal/application/auth"
	"github.com/jhoicas/maderas-pos/internal/application/inventory"
	"github.com/jhoicas/maderas-pos/internal/application/reports"
	"github.com/jhoicas/maderas-pos/internal/application/sales"
	"github.com/jhoicas/maderas-pos/internal/application/usecase"
	infrapdf "github.com/jhoicas/maderas-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/maderas-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/maderas-pos/internal/interfaces/http"
	"github.com/jhoicas/maderas-pos/pkg/config"
	"github.com/jhoicas/maderas-pos/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	movRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, invRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner, productRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(invRepo, movRepo, productRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, customerRepo, productRepo)
	saleStatusUC := sales.NewUpdateStatusUseCase(txRunner, saleRepo)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptUseCase(saleRepo, customerRepo, productRepo, receiptGenerator)
	reportUC := reports.NewUseCase(reportRepo)

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
		Title:    "Maderas POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Si hay un frontend compilado en ./web se sirve estático
	if _, err := os.Stat("./web"); err == nil {
		app.Static("/", "./web")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		AdjustStockUC: adjustStockUC,
		StockQueryUC:  stockQueryUC,
		CreateSaleUC:  createSaleUC,
		SaleStatusUC:  saleStatusUC,
		SaleQueryUC:   saleQueryUC,
		ReceiptUC:     receiptUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
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
