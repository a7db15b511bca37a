// seed crea los datos mínimos para operar el POS en un entorno nuevo:
// un usuario admin, categorías típicas de depósito de maderas y algunos
// productos de ejemplo con su fila de inventario.
//
// Uso: go run ./cmd/seed
// Credenciales del admin: SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD
// (por defecto admin@maderas.local / cambiar-ya).
package main

import (
	"context"
	"errors"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/maderas-pos/internal/application/auth"
	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/application/usecase"
	"github.com/jhoicas/maderas-pos/internal/domain"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
	"github.com/jhoicas/maderas-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/maderas-pos/pkg/config"
	"github.com/jhoicas/maderas-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, invRepo)

	email := envOr("SEED_ADMIN_EMAIL", "admin@maderas.local")
	password := envOr("SEED_ADMIN_PASSWORD", "cambiar-ya")
	admin, err := authUC.Register(ctx, &dto.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", email).Msg("admin ya existe, se omite")
	case err != nil:
		log.Fatal().Err(err).Msg("crear admin")
	default:
		log.Info().Str("email", admin.Email).Msg("admin creado")
	}

	categories := []dto.CreateCategoryRequest{
		{Name: "Maderas", Description: "Tablas, listones y vigas"},
		{Name: "Tableros", Description: "MDF, aglomerado, triplex"},
		{Name: "Herrajes", Description: "Bisagras, correderas, tornillería"},
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, in := range categories {
		out, err := categoryUC.Create(ctx, &in)
		if err != nil {
			log.Fatal().Err(err).Str("category", in.Name).Msg("crear categoría")
		}
		categoryIDs[in.Name] = out.ID
		log.Info().Str("category", out.Name).Msg("categoría creada")
	}

	products := []dto.CreateProductRequest{
		{SKU: "MAD-PINO-2X4", Name: "Listón de pino 2x4 (3m)", CategoryID: categoryIDs["Maderas"], Unit: "unidad", Price: decimal.NewFromInt(18500), MinStock: 20, MaxStock: 200},
		{SKU: "MAD-ROBLE-T25", Name: "Tabla de roble 25mm", CategoryID: categoryIDs["Maderas"], Unit: "m2", Price: decimal.NewFromInt(92000), MinStock: 10, MaxStock: 80},
		{SKU: "TAB-MDF-15", Name: "Tablero MDF 15mm 2.44x1.83", CategoryID: categoryIDs["Tableros"], Unit: "unidad", Price: decimal.NewFromInt(145000), MinStock: 15, MaxStock: 100},
		{SKU: "HER-BIS-35", Name: "Bisagra cazoleta 35mm", CategoryID: categoryIDs["Herrajes"], Unit: "paquete", Price: decimal.NewFromInt(7800), MinStock: 50, MaxStock: 500},
	}
	for _, in := range products {
		out, err := productUC.Create(ctx, &in)
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("sku", in.SKU).Msg("producto ya existe, se omite")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("sku", in.SKU).Msg("crear producto")
		}
		log.Info().Str("sku", out.SKU).Str("name", out.Name).Msg("producto creado")
	}

	log.Info().Msg("seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
