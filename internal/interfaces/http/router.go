package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/maderas-pos/internal/application/auth"
	"github.com/jhoicas/maderas-pos/internal/application/inventory"
	"github.com/jhoicas/maderas-pos/internal/application/reports"
	"github.com/jhoicas/maderas-pos/internal/application/sales"
	"github.com/jhoicas/maderas-pos/internal/application/usecase"
	"github.com/jhoicas/maderas-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *usecase.CustomerUseCase
	AdjustStockUC *inventory.AdjustStockUseCase
	StockQueryUC  *inventory.StockQueryUseCase
	CreateSaleUC  *sales.CreateSaleUseCase
	SaleStatusUC  *sales.UpdateStatusUseCase
	SaleQueryUC   *sales.SaleQueryUseCase
	ReceiptUC     *sales.ReceiptUseCase
	ReportUC      *reports.UseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; registrar usuarios es de admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido; escritura admin y bodeguero)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	catWrite := categories.Group("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	catWrite.Post("/", categoryHandler.Create)
	catWrite.Put("/:id", categoryHandler.Update)
	catWrite.Delete("/:id", categoryHandler.Delete)

	// Products (protegido; escritura admin y bodeguero)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	prodWrite := products.Group("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	prodWrite.Post("/", productHandler.Create)
	prodWrite.Put("/:id", productHandler.Update)
	prodWrite.Delete("/:id", productHandler.Delete)

	// Inventory (protegido; ajustes admin y bodeguero)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStockUC, deps.StockQueryUC)
	invGroup.Get("/", inventoryHandler.ListLevels)
	invGroup.Get("/low", inventoryHandler.ListLow)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/:product_id", inventoryHandler.GetLevel)
	invAdjust := invGroup.Group("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	invAdjust.Post("/:product_id/add", inventoryHandler.AddStock)
	invAdjust.Post("/:product_id/remove", inventoryHandler.RemoveStock)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSaleUC, deps.SaleStatusUC, deps.SaleQueryUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Patch("/:id/status", saleHandler.UpdateStatus)

	// Reports (protegido; solo admin y bodeguero)
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.SalesByDay)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
}
