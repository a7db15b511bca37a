package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/maderas-pos/internal/application/dto"
	"github.com/jhoicas/maderas-pos/internal/application/inventory"
)

// InventoryHandler maneja niveles de stock, ajustes manuales y el log de
// movimientos (protegido).
type InventoryHandler struct {
	adjustUC *inventory.AdjustStockUseCase
	queryUC  *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjustUC *inventory.AdjustStockUseCase, queryUC *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{adjustUC: adjustUC, queryUC: queryUC}
}

// AddStock godoc
// @Summary      Entrada manual de stock
// @Description  Suma stock y registra un movimiento "in". Con unit_cost recalcula el costo promedio.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body        body  dto.AdjustStockRequest  true  "Cantidad, motivo y costo opcional"
// @Success      200         {object}  dto.InventoryLevelResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id}/add [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.adjustUC.AddStock(c.Context(), GetUserID(c), productID, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// RemoveStock godoc
// @Summary      Salida manual de stock
// @Description  Resta stock y registra un movimiento "out". Falla si dejaría el stock negativo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body        body  dto.AdjustStockRequest  true  "Cantidad y motivo"
// @Success      200         {object}  dto.InventoryLevelResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      409         {object}  dto.StockErrorResponse
// @Router       /api/inventory/{product_id}/remove [post]
func (h *InventoryHandler) RemoveStock(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.adjustUC.RemoveStock(c.Context(), GetUserID(c), productID, &in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetLevel godoc
// @Summary      Stock actual de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200         {object}  dto.InventoryLevelResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/inventory/{product_id} [get]
func (h *InventoryHandler) GetLevel(c *fiber.Ctx) error {
	out, err := h.queryUC.GetLevel(c.Context(), c.Params("product_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ListLevels godoc
// @Summary      Niveles de stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.InventoryLevelResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListLevels(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.queryUC.ListLevels(c.Context(), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ListLow godoc
// @Summary      Productos con stock bajo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryLevelResponse
// @Router       /api/inventory/low [get]
func (h *InventoryHandler) ListLow(c *fiber.Ctx) error {
	out, err := h.queryUC.ListLow(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Log de movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, se espera YYYY-MM-DD"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, se espera YYYY-MM-DD"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.queryUC.ListMovements(c.Context(), c.Query("product_id"), from, to, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// parseDateQuery convierte YYYY-MM-DD en *time.Time; vacío devuelve nil.
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
