package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/maderas-pos/internal/application/reports"
)

// ReportHandler reportes de ventas e inventario (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesByDay godoc
// @Summary      Ventas por día
// @Description  Agrega las ventas completadas por día calendario. Rango por defecto: últimos 30 días.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.SalesReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesByDay(c *fiber.Ctx) error {
	out, err := h.uc.SalesByDay(c.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to     query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit  query  int     false  "Cantidad de productos"  default(10)
// @Success      200    {array}  dto.TopProductDTO
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.Context(), c.Query("from"), c.Query("to"), c.QueryInt("limit", 10))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
