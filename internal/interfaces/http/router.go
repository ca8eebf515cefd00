package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/ledger"
	"github.com/jhoicas/Bodega-api/internal/application/orders"
	"github.com/jhoicas/Bodega-api/internal/domain/order"
	"github.com/jhoicas/Bodega-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC    *orders.OrderUseCase
	SaleUC     *inventory.SaleUseCase
	StockUC    *inventory.StockUseCase
	LowStockUC *inventory.LowStockUseCase
	LedgerUC   *ledger.LedgerUseCase
	JWTSecret  string // vacío = rutas sin autenticación
	JWTIssuer  string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Con JWT_SECRET: token obligatorio y roles por ruta. Sin él, todo queda abierto.
	auth := func(...string) []fiber.Handler { return nil }
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
		auth = func(roles ...string) []fiber.Handler { return []fiber.Handler{RequireRole(roles...)} }
	}
	route := func(handlers []fiber.Handler, h fiber.Handler) []fiber.Handler {
		out := make([]fiber.Handler, 0, len(handlers)+1)
		return append(append(out, handlers...), h)
	}
	bodega := auth(jwt.RoleAdmin, jwt.RoleBodeguero)
	anyRole := auth(jwt.RoleAdmin, jwt.RoleBodeguero, jwt.RoleFarmacia)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Post("/bodega/cancelar-pedido", route(bodega, orderHandler.Cancel(order.OriginBodega))...)
	api.Post("/farmacias/cancelar-pedido", route(anyRole, orderHandler.Cancel(order.OriginFarmacia))...)
	api.Post("/bodega/confirmar-pedido", route(bodega, orderHandler.Confirm)...)
	api.Post("/bodega/marcar-pedido-completado", route(bodega, orderHandler.Complete)...)
	api.Get("/pedidos/:id", route(anyRole, orderHandler.GetByID)...)

	// Ventas
	saleHandler := NewSaleHandler(deps.SaleUC)
	api.Post("/ventas-bodega", route(bodega, saleHandler.Record)...)

	// Stock
	stockHandler := NewStockHandler(deps.StockUC)
	api.Put("/medicamentos-bodega/reabastecer-multiple", route(bodega, stockHandler.ReplenishBatch)...)
	api.Put("/medicamentos-bodega/:id/reabastecer", route(bodega, stockHandler.Replenish)...)
	api.Post("/bodega/actualizar-stock", route(bodega, stockHandler.SyncPharmacy)...)

	// Caja
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Post("/transacciones-bodega", route(bodega, ledgerHandler.RecordMovement)...)
	api.Get("/movimientos-bodega", route(bodega, ledgerHandler.ListMovements)...)
	api.Get("/saldo-bodega", route(bodega, ledgerHandler.GetBalance)...)

	// Inventario (consultas)
	inventoryHandler := NewInventoryHandler(deps.LowStockUC)
	api.Get("/inventario-bodega", route(anyRole, inventoryHandler.List)...)
	api.Get("/inventario-bodega/bajo-stock", route(anyRole, inventoryHandler.LowStock)...)
	api.Get("/inventario-bodega/bajo-stock/pdf", route(anyRole, inventoryHandler.LowStockPDF)...)
}
