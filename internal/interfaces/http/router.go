package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/filtros-erp/internal/application/auth"
	"github.com/jhoicas/filtros-erp/internal/application/catalog"
	"github.com/jhoicas/filtros-erp/internal/application/counterparty"
	"github.com/jhoicas/filtros-erp/internal/application/dashboard"
	"github.com/jhoicas/filtros-erp/internal/application/inventory"
	"github.com/jhoicas/filtros-erp/internal/application/orders"
	"github.com/jhoicas/filtros-erp/internal/application/purchases"
	"github.com/jhoicas/filtros-erp/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CatalogUC      *catalog.UseCase
	StockUC        *inventory.StockUseCase
	OrderUC        *orders.UseCase
	OrderPDFUC     *orders.PDFUseCase
	PurchaseUC     *purchases.UseCase
	CounterpartyUC *counterparty.UseCase
	DashboardUC    *dashboard.UseCase
	ReportUC       *reports.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// RBAC por grupo:
//   - catálogo (escritura) y movimientos de stock: admin, bodega
//   - órdenes y distribuidores (escritura): admin, ventas
//   - compras y proveedores (escritura): admin, compras
//   - lecturas, dashboard y reportes: cualquier usuario autenticado
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	warehouse := RequireRole("admin", "bodega")
	sales := RequireRole("admin", "ventas")
	procurement := RequireRole("admin", "compras")

	// Catálogo (protegido; escritura solo bodega)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", warehouse, itemHandler.Create)
	items.Put("/:id", warehouse, itemHandler.Update)
	items.Delete("/:id", warehouse, itemHandler.Delete)

	// Movimientos de stock (protegido, solo bodega)
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	items.Get("/:id/movements", inventoryHandler.History)
	items.Post("/:id/movements", warehouse, inventoryHandler.ApplyAction)

	// Órdenes de venta (protegido; escritura solo ventas)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/pdf", orderHandler.DownloadPDF)
	ordersGroup.Post("/", sales, orderHandler.Create)
	ordersGroup.Put("/:id", sales, orderHandler.Update)
	ordersGroup.Patch("/:id/status", sales, orderHandler.UpdateStatus)
	ordersGroup.Patch("/:id/items/:itemID/status", sales, orderHandler.UpdateItemStatus)
	ordersGroup.Delete("/:id", sales, orderHandler.Delete)

	// Compras de materias primas (protegido; escritura solo compras)
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Post("/", procurement, purchaseHandler.Create)
	purchasesGroup.Put("/:id", procurement, purchaseHandler.Update)
	purchasesGroup.Patch("/:id/status", procurement, purchaseHandler.UpdateStatus)
	purchasesGroup.Delete("/:id", procurement, purchaseHandler.Delete)

	// Distribuidores y proveedores (protegido)
	counterpartyHandler := NewCounterpartyHandler(deps.CounterpartyUC)
	distributors := protected.Group("/distributors")
	distributors.Get("/", counterpartyHandler.ListDistributors)
	distributors.Get("/:id", counterpartyHandler.GetDistributor)
	distributors.Post("/", sales, counterpartyHandler.CreateDistributor)
	distributors.Put("/:id", sales, counterpartyHandler.UpdateDistributor)
	distributors.Delete("/:id", sales, counterpartyHandler.DeleteDistributor)

	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", counterpartyHandler.ListSuppliers)
	suppliers.Get("/:id", counterpartyHandler.GetSupplier)
	suppliers.Post("/", procurement, counterpartyHandler.CreateSupplier)
	suppliers.Put("/:id", procurement, counterpartyHandler.UpdateSupplier)
	suppliers.Delete("/:id", procurement, counterpartyHandler.DeleteSupplier)

	// Dashboard y reportes (protegido, lectura)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/kardex/:id", reportHandler.Kardex)
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
}
