package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/billing"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	StockUpdateUC *usecase.StockUpdateUseCase
	AnalyticsUC   *usecase.AnalyticsUseCase
	CreateBill    *billing.CreateBillUseCase
	BillUC        *billing.BillUseCase
	PDFUC         *billing.PDFUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Lectura de catálogo, ventas y
// analítica son públicas (el punto de venta corre sin sesión); las
// mutaciones administrativas exigen Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products (lectura pública)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)

	// Bills (registro y lectura públicos)
	billHandler := NewBillHandler(deps.CreateBill, deps.BillUC, deps.PDFUC)
	api.Post("/bills", billHandler.Create)
	api.Get("/bills", billHandler.List)
	api.Get("/bills/:id", billHandler.GetByID)
	api.Get("/bills/:id/pdf", billHandler.ReceiptPDF)

	// Analytics (público)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics := api.Group("/analytics")
	analytics.Get("/today", analyticsHandler.Today)
	analytics.Get("/monthly", analyticsHandler.CurrentMonth)
	analytics.Get("/best-selling", analyticsHandler.BestSelling)
	analytics.Get("/daily-sales", analyticsHandler.DailySales)
	analytics.Get("/monthly-sales", analyticsHandler.MonthlySales)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/products", productHandler.Create)
	protected.Patch("/products/:id/stock", productHandler.UpdateStock)
	protected.Delete("/products/:id", productHandler.Delete)

	protected.Delete("/bills/:id", billHandler.Delete)

	stockUpdateHandler := NewStockUpdateHandler(deps.StockUpdateUC)
	protected.Get("/stock-updates", stockUpdateHandler.History)
	protected.Get("/stock-updates/product/:id", stockUpdateHandler.HistoryByProduct)
}
