package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// --- Products ---
	api.Get("/products", handlers.HandleListProducts)
	api.Post("/products", handlers.HandleCreateProduct)
	api.Get("/products/:productId", handlers.HandleGetProduct)
	api.Put("/products/:productId", handlers.HandleUpdateProduct)
	api.Put("/products/:productId/stock", handlers.HandleUpdateProductStock)
	api.Delete("/products/:productId", handlers.HandleDeleteProduct)

	// --- Stockroom inventory ---
	api.Get("/inventory", handlers.HandleListInventory)
	api.Post("/inventory", handlers.HandleCreateInventoryItem)
	api.Get("/inventory/:id", handlers.HandleGetInventoryItem)
	api.Put("/inventory/:id", handlers.HandleUpdateInventoryItem)
	api.Delete("/inventory/:id", handlers.HandleDeleteInventoryItem)

	// --- Categories ---
	api.Get("/categories", handlers.HandleListCategories)
	api.Post("/categories", handlers.HandleCreateCategory)
	api.Put("/categories/:id", handlers.HandleUpdateCategory)
	api.Delete("/categories/:id", handlers.HandleDeleteCategory)

	// --- Suppliers ---
	api.Get("/suppliers", handlers.HandleListSuppliers)
	api.Post("/suppliers", handlers.HandleCreateSupplier)
	api.Put("/suppliers/:id", handlers.HandleUpdateSupplier)
	api.Delete("/suppliers/:id", handlers.HandleDeleteSupplier)

	// --- Employees & Salaries ---
	api.Get("/employees", handlers.HandleListEmployees)
	api.Post("/employees", handlers.HandleCreateEmployee)
	api.Put("/employees/:id", handlers.HandleUpdateEmployee)
	api.Delete("/employees/:id", handlers.HandleDeleteEmployee)
	api.Get("/employees/:id/salaries", handlers.HandleListSalaryPayments)
	api.Post("/employees/:id/salaries", handlers.HandleCreateSalaryPayment)

	// --- Sales ---
	api.Get("/sales", handlers.HandleListSales)
	api.Post("/sales", handlers.HandleCreateSale)
	api.Get("/sales/product/:productId", handlers.HandleGetSaleProduct)

	// --- Returns ---
	api.Get("/returns", handlers.HandleListReturns)
	api.Post("/returns", handlers.HandleCreateReturn)
	api.Put("/returns/:id/fulfill", handlers.HandleFulfillReturn)

	// --- Reports ---
	api.Get("/reports/daily", handlers.HandleDailyReport)
	api.Get("/reports/monthly", handlers.HandleMonthlyReport)
	api.Get("/reports/yearly", handlers.HandleYearlyReport)
	api.Get("/reports/top-products", handlers.HandleTopProducts)
	api.Get("/reports/profit", handlers.HandleProfitReport)
	api.Get("/reports/export", handlers.HandleExportReport)

	// --- Dashboard & Insights ---
	api.Get("/dashboard/summary", handlers.HandleGetDashboardSummary)
	api.Get("/insights/sales", handlers.HandleSalesInsights)
}
