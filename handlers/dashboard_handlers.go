package handlers

import (
	"app/database"
	"app/models"
	"app/report"
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleGetDashboardSummary returns the owner dashboard payload: headline
// counts, all-time totals, the top sellers and today's report.
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	sales, err := loadSales(ctx, db)
	if err != nil {
		log.Printf("Error loading sales for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build dashboard summary"})
	}
	products, err := loadProducts(ctx, db)
	if err != nil {
		log.Printf("Error loading products for dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build dashboard summary"})
	}

	details, dropped := report.NormalizeAll(sales, products)
	for _, sale := range dropped {
		log.Printf("⚠️ Sale %d references unknown product %s, excluded from dashboard", sale.ID, sale.ProductID)
	}

	summary := models.DashboardSummary{
		TotalProducts: len(products),
		TotalSales:    len(sales),
		DroppedSales:  len(dropped),
		Totals:        report.Totals(details),
		TopProducts:   report.TopProducts(details, 10),
		Today:         report.Daily(details, ""),
	}
	return c.JSON(fiber.Map{"status": "success", "data": summary})
}
