package handlers

import (
	"app/database"
	"app/models"
	"app/report"
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// loadSaleDetails builds the normalized sale details every report folds over.
// Sales without a matching product are dropped from reporting and logged.
func loadSaleDetails(ctx context.Context, categoryID string) ([]models.SaleDetail, int, error) {
	db := database.GetDB()

	sales, err := loadSales(ctx, db)
	if err != nil {
		return nil, 0, err
	}
	products, err := loadProducts(ctx, db)
	if err != nil {
		return nil, 0, err
	}

	details, dropped := report.NormalizeAll(sales, products)
	for _, sale := range dropped {
		log.Printf("⚠️ Sale %d references unknown product %s, excluded from reports", sale.ID, sale.ProductID)
	}

	if categoryID != "" {
		filtered := details[:0]
		for _, d := range details {
			if d.CategoryID == categoryID {
				filtered = append(filtered, d)
			}
		}
		details = filtered
	}
	return details, len(dropped), nil
}

// HandleDailyReport returns the sales of one calendar day grouped by product.
// The date query param takes MM/DD/YYYY; it defaults to today.
func HandleDailyReport(c *fiber.Ctx) error {
	details, _, err := loadSaleDetails(context.Background(), c.Query("categoryId"))
	if err != nil {
		log.Printf("Error building daily report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build daily report"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": report.Daily(details, c.Query("date"))})
}

// HandleMonthlyReport returns per-month totals, most recent month first.
func HandleMonthlyReport(c *fiber.Ctx) error {
	details, _, err := loadSaleDetails(context.Background(), c.Query("categoryId"))
	if err != nil {
		log.Printf("Error building monthly report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build monthly report"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": report.Monthly(details)})
}

// HandleYearlyReport returns per-year totals, most recent year first.
func HandleYearlyReport(c *fiber.Ctx) error {
	details, _, err := loadSaleDetails(context.Background(), c.Query("categoryId"))
	if err != nil {
		log.Printf("Error building yearly report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build yearly report"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": report.Yearly(details)})
}

// HandleTopProducts returns the ten most-sold products with their share of
// all units sold.
func HandleTopProducts(c *fiber.Ctx) error {
	details, _, err := loadSaleDetails(context.Background(), c.Query("categoryId"))
	if err != nil {
		log.Printf("Error building top products report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build top products report"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": report.TopProducts(details, 10)})
}

// HandleProfitReport returns one row per sale with purchase cost, revenue and
// profit, most recent sale first.
func HandleProfitReport(c *fiber.Ctx) error {
	details, _, err := loadSaleDetails(context.Background(), c.Query("categoryId"))
	if err != nil {
		log.Printf("Error building profit report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to build profit report"})
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   report.ProfitRows(details),
		"totals": report.Totals(details),
	})
}

// HandleExportReport streams the profit report as an xlsx workbook.
func HandleExportReport(c *fiber.Ctx) error {
	details, _, err := loadSaleDetails(context.Background(), c.Query("categoryId"))
	if err != nil {
		log.Printf("Error exporting report: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to export report"})
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Sale ID", "Product ID", "Product Name", "Category", "Sold Date", "Purchase Total", "Selling Total", "Profit"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	profitRows := report.ProfitRows(details)
	for i, row := range profitRows {
		values := []interface{}{row.SaleID, row.ProductID, row.ProductName, row.CategoryID,
			row.SoldDate, row.TotalPurchasePrice, row.TotalSellingPrice, row.Profit}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	totals := report.Totals(details)
	summaryRow := len(profitRows) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Totals")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", summaryRow), totals.TotalPurchasePrice)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), totals.TotalSellingPrice)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow), totals.TotalProfit)

	f.NewSheet("Monthly")
	writePeriodHeader(f, "Monthly", "Month")
	for i, entry := range report.Monthly(details) {
		writePeriodRow(f, "Monthly", i+2, entry.Month, entry.Totals)
	}

	f.NewSheet("Yearly")
	writePeriodHeader(f, "Yearly", "Year")
	for i, entry := range report.Yearly(details) {
		writePeriodRow(f, "Yearly", i+2, entry.Year, entry.Totals)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error writing report workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to export report"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.xlsx"`)
	return c.Send(buf.Bytes())
}

func writePeriodHeader(f *excelize.File, sheet, label string) {
	f.SetCellValue(sheet, "A1", label)
	f.SetCellValue(sheet, "B1", "Purchase Total")
	f.SetCellValue(sheet, "C1", "Selling Total")
	f.SetCellValue(sheet, "D1", "Profit")
}

func writePeriodRow(f *excelize.File, sheet string, row int, period string, totals models.PeriodTotals) {
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), period)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), totals.TotalPurchasePrice)
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), totals.TotalSellingPrice)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), totals.TotalProfit)
}
