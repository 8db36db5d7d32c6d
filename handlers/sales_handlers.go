package handlers

import (
	"app/database"
	"app/models"
	"app/report"
	"app/utils"
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListSales returns sales joined with their product's display fields and
// the engine-computed total selling price, most recent first.
func HandleListSales(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	sales, err := loadSales(ctx, db)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve sales"})
	}
	products, err := loadProducts(ctx, db)
	if err != nil {
		log.Printf("Error loading products for sales list: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve sales"})
	}

	index := make(map[string]models.Product, len(products))
	for _, p := range products {
		index[p.ProductID] = p
	}

	enriched := make([]models.SaleWithProduct, 0, len(sales))
	for _, sale := range sales {
		row := models.SaleWithProduct{Sale: sale}
		if p, ok := index[sale.ProductID]; ok {
			row.ProductName = p.ProductName
			row.CategoryID = p.CategoryID
			row.Subcategories = p.Subcategories
		}
		qty := report.QuantityOfSale(sale)
		row.TotalSellingPrice = report.Round2(report.ComputeDiscountedTotal(sale.SellingPrice, qty.Units, report.DiscountOfSale(sale)))
		enriched = append(enriched, row)
	}
	// most recent first
	for i, j := 0, len(enriched)-1; i < j; i, j = i+1, j-1 {
		enriched[i], enriched[j] = enriched[j], enriched[i]
	}

	page := c.QueryInt("page", 0)
	if page <= 0 {
		// Legacy clients expect the bare array.
		return c.JSON(enriched)
	}
	pageSize := c.QueryInt("pageSize", 10)
	start := (page - 1) * pageSize
	if start > len(enriched) {
		start = len(enriched)
	}
	end := start + pageSize
	if end > len(enriched) {
		end = len(enriched)
	}
	return c.JSON(models.PaginatedSalesResponse{
		Data:       enriched[start:end],
		Pagination: utils.CreatePagination(len(enriched), page, pageSize),
	})
}

// HandleGetSaleProduct fetches the product details the sale form needs when a
// product id is picked.
func HandleGetSaleProduct(c *fiber.Ctx) error {
	return HandleGetProduct(c)
}

// HandleCreateSale records a sale: it prices the line through the engine,
// deducts stock, assigns an invoice number and returns the invoice payload.
func HandleCreateSale(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var input models.CreateSaleRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "productId is required"})
	}
	if input.DiscountKind == "" {
		input.DiscountKind = models.DiscountFlat
	}
	// A non-positive size quantity would flip the stock delta on deduction.
	for size, qty := range input.SizeQuantities {
		if qty <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "sizeQuantities value for " + size + " must be positive"})
		}
	}

	// Load the product being sold.
	var product models.Product
	var sizesRaw []byte
	err := db.QueryRow(ctx, `
		SELECT id, product_id, product_name, purchase_price, selling_price, has_sizes,
		       COALESCE(quantity, 0), size_quantities
		FROM products WHERE product_id = $1
	`, input.ProductID).Scan(
		&product.ID, &product.ProductID, &product.ProductName, &product.PurchasePrice,
		&product.SellingPrice, &product.HasSizes, &product.Quantity, &sizesRaw,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
		}
		log.Printf("Error loading product %s for sale: %v", input.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to record sale"})
	}

	if product.HasSizes && len(input.SizeQuantities) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "sizeQuantities is required for sized products"})
	}
	if !product.HasSizes && (input.Quantity == nil || *input.Quantity <= 0) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "quantity is required"})
	}

	totalUnits := 0
	if product.HasSizes {
		for _, qty := range input.SizeQuantities {
			totalUnits += qty
		}
	} else {
		totalUnits = *input.Quantity
	}

	total := report.ComputeDiscountedTotal(product.SellingPrice, totalUnits,
		models.Discount{Kind: input.DiscountKind, Value: input.Discount})

	tx, err := db.Begin(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to start transaction"})
	}
	defer tx.Rollback(ctx)

	invoiceNumber, err := utils.GenerateInvoiceNumber(ctx, tx)
	if err != nil {
		log.Printf("Error generating invoice number: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to record sale"})
	}

	var sizesJSON []byte
	var quantity *int
	if product.HasSizes {
		sizesJSON, _ = json.Marshal(input.SizeQuantities)
	} else {
		quantity = input.Quantity
	}

	sale := models.Sale{
		ProductID:     input.ProductID,
		SellingPrice:  product.SellingPrice,
		Discount:      input.Discount,
		DiscountKind:  input.DiscountKind,
		InvoiceNumber: &invoiceNumber,
	}
	var saleDateRaw interface{}
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (product_id, selling_price, discount, discount_kind, quantity, size_quantities, sale_date, invoice_number)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_DATE, $7)
		RETURNING id, sale_date, created_at, updated_at
	`, sale.ProductID, sale.SellingPrice, sale.Discount, sale.DiscountKind, quantity, sizesJSON, invoiceNumber,
	).Scan(&sale.ID, &saleDateRaw, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		log.Printf("Error inserting sale for %s: %v", input.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to record sale"})
	}
	sale.SaleDate = saleDateRaw
	if product.HasSizes {
		sale.SizeQuantities = make(map[string]interface{}, len(input.SizeQuantities))
		for size, qty := range input.SizeQuantities {
			sale.SizeQuantities[size] = qty
		}
	} else {
		sale.Quantity = *input.Quantity
	}

	// Deduct the sold units from stock.
	if product.HasSizes {
		deltas := make(map[string]int, len(input.SizeQuantities))
		for size, qty := range input.SizeQuantities {
			deltas[size] = -qty
		}
		err = applyProductStockChange(ctx, tx, input.ProductID, nil, deltas)
	} else {
		delta := -*input.Quantity
		err = applyProductStockChange(ctx, tx, input.ProductID, &delta, nil)
	}
	if err != nil {
		log.Printf("Error deducting stock for %s: %v", input.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update stock"})
	}

	if err := tx.Commit(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to commit transaction"})
	}
	log.Printf("🧾 Sale %d recorded for %s, invoice %s", sale.ID, sale.ProductID, utils.PointerToString(sale.InvoiceNumber))

	invoice := fiber.Map{
		"saleId":            sale.ID,
		"invoiceNumber":     invoiceNumber,
		"productId":         product.ProductID,
		"productName":       product.ProductName,
		"sellingPrice":      product.SellingPrice,
		"quantity":          sale.Quantity,
		"sizeQuantities":    sale.SizeQuantities,
		"discount":          input.Discount,
		"totalSellingPrice": report.Round2(total),
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "sale": sale, "invoice": invoice})
}
