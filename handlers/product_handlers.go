package handlers

import (
	"app/database"
	"app/models"
	"app/utils"
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListProducts returns the product catalog, optionally paginated.
func HandleListProducts(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	products, err := loadProducts(ctx, db)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve products"})
	}

	page := c.QueryInt("page", 0)
	if page <= 0 {
		// Legacy clients expect the bare array.
		return c.JSON(products)
	}

	pageSize := c.QueryInt("pageSize", 10)
	start := (page - 1) * pageSize
	if start > len(products) {
		start = len(products)
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}

	return c.JSON(models.PaginatedProductsResponse{
		Data:       products[start:end],
		Pagination: utils.CreatePagination(len(products), page, pageSize),
	})
}

// HandleGetProduct fetches one product by its business key.
func HandleGetProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	productID := c.Params("productId")

	query := `
		SELECT id, product_id, product_name, category_id, purchase_price, selling_price,
		       has_sizes, COALESCE(quantity, 0), size_quantities, subcategories, status,
		       created_at, updated_at
		FROM products
		WHERE product_id = $1
	`
	var p models.Product
	var sizesRaw, subcatRaw []byte
	err := db.QueryRow(ctx, query, productID).Scan(
		&p.ID, &p.ProductID, &p.ProductName, &p.CategoryID, &p.PurchasePrice, &p.SellingPrice,
		&p.HasSizes, &p.Quantity, &sizesRaw, &subcatRaw, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
		}
		log.Printf("Error fetching product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve product"})
	}
	if len(sizesRaw) > 0 {
		_ = json.Unmarshal(sizesRaw, &p.SizeQuantities)
	}
	if len(subcatRaw) > 0 {
		_ = json.Unmarshal(subcatRaw, &p.Subcategories)
	}

	return c.JSON(p)
}

// HandleCreateProduct adds a product to the catalog.
func HandleCreateProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if p.ProductID == "" || p.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "productId and productName are required"})
	}
	if p.Status == "" {
		p.Status = models.ProductInStock
	}
	if p.HasSizes {
		p.Quantity = 0
	} else {
		p.SizeQuantities = nil
	}

	sizesJSON, _ := json.Marshal(p.SizeQuantities)
	query := `
		INSERT INTO products (product_id, product_name, category_id, purchase_price, selling_price,
		                      has_sizes, quantity, size_quantities, subcategories, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(ctx, query,
		p.ProductID, p.ProductName, p.CategoryID, p.PurchasePrice, p.SellingPrice,
		p.HasSizes, p.Quantity, sizesJSON, p.Subcategories, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		log.Printf("Error creating product %s: %v", p.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": p})
}

// HandleUpdateProduct updates a product's catalog fields.
func HandleUpdateProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	productID := c.Params("productId")

	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if p.HasSizes {
		p.Quantity = 0
	} else {
		p.SizeQuantities = nil
	}

	sizesJSON, _ := json.Marshal(p.SizeQuantities)
	query := `
		UPDATE products
		SET product_name = $1, category_id = $2, purchase_price = $3, selling_price = $4,
		    has_sizes = $5, quantity = $6, size_quantities = $7, subcategories = $8,
		    status = $9, updated_at = NOW()
		WHERE product_id = $10
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(ctx, query,
		p.ProductName, p.CategoryID, p.PurchasePrice, p.SellingPrice,
		p.HasSizes, p.Quantity, sizesJSON, p.Subcategories, p.Status, productID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
		}
		log.Printf("Error updating product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update product"})
	}
	p.ProductID = productID

	return c.JSON(fiber.Map{"status": "success", "data": p})
}

// HandleUpdateProductStock adjusts the stock of one product, either the
// scalar quantity or one or more size buckets depending on hasSizes.
func HandleUpdateProductStock(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	productID := c.Params("productId")

	var req struct {
		Quantity       *int           `json:"quantity,omitempty"`
		SizeQuantities map[string]int `json:"sizeQuantities,omitempty"`
		Status         *string        `json:"status,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to start transaction"})
	}
	defer tx.Rollback(ctx)

	if err := applyProductStockChange(ctx, tx, productID, req.Quantity, req.SizeQuantities); err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
		}
		log.Printf("Error adjusting stock for %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to adjust stock"})
	}

	if req.Status != nil {
		if _, err := tx.Exec(ctx, `UPDATE products SET status = $1, updated_at = NOW() WHERE product_id = $2`, *req.Status, productID); err != nil {
			log.Printf("Error updating status for %s: %v", productID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update status"})
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to commit transaction"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProduct removes a product from the catalog.
func HandleDeleteProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	productID := c.Params("productId")

	tag, err := db.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete product"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// applyProductStockChange applies a delta to a product's stock inside tx:
// the scalar quantity for flat products, per-size buckets for sized ones.
// Buckets never go below zero.
func applyProductStockChange(ctx context.Context, tx pgx.Tx, productID string, quantityDelta *int, sizeDeltas map[string]int) error {
	if quantityDelta != nil {
		var newQuantity int
		err := tx.QueryRow(ctx,
			`UPDATE products SET quantity = GREATEST(quantity + $1, 0), updated_at = NOW() WHERE product_id = $2 RETURNING quantity`,
			*quantityDelta, productID,
		).Scan(&newQuantity)
		return err
	}

	if len(sizeDeltas) == 0 {
		return nil
	}

	var sizesRaw []byte
	if err := tx.QueryRow(ctx, `SELECT size_quantities FROM products WHERE product_id = $1 FOR UPDATE`, productID).Scan(&sizesRaw); err != nil {
		return err
	}
	var sizes []models.SizeQuantity
	if len(sizesRaw) > 0 {
		_ = json.Unmarshal(sizesRaw, &sizes)
	}

	index := make(map[string]int, len(sizes))
	for i, sq := range sizes {
		index[sq.Size] = i
	}
	for size, delta := range sizeDeltas {
		if i, ok := index[size]; ok {
			sizes[i].Quantity += delta
			if sizes[i].Quantity < 0 {
				sizes[i].Quantity = 0
			}
		} else if delta > 0 {
			sizes = append(sizes, models.SizeQuantity{Size: size, Quantity: delta})
		}
	}

	updated, _ := json.Marshal(sizes)
	_, err := tx.Exec(ctx, `UPDATE products SET size_quantities = $1, updated_at = NOW() WHERE product_id = $2`, updated, productID)
	return err
}
