package handlers

import (
	"app/database"
	"app/models"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListReturns returns every recorded return, newest first.
func HandleListReturns(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `
		SELECT id, product_id, sale_id, return_date, returned_date, reason,
		       size_quantities, condition, created_at
		FROM returns
		ORDER BY id DESC
	`)
	if err != nil {
		log.Printf("Error listing returns: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve returns"})
	}
	defer rows.Close()

	returns := []models.Return{}
	for rows.Next() {
		var r models.Return
		var sizesRaw []byte
		if err := rows.Scan(&r.ID, &r.ProductID, &r.SaleID, &r.ReturnDate, &r.ReturnedDate,
			&r.Reason, &sizesRaw, &r.Condition, &r.CreatedAt); err != nil {
			log.Printf("Error scanning return row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve returns"})
		}
		if len(sizesRaw) > 0 {
			if err := json.Unmarshal(sizesRaw, &r.SizeQuantities); err != nil {
				log.Printf("Error decoding size quantities for return %d: %v", r.ID, err)
			}
		}
		returns = append(returns, r)
	}
	return c.JSON(returns)
}

// HandleCreateReturn records a return and applies its stock adjustment in the
// same transaction. The condition decides where the units go:
//
//	ADD_PRODUCT_QUANTITY    restock the product
//	DEDUCT_SALE_QUANTITY    shrink the original sale's quantities
//	DEDUCT_PRODUCT_QUANTITY remove damaged units from product stock
func HandleCreateReturn(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var input models.CreateReturnRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "productId is required"})
	}
	switch input.Condition {
	case models.ReturnAddProductQuantity, models.ReturnDeductProductQuantity:
	case models.ReturnDeductSaleQuantity:
		if input.SaleID == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "saleId is required for this condition"})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid return condition"})
	}
	if len(input.SizeQuantities) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "sizeQuantities is required"})
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to start transaction"})
	}
	defer tx.Rollback(ctx)

	sizesJSON, _ := json.Marshal(input.SizeQuantities)
	ret := models.Return{
		ProductID:      input.ProductID,
		SaleID:         input.SaleID,
		Reason:         input.Reason,
		SizeQuantities: input.SizeQuantities,
		Condition:      input.Condition,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO returns (product_id, sale_id, return_date, reason, size_quantities, condition)
		VALUES ($1, $2, CURRENT_DATE, $3, $4, $5)
		RETURNING id, return_date, created_at
	`, input.ProductID, input.SaleID, input.Reason, sizesJSON, input.Condition,
	).Scan(&ret.ID, &ret.ReturnDate, &ret.CreatedAt)
	if err != nil {
		log.Printf("Error inserting return for %s: %v", input.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to record return"})
	}

	switch input.Condition {
	case models.ReturnAddProductQuantity:
		err = adjustProductForReturn(ctx, tx, input.ProductID, input.SizeQuantities, +1)
	case models.ReturnDeductProductQuantity:
		err = adjustProductForReturn(ctx, tx, input.ProductID, input.SizeQuantities, -1)
	case models.ReturnDeductSaleQuantity:
		err = deductSaleQuantities(ctx, tx, *input.SaleID, input.SizeQuantities)
	}
	if err != nil {
		log.Printf("Error adjusting stock for return %d: %v", ret.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to adjust stock"})
	}

	if err := tx.Commit(ctx); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to commit transaction"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": ret})
}

// HandleFulfillReturn stamps the return as handed back to the customer.
func HandleFulfillReturn(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid return id"})
	}

	var returnedDate time.Time
	err = db.QueryRow(ctx, `
		UPDATE returns SET returned_date = CURRENT_DATE
		WHERE id = $1 AND returned_date IS NULL
		RETURNING returned_date
	`, id).Scan(&returnedDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Return not found or already fulfilled"})
		}
		log.Printf("Error fulfilling return %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fulfill return"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"id": id, "returnedDate": returnedDate}})
}

// adjustProductForReturn moves returned units in or out of product stock.
// Products without sizes take the summed units against the scalar quantity.
func adjustProductForReturn(ctx context.Context, tx pgx.Tx, productID string, sizes map[string]int, sign int) error {
	var hasSizes bool
	if err := tx.QueryRow(ctx, `SELECT has_sizes FROM products WHERE product_id = $1 FOR UPDATE`, productID).Scan(&hasSizes); err != nil {
		return err
	}
	if hasSizes {
		deltas := make(map[string]int, len(sizes))
		for size, qty := range sizes {
			deltas[size] = sign * qty
		}
		return applyProductStockChange(ctx, tx, productID, nil, deltas)
	}
	total := 0
	for _, qty := range sizes {
		total += qty
	}
	delta := sign * total
	return applyProductStockChange(ctx, tx, productID, &delta, nil)
}

// deductSaleQuantities shrinks the sold quantities recorded on the original
// sale so its line total reflects the return. Buckets never go below zero.
func deductSaleQuantities(ctx context.Context, tx pgx.Tx, saleID int64, sizes map[string]int) error {
	var quantity *int
	var sizesRaw []byte
	err := tx.QueryRow(ctx, `
		SELECT quantity, size_quantities FROM sales WHERE id = $1 FOR UPDATE
	`, saleID).Scan(&quantity, &sizesRaw)
	if err != nil {
		return err
	}

	if len(sizesRaw) > 0 {
		buckets := map[string]int{}
		if err := json.Unmarshal(sizesRaw, &buckets); err != nil {
			return err
		}
		for size, qty := range sizes {
			buckets[size] -= qty
			if buckets[size] < 0 {
				buckets[size] = 0
			}
		}
		updated, err := json.Marshal(buckets)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE sales SET size_quantities = $1, updated_at = NOW() WHERE id = $2`, updated, saleID)
		return err
	}

	total := 0
	for _, qty := range sizes {
		total += qty
	}
	_, err = tx.Exec(ctx, `
		UPDATE sales SET quantity = GREATEST(COALESCE(quantity, 0) - $1, 0), updated_at = NOW()
		WHERE id = $2
	`, total, saleID)
	return err
}
