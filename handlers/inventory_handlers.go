package handlers

import (
	"app/database"
	"app/models"
	"app/utils"
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListInventory returns every stockroom item ordered by name.
func HandleListInventory(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `
		SELECT id, name, description, category, unit_price, quantity, supplier_name, created_at, updated_at
		FROM inventory_items ORDER BY name
	`)
	if err != nil {
		log.Printf("Error listing inventory items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve inventory items"})
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		var description, supplierName sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.Category, &item.UnitPrice,
			&item.Quantity, &supplierName, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Printf("Error scanning inventory row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve inventory items"})
		}
		item.Description = utils.NullStringToStringPtr(description)
		item.SupplierName = utils.NullStringToStringPtr(supplierName)
		items = append(items, item)
	}
	return c.JSON(items)
}

// HandleGetInventoryItem fetches one stockroom item by id.
func HandleGetInventoryItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid inventory item id"})
	}

	var item models.InventoryItem
	var description, supplierName sql.NullString
	err = db.QueryRow(ctx, `
		SELECT id, name, description, category, unit_price, quantity, supplier_name, created_at, updated_at
		FROM inventory_items WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &description, &item.Category, &item.UnitPrice,
		&item.Quantity, &supplierName, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
		}
		log.Printf("Error fetching inventory item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve inventory item"})
	}
	item.Description = utils.NullStringToStringPtr(description)
	item.SupplierName = utils.NullStringToStringPtr(supplierName)
	return c.JSON(item)
}

// HandleCreateInventoryItem adds a stockroom item.
func HandleCreateInventoryItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "inventoryName is required"})
	}
	if item.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "inventoryQuantity must not be negative"})
	}

	err := db.QueryRow(ctx, `
		INSERT INTO inventory_items (name, description, category, unit_price, quantity, supplier_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, item.Name, item.Description, item.Category, item.UnitPrice, item.Quantity, item.SupplierName,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		log.Printf("Error creating inventory item %s: %v", item.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create inventory item"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": item})
}

// HandleUpdateInventoryItem replaces a stockroom item's fields.
func HandleUpdateInventoryItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid inventory item id"})
	}
	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "inventoryName is required"})
	}
	if item.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "inventoryQuantity must not be negative"})
	}

	err = db.QueryRow(ctx, `
		UPDATE inventory_items
		SET name = $1, description = $2, category = $3, unit_price = $4, quantity = $5, supplier_name = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, created_at, updated_at
	`, item.Name, item.Description, item.Category, item.UnitPrice, item.Quantity, item.SupplierName, id,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
		}
		log.Printf("Error updating inventory item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update inventory item"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": item})
}

// HandleDeleteInventoryItem removes a stockroom item.
func HandleDeleteInventoryItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid inventory item id"})
	}

	tag, err := db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting inventory item %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete inventory item"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
