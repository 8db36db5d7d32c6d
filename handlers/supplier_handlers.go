package handlers

import (
	"app/database"
	"app/models"
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListSuppliers returns every supplier ordered by name.
func HandleListSuppliers(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `
		SELECT id, name, brand_name, contact_name, contact_phone, address, notes, created_at, updated_at
		FROM suppliers ORDER BY name
	`)
	if err != nil {
		log.Printf("Error listing suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve suppliers"})
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.BrandName, &s.ContactName, &s.ContactPhone,
			&s.Address, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("Error scanning supplier row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve suppliers"})
		}
		suppliers = append(suppliers, s)
	}
	return c.JSON(suppliers)
}

// HandleCreateSupplier adds a supplier.
func HandleCreateSupplier(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var input models.Supplier
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "name is required"})
	}

	err := db.QueryRow(ctx, `
		INSERT INTO suppliers (name, brand_name, contact_name, contact_phone, address, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, input.Name, input.BrandName, input.ContactName, input.ContactPhone, input.Address, input.Notes,
	).Scan(&input.ID, &input.CreatedAt, &input.UpdatedAt)
	if err != nil {
		log.Printf("Error creating supplier %s: %v", input.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create supplier"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": input})
}

// HandleUpdateSupplier replaces a supplier's contact details.
func HandleUpdateSupplier(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid supplier id"})
	}
	var input models.Supplier
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "name is required"})
	}

	var updated models.Supplier
	err = db.QueryRow(ctx, `
		UPDATE suppliers
		SET name = $1, brand_name = $2, contact_name = $3, contact_phone = $4, address = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, name, brand_name, contact_name, contact_phone, address, notes, created_at, updated_at
	`, input.Name, input.BrandName, input.ContactName, input.ContactPhone, input.Address, input.Notes, id,
	).Scan(&updated.ID, &updated.Name, &updated.BrandName, &updated.ContactName, &updated.ContactPhone,
		&updated.Address, &updated.Notes, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Supplier not found"})
		}
		log.Printf("Error updating supplier %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update supplier"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

// HandleDeleteSupplier removes a supplier.
func HandleDeleteSupplier(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid supplier id"})
	}

	tag, err := db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting supplier %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete supplier"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Supplier not found"})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Supplier deleted"})
}
