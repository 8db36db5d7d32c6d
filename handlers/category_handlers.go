package handlers

import (
	"app/database"
	"app/models"
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListCategories returns every category ordered by name.
func HandleListCategories(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `SELECT id, name, created_at, updated_at FROM categories ORDER BY name`)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve categories"})
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			log.Printf("Error scanning category row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve categories"})
		}
		categories = append(categories, cat)
	}
	return c.JSON(categories)
}

// HandleCreateCategory adds a category. The id doubles as the slug products
// reference through categoryId.
func HandleCreateCategory(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var input models.Category
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.ID == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "id and name are required"})
	}

	err := db.QueryRow(ctx, `
		INSERT INTO categories (id, name) VALUES ($1, $2)
		RETURNING created_at, updated_at
	`, input.ID, input.Name).Scan(&input.CreatedAt, &input.UpdatedAt)
	if err != nil {
		log.Printf("Error creating category %s: %v", input.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create category"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": input})
}

// HandleUpdateCategory renames a category.
func HandleUpdateCategory(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id := c.Params("id")
	var input models.Category
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "name is required"})
	}

	var updated models.Category
	err := db.QueryRow(ctx, `
		UPDATE categories SET name = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`, input.Name, id).Scan(&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Category not found"})
		}
		log.Printf("Error updating category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update category"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": updated})
}

// HandleDeleteCategory removes a category that no product references.
func HandleDeleteCategory(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	id := c.Params("id")

	var inUse int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, id).Scan(&inUse); err != nil {
		log.Printf("Error checking category usage for %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete category"})
	}
	if inUse > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "Category is still referenced by products"})
	}

	tag, err := db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting category %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete category"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Category not found"})
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Category deleted"})
}
