package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func inventoryApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/inventory", HandleCreateInventoryItem)
	app.Get("/api/inventory/:id", HandleGetInventoryItem)
	return app
}

func TestCreateInventoryItemRequiresName(t *testing.T) {
	app := inventoryApp()

	req := httptest.NewRequest("POST", "/api/inventory", strings.NewReader(`{"inventoryCategory":"Packaging"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateInventoryItemRejectsNegativeQuantity(t *testing.T) {
	app := inventoryApp()

	req := httptest.NewRequest("POST", "/api/inventory", strings.NewReader(`{"inventoryName":"Shoe boxes","inventoryQuantity":-4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetInventoryItemRejectsBadID(t *testing.T) {
	app := inventoryApp()

	req := httptest.NewRequest("GET", "/api/inventory/not-a-number", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
