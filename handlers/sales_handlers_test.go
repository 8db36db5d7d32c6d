package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func postSale(t *testing.T, body string) int {
	t.Helper()
	app := fiber.New()
	app.Post("/api/sales", HandleCreateSale)

	req := httptest.NewRequest("POST", "/api/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func TestCreateSaleRejectsNegativeSizeQuantity(t *testing.T) {
	status := postSale(t, `{"productId":"S1","sizeQuantities":{"40":-2}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateSaleRejectsZeroSizeQuantity(t *testing.T) {
	status := postSale(t, `{"productId":"S1","sizeQuantities":{"40":0,"41":3}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateSaleRequiresProductID(t *testing.T) {
	status := postSale(t, `{"quantity":2}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
