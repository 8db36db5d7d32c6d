package main

import (
	"net/http/httptest"
	"testing"

	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestUnknownRouteReturns404(t *testing.T) {
	app := fiber.New()
	routes.SetupRoutes(app)

	req := httptest.NewRequest("GET", "/api/not-a-route", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, 404, resp.StatusCode)
}
