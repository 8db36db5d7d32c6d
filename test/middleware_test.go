package main

import (
	"net/http/httptest"
	"testing"

	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

func TestRequestLoggerPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestLogger)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequestLoggerPreservesStatus(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestLogger)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(404).SendString("not found")
	})

	req := httptest.NewRequest("GET", "/missing", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
