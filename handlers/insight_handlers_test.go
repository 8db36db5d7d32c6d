package handlers

import (
	"net/http/httptest"
	"testing"

	"app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSalesInsightsUnavailableWithoutKey(t *testing.T) {
	config.AppConfig.GeminiAPIKey = ""

	app := fiber.New()
	app.Get("/api/insights/sales", HandleSalesInsights)

	req := httptest.NewRequest("GET", "/api/insights/sales", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"summary": "ok"}`, `{"summary": "ok"}`},
		{"```json\n{\"summary\": \"ok\"}\n```", `{"summary": "ok"}`},
		{"Here you go:\n{\"a\": 1} Thanks!", `{"a": 1}`},
		{"no json here", "no json here"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, extractJSONObject(c.in))
	}
}
