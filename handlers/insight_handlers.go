package handlers

import (
	"app/config"
	"app/models"
	"app/report"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleSalesInsights asks Gemini for a qualitative read of the monthly sales
// aggregates. Returns 503 when no API key is configured so the rest of the
// API keeps working without one.
func HandleSalesInsights(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "AI insights are not configured"})
	}

	ctx := context.Background()
	details, _, err := loadSaleDetails(ctx, "")
	if err != nil {
		log.Printf("Error loading sales for insights: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate insights"})
	}
	monthly := report.Monthly(details)
	if len(monthly) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "No sales data to analyze"})
	}

	insight, err := generateSalesInsight(ctx, monthly, report.TopProducts(details, 10))
	if err != nil {
		log.Printf("Error generating sales insight: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate insights"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": insight})
}

// generateSalesInsight prompts Gemini with the aggregates and parses its
// JSON reply into a SalesInsight.
func generateSalesInsight(ctx context.Context, monthly []models.MonthlyReportEntry, top []models.TopProduct) (models.SalesInsight, error) {
	var insight models.SalesInsight

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		return insight, fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	monthlyJSON, err := json.Marshal(monthly)
	if err != nil {
		return insight, fmt.Errorf("failed to serialize monthly data: %w", err)
	}
	topJSON, err := json.Marshal(top)
	if err != nil {
		return insight, fmt.Errorf("failed to serialize top products: %w", err)
	}

	prompt := fmt.Sprintf(
		`You are an analyst for a shoe shop. Based on the monthly sales aggregates and the best selling products below, respond with ONLY a JSON object of the shape {"summary": string, "positive_factors": [string], "negative_factors": [string]}. Keep the summary under 120 words.

		Monthly aggregates: %s

		Top products: %s`,
		string(monthlyJSON),
		string(topJSON),
	)

	model := client.GenerativeModel("gemini-1.5-pro")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return insight, fmt.Errorf("failed to generate insight: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return insight, fmt.Errorf("empty response from model")
	}

	raw := fmt.Sprint(resp.Candidates[0].Content.Parts[0])
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &insight); err != nil {
		return insight, fmt.Errorf("failed to parse model response: %w", err)
	}
	insight.GeneratedAt = time.Now().UTC()
	return insight, nil
}

// extractJSONObject strips markdown code fences and surrounding prose the
// model sometimes wraps its JSON in.
func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}
