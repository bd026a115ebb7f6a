package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"app/analytics"
	"app/config"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleGetRestockAdvisory generates restock commentary for the console from
// the last 60 days of delivery and collection aggregates using Gemini.
// Optional: returns 503 when no API key is configured.
func HandleGetRestockAdvisory(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "message": "AI advisory is not configured"})
	}

	ctx := context.Background()
	now := time.Now()
	rng := utils.DateRange{
		From: now.AddDate(0, 0, -60).Format(utils.ISODay),
		To:   now.Format(utils.ISODay),
	}

	deliveries, _ := deliveryLoader(ctx, rng)
	collections, _ := collectionLoader(ctx, rng)

	prompt := constructAdvisoryPrompt(rng, deliveries, collections)

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate advisory from AI"})
	}

	advisory, err := parseAdvisoryResponse(resp, rng)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": advisory})
}

// constructAdvisoryPrompt summarizes the aggregates into a compact prompt.
func constructAdvisoryPrompt(rng utils.DateRange, deliveries, collections []analytics.Entry) string {
	totals := analytics.TotalsByCategory(deliveries)
	var dataStr strings.Builder
	for _, cat := range analytics.Categories {
		if t, ok := totals[cat]; ok {
			fmt.Fprintf(&dataStr, "%s: %d orders, %d cartons, %d pallets.\n", cat, t.Orders, t.Cartons, t.Pallets)
		}
	}
	collected := analytics.SumTotals(collections)
	fmt.Fprintf(&dataStr, "Customer collections: %d orders, %d cartons, %d pallets.\n", collected.Orders, collected.Cartons, collected.Pallets)
	if len(deliveries) == 0 && len(collections) == 0 {
		dataStr.Reset()
		dataStr.WriteString("No movement data available for the period.")
	}

	jsonFormat := `{"summary":"string","recommendations":["string",...],"risk_factors":["string",...]}`

	return fmt.Sprintf(`
        You are an expert warehouse operations analyst. Based on the movement
        data below, advise what stock areas need restocking attention and why.

        **Period:** %s to %s

        **Outbound movement by courier:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, rng.From, rng.To, dataStr.String(), jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseAdvisoryResponse parses the JSON from Gemini into a structured response.
func parseAdvisoryResponse(resp *genai.GenerateContentResponse, rng utils.DateRange) (*models.RestockAdvisoryResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	jsonStr := extractJSON(text)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", text)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var parsed struct {
		Summary         string   `json:"summary"`
		Recommendations []string `json:"recommendations"`
		RiskFactors     []string `json:"risk_factors"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI advisory data")
	}

	startDate, _ := utils.ParseDate(rng.From)
	endDate, _ := utils.ParseDate(rng.To)
	return &models.RestockAdvisoryResponse{
		ReportName:      "Restock Advisory",
		GeneratedAt:     time.Now(),
		Period:          models.AdvisoryPeriod{StartDate: startDate, EndDate: endDate},
		Summary:         parsed.Summary,
		Recommendations: parsed.Recommendations,
		RiskFactors:     parsed.RiskFactors,
	}, nil
}
