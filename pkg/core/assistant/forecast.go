package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"robocup_platform/pkg/core/fleet"
	"robocup_platform/pkg/core/prompt"
	"robocup_platform/pkg/core/utils"
)

// ForecastDay is one predicted day of kiosk sales.
type ForecastDay struct {
	Day            string  `json:"day"`
	PredictedSales float64 `json:"predictedSales"`
}

// ForecastResult is the structured forecast the dashboard renders.
type ForecastResult struct {
	Forecast []ForecastDay `json:"forecast"`
	Insights string        `json:"insights"`
	Advice   string        `json:"advice"`
}

// forecastSchema constrains the model to the exact shape the dashboard expects.
func forecastSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"forecast": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":            {Type: genai.TypeString},
						"predictedSales": {Type: genai.TypeNumber},
					},
				},
			},
			"insights": {Type: genai.TypeString},
			"advice":   {Type: genai.TypeString},
		},
	}
}

// Forecast asks the model for a 7-day sales projection over the given history.
// A service failure yields a nil result, not an error the UI would surface;
// there is no retry here.
func (c *Client) Forecast(ctx context.Context, history []fleet.SaleRecord) (*ForecastResult, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	pt, err := prompt.Get().GetPrompt("assistant.forecast")
	if err != nil {
		return nil, err
	}

	salesJSON, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sales history: %w", err)
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, map[string]interface{}{
		"SalesData": string(salesJSON),
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.mgr.Timeout())
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	defer client.Close()

	modelName := c.mgr.ModelFor("forecast")
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(pt.SystemPrompt)}}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = forecastSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return nil, fmt.Errorf("forecast generation failed: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("forecast response contained no text")
	}

	// Schema-constrained output is usually valid JSON, but models still slip in
	// fences or trailing commas; run it through repair before decoding.
	var result ForecastResult
	if err := utils.RepairAndUnmarshal(text, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out += string(txt)
		}
	}
	return out
}
