package extraction

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/internal/utils"

	"go.uber.org/zap"
)

const itemPrompt = "Extract every line item from this receipt image and respond ONLY with a valid JSON array. " +
	"Each element must be an object with exactly these fields: 'name' (string), 'description' (string or null), " +
	"'price' (string, keep the currency symbol as printed), and 'category' (string or null, one of: Produce, Dairy, " +
	"Meat, Seafood, Bakery, Frozen, Pantry, Household, Tax, Total). Include tax and total lines if printed. " +
	"Do not include any explanations, markdown formatting, or extra text."

type (
	// Extractor sends a receipt image to the vision model and returns the
	// candidate line items it describes, or an ExtractionParseError when the
	// model output cannot be decoded.
	Extractor interface {
		ExtractItems(ctx context.Context, image []byte, mimeType string) ([]domain.CandidateItem, error)
	}

	geminiExtractor struct {
		httpClient *http.Client
		logger     *zap.Logger
	}
)

func NewGeminiExtractor(logger *zap.Logger) Extractor {
	return &geminiExtractor{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

func (e *geminiExtractor) ExtractItems(ctx context.Context, image []byte, mimeType string) ([]domain.CandidateItem, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": itemPrompt,
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64.StdEncoding.EncodeToString(image),
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, &domain.ExtractionParseError{Raw: ""}
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	items, err := ParseItems(responseText)
	if err != nil {
		e.logger.Warn("extraction output not parseable", zap.String("raw", responseText))
		return nil, err
	}

	return items, nil
}
