// Package gemini implements a vision extraction provider backed by Google
// Gemini models.
package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/plumelab/pageval/internal/pdf"
	"github.com/plumelab/pageval/internal/providers"
	"github.com/plumelab/pageval/internal/schema"
)

const renderDPI = 200

// Gemini extracts structured pages through the Gemini API with JSON
// response mode.
type Gemini struct {
	apiKey string
	model  string
}

// New returns a Gemini provider for the given model.
func New(apiKey, modelName string) providers.Provider {
	return &Gemini{apiKey: apiKey, model: modelName}
}

// ProcessPage renders the 1-indexed page to PNG and asks the model for a
// structured extraction.
func (g *Gemini) ProcessPage(ctx context.Context, pdfPath string, pageNum int) (*schema.Page, error) {
	imgBytes, err := pdf.RenderPagePNG(pdfPath, pageNum, renderDPI)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	prompt := providers.ExtractionPrompt + "\n\nSchema:\n" + schema.PageJSONSchema

	resp, err := providers.Retry(ctx, func() (*genai.GenerateContentResponse, error) {
		return model.GenerateContent(ctx,
			genai.Text(prompt),
			genai.ImageData("png", imgBytes),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request for page %d failed: %w", pageNum, err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned for page %d", pageNum)
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned for page %d", pageNum)
	}

	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response part type for page %d", pageNum)
	}

	page, err := schema.ParsePage([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNum, err)
	}
	return page, nil
}
