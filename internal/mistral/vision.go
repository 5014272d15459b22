package mistral

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/plumelab/pageval/internal/pdf"
	"github.com/plumelab/pageval/internal/providers"
	"github.com/plumelab/pageval/internal/schema"
)

const renderDPI = 200

// Vision is the provider for Mistral's vision-capable chat models. Pages
// are rendered to images and extracted through the chat endpoint with JSON
// output mode.
type Vision struct {
	client *client
	model  string
}

// NewVision returns a vision provider for the given model.
func NewVision(apiKey, modelName string) providers.Provider {
	return &Vision{client: newClient(apiKey), model: modelName}
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ProcessPage renders the 1-indexed page to PNG and asks the model for a
// structured extraction.
func (v *Vision) ProcessPage(ctx context.Context, pdfPath string, pageNum int) (*schema.Page, error) {
	imgBytes, err := pdf.RenderPagePNG(pdfPath, pageNum, renderDPI)
	if err != nil {
		return nil, err
	}
	imageURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imgBytes)

	body := map[string]any{
		"model": v.model,
		"messages": []map[string]any{
			{
				"role":    "system",
				"content": providers.ExtractionPrompt + "\n\nSchema:\n" + schema.PageJSONSchema,
			},
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": "Extract and structure the text from this magazine page as a JSON object following the schema."},
					{"type": "image_url", "image_url": imageURL},
				},
			},
		},
		"response_format": map[string]string{"type": "json_object"},
		"temperature":     0,
		"max_tokens":      8192,
	}

	resp, err := providers.Retry(ctx, func() (*chatResponse, error) {
		var r chatResponse
		if err := v.client.postJSON(ctx, "/chat/completions", body, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("vision request for page %d failed: %w", pageNum, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned for page %d", pageNum)
	}

	page, err := schema.ParsePage([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNum, err)
	}
	return page, nil
}
