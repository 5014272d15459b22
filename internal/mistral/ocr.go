package mistral

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plumelab/pageval/internal/providers"
	"github.com/plumelab/pageval/internal/schema"
)

// OCR is the provider for Mistral's document OCR models, which accept PDF
// input natively and return a document annotation following our schema.
type OCR struct {
	client *client
	model  string
}

// NewOCR returns an OCR provider for the given model.
func NewOCR(apiKey, modelName string) providers.Provider {
	return &OCR{client: newClient(apiKey), model: modelName}
}

type ocrResponse struct {
	DocumentAnnotation json.RawMessage `json:"document_annotation"`
	Pages              []struct {
		DocumentAnnotation json.RawMessage `json:"document_annotation"`
	} `json:"pages"`
}

// ProcessPage extracts one structured page via the OCR endpoint. pageNum
// is 1-indexed; the API wants 0-indexed page selections.
func (o *OCR) ProcessPage(ctx context.Context, pdfPath string, pageNum int) (*schema.Page, error) {
	dataURL, err := o.client.documentDataURL(pdfPath)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"model": o.model,
		"document": map[string]string{
			"type":         "document_url",
			"document_url": dataURL,
		},
		"pages": []int{pageNum - 1},
		"document_annotation_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "page",
				"schema": json.RawMessage(schema.PageJSONSchema),
			},
		},
		"include_image_base64": false,
	}

	resp, err := providers.Retry(ctx, func() (*ocrResponse, error) {
		var r ocrResponse
		if err := o.client.postJSON(ctx, "/ocr", body, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("OCR request for page %d failed: %w", pageNum, err)
	}

	annotation := resp.DocumentAnnotation
	if len(annotation) == 0 && len(resp.Pages) > 0 {
		annotation = resp.Pages[0].DocumentAnnotation
	}
	if len(annotation) == 0 {
		return nil, fmt.Errorf("no document annotation in OCR response for page %d", pageNum)
	}

	return parseAnnotation(annotation)
}

// parseAnnotation handles both encodings the API uses: the annotation as a
// JSON object, or as a JSON string containing the object.
func parseAnnotation(raw json.RawMessage) (*schema.Page, error) {
	data := []byte(raw)
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("failed to decode annotation string: %w", err)
		}
		data = []byte(inner)
	}
	return schema.ParsePage(data)
}
