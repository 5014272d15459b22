// Package mistral implements the Mistral OCR and vision extraction
// providers over the public HTTP API.
package mistral

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

const apiBase = "https://api.mistral.ai/v1"

type client struct {
	apiKey string
	http   *http.Client

	mu       sync.Mutex
	urlCache map[string]string // document path -> data URL
}

func newClient(apiKey string) *client {
	return &client{
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 5 * time.Minute},
		urlCache: make(map[string]string),
	}
}

// postJSON sends a request and decodes the JSON response into out.
func (c *client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBase+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(msg))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// documentDataURL base64-encodes a document as a data URL, cached per path
// so a multi-page document is encoded once.
func (c *client) documentDataURL(path string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if url, ok := c.urlCache[path]; ok {
		return url, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	url := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data)
	c.urlCache[path] = url
	return url, nil
}
