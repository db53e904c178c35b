// Package images implements the image generation call-through: an LLM styles
// a photography prompt, a provider renders the image, and the result is
// uploaded to the CDN so the stored URL is production-image-safe.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// Generator renders images through an OpenAI-compatible images endpoint.
type Generator struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGenerator creates a generator, or nil when no API key is configured.
func NewGenerator(apiKey, baseURL string) *Generator {
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &Generator{apiKey: apiKey, baseURL: strings.TrimRight(baseURL, "/"), client: http.DefaultClient}
}

// Generate renders one image for the prompt and returns the raw bytes.
func (g *Generator) Generate(ctx context.Context, prompt, size string) ([]byte, error) {
	if size == "" {
		size = "1024x1024"
	}
	body, err := json.Marshal(map[string]interface{}{
		"model":           "dall-e-3",
		"prompt":          prompt,
		"size":            size,
		"response_format": "b64_json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Data []struct {
			B64JSON string `json:"b64_json"`
		} `json:"data"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode image response: %w", err)
	}
	if resp.StatusCode >= 400 {
		msg := resp.Status
		if result.Error != nil {
			msg = result.Error.Message
		}
		return nil, fmt.Errorf("image provider error: %s", msg)
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("image provider returned no data")
	}
	return base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
}
