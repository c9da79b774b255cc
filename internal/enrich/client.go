// Package enrich implements the remote enrichment client: one
// generateContent round trip to the Gemini REST API per call, with typed
// failures and strict response cleaning. Retry and timeout policy belong
// to the caller; the client only auto-applies its configured timeout when
// the context has no deadline.
package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"promptforge/internal/logging"
	"promptforge/internal/types"
)

// Client talks to the Gemini generateContent endpoint over plain HTTP.
type Client struct {
	apiKey          string
	baseURL         string
	model           string
	temperature     float64
	topK            int
	topP            float64
	maxOutputTokens int
	httpClient      *http.Client
}

// NewClient creates a client with default config.
func NewClient(apiKey string) *Client {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a client with custom config. Zero-valued
// generation parameters fall back to the defaults.
func NewClientWithConfig(config Config) *Client {
	defaults := DefaultConfig(config.APIKey)
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if strings.TrimSpace(config.Model) == "" {
		config.Model = defaults.Model
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.Temperature == 0 {
		config.Temperature = defaults.Temperature
	}
	if config.TopK == 0 {
		config.TopK = defaults.TopK
	}
	if config.TopP == 0 {
		config.TopP = defaults.TopP
	}
	if config.MaxOutputTokens == 0 {
		config.MaxOutputTokens = defaults.MaxOutputTokens
	}

	return &Client{
		apiKey:          config.APIKey,
		baseURL:         config.BaseURL,
		model:           config.Model,
		temperature:     config.Temperature,
		topK:            config.TopK,
		topP:            config.TopP,
		maxOutputTokens: config.MaxOutputTokens,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Enhance sends the prompt (plus optional conversation context) for
// remote enrichment and returns the cleaned reply. Exactly one network
// round trip is performed; every failure mode maps to one of the typed
// errors in this package.
func (c *Client) Enhance(ctx context.Context, prompt string, conv *types.ConversationContext) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		logging.EnrichError("Enhance: API key not configured, failing fast")
		return "", &ConfigError{Reason: "API key not configured"}
	}

	// Auto-apply timeout if context has no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	logging.EnrichDebug("Enhance: model=%s prompt_len=%d has_context=%v",
		c.model, len(prompt), !conv.IsEmpty())

	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{
				Role:  "user",
				Parts: []GeminiPart{{Text: buildInstruction(prompt, conv)}},
			},
		},
		GenerationConfig: GeminiGenerationConfig{
			Temperature:     c.temperature,
			TopK:            c.topK,
			TopP:            c.topP,
			MaxOutputTokens: c.maxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.EnrichError("Enhance: request failed after %v: %v", time.Since(startTime), err)
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		logging.EnrichError("Enhance: status=%d body_len=%d", resp.StatusCode, len(body))
		return "", &TransportError{Status: resp.StatusCode, Body: string(body)}
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", &MalformedResponseError{Reason: fmt.Sprintf("failed to parse response: %v", err)}
	}

	if geminiResp.Error != nil {
		return "", &TransportError{Status: geminiResp.Error.Code, Body: geminiResp.Error.Message}
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", &MalformedResponseError{Reason: "no candidate content returned"}
	}

	var result strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		result.WriteString(part.Text)
	}

	raw := strings.TrimSpace(result.String())
	if raw == "" {
		return "", &MalformedResponseError{Reason: "candidate text is empty"}
	}

	cleaned := Clean(raw)
	logging.Enrich("Enhance: completed in %v raw_len=%d cleaned_len=%d tokens=%d",
		time.Since(startTime), len(raw), len(cleaned), geminiResp.UsageMetadata.TotalTokenCount)
	return cleaned, nil
}
