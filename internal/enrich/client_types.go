package enrich

import "time"

// Config holds configuration for the enrichment client. Generation
// parameters are fixed per client, not per call.
type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:          apiKey,
		BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
		Model:           "gemini-2.0-flash",
		Timeout:         60 * time.Second,
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
}

// GeminiContent represents content in the request.
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart represents a part of the content.
type GeminiPart struct {
	Text string `json:"text,omitempty"`
}

// GeminiGenerationConfig represents generation parameters.
type GeminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GeminiRequest represents the generateContent request body. The full
// instruction block (system instruction, context, user input) travels as
// a single user text part.
type GeminiRequest struct {
	Contents         []GeminiContent        `json:"contents"`
	GenerationConfig GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

// GeminiResponse represents the API response.
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []GeminiPart `json:"parts"`
			Role  string       `json:"role"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}
