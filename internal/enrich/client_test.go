package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptforge/internal/types"
)

// newTestClient points a client at an httptest server and registers
// connection cleanup with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClientWithConfig(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
	t.Cleanup(client.httpClient.CloseIdleConnections)
	return client
}

func candidateReply(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"role":  "model",
				"parts": []map[string]string{{"text": text}},
			}},
		},
		"usageMetadata": map[string]int{"totalTokenCount": 42},
	})
	return string(body)
}

func TestEnhance_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody GeminiRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateReply("Here's the enhanced prompt:\nAct as an expert web developer and build a responsive site.")))
	})

	got, err := client.Enhance(context.Background(), "make a website", nil)
	require.NoError(t, err)

	assert.Equal(t, "Act as an expert web developer and build a responsive site.", got)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "User input: make a website")
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 1024, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestEnhance_MultiPartCandidateJoined(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{
						{"text": "Act as an expert developer. "},
						{"text": "Write the parser with table-driven tests."},
					},
				}},
			},
		})
		w.Write(body)
	})

	got, err := client.Enhance(context.Background(), "write a parser", nil)
	require.NoError(t, err)
	assert.Equal(t, "Act as an expert developer. Write the parser with table-driven tests.", got)
}

func TestEnhance_BlankKeyFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	client.apiKey = "   "

	_, err := client.Enhance(context.Background(), "make a website", nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, int32(0), calls.Load())
}

func TestEnhance_HTTPErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("quota exceeded"))
	})

	_, err := client.Enhance(context.Background(), "make a website", nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusTooManyRequests, transportErr.Status)
	assert.Equal(t, "quota exceeded", transportErr.Body)
}

func TestEnhance_BodyLevelError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":403,"message":"API key expired","status":"PERMISSION_DENIED"}}`))
	})

	_, err := client.Enhance(context.Background(), "make a website", nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 403, transportErr.Status)
	assert.Equal(t, "API key expired", transportErr.Body)
}

func TestEnhance_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"candidates": [`},
		{"no candidates", `{"candidates": []}`},
		{"no parts", `{"candidates": [{"content": {"parts": []}}]}`},
		{"blank text", `{"candidates": [{"content": {"parts": [{"text": "   "}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.Enhance(context.Background(), "make a website", nil)

			var malformedErr *MalformedResponseError
			require.ErrorAs(t, err, &malformedErr)
		})
	}
}

func TestEnhance_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateReply("never reached")))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Enhance(ctx, "make a website", nil)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEnhance_ContextPayloadIncluded(t *testing.T) {
	var gotBody GeminiRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(candidateReply("Act as an expert developer and wire the logging facade.")))
	})

	conv := &types.ConversationContext{Todos: []string{"wire the logger"}}
	_, err := client.Enhance(context.Background(), "finish the logger", conv)
	require.NoError(t, err)

	text := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, text, "Conversation context:")
	assert.Contains(t, text, "- wire the logger")
}

func TestNewClientWithConfig_ZeroValueFallbacks(t *testing.T) {
	client := NewClientWithConfig(Config{APIKey: "k"})

	defaults := DefaultConfig("k")
	assert.Equal(t, defaults.BaseURL, client.baseURL)
	assert.Equal(t, defaults.Model, client.model)
	assert.Equal(t, defaults.Timeout, client.httpClient.Timeout)
	assert.Equal(t, defaults.Temperature, client.temperature)
	assert.Equal(t, defaults.TopK, client.topK)
	assert.Equal(t, defaults.TopP, client.topP)
	assert.Equal(t, defaults.MaxOutputTokens, client.maxOutputTokens)
}

func TestNewClientWithConfig_Overrides(t *testing.T) {
	client := NewClientWithConfig(Config{
		APIKey:      "k",
		Model:       "gemini-2.5-pro",
		Timeout:     10 * time.Second,
		Temperature: 0.2,
	})

	assert.Equal(t, "gemini-2.5-pro", client.Model())
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
	assert.Equal(t, 0.2, client.temperature)
}
