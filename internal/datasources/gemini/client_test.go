package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

type generateContentRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SystemInstruction struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

func TestClient_SummarizeArticle_Success(t *testing.T) {
	var calls atomic.Int32
	var got generateContentRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/"+DefaultModel+":generateContent"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "This is a concise summary."}]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	summary := client.SummarizeArticle(testContext(), "Tech News", "Lots of interesting content.")

	assert.Equal(t, "This is a concise summary.", summary)
	assert.Equal(t, int32(1), calls.Load())

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "Title: Tech News\n\nContent:\nLots of interesting content.", got.Contents[0].Parts[0].Text)
	require.Len(t, got.SystemInstruction.Parts, 1)
	assert.Equal(t, datasources.SystemPrompt, got.SystemInstruction.Parts[0].Text)
	assert.InDelta(t, 0.3, got.GenerationConfig.Temperature, 1e-6)
}

func TestClient_SummarizeArticle_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	summary := client.SummarizeArticle(testContext(), "Tech News", "content")

	assert.True(t, strings.HasPrefix(summary, "Provider API Error: Could not summarize the article ("), summary)
}

func TestClient_SummarizeArticle_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/",
		Timeout: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	summary := client.SummarizeArticle(testContext(), "Tech News", "content")

	assert.True(t, strings.HasPrefix(summary, "General summarization error: ("), summary)
}

func TestClient_SummarizeArticle_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": []}, "finishReason": "STOP"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	summary := client.SummarizeArticle(testContext(), "Tech News", "content")

	assert.Equal(t, "General summarization error: (generated content has no text).", summary)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.Error(t, err)
}
