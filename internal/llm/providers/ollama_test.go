package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest-utils/internal/config"
)

func ollamaConfig(url string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Model = "llama3"
	cfg.LLM.OllamaURL = url
	return cfg
}

func TestOllamaGenerateReply(t *testing.T) {
	var gotReq ollamaRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Write([]byte(`{"response":"Hello","done":false}` + "\n"))
		w.Write([]byte(`{"response":" there","done":false}` + "\n"))
		w.Write([]byte(`{"response":"!","done":true}` + "\n"))
	}))
	defer server.Close()

	provider := NewOllamaProvider(ollamaConfig(server.URL))

	reply, err := provider.GenerateReply(context.Background(), "say hello", "be nice")
	require.NoError(t, err)

	assert.Equal(t, "Hello there!", reply)
	assert.Equal(t, "llama3", gotReq.Model)
	assert.Equal(t, "say hello", gotReq.Prompt)
	assert.Equal(t, "be nice", gotReq.System)
	assert.True(t, gotReq.Stream)
}

func TestOllamaServerDown(t *testing.T) {
	provider := NewOllamaProvider(ollamaConfig("http://127.0.0.1:1"))

	_, err := provider.GenerateReply(context.Background(), "hello", "")
	assert.Error(t, err)

	assert.Error(t, provider.IsHealthy(context.Background()))
}

func TestOllamaUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewOllamaProvider(ollamaConfig(server.URL))

	_, err := provider.GenerateReply(context.Background(), "hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
