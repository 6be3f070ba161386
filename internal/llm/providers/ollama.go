package providers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
)

// OllamaProvider talks to a locally-hosted Ollama server. Responses
// are streamed as newline-delimited JSON chunks which are concatenated
// into one reply before returning.
type OllamaProvider struct {
	config     *config.Config
	httpClient *http.Client
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaChunk struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewOllamaProvider creates a new Ollama provider instance
func NewOllamaProvider(cfg *config.Config) *OllamaProvider {
	return &OllamaProvider{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
	}
}

// GenerateReply sends the prompt to the local model and collects the
// streamed chunks into a single string
func (op *OllamaProvider) GenerateReply(ctx context.Context, prompt, systemPrompt string) (string, error) {
	startTime := time.Now()

	body, err := json.Marshal(ollamaRequest{
		Model:  op.config.LLM.Model,
		Prompt: prompt,
		System: systemPrompt,
		Stream: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode ollama request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", strings.TrimSuffix(op.config.LLM.OllamaURL, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := op.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var reply strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk ollamaChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			return "", fmt.Errorf("failed to decode ollama chunk: %w", err)
		}

		reply.WriteString(chunk.Response)
		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read ollama stream: %w", err)
	}

	logging.Debug("ollama reply generated", map[string]interface{}{
		"model":           op.config.LLM.Model,
		"processing_time": time.Since(startTime).String(),
		"reply_length":    reply.Len(),
	})

	return strings.TrimSpace(reply.String()), nil
}

// IsHealthy checks if the Ollama server is reachable
func (op *OllamaProvider) IsHealthy(ctx context.Context) error {
	url := strings.TrimSuffix(op.config.LLM.OllamaURL, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}

	resp, err := op.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ollama server not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama health check returned status %d", resp.StatusCode)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (op *OllamaProvider) GetProviderName() string {
	return "ollama"
}
