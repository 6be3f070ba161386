package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
)

// Manager owns the configured LLM provider and its lifecycle
type Manager struct {
	config   *config.Config
	factory  *LLMFactory
	provider LLMProvider
	mu       sync.RWMutex
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewLLMFactory(cfg),
	}
}

// Start initializes the LLM manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logging.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}
	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := provider.IsHealthy(ctx); err != nil {
		// The chat path degrades to a canned reply when the provider
		// is down, so an unhealthy provider is not fatal at startup
		logging.Warn("LLM provider health check failed at startup", map[string]interface{}{
			"provider": provider.GetProviderName(),
			"error":    err.Error(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.provider = nil
	logging.Info("LLM manager stopped")
	return nil
}

// GenerateReply produces one reply using the active provider, bounded
// by the configured timeout
func (m *Manager) GenerateReply(ctx context.Context, prompt, systemPrompt string) (string, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("LLM manager not started")
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.LLM.Timeout)
	defer cancel()

	return provider.GenerateReply(ctx, prompt, systemPrompt)
}

// GetProviderName returns the active provider name
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider == nil {
		return "none"
	}
	return m.provider.GetProviderName()
}

// CheckHealth checks the health of the active provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM manager not started")
	}

	return provider.IsHealthy(ctx)
}
