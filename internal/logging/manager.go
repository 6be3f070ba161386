package logging

import (
	"fmt"
	"sync"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging/types"
)

// Manager handles logger lifecycle and configuration
type Manager struct {
	factory *AdapterFactory
	logger  *MultiLogger
	mu      sync.RWMutex
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		factory: NewAdapterFactory(),
		logger:  NewMultiLogger(),
	}
}

// Initialize sets up the logger based on the provided configuration
func (m *Manager) Initialize(cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	if len(cfg.Logging.Adapters) > 0 {
		return m.initializeFromAdapters(cfg)
	}

	// Fall back to a single stdout adapter driven by the legacy
	// format/output settings.
	return m.initializeLegacy(cfg)
}

// initializeFromAdapters configures adapters from the adapters list
func (m *Manager) initializeFromAdapters(cfg *config.Config) error {
	for _, adapterCfg := range cfg.Logging.Adapters {
		if !adapterCfg.Enabled {
			continue
		}

		adapter, err := m.factory.CreateAdapter(types.AdapterConfig{
			Name:    adapterCfg.Name,
			Type:    adapterCfg.Type,
			Enabled: adapterCfg.Enabled,
			Options: adapterCfg.Options,
		})
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", adapterCfg.Name, err)
		}

		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", adapterCfg.Name, err)
		}
	}

	return nil
}

// initializeLegacy configures a stdout adapter from the top-level logging settings
func (m *Manager) initializeLegacy(cfg *config.Config) error {
	adapter, err := m.factory.CreateAdapter(types.AdapterConfig{
		Name:    "default",
		Type:    "stdout",
		Enabled: true,
		Options: map[string]interface{}{
			"format": cfg.Logging.Format,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create default adapter: %w", err)
	}

	return m.logger.AddAdapter(adapter)
}

// GetLogger returns the managed logger instance
func (m *Manager) GetLogger() Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logger
}

// Close shuts down all adapters
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logger.Close()
}

// Global logger management

var (
	globalManager *Manager
	globalMu      sync.RWMutex
)

// InitializeLogging initializes the global logger from configuration
func InitializeLogging(cfg *config.Config) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	manager := NewManager()
	if err := manager.Initialize(cfg); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()

	if globalManager == nil {
		// Not initialized yet, return a basic stdout logger
		logger := NewMultiLogger()
		adapter, _ := NewAdapterFactory().CreateAdapter(types.AdapterConfig{
			Name:    "fallback",
			Type:    "stdout",
			Enabled: true,
			Options: map[string]interface{}{"format": "text"},
		})
		if adapter != nil {
			_ = logger.AddAdapter(adapter)
		}
		return logger
	}

	return globalManager.GetLogger()
}

// CloseLogging shuts down the global logger
func CloseLogging() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		return nil
	}

	err := globalManager.Close()
	globalManager = nil
	return err
}

// LogWithRequestID returns a logger annotated with a request ID field
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

// Package-level convenience functions using the global logger

func Debug(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Debug(message, fields...)
}

func Info(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Info(message, fields...)
}

func Warn(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Warn(message, fields...)
}

func Error(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Error(message, fields...)
}

func Fatal(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Fatal(message, fields...)
}
