package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Chat struct {
		BaseLocation string        `yaml:"base_location" default:"Remote"`
		MaxHistory   int           `yaml:"max_history" default:"0"` // 0 = unbounded
		MaxResults   int           `yaml:"max_results" default:"3"`
		ApplyFilters bool          `yaml:"apply_filters" default:"true"`
		ReplyTimeout time.Duration `yaml:"reply_timeout" default:"120s"`
	} `yaml:"chat"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"ollama"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"llama3"`
		OllamaURL   string        `yaml:"ollama_url" default:"http://localhost:11434"`
		MaxTokens   int           `yaml:"max_tokens" default:"1024"`
		Temperature float32       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"60s"`
	} `yaml:"llm"`

	Providers struct {
		JSearch struct {
			BaseURL   string        `yaml:"base_url" default:"https://jsearch.p.rapidapi.com"`
			APIKey    string        `yaml:"api_key"`
			APIHost   string        `yaml:"api_host" default:"jsearch.p.rapidapi.com"`
			NumPages  int           `yaml:"num_pages" default:"1"`
			Timeout   time.Duration `yaml:"timeout" default:"15s"`
			RateLimit int           `yaml:"rate_limit" default:"60"` // requests per minute
		} `yaml:"jsearch"`

		Remotive struct {
			BaseURL   string        `yaml:"base_url" default:"https://remotive.io/api"`
			Category  string        `yaml:"category" default:"software-dev"`
			Timeout   time.Duration `yaml:"timeout" default:"15s"`
			RateLimit int           `yaml:"rate_limit" default:"60"` // requests per minute
		} `yaml:"remotive"`
	} `yaml:"providers"`

	Resume struct {
		MaxUploadSize int64 `yaml:"max_upload_size" default:"10485760"` // 10MB
		PreviewLength int   `yaml:"preview_length" default:"500"`
	} `yaml:"resume"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Chat.BaseLocation = "Remote"
	config.Chat.MaxHistory = 0
	config.Chat.MaxResults = 3
	config.Chat.ApplyFilters = true
	config.Chat.ReplyTimeout = 120 * time.Second

	config.LLM.Provider = "ollama"
	config.LLM.Model = "llama3"
	config.LLM.OllamaURL = "http://localhost:11434"
	config.LLM.MaxTokens = 1024
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 60 * time.Second

	config.Providers.JSearch.BaseURL = "https://jsearch.p.rapidapi.com"
	config.Providers.JSearch.APIHost = "jsearch.p.rapidapi.com"
	config.Providers.JSearch.NumPages = 1
	config.Providers.JSearch.Timeout = 15 * time.Second
	config.Providers.JSearch.RateLimit = 60

	config.Providers.Remotive.BaseURL = "https://remotive.io/api"
	config.Providers.Remotive.Category = "software-dev"
	config.Providers.Remotive.Timeout = 15 * time.Second
	config.Providers.Remotive.RateLimit = 60

	config.Resume.MaxUploadSize = 10 * 1024 * 1024
	config.Resume.PreviewLength = 500

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if ollamaURL := os.Getenv("OLLAMA_URL"); ollamaURL != "" {
		c.LLM.OllamaURL = ollamaURL
	}

	if apiKey := os.Getenv("JSEARCH_API_KEY"); apiKey != "" {
		c.Providers.JSearch.APIKey = apiKey
	}

	if apiHost := os.Getenv("RAPIDAPI_HOST"); apiHost != "" {
		c.Providers.JSearch.APIHost = apiHost
	}

	if baseLocation := os.Getenv("CHAT_BASE_LOCATION"); baseLocation != "" {
		c.Chat.BaseLocation = baseLocation
	}

	if maxHistory := os.Getenv("CHAT_MAX_HISTORY"); maxHistory != "" {
		if n, err := strconv.Atoi(maxHistory); err == nil {
			c.Chat.MaxHistory = n
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}
