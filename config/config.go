// Package config loads the service configuration from a JSON file,
// with environment overrides for secrets.
package config

import (
	"encoding/json"
	"os"
)

// LLMConfig configures the optional chat-completion backend.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// BackendConfig points at the hosted auth/data service.
type BackendConfig struct {
	BaseURL string `json:"base_url,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
}

// Config is the top-level service configuration. Every section is
// optional: the wizard runs fully in demo mode with an empty config.
type Config struct {
	ServerAddr   string         `json:"server_addr,omitempty"`
	WebhookURL   string         `json:"webhook_url,omitempty"`
	AnalyticsURL string         `json:"analytics_url,omitempty"`
	LLM          *LLMConfig     `json:"llm,omitempty"`
	Backend      *BackendConfig `json:"backend,omitempty"`
}

// Load reads JSON config from disk and applies env overrides. A missing
// file is not an error; env vars alone can configure the service.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FOUNDRLY_SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("FOUNDRLY_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("FOUNDRLY_ANALYTICS_URL"); v != "" {
		cfg.AnalyticsURL = v
	}
	if v := os.Getenv("FOUNDRLY_LLM_API_KEY"); v != "" {
		if cfg.LLM == nil {
			cfg.LLM = &LLMConfig{}
		}
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("FOUNDRLY_BACKEND_URL"); v != "" {
		if cfg.Backend == nil {
			cfg.Backend = &BackendConfig{}
		}
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("FOUNDRLY_BACKEND_KEY"); v != "" {
		if cfg.Backend == nil {
			cfg.Backend = &BackendConfig{}
		}
		cfg.Backend.APIKey = v
	}
}
