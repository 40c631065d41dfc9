package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	EmbeddingModel string `toml:"embedding_model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type DictionaryConfig struct {
	Path string `toml:"path"`
}

type MemoryConfig struct {
	// SimilarityThreshold is the strict lower bound for accepting a cached
	// match. A match at exactly the threshold is a miss.
	SimilarityThreshold float64 `toml:"similarity_threshold"`
	SearchLimit         int     `toml:"search_limit"`
}

type ProviderConfig struct {
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxInputChars  int    `toml:"max_input_chars"`
	Prompt         string `toml:"prompt"`
}

type SessionConfig struct {
	MaxSessions int    `toml:"max_sessions"`
	DefaultID   string `toml:"default_id"`
}

type AuditConfig struct {
	LogPath string `toml:"log_path"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Memgraph   MemgraphConfig   `toml:"memgraph"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Memory     MemoryConfig     `toml:"memory"`
	Provider   ProviderConfig   `toml:"provider"`
	Sessions   SessionConfig    `toml:"sessions"`
	Audit      AuditConfig      `toml:"audit"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns a config with all defaults applied, used when no
// config.toml is present.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.Memory.SimilarityThreshold == 0 {
		c.Memory.SimilarityThreshold = 0.7
	}
	if c.Memory.SearchLimit == 0 {
		c.Memory.SearchLimit = 3
	}
	if c.Provider.TimeoutSeconds == 0 {
		c.Provider.TimeoutSeconds = 10
	}
	if c.Provider.MaxInputChars == 0 {
		c.Provider.MaxInputChars = 1000
	}
	if c.Sessions.MaxSessions == 0 {
		c.Sessions.MaxSessions = 3
	}
	if c.Sessions.DefaultID == "" {
		c.Sessions.DefaultID = "default"
	}
	if c.Dictionary.Path == "" {
		c.Dictionary.Path = "data/dictionary.db"
	}
	if c.Audit.LogPath == "" {
		c.Audit.LogPath = "data/translation_logs.jsonl"
	}
}
