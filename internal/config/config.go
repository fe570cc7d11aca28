package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rlm/internal/chunker"
	"rlm/internal/loader"
	"rlm/internal/scorer"
	"rlm/internal/search"
	"rlm/internal/summarizer"
)

// DefaultContextFiles are loaded from the working directory when no files
// are given on the command line or in the config file.
var DefaultContextFiles = []string{
	"Architectural Migration Framework_ Transitioning from Vanilla Transformers to Mixture-of-Recursions (MoR).md",
	"Comparison of Mixture-of-Recursions (MoR) Architectural Components and Performance - Table 1.csv",
	"Making AI Think With Recursive Loops.md",
	"Recursive Architectures and Attention Mechanisms for AGI.md",
	"Regular Expression (Regex) logic.txt",
	"RLM Scaffolding.py",
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	Type     string `yaml:"type"`
	MaxChars int    `yaml:"max_chars"`
}

// ContextConfig lists the documents that make up the knowledge base.
type ContextConfig struct {
	Files      []string `yaml:"files"`
	Extensions []string `yaml:"extensions"`
}

// SearchConfig tunes the scoring passes.
type SearchConfig struct {
	TopK        int     `yaml:"top_k"`
	Boost       float64 `yaml:"boost"`
	MaxSnippets int     `yaml:"max_snippets"`
}

// SummaryConfig sizes the knowledge-base overview shown at startup.
type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Chunker ChunkerConfig `yaml:"chunker"`
	Context ContextConfig `yaml:"context"`
	Search  SearchConfig  `yaml:"search"`
	Summary SummaryConfig `yaml:"summary"`
	Log     LogConfig     `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/rlm/config.yaml.
// If neither exists, it writes defaults to ~/.config/rlm/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides fields from RLM_LOG_LEVEL and RLM_CONTEXT
// (a comma-separated file list).
func (c *AppConfig) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("RLM_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("RLM_CONTEXT")); v != "" {
		var files []string
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		if len(files) > 0 {
			c.Context.Files = files
		}
	}
}

// Validate rejects values that have no sensible interpretation.
func (c *AppConfig) Validate() error {
	if c.Chunker.Type != "window" {
		return fmt.Errorf("unknown chunker: %s", c.Chunker.Type)
	}
	if c.Chunker.MaxChars < 0 {
		return fmt.Errorf("chunker.max_chars must be positive, got %d", c.Chunker.MaxChars)
	}
	if c.Search.TopK < 0 {
		return fmt.Errorf("search.top_k must be positive, got %d", c.Search.TopK)
	}
	if c.Search.Boost < 0 {
		return fmt.Errorf("search.boost must be positive, got %g", c.Search.Boost)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rlm", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	cfg := &AppConfig{
		Chunker: ChunkerConfig{Type: "window", MaxChars: chunker.DefaultMaxChars},
		Context: ContextConfig{
			Files:      append([]string(nil), DefaultContextFiles...),
			Extensions: append([]string(nil), loader.DefaultExtensions...),
		},
		Search: SearchConfig{
			TopK:        search.DefaultTopK,
			Boost:       search.DefaultBoost,
			MaxSnippets: scorer.DefaultMaxSnippets,
		},
		Summary: SummaryConfig{MaxSentences: summarizer.DefaultMaxSentences},
		Log:     LogConfig{Level: "info"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Chunker.Type == "" {
		cfg.Chunker.Type = def.Chunker.Type
	}
	if cfg.Chunker.MaxChars == 0 {
		cfg.Chunker.MaxChars = def.Chunker.MaxChars
	}
	if len(cfg.Context.Files) == 0 {
		cfg.Context.Files = def.Context.Files
	}
	if len(cfg.Context.Extensions) == 0 {
		cfg.Context.Extensions = def.Context.Extensions
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = def.Search.TopK
	}
	if cfg.Search.Boost == 0 {
		cfg.Search.Boost = def.Search.Boost
	}
	if cfg.Search.MaxSnippets == 0 {
		cfg.Search.MaxSnippets = def.Search.MaxSnippets
	}
	if cfg.Summary.MaxSentences == 0 {
		cfg.Summary.MaxSentences = def.Summary.MaxSentences
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
