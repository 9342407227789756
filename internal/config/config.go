package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wordaxis/internal/domain"
)

// EmbeddingsEnv overrides Embeddings.Path when set.
const EmbeddingsEnv = "WORDAXIS_EMBEDDINGS"

// EmbeddingsConfig locates and preprocesses the embedding file.
type EmbeddingsConfig struct {
	Path      string `yaml:"path"`
	Normalize bool   `yaml:"normalize"`
	Limit     int    `yaml:"limit"`
}

// EngineConfig tunes the query engine.
type EngineConfig struct {
	Epsilon          float64 `yaml:"epsilon"`
	Workers          int     `yaml:"workers"`
	BatchBypassCache bool    `yaml:"batch_bypass_cache"`
}

// ExplorerConfig lists the axes offered for exploration.
type ExplorerConfig struct {
	Neighbors int           `yaml:"neighbors"`
	Axes      []domain.Axis `yaml:"axes"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embeddings EmbeddingsConfig `yaml:"embeddings"`
	Engine     EngineConfig     `yaml:"engine"`
	Explorer   ExplorerConfig   `yaml:"explorer"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnv(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/wordaxis/config.yaml.
// If neither exists, it writes defaults to ~/.config/wordaxis/config.yaml and returns them.
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
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnv(cfg)
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

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordaxis", "config.yaml"), nil
}

func defaultAxes() []domain.Axis {
	return []domain.Axis{
		{Left: "man", Right: "woman"},
		{Left: "he", Right: "she"},
		{Left: "bad", Right: "good"},
	}
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Embeddings: EmbeddingsConfig{Path: "embeddings.txt", Normalize: true},
		Explorer:   ExplorerConfig{Neighbors: 20, Axes: defaultAxes()},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embeddings.Path == "" {
		cfg.Embeddings.Path = "embeddings.txt"
	}
	if cfg.Explorer.Neighbors <= 0 {
		cfg.Explorer.Neighbors = 20
	}
	if len(cfg.Explorer.Axes) == 0 {
		cfg.Explorer.Axes = defaultAxes()
	}
}

func applyEnv(cfg *AppConfig) {
	if p := os.Getenv(EmbeddingsEnv); p != "" {
		cfg.Embeddings.Path = p
	}
}
