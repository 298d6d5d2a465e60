package vaultfmt

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the CLI-layer defaults consumed by cmd/vaultfmt.
// LoadConfig is the only function in this package that reads a file;
// the engine, replay and envelope code work on in-memory values.
type Config struct {
	Format        string `yaml:"format"`
	CredentialsID string `yaml:"credentialsID"`
	PadMinLen     int    `yaml:"padMinLen"`
	PadMaxLen     int    `yaml:"padMaxLen"`
}

// DefaultConfig mirrors the values a freshly initialised vault would
// use if no config file is present.
func DefaultConfig() Config {
	return Config{
		Format:        "vf1",
		CredentialsID: "default",
		PadMinLen:     defaultPadMinLen,
		PadMaxLen:     defaultPadMaxLen,
	}
}

// LoadConfig reads and parses a YAML config file at path. A missing
// file is not an error — DefaultConfig is returned instead, so a fresh
// checkout works with no setup.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "cannot read config %q", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "cannot parse config %q", path)
	}
	if cfg.PadMinLen < 1 || cfg.PadMaxLen < cfg.PadMinLen {
		return cfg, errors.Errorf("invalid pad length range [%d, %d]", cfg.PadMinLen, cfg.PadMaxLen)
	}
	return cfg, nil
}

// EngineOptions builds the EngineOption slice a CLI would pass to
// NewEngine from this config.
func (c Config) EngineOptions() []EngineOption {
	return []EngineOption{WithPadding(c.PadMinLen, c.PadMaxLen)}
}
