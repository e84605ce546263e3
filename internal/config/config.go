package config

import (
	"fmt"
	"os"

	"github.com/mattn/go-shellwords"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is the project-local configuration file.
const DefaultFileName = ".passgen.toml"

// EnvAlphabets names the environment variable holding default alphabets.
const EnvAlphabets = "PASSGEN_ALPHABETS"

// Config represents the project-local configuration.
type Config struct {
	Defaults  Defaults          `toml:"defaults"`
	Alphabets map[string]string `toml:"alphabets"`
}

// Defaults holds values used when the matching flag is not given.
type Defaults struct {
	Length    int      `toml:"length,omitempty"`
	Number    int      `toml:"number,omitempty"`
	Alphabets []string `toml:"alphabets,omitempty"`
	Presets   []string `toml:"presets,omitempty"`
}

// Load reads the configuration from path.
// Returns an empty config if the file doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cfg.Defaults.Length < 0 {
		return nil, fmt.Errorf("%s: defaults.length must not be negative", path)
	}
	if cfg.Defaults.Number < 0 {
		return nil, fmt.Errorf("%s: defaults.number must not be negative", path)
	}

	return &cfg, nil
}

// Save writes the configuration to path.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// SplitAlphabets splits s into alphabets using shell quoting rules,
// so "abc 'x y'" yields ["abc", "x y"].
func SplitAlphabets(s string) ([]string, error) {
	words, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvAlphabets, err)
	}
	return words, nil
}

// EnvAlphabetList returns the alphabets from PASSGEN_ALPHABETS, or nil if unset.
func EnvAlphabetList() ([]string, error) {
	s, ok := os.LookupEnv(EnvAlphabets)
	if !ok || s == "" {
		return nil, nil
	}
	return SplitAlphabets(s)
}
