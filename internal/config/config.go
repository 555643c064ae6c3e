// Package config handles the hashsearch TOML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/naoina/toml"

	"github.com/rickgorman/hashsearch/internal/strategy"
)

// FileName is the configuration file looked up in the data directory.
const FileName = "config.toml"

// Config is the file form of the hashsearch settings. Command-line flags
// override every value set here.
type Config struct {
	Search  Search  `toml:"search"`
	Output  Output  `toml:"output"`
	Storage Storage `toml:"storage"`
	Metrics Metrics `toml:"metrics"`
}

// Search holds the search session settings.
type Search struct {
	Algorithm  string `toml:"algorithm"`
	Mode       string `toml:"mode"`
	Seed       string `toml:"seed"`
	Final      string `toml:"final"`
	Threshold  int    `toml:"threshold"`
	Similarity string `toml:"similarity"`
	MaxChain   uint64 `toml:"max_chain"`
	RandSeed   uint64 `toml:"rand_seed"`
	Native     bool   `toml:"native"`
}

// Output holds display settings.
type Output struct {
	Verbose   bool `toml:"verbose"`
	NoColor   bool `toml:"no_color"`
	Lowercase bool `toml:"lowercase"`
	Omit0x    bool `toml:"omit_0x"`
	NoNewline bool `toml:"no_newline"`
}

// Storage holds persistence settings.
type Storage struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	// Checkpoint is a time.ParseDuration string.
	Checkpoint string `toml:"checkpoint"`
}

// Metrics holds the Prometheus endpoint settings.
type Metrics struct {
	// Address enables the /metrics endpoint when not empty.
	Address string `toml:"address"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Search: Search{
			Algorithm:  "MD5",
			Mode:       strategy.Sequential.String(),
			Seed:       "0x00",
			Threshold:  1,
			Similarity: "bit",
		},
		Storage: Storage{
			Checkpoint: "1m",
		},
	}
}

// DefaultPath returns the configuration file path inside dataDir.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Load reads the configuration at path over the defaults. When optional is
// set a missing file is not an error and the defaults are returned.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks the values that can be checked without a hash algorithm.
func (c *Config) Validate() error {
	if c.Search.Mode != "" {
		if _, err := strategy.ParseKind(c.Search.Mode); err != nil {
			return err
		}
	}
	switch c.Search.Similarity {
	case "", "bit", "byte":
	default:
		return fmt.Errorf("similarity must be bit or byte, got %q", c.Search.Similarity)
	}
	if c.Search.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", c.Search.Threshold)
	}
	if _, err := c.CheckpointInterval(); err != nil {
		return err
	}
	return nil
}

// CheckpointInterval parses Storage.Checkpoint. Empty means disabled.
func (c *Config) CheckpointInterval() (time.Duration, error) {
	if c.Storage.Checkpoint == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Storage.Checkpoint)
	if err != nil {
		return 0, fmt.Errorf("checkpoint interval: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("checkpoint interval must not be negative, got %s", d)
	}
	return d, nil
}

// Encode returns cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return raw, nil
}

// Export writes cfg to path, creating its directory.
func Export(cfg *Config, path string) error {
	raw, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Equal reports whether a and b encode to the same TOML.
func Equal(a, b *Config) bool {
	ra, errA := Encode(a)
	rb, errB := Encode(b)
	return errA == nil && errB == nil && bytes.Equal(ra, rb)
}
