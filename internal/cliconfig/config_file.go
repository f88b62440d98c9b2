package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML files. Pointer fields distinguish an
// absent key from a meaningful zero.
type FileConfig struct {
	Message          string   `toml:"message"`
	Polynomial       string   `toml:"polynomial"`
	ChunkSizeBits    *int     `toml:"chunk_size_bits"`
	ErrorProbability *float64 `toml:"error_probability"`
	Seed             *int64   `toml:"rng_seed"`
	UnitBits         *int     `toml:"unit_bits"`
	Engine           string   `toml:"engine"`
	Format           string   `toml:"format"`
	Output           string   `toml:"output"`
	NoColor          *bool    `toml:"no_color"`
	LogLevel         string   `toml:"log_level"`
	Watch            *bool    `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.crcsim/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".crcsim", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("message", fc.Message, &cfg.Message)
	s.setString("polynomial", fc.Polynomial, &cfg.Polynomial)
	s.setString("engine", fc.Engine, &cfg.Engine)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("chunk-size", fc.ChunkSizeBits, &cfg.ChunkSizeBits)
	s.setInt("unit-bits", fc.UnitBits, &cfg.UnitBits)

	s.setFloat("error-probability", fc.ErrorProbability, &cfg.ErrorProbability)
	s.setInt64("seed", fc.Seed, &cfg.Seed)

	s.setBool("no-color", fc.NoColor, &cfg.NoColor)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
