package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/bft-labs/crcsim/pkg/crcsim"
	"github.com/bft-labs/crcsim/pkg/report"
	"github.com/rs/zerolog"
)

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// Config holds CLI configuration for crcsim.
type Config struct {
	Message          string
	Polynomial       string
	ChunkSizeBits    int
	ErrorProbability float64
	Seed             int64
	UnitBits         int
	Engine           string

	Format   string
	Output   string
	NoColor  bool
	LogLevel string
	Watch    bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	sim := crcsim.DefaultConfig()
	return Config{
		Message:          sim.Message,
		Polynomial:       sim.Polynomial,
		ChunkSizeBits:    sim.ChunkSizeBits,
		ErrorProbability: sim.ErrorProbability,
		Seed:             sim.Seed,
		UnitBits:         sim.UnitBits,
		Engine:           sim.Engine,
		Format:           report.FormatText,
		LogLevel:         DefaultLogLevel,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.Format != report.FormatText && c.Format != report.FormatJSON {
		return fmt.Errorf("%w: %q", report.ErrUnknownFormat, c.Format)
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return c.ToSimulation().Validate()
}

// ToSimulation converts the CLI configuration to the library configuration.
func (c Config) ToSimulation() crcsim.Config {
	return crcsim.Config{
		Message:          c.Message,
		Polynomial:       c.Polynomial,
		ChunkSizeBits:    c.ChunkSizeBits,
		ErrorProbability: c.ErrorProbability,
		Seed:             c.Seed,
		UnitBits:         c.UnitBits,
		Engine:           c.Engine,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// Non-positive sizes are kept so that Validate can reject them.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value from a pointer if not nil and flag not changed.
// Zero is a meaningful probability, so presence is signalled by the pointer.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt64 sets an int64 value from a pointer if not nil and flag not changed.
func (s *configSetter) setInt64(flag string, value *int64, dst *int64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Used for environment variables that come as strings. Range checks are left
// to Validate.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setInt64FromString parses a string to int64 and sets the destination.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Range checks are left to Validate.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
