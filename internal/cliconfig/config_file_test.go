package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/crcsim/pkg/crcsim"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false
	zero := 0.0
	seed := int64(7)
	zeroSeed := int64(0)
	sixteen := 16
	seven := 7
	zeroInt := 0
	negative := -8

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Message:          "file message",
				Polynomial:       "1011",
				ChunkSizeBits:    &sixteen,
				ErrorProbability: &zero,
				Seed:             &seed,
				UnitBits:         &seven,
				Engine:           "table",
				Format:           "json",
				Output:           "/tmp/report.json",
				NoColor:          &trueVal,
				LogLevel:         "debug",
				Watch:            &trueVal,
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				Message:          "file message",
				Polynomial:       "1011",
				ChunkSizeBits:    16,
				ErrorProbability: 0,
				Seed:             7,
				UnitBits:         7,
				Engine:           "table",
				Format:           "json",
				Output:           "/tmp/report.json",
				NoColor:          true,
				LogLevel:         "debug",
				Watch:            true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Message:          "file message",
				Polynomial:       "1011",
				ErrorProbability: &zero,
				Seed:             &zeroSeed,
			},
			changed: map[string]bool{"message": true, "error-probability": true},
			initial: Config{
				Message:          "flag message",
				ErrorProbability: 0.3,
				Seed:             9,
			},
			expected: Config{
				Message:          "flag message", // unchanged because flag was set
				Polynomial:       "1011",
				ErrorProbability: 0.3,
				Seed:             0,
			},
		},
		{
			name:       "absent keys keep current values",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
		{
			name:       "explicit false overrides true",
			fileConfig: FileConfig{NoColor: &falseVal, Watch: &falseVal},
			changed:    map[string]bool{},
			initial:    Config{NoColor: true, Watch: true},
			expected:   Config{},
		},
		{
			name:       "negative chunk size is applied",
			fileConfig: FileConfig{ChunkSizeBits: &negative},
			changed:    map[string]bool{},
			initial:    Config{ChunkSizeBits: 64, UnitBits: 8},
			expected:   Config{ChunkSizeBits: -8, UnitBits: 8},
		},
		{
			name:       "zero sizes are applied",
			fileConfig: FileConfig{ChunkSizeBits: &zeroInt, UnitBits: &zeroInt},
			changed:    map[string]bool{},
			initial:    Config{ChunkSizeBits: 64, UnitBits: 8},
			expected:   Config{ChunkSizeBits: 0, UnitBits: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			if err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed); err != nil {
				t.Fatalf("ApplyFileConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
message = "I love you!"
polynomial = "100000111"
chunk_size_bits = 64
error_probability = 0.0
rng_seed = 42
unit_bits = 8
engine = "table"
format = "json"
no_color = true
log_level = "warn"
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.Message != "I love you!" {
		t.Errorf("Message = %v, want I love you!", fc.Message)
	}
	if fc.ChunkSizeBits == nil || *fc.ChunkSizeBits != 64 {
		t.Errorf("ChunkSizeBits = %v, want 64", fc.ChunkSizeBits)
	}
	if fc.UnitBits == nil || *fc.UnitBits != 8 {
		t.Errorf("UnitBits = %v, want 8", fc.UnitBits)
	}
	if fc.ErrorProbability == nil || *fc.ErrorProbability != 0 {
		t.Errorf("ErrorProbability = %v, want pointer to 0", fc.ErrorProbability)
	}
	if fc.Seed == nil || *fc.Seed != 42 {
		t.Errorf("Seed = %v, want 42", fc.Seed)
	}
	if fc.Engine != "table" {
		t.Errorf("Engine = %v, want table", fc.Engine)
	}
	if fc.NoColor == nil || *fc.NoColor != true {
		t.Errorf("NoColor = %v, want true", fc.NoColor)
	}
	if fc.Watch != nil {
		t.Errorf("Watch = %v, want nil for absent key", fc.Watch)
	}
	if fc.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", fc.LogLevel)
	}
}

func TestFileConfig_NonPositiveSizesFailValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative chunk size", "chunk_size_bits = -8"},
		{"zero chunk size", "chunk_size_bits = 0"},
		{"zero unit bits", "unit_bits = 0"},
		{"negative unit bits", "unit_bits = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test config file: %v", err)
			}

			fc, err := LoadFileConfig(configPath)
			if err != nil {
				t.Fatalf("LoadFileConfig() error = %v", err)
			}
			cfg := DefaultConfig()
			if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			if err := cfg.Validate(); !errors.Is(err, crcsim.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
message = "hi"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestLoadFileConfig_WrongType(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte(`chunk_size_bits = "sixty-four"`), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	if _, err := LoadFileConfig(configPath); err == nil {
		t.Error("LoadFileConfig() expected error for string chunk size")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	// Should return a path containing .crcsim
	if path != "" && !strings.Contains(path, ".crcsim") {
		t.Errorf("DefaultConfigPath() = %v, should contain .crcsim", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
