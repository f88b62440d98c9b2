package cliconfig

import "github.com/rs/zerolog"

// LogLevel parses a configured log level. An empty or unparsable level
// falls back to info.
func LogLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
