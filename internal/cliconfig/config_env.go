package cliconfig

import "os"

// EnvPrefix is the prefix of every environment variable read by ApplyEnvConfig.
const EnvPrefix = "CRCSIM_"

// ApplyEnvConfig applies CRCSIM_* environment variables to the Config struct.
// Values override the config file but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("message", os.Getenv(EnvPrefix+"MESSAGE"), &cfg.Message)
	s.setString("polynomial", os.Getenv(EnvPrefix+"POLYNOMIAL"), &cfg.Polynomial)
	s.setString("engine", os.Getenv(EnvPrefix+"ENGINE"), &cfg.Engine)
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("output", os.Getenv(EnvPrefix+"OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("chunk-size", os.Getenv(EnvPrefix+"CHUNK_SIZE_BITS"), &cfg.ChunkSizeBits); err != nil {
		return err
	}
	if err := s.setIntFromString("unit-bits", os.Getenv(EnvPrefix+"UNIT_BITS"), &cfg.UnitBits); err != nil {
		return err
	}
	if err := s.setFloatFromString("error-probability", os.Getenv(EnvPrefix+"ERROR_PROBABILITY"), &cfg.ErrorProbability); err != nil {
		return err
	}
	if err := s.setInt64FromString("seed", os.Getenv(EnvPrefix+"RNG_SEED"), &cfg.Seed); err != nil {
		return err
	}

	s.setBoolFromString("no-color", os.Getenv(EnvPrefix+"NO_COLOR"), &cfg.NoColor)
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)

	return nil
}
