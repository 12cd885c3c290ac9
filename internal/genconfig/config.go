// Package genconfig loads the CLI's generation configuration (the default
// orbit range and correction-pass budget cmd/planetgen hands to
// internal/planetoid; MaxInfeasibleRetries is loaded and defaulted but
// nothing in the pipeline reads it), the way
// medasdigital-client's pkg/utils/config.go loads its client config:
// a viper-backed loader reading YAML into a mapstructure-tagged Config
// struct, with a DefaultConfig constructor providing sane values when no
// file is present.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the full set of tunables the CLI and library entry point
// expose to callers who don't want to hand-construct every pipeline
// parameter.
type Config struct {
	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Orbit      OrbitConfig      `yaml:"orbit" mapstructure:"orbit"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// GenerationConfig bounds the pipeline's retry and correction-loop
// budgets (spec §7: 100 infeasible-generation retries; §4.7: 10
// correction-loop iterations).
type GenerationConfig struct {
	MaxInfeasibleRetries int `yaml:"max_infeasible_retries" mapstructure:"max_infeasible_retries"`
	MaxCorrectionPasses  int `yaml:"max_correction_passes" mapstructure:"max_correction_passes"`
}

// OrbitConfig bounds the semi-major-axis search window (AU) orbit
// assignment draws from absent a caller-specified habitable window.
type OrbitConfig struct {
	DefaultMinAU float64 `yaml:"default_min_au" mapstructure:"default_min_au"`
	DefaultMaxAU float64 `yaml:"default_max_au" mapstructure:"default_max_au"`
}

// LoggingConfig controls obslog's verbosity.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			MaxInfeasibleRetries: 100,
			MaxCorrectionPasses:  10,
		},
		Orbit: OrbitConfig{
			DefaultMinAU: 0.3,
			DefaultMaxAU: 30,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configPath (if non-empty and present) over top of
// DefaultConfig via viper, falling back silently to defaults when no
// file is given - matching the teacher's "defaults first, override from
// file if found" loading order.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType(configTypeFromExt(configPath))
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configTypeFromExt(path string) string {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}
