// Package config loads tscbridge configuration from an optional YAML file,
// TSCBRIDGE_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/tscbridge/pkg/observability"
)

// Sentinel validation errors.
var (
	ErrInvalidLoadTimeout  = errors.New("engine load timeout must be positive")
	ErrInvalidCacheEntries = errors.New("engine cache entries must be positive")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidSampleRatio  = errors.New("sample ratio must be within [0, 1]")
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const (
	configName = ".tscbridge"
	envPrefix  = "TSCBRIDGE"
)

// Config holds all configuration for tscbridge.
type Config struct {
	Engine        EngineConfig        `mapstructure:"engine"`
	Scanner       ScannerConfig       `mapstructure:"scanner"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// EngineConfig selects and loads the compiler script.
type EngineConfig struct {
	// Script is the path to typescript.js.
	Script       string        `mapstructure:"script"`
	LoadTimeout  time.Duration `mapstructure:"load_timeout"`
	CacheEntries int           `mapstructure:"cache_entries"`
	// VerifyKinds checks the syntax kind table against the loaded compiler.
	VerifyKinds bool `mapstructure:"verify_kinds"`
}

// ScannerConfig holds scanner defaults.
type ScannerConfig struct {
	SkipTrivia bool `mapstructure:"skip_trivia"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ObservabilityConfig holds telemetry export settings.
type ObservabilityConfig struct {
	Environment  string  `mapstructure:"environment"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPHeaders  string  `mapstructure:"otlp_headers"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
	// MetricsAddr serves Prometheus metrics when non-empty, e.g. ":9464".
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for .tscbridge.yaml in ., ./config and $HOME;
// not finding one is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("engine.script", DefaultEngineScript)
	viperCfg.SetDefault("engine.load_timeout", DefaultEngineLoadTimeout)
	viperCfg.SetDefault("engine.cache_entries", DefaultEngineCacheEntries)
	viperCfg.SetDefault("engine.verify_kinds", DefaultEngineVerifyKinds)

	viperCfg.SetDefault("scanner.skip_trivia", DefaultScannerSkipTrivia)

	viperCfg.SetDefault("logging.level", DefaultLoggingLevel)
	viperCfg.SetDefault("logging.format", DefaultLoggingFormat)

	viperCfg.SetDefault("observability.environment", "")
	viperCfg.SetDefault("observability.otlp_endpoint", "")
	viperCfg.SetDefault("observability.otlp_headers", "")
	viperCfg.SetDefault("observability.otlp_insecure", DefaultOTLPInsecure)
	viperCfg.SetDefault("observability.sample_ratio", DefaultSampleRatio)
	viperCfg.SetDefault("observability.metrics_addr", "")
}

func validateConfig(config *Config) error {
	if config.Engine.LoadTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidLoadTimeout, config.Engine.LoadTimeout)
	}

	if config.Engine.CacheEntries <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCacheEntries, config.Engine.CacheEntries)
	}

	if _, err := observability.ParseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch config.Logging.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if config.Observability.SampleRatio < 0 || config.Observability.SampleRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRatio, config.Observability.SampleRatio)
	}

	return nil
}

// Telemetry builds the observability configuration for a run in mode.
func (c *Config) Telemetry(version string, mode observability.AppMode) observability.Config {
	level, _ := observability.ParseLevel(c.Logging.Level) //nolint:errcheck // validated.

	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version
	cfg.Environment = c.Observability.Environment
	cfg.Mode = mode
	cfg.OTLPEndpoint = c.Observability.OTLPEndpoint
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(c.Observability.OTLPHeaders)
	cfg.OTLPInsecure = c.Observability.OTLPInsecure
	cfg.SampleRatio = c.Observability.SampleRatio
	cfg.Prometheus = c.Observability.MetricsAddr != ""
	cfg.LogLevel = level
	cfg.LogJSON = c.Logging.Format == FormatJSON

	return cfg
}
