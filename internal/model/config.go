package model

import "time"

// Config holds the complete runtime configuration for the triage pipeline.
type Config struct {
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Concurrency ConcurrencyConfig `mapstructure:"concurrency" yaml:"concurrency"`
	Cache       CacheConfig       `mapstructure:"cache" yaml:"cache"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Extractor   ExtractorConfig   `mapstructure:"extractor" yaml:"extractor"`
}

// OutputConfig controls where and how reports are written.
type OutputConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`         // directory for per-document JSON reports
	Pretty  bool   `mapstructure:"pretty" yaml:"pretty"`   // indent JSON output
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"` // extra diagnostics on stderr
}

// ConcurrencyConfig controls the batch worker pool.
type ConcurrencyConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// CacheConfig controls the in-memory extracted-text cache.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // json or console
}

// ExtractorConfig configures field extraction. Credential is a
// forward-compatibility hook for a future assisted-extraction backend;
// its presence or absence never changes the deterministic rule-based path.
type ExtractorConfig struct {
	Credential string `mapstructure:"credential" yaml:"-"`
}

// DefaultConfig returns the built-in defaults, the lowest layer of the
// flags > env > config file > defaults hierarchy.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "outputs",
			Pretty: true,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
