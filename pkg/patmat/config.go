package patmat

import (
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Exhaustiveness controls how Compile reacts to arms without a catch-all.
type Exhaustiveness string

const (
	// ExhaustivenessOff ignores missing catch-alls.
	ExhaustivenessOff Exhaustiveness = "off"
	// ExhaustivenessWarn logs a warning (default).
	ExhaustivenessWarn Exhaustiveness = "warn"
	// ExhaustivenessError makes Compile fail with ErrNotExhaustive.
	ExhaustivenessError Exhaustiveness = "error"
)

// Config holds matcher configuration.
type Config struct {
	// Exhaustiveness selects how non-exhaustive arms are reported.
	Exhaustiveness Exhaustiveness `toml:"exhaustiveness,omitempty"`

	// Logger receives compile warnings and per-arm debug records.
	// Defaults to slog.Default().
	Logger *slog.Logger `toml:"-"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Exhaustiveness: ExhaustivenessWarn,
	}
}

// LoadConfig loads matcher configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := config.check(); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return &config, nil
}

// DecodeConfig parses matcher configuration from TOML text.
func DecodeConfig(text string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.Decode(text, &config); err != nil {
		return nil, err
	}
	if err := config.check(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c Config) check() error {
	switch c.Exhaustiveness {
	case "", ExhaustivenessOff, ExhaustivenessWarn, ExhaustivenessError:
		return nil
	default:
		return errors.Errorf("unknown exhaustiveness mode %q", c.Exhaustiveness)
	}
}

func (c Config) mode() Exhaustiveness {
	if c.Exhaustiveness == "" {
		return ExhaustivenessWarn
	}
	return c.Exhaustiveness
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Option adjusts the configuration used by Compile.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(config Config) Option {
	return func(c *Config) {
		*c = config
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithExhaustiveness sets the exhaustiveness mode.
func WithExhaustiveness(mode Exhaustiveness) Option {
	return func(c *Config) {
		c.Exhaustiveness = mode
	}
}
