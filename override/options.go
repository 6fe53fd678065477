package override

import "log/slog"

// Strategy defines how Merge handles override versions the base catalog does not declare.
type Strategy int

const (
	// PreferOverride adds unknown aliases to the merged catalog.
	PreferOverride Strategy = iota

	// IgnoreUnknownAlias skips unknown aliases and reports them.
	IgnoreUnknownAlias

	// ErrorOnUnknownAlias fails the merge on the first unknown alias.
	ErrorOnUnknownAlias
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case PreferOverride:
		return "prefer-override"
	case IgnoreUnknownAlias:
		return "ignore-unknown"
	case ErrorOnUnknownAlias:
		return "error-on-unknown"
	default:
		return "unknown"
	}
}

// ParseStrategy returns the strategy for a name returned by Strategy.String.
func ParseStrategy(name string) (Strategy, bool) {
	for _, s := range []Strategy{PreferOverride, IgnoreUnknownAlias, ErrorOnUnknownAlias} {
		if s.String() == name {
			return s, true
		}
	}
	return PreferOverride, false
}

// Option configures Apply and Merge.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	strategy Strategy
	source   string
}

// WithLogger sets a structured logger. Warnings about libraries declared in an
// override catalog are emitted at warn level, applied versions at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithStrategy sets how Merge handles unknown aliases. Apply ignores it.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithSource names the override catalog in warnings and log records.
func WithSource(name string) Option {
	return func(c *config) {
		c.source = name
	}
}

func newConfig(opts []Option) config {
	cfg := config{source: "override.versions.toml"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
