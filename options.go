package versioncatalog

import "log/slog"

// Option configures parsing behavior.
type Option func(*parserConfig)

// parserConfig holds all parser configuration.
type parserConfig struct {
	// logger receives debug output about skipped entries.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger

	// sourceName identifies the parsed document in log records.
	sourceName string
}

// WithLogger sets a structured logger for debug output.
// Skipped library and version entries are reported at debug level; the parser
// never fails on them.
//
// Example:
//
//	model, err := versioncatalog.ParseFile("gradle/libs.versions.toml",
//	    versioncatalog.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *parserConfig) {
		c.logger = logger
	}
}

// WithSourceName names the document being parsed, for log records.
func WithSourceName(name string) Option {
	return func(c *parserConfig) {
		c.sourceName = name
	}
}

func newParserConfig(opts []Option) parserConfig {
	var cfg parserConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.sourceName != "" {
		cfg.logger = cfg.logger.With("source", cfg.sourceName)
	}
	return cfg
}
