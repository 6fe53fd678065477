package bazelexport

import "log/slog"

// DefaultRepository is used when no repository is configured.
const DefaultRepository = "https://repo1.maven.org/maven2"

// Option configures the export.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	repositories []string
	repoName     string
	fetchSources bool
}

// WithLogger sets a structured logger. Skipped libraries are reported at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRepositories sets the Maven repositories of the install tag.
func WithRepositories(urls ...string) Option {
	return func(c *config) {
		c.repositories = append(c.repositories, urls...)
	}
}

// WithRepoName sets the name of the generated Maven repository (default "maven").
func WithRepoName(name string) Option {
	return func(c *config) {
		c.repoName = name
	}
}

// WithFetchSources requests source jars for every artifact.
func WithFetchSources(fetch bool) Option {
	return func(c *config) {
		c.fetchSources = fetch
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if len(cfg.repositories) == 0 {
		cfg.repositories = []string{DefaultRepository}
	}
	if cfg.repoName == "" {
		cfg.repoName = "maven"
	}
	return cfg
}
