package composite

import (
	"os"
	"strings"
)

// Config captures formatter setup: the default locale, the culture registry
// backing locale-aware numeric styles, and the hooks observing Format calls.
type Config struct {
	DefaultLocale string
	Registry      *CultureRegistry
	Resolver      FallbackResolver
	Cultures      []Culture
	CulturePaths  []string
	Hooks         []FormatHook
}

// Option mutates Config during construction.
type Option func(*Config) error

// WithDefaultLocale sets the locale used when Format is called with an
// empty locale.
func WithDefaultLocale(locale string) Option {
	return func(cfg *Config) error {
		cfg.DefaultLocale = locale
		return nil
	}
}

// WithCultureRegistry installs a pre-built registry. Cultures registered via
// other options are merged into it.
func WithCultureRegistry(registry *CultureRegistry) Option {
	return func(cfg *Config) error {
		cfg.Registry = registry
		return nil
	}
}

// WithFallbackResolver sets the resolver used when building the default
// registry. Ignored when WithCultureRegistry is supplied.
func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(cfg *Config) error {
		cfg.Resolver = resolver
		return nil
	}
}

// WithCultures registers explicit culture definitions.
func WithCultures(cultures ...Culture) Option {
	return func(cfg *Config) error {
		cfg.Cultures = append(cfg.Cultures, cultures...)
		return nil
	}
}

// WithCultureFiles loads culture definitions from YAML or JSON files, merged
// over the built-in table in argument order.
func WithCultureFiles(paths ...string) Option {
	return func(cfg *Config) error {
		cfg.CulturePaths = append(cfg.CulturePaths, paths...)
		return nil
	}
}

// WithHooks appends format hooks, invoked in registration order before each
// call and reverse order after.
func WithHooks(hooks ...FormatHook) Option {
	return func(cfg *Config) error {
		cfg.Hooks = append(cfg.Hooks, hooks...)
		return nil
	}
}

// NewConfig builds Config via supplied options and resolves defaults: a
// seeded registry when none was given, and the process locale when no
// default locale was configured.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Registry == nil {
		registryOpts := []CultureRegistryOption{}
		if cfg.Resolver != nil {
			registryOpts = append(registryOpts, WithRegistryResolver(cfg.Resolver))
		}
		cfg.Registry = NewCultureRegistry(registryOpts...)
	}

	for _, path := range cfg.CulturePaths {
		cultures, err := LoadCultureFile(path)
		if err != nil {
			return nil, err
		}
		for _, culture := range cultures {
			cfg.Registry.Register(culture)
		}
	}

	for _, culture := range cfg.Cultures {
		cfg.Registry.Register(culture)
	}

	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = processLocale()
	}

	return cfg, nil
}

// processLocale derives the running environment's locale from the usual
// POSIX variables, stripping any codeset suffix (en_US.UTF-8 -> en-US).
func processLocale() string {
	for _, name := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if idx := strings.IndexByte(value, '.'); idx >= 0 {
			value = value[:idx]
		}
		if normalized := normalizeLocale(value); normalized != "" {
			return normalized
		}
	}
	return "en"
}
