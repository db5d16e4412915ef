package composite

import "sync"

// CultureRegistry maps locales to culture providers. Explicitly registered
// cultures (built-in table, culture files, Register calls) are consulted
// first through the fallback chain; locales with no explicit entry get an
// x/text backed provider. Provider lookups are cached per locale.
type CultureRegistry struct {
	mu       sync.RWMutex
	cultures map[string]Culture
	resolver FallbackResolver
	cache    map[string]CultureProvider
}

type cultureRegistryConfig struct {
	resolver FallbackResolver
	cultures []Culture
	builtins bool
}

type CultureRegistryOption func(*cultureRegistryConfig)

// WithRegistryResolver installs a custom fallback resolver.
func WithRegistryResolver(resolver FallbackResolver) CultureRegistryOption {
	return func(cfg *cultureRegistryConfig) {
		cfg.resolver = resolver
	}
}

// WithRegistryCultures registers explicit cultures during construction.
func WithRegistryCultures(cultures ...Culture) CultureRegistryOption {
	return func(cfg *cultureRegistryConfig) {
		cfg.cultures = append(cfg.cultures, cultures...)
	}
}

// WithoutBuiltinCultures skips seeding the built-in culture table, leaving
// every locale to the x/text backend unless registered explicitly. Useful
// for deterministic fixed-locale test setups.
func WithoutBuiltinCultures() CultureRegistryOption {
	return func(cfg *cultureRegistryConfig) {
		cfg.builtins = false
	}
}

// NewCultureRegistry seeds a registry with the built-in culture table and
// derives fallback chains for every seeded locale.
func NewCultureRegistry(opts ...CultureRegistryOption) *CultureRegistry {
	cfg := cultureRegistryConfig{builtins: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &CultureRegistry{
		cultures: make(map[string]Culture),
		resolver: cfg.resolver,
	}
	if registry.resolver == nil {
		registry.resolver = NewStaticFallbackResolver()
	}

	if cfg.builtins {
		for _, culture := range builtinCultures {
			registry.register(culture)
		}
	}
	for _, culture := range cfg.cultures {
		registry.register(culture)
	}

	return registry
}

// Register adds or replaces the culture for its locale.
func (r *CultureRegistry) Register(culture Culture) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.registerLocked(culture)
}

func (r *CultureRegistry) register(culture Culture) {
	r.registerLocked(culture)
}

func (r *CultureRegistry) registerLocked(culture Culture) {
	locale := normalizeLocale(culture.Locale)
	if locale == "" {
		return
	}
	culture.Locale = locale

	if r.cultures == nil {
		r.cultures = make(map[string]Culture)
	}
	r.cultures[locale] = culture
	r.cache = nil

	r.seedFallback(locale)
}

func (r *CultureRegistry) seedFallback(locale string) {
	resolver, ok := r.resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}
	if len(resolver.Resolve(locale)) > 0 {
		return
	}
	if parents := localeParentChain(locale); len(parents) > 0 {
		resolver.Set(locale, parents...)
	}
}

// Culture returns the explicitly registered culture for the locale or its
// fallback chain, if any.
func (r *CultureRegistry) Culture(locale string) (Culture, bool) {
	if r == nil {
		return Culture{}, false
	}

	locale = normalizeLocale(locale)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range r.candidateLocales(locale) {
		if culture, ok := r.cultures[candidate]; ok {
			return culture, true
		}
	}
	return Culture{}, false
}

// Provider returns the culture provider serving the locale: the registered
// culture when one exists along the fallback chain, an x/text backed
// provider otherwise.
func (r *CultureRegistry) Provider(locale string) CultureProvider {
	locale = normalizeLocale(locale)

	r.mu.RLock()
	if r.cache != nil {
		if provider, ok := r.cache[locale]; ok {
			r.mu.RUnlock()
			return provider
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil {
		r.cache = make(map[string]CultureProvider)
	} else if provider, ok := r.cache[locale]; ok {
		return provider
	}

	var provider CultureProvider
	for _, candidate := range r.candidateLocales(locale) {
		if culture, ok := r.cultures[candidate]; ok {
			provider = culture
			break
		}
	}
	if provider == nil {
		provider = newXTextCulture(locale)
	}

	r.cache[locale] = provider
	return provider
}

func (r *CultureRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || containsLocale(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}

	// Derived parents cover locales never registered explicitly.
	for _, parent := range localeParentChain(locale) {
		if parent == "" || containsLocale(chain, parent) {
			continue
		}
		chain = append(chain, parent)
	}

	return chain
}

// Locales lists the locales with explicitly registered cultures.
func (r *CultureRegistry) Locales() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.cultures))
	for locale := range r.cultures {
		locales = append(locales, locale)
	}
	return locales
}
