package composite

import "sync"

// FallbackResolver resolves the fallback locale chain consulted when no
// culture is registered for a locale (e.g. de-AT falling back to de).
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicit parent chains. Chains registered via
// Set win over anything derived elsewhere; unknown locales resolve to nil.
type StaticFallbackResolver struct {
	mu      sync.RWMutex
	parents map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{parents: make(map[string][]string)}
}

func (s *StaticFallbackResolver) Set(locale string, parents ...string) {
	if s == nil || locale == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.parents == nil {
		s.parents = make(map[string][]string)
	}
	s.parents[locale] = append([]string(nil), parents...)
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || locale == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.parents[locale]
	if !ok {
		return nil
	}
	return append([]string(nil), chain...)
}
