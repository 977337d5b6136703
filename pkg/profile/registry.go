package profile

import (
	"sync"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// Registry maps language URIs to profiles. It is populated at
// construction and read-only afterwards.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry creates a registry holding the given profiles. A later
// profile for the same language replaces an earlier one.
func NewRegistry(profiles ...*Profile) *Registry {
	r := &Registry{profiles: make(map[string]*Profile, len(profiles))}
	for _, p := range profiles {
		if _, exists := r.profiles[p.Language()]; !exists {
			r.order = append(r.order, p.Language())
		}
		r.profiles[p.Language()] = p
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(OWLFull(), OWLDL(), OWLLite(), DAML(), RDFS())
})

// DefaultRegistry returns the shared registry of the five built-in
// languages.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Lookup returns the profile for a language URI.
func (r *Registry) Lookup(language string) (*Profile, bool) {
	p, ok := r.profiles[language]
	return p, ok
}

// MustLookup is like Lookup but panics if the language is unknown. It is
// intended for package-level initialisation with constant URIs.
func (r *Registry) MustLookup(language string) *Profile {
	p, ok := r.profiles[language]
	if !ok {
		panic("profile: unknown language " + language)
	}
	return p
}

// Get returns the profile for a language URI, or an error naming the
// known languages.
func (r *Registry) Get(language string) (*Profile, error) {
	if p, ok := r.profiles[language]; ok {
		return p, nil
	}
	return nil, errors.WithHintf(errors.Newf("unknown ontology language %q", language),
		"known languages: %v", r.order)
}

// Languages returns the registered language URIs in registration order.
func (r *Registry) Languages() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Profiles returns the registered profiles in registration order.
func (r *Registry) Profiles() []*Profile {
	out := make([]*Profile, 0, len(r.order))
	for _, lang := range r.order {
		out = append(out, r.profiles[lang])
	}
	return out
}

// shortNames maps convenient names to language URIs.
var shortNames = map[string]string{
	"owl":      LangOWL,
	"owl-full": LangOWL,
	"owl-dl":   LangOWLDL,
	"dl":       LangOWLDL,
	"owl-lite": LangOWLLite,
	"lite":     LangOWLLite,
	"daml":     LangDAML,
	"daml+oil": LangDAML,
	"rdfs":     LangRDFS,
}

// ResolveLanguage expands a short language name such as "owl-dl" or
// "daml" to its URI. Anything else is returned unchanged.
func ResolveLanguage(name string) string {
	if uri, ok := shortNames[name]; ok {
		return uri
	}
	return name
}
