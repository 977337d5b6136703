// Package profile describes ontology languages. A Profile maps symbolic
// term names onto the graph nodes a language uses for them, records
// legacy aliases, and decides which nodes may be viewed as which facets.
//
// Profiles are immutable once built and are safe for concurrent use.
package profile

import (
	"sort"

	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// SupportCheck reports whether node may be viewed as a facet under p,
// judged by the triples in g.
type SupportCheck func(node store.Node, g store.Graph, p *Profile) bool

// Alias records that Alias is accepted wherever Canonical is expected.
type Alias struct {
	Canonical store.Node
	Alias     store.Node
}

// Definition is the raw material of a Profile.
type Definition struct {
	Language              string
	Label                 string
	Terms                 map[Term]store.Node
	Aliases               []Alias
	ClassDescriptionTypes []Term
	AnnotationProperties  []Term
	Checks                map[FacetKey]SupportCheck
}

// Profile is the vocabulary of one ontology language.
type Profile struct {
	language    string
	label       string
	terms       map[Term]store.Node
	aliases     map[store.Node][]store.Node
	canonical   map[store.Node]store.Node
	classTypes  []store.Node
	annotations []store.Node
	checks      map[FacetKey]SupportCheck
}

// New builds a profile from a definition. Terms named in
// ClassDescriptionTypes or AnnotationProperties that the definition does
// not map are skipped.
func New(def Definition) *Profile {
	p := &Profile{
		language:  def.Language,
		label:     def.Label,
		terms:     make(map[Term]store.Node, len(def.Terms)),
		aliases:   make(map[store.Node][]store.Node),
		canonical: make(map[store.Node]store.Node),
		checks:    make(map[FacetKey]SupportCheck, len(def.Checks)),
	}
	for name, node := range def.Terms {
		p.terms[name] = node
	}
	for _, a := range def.Aliases {
		if a.Alias == a.Canonical {
			continue
		}
		p.aliases[a.Canonical] = append(p.aliases[a.Canonical], a.Alias)
		p.canonical[a.Alias] = a.Canonical
	}
	for _, name := range def.ClassDescriptionTypes {
		if node, ok := p.terms[name]; ok {
			p.classTypes = append(p.classTypes, node)
		}
	}
	for _, name := range def.AnnotationProperties {
		if node, ok := p.terms[name]; ok {
			p.annotations = append(p.annotations, node)
		}
	}
	for key, check := range def.Checks {
		p.checks[key] = check
	}
	return p
}

// Language returns the URI identifying the language.
func (p *Profile) Language() string { return p.language }

// Label returns a short human-readable name for the language.
func (p *Profile) Label() string { return p.label }

// Term returns the canonical node for name. The second result is false
// when the language has no such concept.
func (p *Profile) Term(name Term) (store.Node, bool) {
	node, ok := p.terms[name]
	return node, ok
}

// HasTerm reports whether the language defines name.
func (p *Profile) HasTerm(name Term) bool {
	_, ok := p.terms[name]
	return ok
}

// Terms returns the names of all defined terms, sorted.
func (p *Profile) Terms() []Term {
	names := make([]Term, 0, len(p.terms))
	for name := range p.terms {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// HasAlias reports whether term has at least one legacy alias.
func (p *Profile) HasAlias(term store.Node) bool {
	return len(p.aliases[term]) > 0
}

// AliasesOf returns the aliases registered for term.
func (p *Profile) AliasesOf(term store.Node) []store.Node {
	out := make([]store.Node, len(p.aliases[term]))
	copy(out, p.aliases[term])
	return out
}

// Equivalents returns term followed by its aliases.
func (p *Profile) Equivalents(term store.Node) []store.Node {
	return append([]store.Node{term}, p.aliases[term]...)
}

// TermEquivalents returns the canonical node for name followed by its
// aliases, or nil if the language lacks the term.
func (p *Profile) TermEquivalents(name Term) []store.Node {
	node, ok := p.terms[name]
	if !ok {
		return nil
	}
	return p.Equivalents(node)
}

// Canonical maps an alias back to its canonical term. Nodes that are not
// aliases are returned unchanged.
func (p *Profile) Canonical(node store.Node) store.Node {
	if c, ok := p.canonical[node]; ok {
		return c
	}
	return node
}

// ClassDescriptionTypes returns the node types that denote class
// descriptions in this language.
func (p *Profile) ClassDescriptionTypes() []store.Node {
	out := make([]store.Node, len(p.classTypes))
	copy(out, p.classTypes)
	return out
}

// AnnotationProperties returns the properties that are annotation
// properties in this language without an explicit declaration.
func (p *Profile) AnnotationProperties() []store.Node {
	out := make([]store.Node, len(p.annotations))
	copy(out, p.annotations)
	return out
}

// IsAnnotationProperty reports whether node is a built-in annotation
// property, directly or through an alias.
func (p *Profile) IsAnnotationProperty(node store.Node) bool {
	node = p.Canonical(node)
	for _, a := range p.annotations {
		if a == node {
			return true
		}
	}
	return false
}

// Supports reports whether the language has any notion of facet key.
func (p *Profile) Supports(key FacetKey) bool {
	_, ok := p.checks[key]
	return ok
}

// IsSupported reports whether node may be viewed as facet key under this
// language, given the triples in g. Unknown facets are never supported.
func (p *Profile) IsSupported(node store.Node, g store.Graph, key FacetKey) bool {
	check, ok := p.checks[key]
	if !ok || g == nil {
		return false
	}
	return check(node, g, p)
}

// TypePredicates returns rdf:type and any aliases the language accepts
// for it.
func (p *Profile) TypePredicates() []store.Node {
	return p.Equivalents(vocab.RDFType)
}

// HasType reports whether node carries an rdf:type matching any of the
// named terms or their aliases.
func (p *Profile) HasType(node store.Node, g store.Graph, names ...Term) bool {
	for _, name := range names {
		for _, t := range p.TermEquivalents(name) {
			if p.hasTypeNode(node, g, t) {
				return true
			}
		}
	}
	return false
}

func (p *Profile) hasTypeNode(node store.Node, g store.Graph, t store.Node) bool {
	for _, pred := range p.TypePredicates() {
		if g.Contains(node, pred, t) {
			return true
		}
	}
	return false
}

// HasProperty reports whether node is the subject of a triple whose
// predicate is the named term or one of its aliases.
func (p *Profile) HasProperty(node store.Node, g store.Graph, name Term) bool {
	for _, pred := range p.TermEquivalents(name) {
		if g.Contains(node, pred, store.Any) {
			return true
		}
	}
	return false
}

// IsObjectOf reports whether node is the object of a triple whose
// predicate is the named term or one of its aliases.
func (p *Profile) IsObjectOf(node store.Node, g store.Graph, name Term) bool {
	for _, pred := range p.TermEquivalents(name) {
		if g.Contains(store.Any, pred, node) {
			return true
		}
	}
	return false
}

// IsTerm reports whether node is the named term or one of its aliases.
func (p *Profile) IsTerm(node store.Node, name Term) bool {
	for _, t := range p.TermEquivalents(name) {
		if t == node {
			return true
		}
	}
	return false
}

// Values returns the objects of node under the named predicate term and
// its aliases, canonical predicate first.
func (p *Profile) Values(node store.Node, g store.Graph, name Term) []store.Node {
	var out []store.Node
	seen := make(map[store.Node]bool)
	for _, pred := range p.TermEquivalents(name) {
		for _, o := range store.Objects(g, node, pred) {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}
