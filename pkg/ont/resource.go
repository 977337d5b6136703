package ont

import (
	"strings"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/facet"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// Resource is the most general view: any URI or blank node in a model.
// The other views embed it.
type Resource struct {
	node  store.Node
	model *Model
}

func newResource(m *Model, node store.Node) *Resource {
	return &Resource{node: node, model: m}
}

// Node returns the underlying graph node.
func (r *Resource) Node() store.Node { return r.node }

// Model returns the model the view belongs to.
func (r *Resource) Model() *Model { return r.model }

// URI returns the node's URI, or "" for a blank node.
func (r *Resource) URI() string {
	if r.node.IsURI() {
		return r.node.Value
	}
	return ""
}

// IsAnon reports whether the node is blank.
func (r *Resource) IsAnon() bool { return r.node.IsBlank() }

// LocalName returns the part of the URI after the namespace.
func (r *Resource) LocalName() string { return r.node.LocalName() }

func (r *Resource) String() string { return r.node.String() }

// Label returns a label in lang, or any label when lang is empty. A label
// without a language tag matches every lang.
func (r *Resource) Label(lang string) (string, bool) {
	return r.literalIn(profile.TermLabel, lang)
}

// Labels returns every label.
func (r *Resource) Labels() []store.Node {
	values, _ := r.model.values(r.node, profile.TermLabel)
	return values
}

// AddLabel adds a label with an optional language tag.
func (r *Resource) AddLabel(text, lang string) error {
	return r.model.addValue(r.node, profile.TermLabel, langLiteral(text, lang))
}

// SetLabel replaces all labels with one.
func (r *Resource) SetLabel(text, lang string) error {
	return r.model.setValue(r.node, profile.TermLabel, langLiteral(text, lang))
}

// Comment returns a comment in lang, or any comment when lang is empty.
func (r *Resource) Comment(lang string) (string, bool) {
	return r.literalIn(profile.TermComment, lang)
}

// Comments returns every comment.
func (r *Resource) Comments() []store.Node {
	values, _ := r.model.values(r.node, profile.TermComment)
	return values
}

// AddComment adds a comment with an optional language tag.
func (r *Resource) AddComment(text, lang string) error {
	return r.model.addValue(r.node, profile.TermComment, langLiteral(text, lang))
}

// SetComment replaces all comments with one.
func (r *Resource) SetComment(text, lang string) error {
	return r.model.setValue(r.node, profile.TermComment, langLiteral(text, lang))
}

// VersionInfo returns the version annotation.
func (r *Resource) VersionInfo() (string, bool, error) {
	v, ok, err := r.model.value(r.node, profile.TermVersionInfo)
	if err != nil || !ok {
		return "", false, err
	}
	return v.Value, true, nil
}

// SetVersionInfo replaces the version annotation.
func (r *Resource) SetVersionInfo(version string) error {
	return r.model.setValue(r.node, profile.TermVersionInfo, store.Literal(version))
}

// SeeAlso returns the rdfs:seeAlso values.
func (r *Resource) SeeAlso() []store.Node {
	values, _ := r.model.values(r.node, profile.TermSeeAlso)
	return values
}

// AddSeeAlso adds a rdfs:seeAlso value.
func (r *Resource) AddSeeAlso(n store.Node) error {
	return r.model.addValue(r.node, profile.TermSeeAlso, n)
}

// IsDefinedBy returns the rdfs:isDefinedBy values.
func (r *Resource) IsDefinedBy() []store.Node {
	values, _ := r.model.values(r.node, profile.TermIsDefinedBy)
	return values
}

// AddIsDefinedBy adds a rdfs:isDefinedBy value.
func (r *Resource) AddIsDefinedBy(n store.Node) error {
	return r.model.addValue(r.node, profile.TermIsDefinedBy, n)
}

// SameAs returns the resources declared identical to this one.
func (r *Resource) SameAs() ([]store.Node, error) {
	return r.model.values(r.node, profile.TermSameAs)
}

// AddSameAs declares n identical to this resource.
func (r *Resource) AddSameAs(n store.Node) error {
	return r.model.addValue(r.node, profile.TermSameAs, n)
}

// DifferentFrom returns the resources declared distinct from this one.
func (r *Resource) DifferentFrom() ([]store.Node, error) {
	return r.model.values(r.node, profile.TermDifferentFrom)
}

// AddDifferentFrom declares n distinct from this resource.
func (r *Resource) AddDifferentFrom(n store.Node) error {
	return r.model.addValue(r.node, profile.TermDifferentFrom, n)
}

// RDFTypes returns the asserted types, plus with direct false every
// superclass of them.
func (r *Resource) RDFTypes(direct bool) []store.Node {
	types := r.model.typesOf(r.node)
	if direct {
		return types
	}
	seen := make(map[store.Node]bool)
	var out []store.Node
	for _, t := range types {
		for _, c := range r.model.superClassClosure(t) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return sortedNodes(out)
}

// HasRDFType reports whether t is among RDFTypes(direct). Aliases of t
// match.
func (r *Resource) HasRDFType(t store.Node, direct bool) bool {
	want := make(map[store.Node]bool)
	for _, e := range r.model.profile.Equivalents(r.model.profile.Canonical(t)) {
		want[e] = true
	}
	for _, got := range r.RDFTypes(direct) {
		if want[got] {
			return true
		}
	}
	return false
}

// AddRDFType asserts an rdf:type.
func (r *Resource) AddRDFType(t store.Node) error {
	return r.model.Add(store.NewTriple(r.node, vocab.RDFType, t))
}

// RemoveRDFType retracts an rdf:type from the base graph.
func (r *Resource) RemoveRDFType(t store.Node) {
	for _, pred := range r.model.profile.TypePredicates() {
		r.model.Remove(r.node, pred, t)
	}
}

// PropertyValues returns the objects of an arbitrary predicate.
func (r *Resource) PropertyValues(predicate store.Node) []store.Node {
	return sortedNodes(store.Objects(r.model, r.node, predicate))
}

// AddProperty asserts an arbitrary (node, predicate, object) triple.
func (r *Resource) AddProperty(predicate, object store.Node) error {
	return r.model.Add(store.NewTriple(r.node, predicate, object))
}

// RemoveAll retracts every base-graph value of predicate.
func (r *Resource) RemoveAll(predicate store.Node) int {
	return r.model.Remove(r.node, predicate, store.Any)
}

// Remove deletes every base-graph triple that mentions the node as
// subject or object.
func (r *Resource) Remove() int {
	return r.model.Remove(r.node, store.Any, store.Any) + r.model.Remove(store.Any, store.Any, r.node)
}

// CanAs reports whether the node passes the structural test for key.
func (r *Resource) CanAs(key profile.FacetKey) bool {
	return r.model.engine.CanResolve(r.node, r.model, key)
}

// As views the node as key. In strict mode the structural test for key
// must pass. Otherwise a node that only passes the resource test is
// still wrapped as the view type key asks for.
func (r *Resource) As(key profile.FacetKey) (facet.View, error) {
	v, err := r.model.engine.Resolve(r.node, r.model, key)
	if err == nil || r.model.Strict() {
		return v, err
	}
	if !r.model.engine.CanResolve(r.node, r.model, profile.FacetResource) {
		return nil, err
	}
	logger.Debugw("lax conversion",
		logger.FieldNode, r.node.String(),
		logger.FieldFacet, string(key))
	return r.model.wrapUnchecked(r.node, key), nil
}

// AsClass views the node as a class.
func (r *Resource) AsClass() (*Class, error) {
	v, err := r.As(profile.FacetClass)
	if err != nil {
		return nil, err
	}
	return v.(*Class), nil
}

// AsProperty views the node as a property.
func (r *Resource) AsProperty() (*Property, error) {
	v, err := r.As(profile.FacetProperty)
	if err != nil {
		return nil, err
	}
	return v.(*Property), nil
}

// AsIndividual views the node as an individual.
func (r *Resource) AsIndividual() (*Individual, error) {
	v, err := r.As(profile.FacetIndividual)
	if err != nil {
		return nil, err
	}
	return v.(*Individual), nil
}

// AsOntology views the node as an ontology header.
func (r *Resource) AsOntology() (*Ontology, error) {
	v, err := r.As(profile.FacetOntology)
	if err != nil {
		return nil, err
	}
	return v.(*Ontology), nil
}

// AsList views the node as a list.
func (r *Resource) AsList() (*List, error) {
	v, err := r.As(profile.FacetList)
	if err != nil {
		return nil, err
	}
	return v.(*List), nil
}

// literalIn picks a literal of name in lang.
func (r *Resource) literalIn(name profile.Term, lang string) (string, bool) {
	values, err := r.model.values(r.node, name)
	if err != nil {
		return "", false
	}
	lang = strings.ToLower(lang)
	var fallback string
	found := false
	for _, v := range values {
		if !v.IsLiteral() {
			continue
		}
		if lang == "" || v.Lang == lang {
			return v.Value, true
		}
		if v.Lang == "" && !found {
			fallback, found = v.Value, true
		}
	}
	return fallback, found
}

func langLiteral(text, lang string) store.Node {
	if lang == "" {
		return store.Literal(text)
	}
	return store.LangLiteral(text, lang)
}

func mustResource(n store.Node, what string) error {
	if !n.IsResource() {
		return errors.Newf("%s must be a URI or blank node, got %s", what, n)
	}
	return nil
}
