package ont

import (
	"github.com/coolbeans/ontograph/pkg/facet"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// Listing enumerates the subjects typed by the relevant terms or their
// aliases across the whole union and keeps those that resolve to the
// requested facet. Terms the language lacks contribute nothing. Results
// are sorted by node.

// termNodes returns the canonical nodes of the names the profile defines.
func (m *Model) termNodes(names ...profile.Term) []store.Node {
	var out []store.Node
	for _, name := range names {
		if n, ok := m.profile.Term(name); ok {
			out = append(out, n)
		}
	}
	return out
}

// candidates returns every subject typed by one of types.
func (m *Model) candidates(types []store.Node) []store.Node {
	var out []store.Node
	for _, t := range types {
		out = append(out, m.instancesOf(t)...)
	}
	return sortedNodes(dedupe(out))
}

func listView[V facet.View](m *Model, key profile.FacetKey, types []store.Node) []V {
	var out []V
	for _, n := range m.candidates(types) {
		v, ok := m.engine.TryResolve(n, m, key)
		if !ok {
			continue
		}
		if typed, ok := v.(V); ok {
			out = append(out, typed)
		}
	}
	return out
}

// ListClasses returns every class description.
func (m *Model) ListClasses() []*Class {
	return listView[*Class](m, profile.FacetClass, m.profile.ClassDescriptionTypes())
}

// ListNamedClasses returns the classes with a URI.
func (m *Model) ListNamedClasses() []*Class {
	var out []*Class
	for _, c := range m.ListClasses() {
		if !c.IsAnon() {
			out = append(out, c)
		}
	}
	return out
}

// ListHierarchyRootClasses returns the named classes at the top of the
// subclass hierarchy.
func (m *Model) ListHierarchyRootClasses() []*Class {
	var out []*Class
	for _, c := range m.ListNamedClasses() {
		if c.IsHierarchyRoot() {
			out = append(out, c)
		}
	}
	return out
}

// ListRestrictions returns every property restriction.
func (m *Model) ListRestrictions() []*Class {
	return listView[*Class](m, profile.FacetRestriction, m.termNodes(profile.TermRestriction))
}

// ListUnionClasses returns every union class.
func (m *Model) ListUnionClasses() []*Class {
	return listView[*Class](m, profile.FacetUnionClass, m.profile.ClassDescriptionTypes())
}

// ListIntersectionClasses returns every intersection class.
func (m *Model) ListIntersectionClasses() []*Class {
	return listView[*Class](m, profile.FacetIntersectionClass, m.profile.ClassDescriptionTypes())
}

// ListComplementClasses returns every complement class.
func (m *Model) ListComplementClasses() []*Class {
	return listView[*Class](m, profile.FacetComplementClass, m.profile.ClassDescriptionTypes())
}

// ListEnumeratedClasses returns every enumerated class.
func (m *Model) ListEnumeratedClasses() []*Class {
	return listView[*Class](m, profile.FacetEnumeratedClass, m.profile.ClassDescriptionTypes())
}

var allPropertyTerms = []profile.Term{
	profile.TermProperty, profile.TermObjectProperty, profile.TermDatatypeProperty,
	profile.TermAnnotationProperty, profile.TermOntologyProperty,
	profile.TermTransitiveProperty, profile.TermSymmetricProperty,
	profile.TermFunctionalProperty, profile.TermInverseFunctionalProperty,
}

// ListOntProperties returns every property of any kind.
func (m *Model) ListOntProperties() []*Property {
	return listView[*Property](m, profile.FacetProperty, m.termNodes(allPropertyTerms...))
}

// ListObjectProperties returns every object property.
func (m *Model) ListObjectProperties() []*Property {
	return listView[*Property](m, profile.FacetObjectProperty, m.termNodes(
		profile.TermObjectProperty, profile.TermTransitiveProperty,
		profile.TermSymmetricProperty, profile.TermInverseFunctionalProperty))
}

// ListDatatypeProperties returns every datatype property.
func (m *Model) ListDatatypeProperties() []*Property {
	return listView[*Property](m, profile.FacetDatatypeProperty, m.termNodes(profile.TermDatatypeProperty))
}

// ListAnnotationProperties returns every declared annotation property.
func (m *Model) ListAnnotationProperties() []*Property {
	return listView[*Property](m, profile.FacetAnnotationProperty, m.termNodes(profile.TermAnnotationProperty))
}

// ListOntologyProperties returns every ontology property.
func (m *Model) ListOntologyProperties() []*Property {
	return listView[*Property](m, profile.FacetOntologyProperty, m.termNodes(profile.TermOntologyProperty))
}

// ListFunctionalProperties returns every functional property.
func (m *Model) ListFunctionalProperties() []*Property {
	return listView[*Property](m, profile.FacetFunctionalProperty, m.termNodes(profile.TermFunctionalProperty))
}

// ListTransitiveProperties returns every transitive property.
func (m *Model) ListTransitiveProperties() []*Property {
	return listView[*Property](m, profile.FacetTransitiveProperty, m.termNodes(profile.TermTransitiveProperty))
}

// ListSymmetricProperties returns every symmetric property.
func (m *Model) ListSymmetricProperties() []*Property {
	return listView[*Property](m, profile.FacetSymmetricProperty, m.termNodes(profile.TermSymmetricProperty))
}

// ListInverseFunctionalProperties returns every inverse functional
// property.
func (m *Model) ListInverseFunctionalProperties() []*Property {
	return listView[*Property](m, profile.FacetInverseFunctionalProperty,
		m.termNodes(profile.TermInverseFunctionalProperty))
}

// ListIndividuals returns every resource typed by a class that resolves
// as an individual.
func (m *Model) ListIndividuals() []*Individual {
	var types []store.Node
	seen := make(map[store.Node]bool)
	for _, pred := range m.profile.TypePredicates() {
		for _, t := range m.Find(store.Any, pred, store.Any) {
			c := t.Object
			if seen[c] || !c.IsResource() {
				continue
			}
			seen[c] = true
			if m.profile.IsTerm(c, profile.TermThing) || m.engine.CanResolve(c, m, profile.FacetClass) {
				types = append(types, c)
			}
		}
	}
	return listView[*Individual](m, profile.FacetIndividual, types)
}

// ListOntologies returns every ontology header.
func (m *Model) ListOntologies() []*Ontology {
	return listView[*Ontology](m, profile.FacetOntology, m.termNodes(profile.TermOntology))
}

// ListAllDifferent returns every AllDifferent axiom.
func (m *Model) ListAllDifferent() []*AllDifferent {
	return listView[*AllDifferent](m, profile.FacetAllDifferent, m.termNodes(profile.TermAllDifferent))
}

// ListDataRanges returns every data range.
func (m *Model) ListDataRanges() []*DataRange {
	return listView[*DataRange](m, profile.FacetDataRange, m.termNodes(profile.TermDataRange))
}
