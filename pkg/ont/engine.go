package ont

import (
	"sync"

	"github.com/coolbeans/ontograph/pkg/facet"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// DefaultEngine returns the shared engine with one profile-driven
// implementation registered for every facet key.
var DefaultEngine = sync.OnceValue(func() *facet.Engine {
	e := facet.NewEngine()
	RegisterFacets(e)
	return e
})

// RegisterFacets registers the model views on e. Each implementation
// accepts only nodes of a *Model whose profile supports the key.
func RegisterFacets(e *facet.Engine) {
	for _, key := range profile.Facets() {
		e.MustRegister(key, facet.Implementation{
			Name:     "ont." + string(key),
			CanApply: facet.All(isModel, facet.Profiled(key)),
			Wrap:     wrapFor(key),
		})
	}
}

func isModel(_ store.Node, g store.Graph) bool {
	_, ok := g.(*Model)
	return ok
}

func wrapFor(key profile.FacetKey) facet.WrapFunc {
	return func(node store.Node, g store.Graph) facet.View {
		return g.(*Model).wrapUnchecked(node, key)
	}
}

// wrapUnchecked builds the view type for key without testing the node.
func (m *Model) wrapUnchecked(node store.Node, key profile.FacetKey) facet.View {
	r := newResource(m, node)
	switch key {
	case profile.FacetClass:
		return &Class{Resource: r}
	case profile.FacetRestriction,
		profile.FacetAllValuesFromRestriction, profile.FacetSomeValuesFromRestriction,
		profile.FacetHasValueRestriction, profile.FacetCardinalityRestriction,
		profile.FacetMinCardinalityRestriction, profile.FacetMaxCardinalityRestriction:
		return &Class{Resource: r, hint: KindRestriction}
	case profile.FacetUnionClass:
		return &Class{Resource: r, hint: KindUnion}
	case profile.FacetIntersectionClass:
		return &Class{Resource: r, hint: KindIntersection}
	case profile.FacetComplementClass:
		return &Class{Resource: r, hint: KindComplement}
	case profile.FacetEnumeratedClass:
		return &Class{Resource: r, hint: KindEnumerated}
	case profile.FacetProperty, profile.FacetObjectProperty, profile.FacetDatatypeProperty,
		profile.FacetAnnotationProperty, profile.FacetOntologyProperty,
		profile.FacetFunctionalProperty, profile.FacetTransitiveProperty,
		profile.FacetSymmetricProperty, profile.FacetInverseFunctionalProperty:
		return &Property{Resource: r}
	case profile.FacetIndividual:
		return &Individual{Resource: r}
	case profile.FacetOntology:
		return &Ontology{Resource: r}
	case profile.FacetAllDifferent:
		return &AllDifferent{Resource: r}
	case profile.FacetDataRange:
		return &DataRange{Resource: r}
	case profile.FacetList:
		return &List{Resource: r}
	default:
		return r
	}
}
