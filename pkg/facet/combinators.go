package facet

import (
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// Profiled accepts a node when the graph's profile supports it as key.
// Graphs without a profile accept nothing.
func Profiled(key profile.FacetKey) CanApplyFunc {
	return func(node store.Node, g store.Graph) bool {
		p, ok := ProfileOf(g)
		return ok && p.IsSupported(node, g, key)
	}
}

// Typed accepts a node with an rdf:type to the named term or one of its
// aliases. Languages lacking the term accept nothing.
func Typed(term profile.Term) CanApplyFunc {
	return func(node store.Node, g store.Graph) bool {
		p, ok := ProfileOf(g)
		return ok && p.HasType(node, g, term)
	}
}

// HasProperty accepts a node that is the subject of at least one triple
// using the named predicate term or an alias of it.
func HasProperty(term profile.Term) CanApplyFunc {
	return func(node store.Node, g store.Graph) bool {
		p, ok := ProfileOf(g)
		return ok && p.HasProperty(node, g, term)
	}
}

// IsResource accepts URI and blank nodes.
func IsResource(node store.Node, _ store.Graph) bool {
	return node.IsResource()
}

// All accepts a node when every test does.
func All(tests ...CanApplyFunc) CanApplyFunc {
	return func(node store.Node, g store.Graph) bool {
		for _, t := range tests {
			if !t(node, g) {
				return false
			}
		}
		return true
	}
}

// Any accepts a node when at least one test does.
func Any(tests ...CanApplyFunc) CanApplyFunc {
	return func(node store.Node, g store.Graph) bool {
		for _, t := range tests {
			if t(node, g) {
				return true
			}
		}
		return false
	}
}
