package profile

import (
	"strconv"

	"github.com/coolbeans/ontograph/pkg/store"
)

func isResource(node store.Node, _ store.Graph, _ *Profile) bool {
	return node.IsResource()
}

func typedAs(names ...Term) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		return node.IsResource() && p.HasType(node, g, names...)
	}
}

func typedAsNode(types ...store.Node) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		for _, t := range types {
			if p.hasTypeNode(node, g, t) {
				return true
			}
		}
		return false
	}
}

func hasProperty(name Term) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		return p.HasProperty(node, g, name)
	}
}

func objectOf(names ...Term) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		for _, name := range names {
			if p.IsObjectOf(node, g, name) {
				return true
			}
		}
		return false
	}
}

func isTerm(names ...Term) SupportCheck {
	return func(node store.Node, _ store.Graph, p *Profile) bool {
		for _, name := range names {
			if p.IsTerm(node, name) {
				return true
			}
		}
		return false
	}
}

func isAnnotation(node store.Node, _ store.Graph, p *Profile) bool {
	return p.IsAnnotationProperty(node)
}

func allOf(checks ...SupportCheck) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		for _, c := range checks {
			if !c(node, g, p) {
				return false
			}
		}
		return true
	}
}

func anyOf(checks ...SupportCheck) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		for _, c := range checks {
			if c(node, g, p) {
				return true
			}
		}
		return false
	}
}

func not(check SupportCheck) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		return !check(node, g, p)
	}
}

// restriction builds the check for a restriction variant: a typed
// restriction with an onProperty and the variant predicate.
func restriction(variant Term) SupportCheck {
	return allOf(typedAs(TermRestriction), hasProperty(TermOnProperty), hasProperty(variant))
}

// cardinalityWithin requires every value of the cardinality predicate to
// be an integer literal in allowed.
func cardinalityWithin(name Term, allowed ...int) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		values := p.Values(node, g, name)
		if len(values) == 0 {
			return false
		}
		for _, v := range values {
			if !v.IsLiteral() {
				return false
			}
			n, err := strconv.Atoi(v.Value)
			if err != nil || !containsInt(allowed, n) {
				return false
			}
		}
		return true
	}
}

// instanceOfClass requires a type that is itself a class in g.
func instanceOfClass(classCheck SupportCheck) SupportCheck {
	return func(node store.Node, g store.Graph, p *Profile) bool {
		for _, pred := range p.TypePredicates() {
			for _, t := range store.Objects(g, node, pred) {
				if classCheck(t, g, p) {
					return true
				}
			}
		}
		return false
	}
}

func containsInt(values []int, n int) bool {
	for _, v := range values {
		if v == n {
			return true
		}
	}
	return false
}
