// Package store provides the in-memory RDF graph substrate: typed nodes,
// an indexed triple store, union graphs over several sub-graphs, graph
// factories, and RDF syntax readers and writers.
package store

// Graph is the storage contract the ontology layer depends on. Any nodes
// in Find, Contains and Remove are wildcards. Add is atomic per triple and
// idempotent.
type Graph interface {
	Add(t Triple) error
	Remove(subject, predicate, object Node) int
	Find(subject, predicate, object Node) []Triple
	Contains(subject, predicate, object Node) bool
	Count() int
}

// Objects returns the objects of all triples matching (subject, predicate, *).
func Objects(g Graph, subject, predicate Node) []Node {
	triples := g.Find(subject, predicate, Any)
	objects := make([]Node, 0, len(triples))
	for _, t := range triples {
		objects = append(objects, t.Object)
	}
	return objects
}

// Subjects returns the distinct subjects of triples matching (*, predicate, object).
func Subjects(g Graph, predicate, object Node) []Node {
	triples := g.Find(Any, predicate, object)
	seen := make(map[Node]bool, len(triples))
	subjects := make([]Node, 0, len(triples))
	for _, t := range triples {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			subjects = append(subjects, t.Subject)
		}
	}
	return subjects
}

// Resources returns the distinct URI and blank nodes used as subject or
// object anywhere in g, sorted.
func Resources(g Graph) []Node {
	seen := make(map[Node]bool)
	var out []Node
	add := func(n Node) {
		if n.IsResource() && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, t := range g.Find(Any, Any, Any) {
		add(t.Subject)
		add(t.Object)
	}
	sortNodes(out)
	return out
}

// FirstObject returns one object for (subject, predicate, *), if any.
func FirstObject(g Graph, subject, predicate Node) (Node, bool) {
	triples := g.Find(subject, predicate, Any)
	if len(triples) == 0 {
		return Any, false
	}
	return triples[0].Object, true
}

// ListMembers walks an RDF collection starting at head using the given
// first/rest/nil terms. It stops at nil, at a node without a first value,
// or on a cycle, and reports whether the list was well formed.
func ListMembers(g Graph, head, first, rest, nilNode Node) ([]Node, bool) {
	var members []Node
	visited := make(map[Node]bool)
	cell := head

	for cell != nilNode {
		if visited[cell] {
			return members, false
		}
		visited[cell] = true

		value, ok := FirstObject(g, cell, first)
		if !ok {
			return members, false
		}
		members = append(members, value)

		next, ok := FirstObject(g, cell, rest)
		if !ok {
			return members, false
		}
		cell = next
	}

	return members, true
}
