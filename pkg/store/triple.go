package store

import "fmt"

// Triple represents an RDF Subject-Predicate-Object statement.
type Triple struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// NewTriple creates a new triple with the given components.
func NewTriple(subject, predicate, object Node) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

// Equals checks if two triples have identical components.
func (t Triple) Equals(other Triple) bool {
	return t == other
}

// String returns a human-readable representation of the triple.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.Subject, t.Predicate, t.Object)
}

// NTriples returns the triple in N-Triples format.
func (t Triple) NTriples() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// IsValid returns true if the triple can be stored: a resource subject, a
// URI predicate and a concrete object.
func (t Triple) IsValid() bool {
	return t.Subject.IsResource() && t.Predicate.IsURI() && !t.Object.IsAny()
}

// TriplePattern represents a pattern for matching triples.
// Any components act as wildcards that match any value.
type TriplePattern struct {
	Subject   Node
	Predicate Node
	Object    Node
}

// NewTriplePattern creates a new pattern for querying.
// Use Any for wildcards.
func NewTriplePattern(subject, predicate, object Node) TriplePattern {
	return TriplePattern{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

// Matches checks if a triple matches this pattern.
func (p TriplePattern) Matches(t Triple) bool {
	return t.Subject.Matches(p.Subject) &&
		t.Predicate.Matches(p.Predicate) &&
		t.Object.Matches(p.Object)
}

// HasWildcards returns true if any component is a wildcard.
func (p TriplePattern) HasWildcards() bool {
	return p.WildcardCount() > 0
}

// WildcardCount returns the number of wildcard components.
func (p TriplePattern) WildcardCount() int {
	count := 0
	for _, node := range []Node{p.Subject, p.Predicate, p.Object} {
		if node.IsAny() {
			count++
		}
	}
	return count
}
