package store

import "testing"

var (
	exA     = URI("http://example.org/onto#A")
	exB     = URI("http://example.org/onto#B")
	exLabel = URI("http://www.w3.org/2000/01/rdf-schema#label")
	owlCls  = URI(NamespaceOWL + "Class")
)

func TestNewTriple(t *testing.T) {
	triple := NewTriple(exA, RDFType, owlCls)

	if triple.Subject != exA {
		t.Errorf("Subject mismatch: got %s", triple.Subject)
	}
	if triple.Predicate != RDFType {
		t.Errorf("Predicate mismatch: got %s", triple.Predicate)
	}
	if triple.Object != owlCls {
		t.Errorf("Object mismatch: got %s", triple.Object)
	}
}

func TestTriple_Equals(t *testing.T) {
	t1 := NewTriple(exA, RDFType, owlCls)
	t2 := NewTriple(exA, RDFType, owlCls)
	t3 := NewTriple(exB, RDFType, owlCls)

	if !t1.Equals(t2) {
		t.Error("Identical triples should be equal")
	}

	if t1.Equals(t3) {
		t.Error("Different triples should not be equal")
	}
}

func TestTriple_NTriples(t *testing.T) {
	tests := []struct {
		name     string
		triple   Triple
		expected string
	}{
		{
			name:     "uri object",
			triple:   NewTriple(exA, RDFType, owlCls),
			expected: "<http://example.org/onto#A> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .",
		},
		{
			name:     "language literal",
			triple:   NewTriple(exA, exLabel, LangLiteral("Thing A", "EN")),
			expected: `<http://example.org/onto#A> <http://www.w3.org/2000/01/rdf-schema#label> "Thing A"@en .`,
		},
		{
			name:     "typed literal",
			triple:   NewTriple(Blank("b1"), exLabel, TypedLiteral("1", NamespaceXSD+"int")),
			expected: `_:b1 <http://www.w3.org/2000/01/rdf-schema#label> "1"^^<http://www.w3.org/2001/XMLSchema#int> .`,
		},
		{
			name:     "escaped literal",
			triple:   NewTriple(exA, exLabel, Literal("say \"hi\"")),
			expected: `<http://example.org/onto#A> <http://www.w3.org/2000/01/rdf-schema#label> "say \"hi\"" .`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.triple.NTriples(); got != tt.expected {
				t.Errorf("NTriples mismatch:\n got  %s\n want %s", got, tt.expected)
			}
		})
	}
}

func TestTriple_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		triple  Triple
		isValid bool
	}{
		{"valid triple", NewTriple(exA, RDFType, owlCls), true},
		{"blank subject", NewTriple(NewBlank(), RDFType, owlCls), true},
		{"literal subject", NewTriple(Literal("x"), RDFType, owlCls), false},
		{"blank predicate", NewTriple(exA, Blank("p"), owlCls), false},
		{"wildcard object", NewTriple(exA, RDFType, Any), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.triple.IsValid() != tt.isValid {
				t.Errorf("IsValid() = %v, want %v", tt.triple.IsValid(), tt.isValid)
			}
		})
	}
}

func TestTriplePattern_Matches(t *testing.T) {
	triple := NewTriple(exA, RDFType, owlCls)

	tests := []struct {
		name    string
		pattern TriplePattern
		matches bool
	}{
		{"all wildcards", NewTriplePattern(Any, Any, Any), true},
		{"exact", NewTriplePattern(exA, RDFType, owlCls), true},
		{"subject only", NewTriplePattern(exA, Any, Any), true},
		{"wrong subject", NewTriplePattern(exB, Any, Any), false},
		{"wrong object", NewTriplePattern(Any, RDFType, exB), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.pattern.Matches(triple) != tt.matches {
				t.Errorf("Matches() = %v, want %v", !tt.matches, tt.matches)
			}
		})
	}
}

func TestTriplePattern_WildcardCount(t *testing.T) {
	if got := NewTriplePattern(Any, Any, Any).WildcardCount(); got != 3 {
		t.Errorf("Expected 3 wildcards, got %d", got)
	}
	if got := NewTriplePattern(exA, RDFType, Any).WildcardCount(); got != 1 {
		t.Errorf("Expected 1 wildcard, got %d", got)
	}
	if NewTriplePattern(exA, RDFType, owlCls).HasWildcards() {
		t.Error("Fully bound pattern should have no wildcards")
	}
}

func TestNode_Basics(t *testing.T) {
	if !Blank("_:x").IsBlank() || Blank("_:x").Value != "x" {
		t.Error("Blank should strip the _: prefix")
	}
	if NewBlank() == NewBlank() {
		t.Error("NewBlank should mint distinct nodes")
	}
	if exA.LocalName() != "A" {
		t.Errorf("LocalName = %s, want A", exA.LocalName())
	}
	if URI("http://example.org/people/bob").LocalName() != "bob" {
		t.Error("LocalName should split on '/'")
	}
	if !exA.Matches(Any) || exA.Matches(exB) {
		t.Error("Matches should honor the wildcard")
	}
	if Any.String() != "ANY" || KindLiteral.String() != "literal" {
		t.Error("unexpected string forms")
	}
}
