package profile

import (
	"testing"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

const ex = "http://example.org/test#"

func node(local string) store.Node { return store.URI(ex + local) }

func graphOf(t *testing.T, triples ...store.Triple) *store.TripleStore {
	t.Helper()
	g := store.NewTripleStore()
	for _, tr := range triples {
		if err := g.Add(tr); err != nil {
			t.Fatalf("Add(%s) failed: %v", tr, err)
		}
	}
	return g
}

func TestTermTables(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		term    Term
		want    store.Node
		present bool
	}{
		{"owl class", OWLFull(), TermClass, vocab.OWLClass, true},
		{"owl subclass", OWLFull(), TermSubClassOf, vocab.RDFSSubClassOf, true},
		{"dl restriction", OWLDL(), TermRestriction, vocab.OWLRestriction, true},
		{"lite has no union", OWLLite(), TermUnionOf, store.Node{}, false},
		{"lite has no datarange", OWLLite(), TermDataRange, store.Node{}, false},
		{"lite keeps intersection", OWLLite(), TermIntersectionOf, vocab.OWLIntersectionOf, true},
		{"daml class", DAML(), TermClass, vocab.DAMLClass, true},
		{"daml functional", DAML(), TermFunctionalProperty, vocab.DAMLUniqueProperty, true},
		{"daml all values", DAML(), TermAllValuesFrom, vocab.DAMLToClass, true},
		{"daml same as", DAML(), TermSameAs, vocab.DAMLEquivalentTo, true},
		{"daml no symmetric", DAML(), TermSymmetricProperty, store.Node{}, false},
		{"daml no all different", DAML(), TermAllDifferent, store.Node{}, false},
		{"rdfs class", RDFS(), TermClass, vocab.RDFSClass, true},
		{"rdfs no restriction", RDFS(), TermRestriction, store.Node{}, false},
		{"rdfs no ontology", RDFS(), TermOntology, store.Node{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.profile.Term(tt.term)
			if ok != tt.present {
				t.Fatalf("Term(%s) present = %v, want %v", tt.term, ok, tt.present)
			}
			if ok && got != tt.want {
				t.Errorf("Term(%s) = %s, want %s", tt.term, got, tt.want)
			}
			if tt.profile.HasTerm(tt.term) != tt.present {
				t.Errorf("HasTerm(%s) disagrees with Term", tt.term)
			}
		})
	}
}

func TestDAMLAliases(t *testing.T) {
	p := DAML()

	if !p.HasAlias(vocab.DAMLClass) {
		t.Fatal("daml:Class should have the legacy alias")
	}
	aliases := p.AliasesOf(vocab.DAMLClass)
	if len(aliases) != 1 || aliases[0] != vocab.DAMLLegacyClass {
		t.Errorf("AliasesOf(daml:Class) = %v", aliases)
	}
	if got := p.Canonical(vocab.DAMLLegacyClass); got != vocab.DAMLClass {
		t.Errorf("Canonical(legacy Class) = %s", got)
	}
	if got := p.Canonical(node("Other")); got != node("Other") {
		t.Errorf("Canonical of a non-alias should be unchanged, got %s", got)
	}
	if !p.HasAlias(vocab.RDFSSubClassOf) {
		t.Error("rdfs:subClassOf should accept daml:subClassOf")
	}
	if OWLFull().HasAlias(vocab.OWLClass) {
		t.Error("OWL profile should have no aliases")
	}

	// Mutating the returned slice must not affect the profile.
	aliases[0] = node("Mutated")
	if p.AliasesOf(vocab.DAMLClass)[0] != vocab.DAMLLegacyClass {
		t.Error("AliasesOf returned an internal slice")
	}
}

func TestIsSupported_Class(t *testing.T) {
	g := graphOf(t,
		store.NewTriple(node("A"), vocab.RDFType, vocab.OWLClass),
		store.NewTriple(node("R"), vocab.RDFType, vocab.RDFSClass),
		store.NewTriple(node("p"), vocab.RDFSDomain, node("D")),
		store.NewTriple(node("L"), vocab.RDFType, vocab.DAMLLegacyClass),
	)

	tests := []struct {
		name    string
		profile *Profile
		node    store.Node
		want    bool
	}{
		{"full typed", OWLFull(), node("A"), true},
		{"full rdfs class", OWLFull(), node("R"), true},
		{"full domain object", OWLFull(), node("D"), true},
		{"full thing", OWLFull(), vocab.OWLThing, true},
		{"full untyped", OWLFull(), node("X"), false},
		{"full literal", OWLFull(), store.Literal("A"), false},
		{"dl domain object", OWLDL(), node("D"), false},
		{"dl rdfs class", OWLDL(), node("R"), false},
		{"dl typed", OWLDL(), node("A"), true},
		{"daml legacy alias", DAML(), node("L"), true},
		{"daml owl class", DAML(), node("A"), false},
		{"rdfs rdfs class", RDFS(), node("R"), true},
		{"rdfs owl class", RDFS(), node("A"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.IsSupported(tt.node, g, FacetClass); got != tt.want {
				t.Errorf("IsSupported(%s, Class) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestIsSupported_Restrictions(t *testing.T) {
	r := store.Blank("r")
	g := graphOf(t,
		store.NewTriple(r, vocab.RDFType, vocab.OWLRestriction),
		store.NewTriple(r, vocab.OWLOnProperty, node("p")),
		store.NewTriple(r, vocab.OWLAllValuesFrom, node("C")),
	)
	p := OWLFull()

	if !p.IsSupported(r, g, FacetRestriction) {
		t.Error("typed restriction should be a Restriction")
	}
	if !p.IsSupported(r, g, FacetAllValuesFromRestriction) {
		t.Error("restriction with allValuesFrom should be an AllValuesFromRestriction")
	}
	if p.IsSupported(r, g, FacetSomeValuesFromRestriction) {
		t.Error("restriction without someValuesFrom must not be a SomeValuesFromRestriction")
	}
	if !p.IsSupported(r, g, FacetClass) {
		t.Error("restrictions are classes")
	}

	// Without onProperty the variant check fails.
	r2 := store.Blank("r2")
	g2 := graphOf(t,
		store.NewTriple(r2, vocab.RDFType, vocab.OWLRestriction),
		store.NewTriple(r2, vocab.OWLAllValuesFrom, node("C")),
	)
	if p.IsSupported(r2, g2, FacetAllValuesFromRestriction) {
		t.Error("restriction without onProperty must not pass the variant check")
	}
}

func TestIsSupported_LiteCardinality(t *testing.T) {
	one := store.Blank("one")
	five := store.Blank("five")
	g := graphOf(t,
		store.NewTriple(one, vocab.RDFType, vocab.OWLRestriction),
		store.NewTriple(one, vocab.OWLOnProperty, node("p")),
		store.NewTriple(one, vocab.OWLCardinality, store.TypedLiteral("1", vocab.XSDNonNegativeInteger.Value)),
		store.NewTriple(five, vocab.RDFType, vocab.OWLRestriction),
		store.NewTriple(five, vocab.OWLOnProperty, node("p")),
		store.NewTriple(five, vocab.OWLCardinality, store.TypedLiteral("5", vocab.XSDNonNegativeInteger.Value)),
	)

	lite := OWLLite()
	if !lite.IsSupported(one, g, FacetCardinalityRestriction) {
		t.Error("cardinality 1 is allowed in OWL Lite")
	}
	if lite.IsSupported(five, g, FacetCardinalityRestriction) {
		t.Error("cardinality 5 is not allowed in OWL Lite")
	}
	if !OWLDL().IsSupported(five, g, FacetCardinalityRestriction) {
		t.Error("cardinality 5 is allowed in OWL DL")
	}
}

func TestIsSupported_UnionClass(t *testing.T) {
	u := store.Blank("u")
	g := graphOf(t,
		store.NewTriple(u, vocab.RDFType, vocab.OWLClass),
		store.NewTriple(u, vocab.OWLUnionOf, vocab.RDFNil),
	)
	if !OWLFull().IsSupported(u, g, FacetUnionClass) {
		t.Error("class with unionOf should be a UnionClass")
	}
	if OWLFull().IsSupported(u, g, FacetIntersectionClass) {
		t.Error("class without intersectionOf must not be an IntersectionClass")
	}
	if OWLLite().IsSupported(u, g, FacetUnionClass) {
		t.Error("OWL Lite has no union classes")
	}
}

func TestIsSupported_Individual(t *testing.T) {
	g := graphOf(t,
		store.NewTriple(node("C"), vocab.RDFType, vocab.OWLClass),
		store.NewTriple(node("i"), vocab.RDFType, node("C")),
		store.NewTriple(node("j"), vocab.RDFType, node("Untyped")),
		store.NewTriple(node("p"), vocab.RDFType, vocab.OWLObjectProperty),
	)

	full := OWLFull()
	if !full.IsSupported(node("i"), g, FacetIndividual) {
		t.Error("typed instance should be an individual")
	}
	if !full.IsSupported(node("j"), g, FacetIndividual) {
		t.Error("OWL Full accepts any non-class resource as an individual")
	}
	if full.IsSupported(node("C"), g, FacetIndividual) {
		t.Error("classes are not individuals")
	}
	if full.IsSupported(node("p"), g, FacetIndividual) {
		t.Error("properties are not individuals")
	}

	dl := OWLDL()
	if !dl.IsSupported(node("i"), g, FacetIndividual) {
		t.Error("instance of a declared class should be a DL individual")
	}
	if dl.IsSupported(node("j"), g, FacetIndividual) {
		t.Error("instance of an undeclared class is not a DL individual")
	}
}

func TestIsSupported_Properties(t *testing.T) {
	g := graphOf(t,
		store.NewTriple(node("p"), vocab.RDFType, vocab.OWLTransitiveProperty),
		store.NewTriple(node("q"), vocab.RDFType, vocab.RDFProperty),
		store.NewTriple(node("u"), vocab.RDFType, vocab.DAMLUniqueProperty),
	)

	full := OWLFull()
	if !full.IsSupported(node("p"), g, FacetObjectProperty) {
		t.Error("transitive properties are object properties")
	}
	if !full.IsSupported(node("q"), g, FacetProperty) {
		t.Error("rdf:Property is a property in OWL Full")
	}
	if OWLDL().IsSupported(node("q"), g, FacetProperty) {
		t.Error("bare rdf:Property is not an OWL DL property")
	}
	if !full.IsSupported(vocab.RDFSLabel, g, FacetAnnotationProperty) {
		t.Error("rdfs:label is a built-in annotation property")
	}
	if !DAML().IsSupported(node("u"), g, FacetFunctionalProperty) {
		t.Error("daml:UniqueProperty is functional in DAML+OIL")
	}
	if DAML().IsSupported(node("p"), g, FacetSymmetricProperty) {
		t.Error("DAML+OIL has no symmetric properties")
	}
}

func TestIsSupported_List(t *testing.T) {
	l := store.Blank("l")
	g := graphOf(t,
		store.NewTriple(l, vocab.RDFFirst, node("a")),
		store.NewTriple(l, vocab.RDFRest, vocab.RDFNil),
	)
	for _, p := range []*Profile{OWLFull(), RDFS()} {
		if !p.IsSupported(l, g, FacetList) {
			t.Errorf("%s: list cell should be a List", p.Label())
		}
		if !p.IsSupported(vocab.RDFNil, g, FacetList) {
			t.Errorf("%s: nil should be a List", p.Label())
		}
	}
	if DAML().IsSupported(l, g, FacetList) {
		t.Error("DAML+OIL lists use daml:first")
	}
}

func TestIsSupported_UnknownFacet(t *testing.T) {
	g := store.NewTripleStore()
	if OWLFull().IsSupported(node("x"), g, FacetKey("Bogus")) {
		t.Error("unknown facets are never supported")
	}
	if OWLFull().IsSupported(node("x"), nil, FacetResource) {
		t.Error("nil graph supports nothing")
	}
	if RDFS().Supports(FacetRestriction) {
		t.Error("RDFS has no restrictions")
	}
}

func TestHasTypeThroughTypeAlias(t *testing.T) {
	g := graphOf(t, store.NewTriple(node("A"), vocab.DAMLType, vocab.DAMLClass))
	if !DAML().IsSupported(node("A"), g, FacetClass) {
		t.Error("daml:type should count as rdf:type in DAML+OIL")
	}
}

func TestAnnotationAndClassDescriptionTypes(t *testing.T) {
	p := OWLFull()
	types := p.ClassDescriptionTypes()
	if len(types) != 2 || types[0] != vocab.OWLClass || types[1] != vocab.OWLRestriction {
		t.Errorf("ClassDescriptionTypes() = %v", types)
	}
	if len(RDFS().AnnotationProperties()) != 4 {
		t.Errorf("RDFS annotation properties = %v", RDFS().AnnotationProperties())
	}
	if !DAML().IsAnnotationProperty(vocab.DAMLLabel) {
		t.Error("daml:label aliases rdfs:label")
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	if r != DefaultRegistry() {
		t.Error("DefaultRegistry should be shared")
	}

	want := []string{LangOWL, LangOWLDL, LangOWLLite, LangDAML, LangRDFS}
	got := r.Languages()
	if len(got) != len(want) {
		t.Fatalf("Languages() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Languages()[%d] = %s, want %s", i, got[i], want[i])
		}
		p, ok := r.Lookup(want[i])
		if !ok || p.Language() != want[i] {
			t.Errorf("Lookup(%s) failed", want[i])
		}
	}

	if _, ok := r.Lookup("http://example.org/unknown"); ok {
		t.Error("Lookup of unknown language should fail")
	}
	_, err := r.Get("http://example.org/unknown")
	if err == nil {
		t.Fatal("Get of unknown language should fail")
	}
	if len(errors.GetAllHints(err)) == 0 {
		t.Error("Get error should carry a hint")
	}
}

func TestNewRegistry_Replace(t *testing.T) {
	custom := New(Definition{Language: LangRDFS, Label: "custom"})
	r := NewRegistry(RDFS(), custom)
	if len(r.Languages()) != 1 {
		t.Fatalf("duplicate language registered twice: %v", r.Languages())
	}
	p, _ := r.Lookup(LangRDFS)
	if p.Label() != "custom" {
		t.Errorf("later profile should win, got %s", p.Label())
	}
}

func TestResolveLanguage(t *testing.T) {
	if ResolveLanguage("owl-dl") != LangOWLDL {
		t.Error("owl-dl should resolve")
	}
	if ResolveLanguage("daml") != LangDAML {
		t.Error("daml should resolve")
	}
	if ResolveLanguage(LangRDFS) != LangRDFS {
		t.Error("URIs pass through")
	}
}

func TestFacetsStable(t *testing.T) {
	a, b := Facets(), Facets()
	if len(a) != 27 {
		t.Errorf("Facets() has %d keys", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("Facets() order is not stable")
		}
	}
}

func TestMustLookup(t *testing.T) {
	if DefaultRegistry().MustLookup(LangDAML).Label() != "DAML+OIL" {
		t.Error("MustLookup(DAML) returned the wrong profile")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustLookup of an unknown language should panic")
		}
	}()
	DefaultRegistry().MustLookup("urn:none")
}
