package store

import "testing"

func TestUnion_WritesGoToBase(t *testing.T) {
	base := NewTripleStore()
	imported := NewTripleStore()
	_ = imported.Add(NewTriple(exB, RDFType, owlCls))

	union := NewUnion(base)
	if !union.AddGraph(imported) {
		t.Fatal("AddGraph should accept a new graph")
	}

	if err := union.Add(NewTriple(exA, RDFType, owlCls)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if base.Count() != 1 || imported.Count() != 1 {
		t.Errorf("Write leaked into sub-graph: base=%d imported=%d", base.Count(), imported.Count())
	}
	if union.Count() != 2 {
		t.Errorf("Union should see 2 triples, got %d", union.Count())
	}
	if !union.Contains(exB, RDFType, owlCls) {
		t.Error("Union should see imported triples")
	}
}

func TestUnion_DeduplicatesAndRemovesFromBaseOnly(t *testing.T) {
	base := NewTripleStore()
	imported := NewTripleStore()
	shared := NewTriple(exA, RDFType, owlCls)
	_ = base.Add(shared)
	_ = imported.Add(shared)

	union := NewUnion(base)
	union.AddGraph(imported)

	if got := len(union.Find(Any, RDFType, Any)); got != 1 {
		t.Errorf("Expected deduplicated result, got %d", got)
	}

	if removed := union.Remove(exA, RDFType, owlCls); removed != 1 {
		t.Errorf("Expected 1 removal from base, got %d", removed)
	}
	if !union.Contains(exA, RDFType, owlCls) {
		t.Error("Imported copy should remain visible")
	}
}

func TestUnion_MembershipIsIdempotent(t *testing.T) {
	base := NewTripleStore()
	sub := NewTripleStore()
	union := NewUnion(base)

	if union.AddGraph(base) {
		t.Error("Base graph must not become a sub-graph")
	}
	union.AddGraph(sub)
	if union.AddGraph(sub) {
		t.Error("Second AddGraph of the same graph should be a no-op")
	}
	if len(union.SubGraphs()) != 1 {
		t.Errorf("Expected 1 sub-graph, got %d", len(union.SubGraphs()))
	}
	if !union.HasGraph(sub) || !union.HasGraph(base) {
		t.Error("HasGraph should report members")
	}

	if !union.RemoveGraph(sub) || union.RemoveGraph(sub) {
		t.Error("RemoveGraph should remove exactly once")
	}
	if union.BaseGraph() != Graph(base) {
		t.Error("BaseGraph changed")
	}
}

type unionOwner struct {
	Graph
	u *Union
}

func (o unionOwner) Union() *Union { return o.u }

func TestUnion_RefusesCycles(t *testing.T) {
	base := NewTripleStore()
	_ = base.Add(NewTriple(exA, RDFType, owlCls))
	union := NewUnion(base)

	if union.AddGraph(union) {
		t.Error("A union must not contain itself")
	}

	outer := NewUnion(nil)
	if !outer.AddGraph(union) {
		t.Fatal("AddGraph should accept a fresh union")
	}
	if union.AddGraph(outer) {
		t.Error("A union reaching back to the receiver must be refused")
	}
	if union.AddGraph(unionOwner{Graph: outer, u: outer}) {
		t.Error("A graph holding such a union must be refused")
	}
	if len(union.SubGraphs()) != 0 {
		t.Errorf("Expected no sub-graphs, got %d", len(union.SubGraphs()))
	}

	// Reads still terminate.
	if union.Count() != 1 || outer.Count() != 1 {
		t.Errorf("Unexpected counts: union=%d outer=%d", union.Count(), outer.Count())
	}
}

func TestReaches(t *testing.T) {
	leaf := NewTripleStore()
	inner := NewUnion(nil)
	inner.AddGraph(leaf)
	outer := NewUnion(nil)
	outer.AddGraph(unionOwner{Graph: inner, u: inner})

	tests := []struct {
		name   string
		g      Graph
		target Graph
		want   bool
	}{
		{"self", leaf, leaf, true},
		{"direct member", inner, leaf, true},
		{"through holder", outer, leaf, true},
		{"base graph", inner, inner.BaseGraph(), true},
		{"not a member", inner, NewTripleStore(), false},
		{"plain graph has no members", leaf, inner, false},
		{"nil", nil, leaf, false},
	}
	for _, tt := range tests {
		if got := Reaches(tt.g, tt.target); got != tt.want {
			t.Errorf("%s: Reaches = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMemGraphMaker(t *testing.T) {
	maker := NewMemGraphMaker()

	g1 := maker.CreateGraph("http://example.org/a")
	g2 := maker.CreateGraph("http://example.org/a")
	if g1 != g2 {
		t.Error("CreateGraph should reuse named graphs")
	}
	if maker.CreateGraph("") == maker.CreateGraph("") {
		t.Error("Anonymous graphs should be distinct")
	}

	if _, ok := maker.OpenGraph("http://example.org/a"); !ok {
		t.Error("OpenGraph should find the created graph")
	}
	maker.RemoveGraph("http://example.org/a")
	if len(maker.Names()) != 0 {
		t.Errorf("Expected no names, got %v", maker.Names())
	}
}

func TestResources(t *testing.T) {
	base := NewTripleStore()
	sub := NewTripleStore()
	a := URI("http://example.org/a")
	b := URI("http://example.org/b")
	r := Blank("r")
	_ = base.Add(NewTriple(a, RDFType, b))
	_ = sub.Add(NewTriple(r, URI("http://example.org/p"), Literal("x")))
	_ = sub.Add(NewTriple(a, URI("http://example.org/p"), r))

	union := NewUnion(base)
	union.AddGraph(sub)

	got := Resources(union)
	want := []Node{a, b, r}
	if len(got) != len(want) {
		t.Fatalf("Resources = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resources[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
