package store

import (
	"fmt"
	"sync"
	"testing"
)

func TestNewTripleStore(t *testing.T) {
	store := NewTripleStore()

	if store == nil {
		t.Fatal("NewTripleStore returned nil")
	}

	if store.Count() != 0 {
		t.Errorf("New store should have 0 triples, got %d", store.Count())
	}
}

func TestTripleStore_Add(t *testing.T) {
	store := NewTripleStore()

	if err := store.Add(NewTriple(exA, RDFType, owlCls)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if store.Count() != 1 {
		t.Errorf("Expected 1 triple, got %d", store.Count())
	}

	// Add same triple again (idempotent)
	if err := store.Add(NewTriple(exA, RDFType, owlCls)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if store.Count() != 1 {
		t.Errorf("Expected 1 triple after duplicate add, got %d", store.Count())
	}

	if err := store.Add(NewTriple(exA, exLabel, Literal("A"))); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if store.Count() != 2 {
		t.Errorf("Expected 2 triples, got %d", store.Count())
	}
}

func TestTripleStore_Add_InvalidTriple(t *testing.T) {
	store := NewTripleStore()

	if err := store.Add(NewTriple(Any, RDFType, owlCls)); err == nil {
		t.Error("Expected error for wildcard subject")
	}
	if err := store.Add(NewTriple(Literal("x"), RDFType, owlCls)); err == nil {
		t.Error("Expected error for literal subject")
	}
	if store.Count() != 0 {
		t.Errorf("Invalid adds must not change the store, got %d triples", store.Count())
	}
}

func populatedStore(t *testing.T) *TripleStore {
	t.Helper()

	store := NewTripleStore()
	triples := []Triple{
		NewTriple(exA, RDFType, owlCls),
		NewTriple(exB, RDFType, owlCls),
		NewTriple(exB, URI(NamespaceRDFS+"subClassOf"), exA),
		NewTriple(exA, exLabel, LangLiteral("A", "en")),
	}
	if err := store.BulkAdd(triples); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}
	return store
}

func TestTripleStore_Find(t *testing.T) {
	store := populatedStore(t)

	tests := []struct {
		name     string
		s, p, o  Node
		expected int
	}{
		{"all", Any, Any, Any, 4},
		{"by subject", exA, Any, Any, 2},
		{"by subject and predicate", exB, RDFType, Any, 1},
		{"by subject and object", exB, Any, exA, 1},
		{"by predicate", RDFType, Any, Any, 0},
		{"by predicate position", Any, RDFType, Any, 2},
		{"by predicate and object", Any, RDFType, owlCls, 2},
		{"by object", Any, Any, exA, 1},
		{"fully bound", exA, RDFType, owlCls, 1},
		{"no match", exB, exLabel, Any, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(store.Find(tt.s, tt.p, tt.o)); got != tt.expected {
				t.Errorf("Find returned %d triples, want %d", got, tt.expected)
			}
		})
	}
}

func TestTripleStore_Contains(t *testing.T) {
	store := populatedStore(t)

	if !store.Contains(exA, RDFType, owlCls) {
		t.Error("Expected exact triple to be contained")
	}
	if !store.Contains(Any, URI(NamespaceRDFS+"subClassOf"), Any) {
		t.Error("Expected wildcard pattern to match")
	}
	if store.Contains(exA, URI(NamespaceRDFS+"subClassOf"), Any) {
		t.Error("A has no superclass")
	}
}

func TestTripleStore_Remove(t *testing.T) {
	store := populatedStore(t)

	removed := store.Remove(Any, RDFType, Any)
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	if store.Count() != 2 {
		t.Errorf("Expected 2 remaining, got %d", store.Count())
	}
	if len(store.Find(Any, RDFType, Any)) != 0 {
		t.Error("POS index still returns removed triples")
	}
	if len(store.Find(Any, Any, owlCls)) != 0 {
		t.Error("OSP index still returns removed triples")
	}

	if store.Remove(exA, RDFType, owlCls) != 0 {
		t.Error("Removing a missing triple should report 0")
	}
}

func TestTripleStore_GetAndStats(t *testing.T) {
	store := populatedStore(t)

	props := store.Get(exA)
	if len(props[RDFType]) != 1 || len(props[exLabel]) != 1 {
		t.Errorf("Unexpected properties for A: %v", props)
	}

	stats := store.Stats()
	if stats.TotalTriples != 4 || stats.UniqueSubjects != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.PredicateCounts[RDFType.Value] != 2 {
		t.Errorf("Expected 2 rdf:type triples, got %d", stats.PredicateCounts[RDFType.Value])
	}

	store.Clear()
	if store.Count() != 0 || len(store.Subjects()) != 0 {
		t.Error("Clear should empty the store")
	}
}

func TestTripleStore_MergeFrom(t *testing.T) {
	source := populatedStore(t)
	target := NewTripleStore()
	_ = target.Add(NewTriple(exA, RDFType, owlCls))

	added := target.MergeFrom(source)
	if added != 3 {
		t.Errorf("Expected 3 new triples, got %d", added)
	}
}

func TestTripleStore_ConcurrentAccess(t *testing.T) {
	store := NewTripleStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				subject := URI(fmt.Sprintf("http://example.org/w%d/%d", worker, j))
				_ = store.Add(NewTriple(subject, RDFType, owlCls))
				_ = store.Find(Any, RDFType, owlCls)
			}
		}(i)
	}

	wg.Wait()

	if store.Count() != 500 {
		t.Errorf("Expected 500 triples, got %d", store.Count())
	}
}

func TestListMembers(t *testing.T) {
	store := NewTripleStore()
	cell1, cell2 := Blank("l1"), Blank("l2")
	_ = store.BulkAdd([]Triple{
		NewTriple(cell1, RDFFirst, exA),
		NewTriple(cell1, RDFRest, cell2),
		NewTriple(cell2, RDFFirst, exB),
		NewTriple(cell2, RDFRest, RDFNil),
	})

	members, ok := ListMembers(store, cell1, RDFFirst, RDFRest, RDFNil)
	if !ok || len(members) != 2 || members[0] != exA || members[1] != exB {
		t.Errorf("Unexpected members %v (well formed %v)", members, ok)
	}

	empty, ok := ListMembers(store, RDFNil, RDFFirst, RDFRest, RDFNil)
	if !ok || len(empty) != 0 {
		t.Error("nil should be the empty list")
	}

	// A cycle must terminate and report a malformed list.
	_ = store.Remove(cell2, RDFRest, RDFNil)
	_ = store.Add(NewTriple(cell2, RDFRest, cell1))
	if _, ok := ListMembers(store, cell1, RDFFirst, RDFRest, RDFNil); ok {
		t.Error("Cyclic list should not be well formed")
	}
}
