package store

import (
	"fmt"
	"sync"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// IndexStats contains statistics about the triple store.
type IndexStats struct {
	TotalTriples     int            `json:"total_triples"`
	UniqueSubjects   int            `json:"unique_subjects"`
	UniquePredicates int            `json:"unique_predicates"`
	UniqueObjects    int            `json:"unique_objects"`
	PredicateCounts  map[string]int `json:"predicate_counts"`
}

type index map[Node]map[Node]map[Node]bool

// TripleStore is an in-memory RDF triple store with three indexes:
//   - SPO: Subject -> Predicate -> Object (find facts about a subject)
//   - POS: Predicate -> Object -> Subject (find subjects with property=value)
//   - OSP: Object -> Subject -> Predicate (find subjects pointing to object)
type TripleStore struct {
	mu sync.RWMutex

	spo index
	pos index
	osp index

	count int

	predicateCounts map[Node]int
}

var _ Graph = (*TripleStore)(nil)

// NewTripleStore creates a new in-memory triple store with all indexes initialized.
func NewTripleStore() *TripleStore {
	return &TripleStore{
		spo:             make(index),
		pos:             make(index),
		osp:             make(index),
		predicateCounts: make(map[Node]int),
	}
}

// Add inserts a triple into the store. Adding a triple that already exists
// is a no-op.
func (ts *TripleStore) Add(triple Triple) error {
	if !triple.IsValid() {
		return errors.Newf("invalid triple %s", triple)
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.addUnsafe(triple)
	return nil
}

// BulkAdd inserts multiple triples, holding the write lock for the whole
// operation. Invalid triples are skipped.
func (ts *TripleStore) BulkAdd(triples []Triple) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for _, triple := range triples {
		if !triple.IsValid() {
			continue
		}
		ts.addUnsafe(triple)
	}

	return nil
}

// MergeFrom copies all triples from the source graph into this store.
// Returns the number of new triples added.
func (ts *TripleStore) MergeFrom(source Graph) int {
	previousCount := ts.Count()
	_ = ts.BulkAdd(source.Find(Any, Any, Any))
	return ts.Count() - previousCount
}

// Find queries triples matching the pattern. Use Any for wildcards.
func (ts *TripleStore) Find(subject, predicate, object Node) []Triple {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return ts.findUnsafe(subject, predicate, object)
}

// FindPattern queries using a TriplePattern.
func (ts *TripleStore) FindPattern(pattern TriplePattern) []Triple {
	return ts.Find(pattern.Subject, pattern.Predicate, pattern.Object)
}

// Contains reports whether at least one triple matches the pattern.
func (ts *TripleStore) Contains(subject, predicate, object Node) bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if !subject.IsAny() && !predicate.IsAny() && !object.IsAny() {
		return ts.existsUnsafe(subject, predicate, object)
	}
	return len(ts.findUnsafe(subject, predicate, object)) > 0
}

// Get retrieves all properties for a subject as a map of predicate -> objects.
func (ts *TripleStore) Get(subject Node) map[Node][]Node {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	result := make(map[Node][]Node)
	for p, oMap := range ts.spo[subject] {
		objects := make([]Node, 0, len(oMap))
		for o := range oMap {
			objects = append(objects, o)
		}
		result[p] = objects
	}

	return result
}

// Remove deletes matching triples. Any components act as wildcards.
// Returns the number of triples removed.
func (ts *TripleStore) Remove(subject, predicate, object Node) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	matches := ts.findUnsafe(subject, predicate, object)
	for _, triple := range matches {
		ts.deleteTripleUnsafe(triple)
	}

	return len(matches)
}

// Clear removes all triples from the store.
func (ts *TripleStore) Clear() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.spo = make(index)
	ts.pos = make(index)
	ts.osp = make(index)
	ts.count = 0
	ts.predicateCounts = make(map[Node]int)
}

// Count returns the total number of triples in the store.
func (ts *TripleStore) Count() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.count
}

// Subjects returns all unique subjects in the store.
func (ts *TripleStore) Subjects() []Node {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	subjects := make([]Node, 0, len(ts.spo))
	for s := range ts.spo {
		subjects = append(subjects, s)
	}
	return subjects
}

// Stats returns statistics about the store.
func (ts *TripleStore) Stats() IndexStats {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	predicateCounts := make(map[string]int, len(ts.predicateCounts))
	for k, v := range ts.predicateCounts {
		predicateCounts[k.Value] = v
	}

	return IndexStats{
		TotalTriples:     ts.count,
		UniqueSubjects:   len(ts.spo),
		UniquePredicates: len(ts.pos),
		UniqueObjects:    len(ts.osp),
		PredicateCounts:  predicateCounts,
	}
}

// String returns a string representation of the store statistics.
func (ts *TripleStore) String() string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return fmt.Sprintf("TripleStore{triples: %d, subjects: %d, predicates: %d, objects: %d}",
		ts.count, len(ts.spo), len(ts.pos), len(ts.osp))
}

// All returns all triples in the store.
func (ts *TripleStore) All() []Triple {
	return ts.Find(Any, Any, Any)
}

func (idx index) put(a, b, c Node) {
	if idx[a] == nil {
		idx[a] = make(map[Node]map[Node]bool)
	}
	if idx[a][b] == nil {
		idx[a][b] = make(map[Node]bool)
	}
	idx[a][b][c] = true
}

func (idx index) drop(a, b, c Node) {
	if bMap, ok := idx[a]; ok {
		if cMap, ok := bMap[b]; ok {
			delete(cMap, c)
			if len(cMap) == 0 {
				delete(bMap, b)
			}
		}
		if len(bMap) == 0 {
			delete(idx, a)
		}
	}
}

func (ts *TripleStore) addUnsafe(triple Triple) {
	s, p, o := triple.Subject, triple.Predicate, triple.Object
	if ts.existsUnsafe(s, p, o) {
		return
	}

	ts.spo.put(s, p, o)
	ts.pos.put(p, o, s)
	ts.osp.put(o, s, p)

	ts.predicateCounts[p]++
	ts.count++
}

// existsUnsafe checks if a triple exists without locking.
func (ts *TripleStore) existsUnsafe(subject, predicate, object Node) bool {
	if pMap, ok := ts.spo[subject]; ok {
		if oMap, ok := pMap[predicate]; ok {
			return oMap[object]
		}
	}
	return false
}

// findUnsafe finds triples without locking, using the most specific index
// for the bound components.
func (ts *TripleStore) findUnsafe(subject, predicate, object Node) []Triple {
	var results []Triple

	switch {
	case !subject.IsAny():
		for p, oMap := range ts.spo[subject] {
			if !p.Matches(predicate) {
				continue
			}
			if !object.IsAny() {
				if oMap[object] {
					results = append(results, Triple{Subject: subject, Predicate: p, Object: object})
				}
				continue
			}
			for o := range oMap {
				results = append(results, Triple{Subject: subject, Predicate: p, Object: o})
			}
		}
	case !predicate.IsAny():
		for o, sMap := range ts.pos[predicate] {
			if !o.Matches(object) {
				continue
			}
			for s := range sMap {
				results = append(results, Triple{Subject: s, Predicate: predicate, Object: o})
			}
		}
	case !object.IsAny():
		for s, pMap := range ts.osp[object] {
			for p := range pMap {
				results = append(results, Triple{Subject: s, Predicate: p, Object: object})
			}
		}
	default:
		for s, pMap := range ts.spo {
			for p, oMap := range pMap {
				for o := range oMap {
					results = append(results, Triple{Subject: s, Predicate: p, Object: o})
				}
			}
		}
	}

	return results
}

// deleteTripleUnsafe deletes a specific triple without locking.
func (ts *TripleStore) deleteTripleUnsafe(triple Triple) {
	s, p, o := triple.Subject, triple.Predicate, triple.Object
	if !ts.existsUnsafe(s, p, o) {
		return
	}

	ts.spo.drop(s, p, o)
	ts.pos.drop(p, o, s)
	ts.osp.drop(o, s, p)

	ts.predicateCounts[p]--
	if ts.predicateCounts[p] <= 0 {
		delete(ts.predicateCounts, p)
	}

	ts.count--
}
