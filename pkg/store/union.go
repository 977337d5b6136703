package store

import "sync"

// Union presents a base graph and an ordered list of sub-graphs as one
// logical graph. Reads see the set-union of all members; writes go to the
// base graph only.
type Union struct {
	mu        sync.RWMutex
	base      Graph
	subGraphs []Graph
}

var _ Graph = (*Union)(nil)

// NewUnion creates a union over base. A nil base gets a fresh TripleStore.
func NewUnion(base Graph) *Union {
	if base == nil {
		base = NewTripleStore()
	}
	return &Union{base: base}
}

// BaseGraph returns the graph that receives all writes.
func (u *Union) BaseGraph() Graph {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.base
}

// SubGraphs returns the non-base member graphs in insertion order.
func (u *Union) SubGraphs() []Graph {
	u.mu.RLock()
	defer u.mu.RUnlock()

	graphs := make([]Graph, len(u.subGraphs))
	copy(graphs, u.subGraphs)
	return graphs
}

// AddGraph appends a sub-graph. Adding the base graph, a graph that is
// already a member, or a graph that reaches u itself is a no-op; the
// return value reports whether the graph was added.
func (u *Union) AddGraph(g Graph) bool {
	if g == nil || Reaches(g, u) {
		return false
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.memberUnsafe(g) {
		return false
	}
	u.subGraphs = append(u.subGraphs, g)
	return true
}

// unionHolder is a graph that reads through a union it owns.
type unionHolder interface {
	Union() *Union
}

// Reaches reports whether target is g or a member of g at any depth.
// Unions and graphs holding a union are followed through their members.
func Reaches(g, target Graph) bool {
	return reaches(g, target, make(map[Graph]bool))
}

func reaches(g, target Graph, seen map[Graph]bool) bool {
	if g == nil {
		return false
	}
	if g == target {
		return true
	}
	if seen[g] {
		return false
	}
	seen[g] = true

	var u *Union
	switch v := g.(type) {
	case *Union:
		u = v
	case unionHolder:
		u = v.Union()
	default:
		return false
	}
	if u == nil {
		return false
	}
	if Graph(u) == target {
		return true
	}
	for _, member := range u.members() {
		if reaches(member, target, seen) {
			return true
		}
	}
	return false
}

// RemoveGraph removes a sub-graph. The base graph cannot be removed.
func (u *Union) RemoveGraph(g Graph) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, member := range u.subGraphs {
		if member == g {
			u.subGraphs = append(u.subGraphs[:i], u.subGraphs[i+1:]...)
			return true
		}
	}
	return false
}

// HasGraph reports whether g is the base graph or one of the sub-graphs.
func (u *Union) HasGraph(g Graph) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.memberUnsafe(g)
}

// Add writes the triple to the base graph.
func (u *Union) Add(t Triple) error {
	return u.BaseGraph().Add(t)
}

// Remove deletes matching triples from the base graph only. Triples that
// come from imported sub-graphs stay visible.
func (u *Union) Remove(subject, predicate, object Node) int {
	return u.BaseGraph().Remove(subject, predicate, object)
}

// Find returns the distinct triples matching the pattern across all members.
func (u *Union) Find(subject, predicate, object Node) []Triple {
	members := u.members()
	if len(members) == 1 {
		return members[0].Find(subject, predicate, object)
	}

	seen := make(map[Triple]bool)
	var results []Triple
	for _, member := range members {
		for _, t := range member.Find(subject, predicate, object) {
			if !seen[t] {
				seen[t] = true
				results = append(results, t)
			}
		}
	}
	return results
}

// Contains reports whether any member has a matching triple.
func (u *Union) Contains(subject, predicate, object Node) bool {
	for _, member := range u.members() {
		if member.Contains(subject, predicate, object) {
			return true
		}
	}
	return false
}

// Count returns the number of distinct triples in the union.
func (u *Union) Count() int {
	members := u.members()
	if len(members) == 1 {
		return members[0].Count()
	}
	return len(u.Find(Any, Any, Any))
}

func (u *Union) members() []Graph {
	u.mu.RLock()
	defer u.mu.RUnlock()

	members := make([]Graph, 0, len(u.subGraphs)+1)
	members = append(members, u.base)
	return append(members, u.subGraphs...)
}

func (u *Union) memberUnsafe(g Graph) bool {
	if g == u.base {
		return true
	}
	for _, member := range u.subGraphs {
		if member == g {
			return true
		}
	}
	return false
}
