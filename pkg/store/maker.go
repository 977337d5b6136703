package store

import "sync"

// GraphMaker creates and tracks named graphs. The ontology model uses it to
// obtain a fresh sub-graph for every imported document.
type GraphMaker interface {
	CreateGraph(name string) Graph
	OpenGraph(name string) (Graph, bool)
	RemoveGraph(name string)
	Names() []string
}

// MemGraphMaker is a GraphMaker backed by in-memory TripleStores.
type MemGraphMaker struct {
	mu     sync.Mutex
	graphs map[string]Graph
}

var _ GraphMaker = (*MemGraphMaker)(nil)

// NewMemGraphMaker creates an empty in-memory graph maker.
func NewMemGraphMaker() *MemGraphMaker {
	return &MemGraphMaker{graphs: make(map[string]Graph)}
}

// CreateGraph returns the graph registered under name, creating it if needed.
// An empty name always yields a fresh anonymous graph.
func (m *MemGraphMaker) CreateGraph(name string) Graph {
	if name == "" {
		return NewTripleStore()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.graphs[name]; ok {
		return g
	}
	g := NewTripleStore()
	m.graphs[name] = g
	return g
}

// OpenGraph returns an existing named graph.
func (m *MemGraphMaker) OpenGraph(name string) (Graph, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.graphs[name]
	return g, ok
}

// RemoveGraph forgets a named graph.
func (m *MemGraphMaker) RemoveGraph(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.graphs, name)
}

// Names returns the sorted names of all tracked graphs.
func (m *MemGraphMaker) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedKeys(m.graphs)
}
