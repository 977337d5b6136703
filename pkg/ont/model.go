// Package ont provides the ontology model: a union of a base graph and the
// graphs of its imported documents, governed by a language profile, with
// typed views over graph nodes for classes, properties, individuals and
// the other ontology abstractions.
//
// A Model is not safe for concurrent mutation. Callers sharing one across
// goroutines bracket their work with EnterCriticalSection and
// LeaveCriticalSection.
package ont

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/coolbeans/ontograph/pkg/docmgr"
	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/facet"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// ModelSpec describes how to build a Model. Zero fields get defaults.
type ModelSpec struct {
	// Language is the ontology language URI; defaults to OWL Full.
	Language string

	// Registry supplies profiles; defaults to profile.DefaultRegistry().
	Registry *profile.Registry

	// Base receives all writes; defaults to a new in-memory store.
	Base store.Graph

	// DocumentManager locates and reads imports; defaults to docmgr.New().
	DocumentManager *docmgr.DocumentManager

	// GraphMaker creates the sub-graphs for imported documents.
	GraphMaker store.GraphMaker

	// Engine resolves facets; defaults to DefaultEngine().
	Engine *facet.Engine

	// Lax turns strict conversions off.
	Lax bool
}

// Model is an ontology model over a union graph.
type Model struct {
	profile *profile.Profile
	union   *store.Union
	docs    *docmgr.DocumentManager
	maker   store.GraphMaker
	engine  *facet.Engine

	mu       sync.Mutex
	strict   bool
	imported map[string]bool
	order    []string
	lastRead *docmgr.ReadState

	cs      sync.RWMutex
	csMu    sync.Mutex
	csModes []bool
}

var (
	_ store.Graph         = (*Model)(nil)
	_ facet.ProfileSource = (*Model)(nil)
	_ docmgr.ImportTarget = (*Model)(nil)
)

// NewModel builds a model and, unless the document manager's policy
// disables it, loads the import closure of the base graph before
// returning.
func NewModel(ctx context.Context, spec ModelSpec) (*Model, error) {
	registry := spec.Registry
	if registry == nil {
		registry = profile.DefaultRegistry()
	}
	language := spec.Language
	if language == "" {
		language = profile.LangOWL
	}
	p, ok := registry.Lookup(profile.ResolveLanguage(language))
	if !ok {
		return nil, errors.WithHintf(errors.NewModelError("unknown ontology language %q", language),
			"known languages: %v", registry.Languages())
	}

	m := &Model{
		profile:  p,
		union:    store.NewUnion(spec.Base),
		docs:     spec.DocumentManager,
		maker:    spec.GraphMaker,
		engine:   spec.Engine,
		strict:   !spec.Lax,
		imported: make(map[string]bool),
	}
	if m.docs == nil {
		m.docs = docmgr.New()
	}
	if m.maker == nil {
		m.maker = store.NewMemGraphMaker()
	}
	if m.engine == nil {
		m.engine = DefaultEngine()
	}

	m.markBaseOntologies()
	if err := m.loadImports(ctx, ""); err != nil {
		return nil, err
	}

	logger.Debugw("ontology model created",
		logger.FieldLanguage, p.Language(),
		logger.FieldStrict, m.strict,
		logger.FieldCount, m.Count())
	return m, nil
}

// Profile returns the model's language profile.
func (m *Model) Profile() *profile.Profile { return m.profile }

// Language returns the model's language URI.
func (m *Model) Language() string { return m.profile.Language() }

// Engine returns the facet engine used for conversions.
func (m *Model) Engine() *facet.Engine { return m.engine }

// DocumentManager returns the manager used for reads and imports.
func (m *Model) DocumentManager() *docmgr.DocumentManager { return m.docs }

// GraphMaker returns the factory for import sub-graphs.
func (m *Model) GraphMaker() store.GraphMaker { return m.maker }

// Strict reports whether conversions require the full structural test.
func (m *Model) Strict() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.strict
}

// SetStrict turns strict conversions on or off.
func (m *Model) SetStrict(strict bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strict = strict
}

// Graph interface: reads see the whole union, writes go to the base graph.

// Add inserts a triple into the base graph.
func (m *Model) Add(t store.Triple) error { return m.union.Add(t) }

// Remove deletes matching triples from the base graph.
func (m *Model) Remove(subject, predicate, object store.Node) int {
	return m.union.Remove(subject, predicate, object)
}

// Find returns matching triples across the union.
func (m *Model) Find(subject, predicate, object store.Node) []store.Triple {
	return m.union.Find(subject, predicate, object)
}

// Contains reports whether a matching triple exists in the union.
func (m *Model) Contains(subject, predicate, object store.Node) bool {
	return m.union.Contains(subject, predicate, object)
}

// Count returns the number of distinct triples in the union.
func (m *Model) Count() int { return m.union.Count() }

// Union returns the union graph.
func (m *Model) Union() *store.Union { return m.union }

// BaseGraph returns the graph that receives writes.
func (m *Model) BaseGraph() store.Graph { return m.union.BaseGraph() }

// SubGraphs returns the imported graphs in the order they were added.
func (m *Model) SubGraphs() []store.Graph { return m.union.SubGraphs() }

// CountSubGraphs returns the number of imported graphs.
func (m *Model) CountSubGraphs() int { return len(m.union.SubGraphs()) }

// IsInBaseModel reports whether t is asserted in the base graph.
func (m *Model) IsInBaseModel(t store.Triple) bool {
	return m.union.BaseGraph().Contains(t.Subject, t.Predicate, t.Object)
}

// AddSubGraph adds g to the union. Adding a graph already present is a
// no-op. rebind is recorded for an attached reasoner; the model itself
// keeps no inferences.
func (m *Model) AddSubGraph(g store.Graph, rebind bool) {
	if store.Reaches(g, m.union) {
		logger.Warnw("refusing sub-graph that contains this model", "rebind", rebind)
		return
	}
	if m.union.AddGraph(g) {
		logger.Debugw("sub-graph added",
			logger.FieldCount, g.Count(),
			"rebind", rebind)
	}
}

// AddSubModel merges another graph into the union. Another model
// contributes its whole union, imports included. A graph that already
// contains this model is refused.
func (m *Model) AddSubModel(g store.Graph, rebind bool) error {
	if g == nil {
		return errors.NewModelError("cannot add a nil sub-model")
	}
	if other, ok := g.(*Model); ok {
		if other == m {
			return errors.NewModelError("a model cannot be its own sub-model")
		}
		g = other.Union()
	}
	if store.Reaches(g, m.union) {
		return errors.NewModelError("sub-model already contains this model")
	}
	m.AddSubGraph(g, rebind)
	return nil
}

// RemoveSubGraph takes g out of the union. Import bookkeeping is left
// untouched.
func (m *Model) RemoveSubGraph(g store.Graph, rebind bool) bool {
	removed := m.union.RemoveGraph(g)
	if removed {
		logger.Debugw("sub-graph removed", "rebind", rebind)
	}
	return removed
}

// HasLoadedImport reports whether the document uri has been loaded or is
// being loaded.
func (m *Model) HasLoadedImport(uri string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.imported[docmgr.CacheURLFor(uri)]
}

// AddLoadedImport records uri as loaded. Recording it again is a no-op.
func (m *Model) AddLoadedImport(uri string) {
	key := docmgr.CacheURLFor(uri)
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.imported[key] {
		m.imported[key] = true
		m.order = append(m.order, key)
	}
}

// LoadedImports returns every recorded document URI in the order it was
// recorded.
func (m *Model) LoadedImports() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}

// ListImportedOntologyURIs returns the documents named by import
// statements: only those of the base graph, or with closure those of
// every graph in the union. The result is sorted.
func (m *Model) ListImportedOntologyURIs(closure bool) []string {
	var g store.Graph = m.union.BaseGraph()
	if closure {
		g = m.union
	}
	seen := make(map[string]bool)
	var uris []string
	for _, uri := range docmgr.ImportsOf(g, m.profile) {
		key := docmgr.CacheURLFor(uri)
		if !seen[key] {
			seen[key] = true
			uris = append(uris, key)
		}
	}
	sort.Strings(uris)
	return uris
}

// ImportedGraph returns the sub-graph holding the document uri.
func (m *Model) ImportedGraph(uri string) (store.Graph, bool) {
	key := docmgr.CacheURLFor(uri)
	if g, ok := m.maker.OpenGraph(key); ok && m.union.HasGraph(g) {
		return g, true
	}
	if g, ok := m.docs.GetModel(key); ok && m.union.HasGraph(g) {
		return g, true
	}
	return nil, false
}

// LastReadState returns the report of the most recent import traversal.
func (m *Model) LastReadState() *docmgr.ReadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRead
}

// Read loads the document uri into the base graph and follows its
// imports.
func (m *Model) Read(ctx context.Context, uri string) error {
	if _, err := m.docs.ReadDocument(ctx, uri, m.union.BaseGraph()); err != nil {
		return err
	}
	m.AddLoadedImport(uri)
	m.markBaseOntologies()
	return m.loadImports(ctx, uri)
}

// ReadFrom parses r into the base graph and follows the imports it
// declares. base is the document URI used to resolve relative
// references; when set, it is recorded as loaded.
func (m *Model) ReadFrom(ctx context.Context, r io.Reader, base string, format store.Format) error {
	if _, err := store.Read(r, base, format, m.union.BaseGraph()); err != nil {
		return err
	}
	if base != "" {
		m.AddLoadedImport(base)
	}
	m.markBaseOntologies()
	return m.loadImports(ctx, base)
}

// Write serialises the base graph.
func (m *Model) Write(w io.Writer, format store.Format) error {
	return store.Write(w, m.union.BaseGraph(), format, m.docs.PrefixMappings()...)
}

// WriteAll serialises the whole union.
func (m *Model) WriteAll(w io.Writer, format store.Format) error {
	return store.Write(w, m.union, format, m.docs.PrefixMappings()...)
}

// EnterCriticalSection takes the model's advisory lock, shared when read
// is true.
func (m *Model) EnterCriticalSection(read bool) {
	if read {
		m.cs.RLock()
	} else {
		m.cs.Lock()
	}
	m.csMu.Lock()
	m.csModes = append(m.csModes, read)
	m.csMu.Unlock()
}

// LeaveCriticalSection releases the most recent EnterCriticalSection.
func (m *Model) LeaveCriticalSection() error {
	m.csMu.Lock()
	n := len(m.csModes)
	if n == 0 {
		m.csMu.Unlock()
		return errors.NewModelError("leaving a critical section that was never entered")
	}
	read := m.csModes[n-1]
	m.csModes = m.csModes[:n-1]
	m.csMu.Unlock()

	if read {
		m.cs.RUnlock()
	} else {
		m.cs.Unlock()
	}
	return nil
}

// markBaseOntologies records the ontology nodes of the base graph as
// loaded so an import cycle back to the root does not reload it.
func (m *Model) markBaseOntologies() {
	base := m.union.BaseGraph()
	for _, t := range m.profile.TermEquivalents(profile.TermOntology) {
		for _, pred := range m.profile.TypePredicates() {
			for _, s := range store.Subjects(base, pred, t) {
				if s.IsURI() {
					m.AddLoadedImport(s.Value)
				}
			}
		}
	}
}

func (m *Model) loadImports(ctx context.Context, root string) error {
	state := docmgr.NewReadState(root)
	err := m.docs.LoadImports(ctx, m, state)

	m.mu.Lock()
	m.lastRead = state
	m.mu.Unlock()

	if err != nil {
		return errors.Wrap(err, "failed to load imports")
	}
	return nil
}
