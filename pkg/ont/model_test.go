package ont

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolbeans/ontograph/pkg/docmgr"
	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

const ex = "http://ex/"

const prefixes = `@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix ex: <http://ex/> .
`

// memFetcher serves turtle documents from memory and counts requests.
type memFetcher struct {
	mu       sync.Mutex
	docs     map[string]string
	requests map[string]int
}

func (f *memFetcher) Fetch(_ context.Context, location string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[location]++
	body, ok := f.docs[location]
	if !ok {
		return nil, errors.Newf("no document at %s", location)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func newDocs(docs map[string]string) (*docmgr.DocumentManager, *memFetcher) {
	fetcher := &memFetcher{docs: docs, requests: make(map[string]int)}
	policy := docmgr.DefaultPolicy()
	for uri := range docs {
		policy.Documents = append(policy.Documents, docmgr.DocumentSpec{URI: uri, Format: "turtle"})
	}
	return docmgr.New(docmgr.WithFetcher(fetcher), docmgr.WithPolicy(policy)), fetcher
}

// newModel builds a model of the given language over a turtle body.
func newModel(t *testing.T, language, body string) *Model {
	t.Helper()
	base := store.NewTripleStore()
	if body != "" {
		_, err := store.Read(strings.NewReader(prefixes+body), ex, store.FormatTurtle, base)
		require.NoError(t, err)
	}
	docs, _ := newDocs(nil)
	m, err := NewModel(context.Background(), ModelSpec{Language: language, Base: base, DocumentManager: docs})
	require.NoError(t, err)
	return m
}

func nodes[V interface{ Node() store.Node }](views []V) []store.Node {
	out := make([]store.Node, 0, len(views))
	for _, v := range views {
		out = append(out, v.Node())
	}
	return out
}

func ontologyDoc(uri string, imports ...string) string {
	var b strings.Builder
	b.WriteString(prefixes)
	b.WriteString("<" + uri + "> a owl:Ontology .\n")
	for _, imp := range imports {
		b.WriteString("<" + uri + "> owl:imports <" + imp + "> .\n")
	}
	b.WriteString("<" + uri + "#C> a owl:Class .\n")
	return b.String()
}

func TestNewModel_Defaults(t *testing.T) {
	m, err := NewModel(context.Background(), ModelSpec{})
	require.NoError(t, err)

	assert.Equal(t, profile.LangOWL, m.Language())
	assert.True(t, m.Strict())
	assert.Zero(t, m.Count())
	assert.Zero(t, m.CountSubGraphs())
	assert.NotNil(t, m.DocumentManager())
	assert.Same(t, DefaultEngine(), m.Engine())
}

func TestNewModel_ShortLanguageNames(t *testing.T) {
	for short, want := range map[string]string{
		"owl-dl":   profile.LangOWLDL,
		"lite":     profile.LangOWLLite,
		"daml":     profile.LangDAML,
		"rdfs":     profile.LangRDFS,
		"owl-full": profile.LangOWL,
	} {
		m, err := NewModel(context.Background(), ModelSpec{Language: short})
		require.NoError(t, err, short)
		assert.Equal(t, want, m.Language(), short)
	}
}

func TestNewModel_UnknownLanguage(t *testing.T) {
	_, err := NewModel(context.Background(), ModelSpec{Language: "http://ex/klingon#"})
	require.Error(t, err)
	assert.True(t, errors.IsModelError(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestModel_ImportCycleTerminates(t *testing.T) {
	const root, a, b = "http://ex/root", "http://ex/A", "http://ex/B"
	docs, fetcher := newDocs(map[string]string{
		a: ontologyDoc(a, b),
		b: ontologyDoc(b, a),
	})
	base := store.NewTripleStore()
	_, err := store.Read(strings.NewReader(ontologyDoc(root, a)), root, store.FormatTurtle, base)
	require.NoError(t, err)

	m, err := NewModel(context.Background(), ModelSpec{Base: base, DocumentManager: docs})
	require.NoError(t, err)

	assert.Equal(t, 2, m.CountSubGraphs(), "A and B each appear once")
	assert.Equal(t, []string{root, a, b}, m.LoadedImports())
	assert.Equal(t, 1, fetcher.requests[a])
	assert.Equal(t, 1, fetcher.requests[b])
	assert.Equal(t, []string{a}, m.ListImportedOntologyURIs(false))
	assert.Equal(t, []string{a, b}, m.ListImportedOntologyURIs(true))

	ga, ok := m.ImportedGraph(a + "#")
	require.True(t, ok)
	assert.True(t, ga.Contains(store.URI(a), vocab.RDFType, vocab.OWLOntology))

	state := m.LastReadState()
	require.NotNil(t, state)
	assert.Equal(t, []string{a, b}, state.URIs())

	// The classes of every imported document are visible through the union.
	assert.Len(t, m.ListNamedClasses(), 3)
}

func TestModel_ImportsDisabled(t *testing.T) {
	const root, a = "http://ex/root", "http://ex/A"
	docs, fetcher := newDocs(map[string]string{a: ontologyDoc(a)})
	docs.SetProcessImports(false)
	base := store.NewTripleStore()
	_, err := store.Read(strings.NewReader(ontologyDoc(root, a)), root, store.FormatTurtle, base)
	require.NoError(t, err)

	m, err := NewModel(context.Background(), ModelSpec{Base: base, DocumentManager: docs})
	require.NoError(t, err)
	assert.Zero(t, m.CountSubGraphs())
	assert.Zero(t, fetcher.requests[a])
}

func TestModel_ReadFollowsImports(t *testing.T) {
	const root, a = "http://ex/root", "http://ex/A"
	docs, fetcher := newDocs(map[string]string{
		root: ontologyDoc(root, a),
		a:    ontologyDoc(a, root),
	})
	m, err := NewModel(context.Background(), ModelSpec{DocumentManager: docs})
	require.NoError(t, err)

	require.NoError(t, m.Read(context.Background(), root))
	assert.Equal(t, 1, m.CountSubGraphs())
	assert.Equal(t, 1, fetcher.requests[root], "the cycle back to root is not re-read")
	assert.True(t, m.IsInBaseModel(store.NewTriple(store.URI(root), vocab.RDFType, vocab.OWLOntology)))
	assert.False(t, m.IsInBaseModel(store.NewTriple(store.URI(a), vocab.RDFType, vocab.OWLOntology)))
	assert.True(t, m.Contains(store.URI(a), vocab.RDFType, vocab.OWLOntology))
}

func TestModel_LoadedImportIdempotent(t *testing.T) {
	m := newModel(t, "", "")
	m.AddLoadedImport("http://ex/doc#")
	m.AddLoadedImport("http://ex/doc")
	assert.True(t, m.HasLoadedImport("http://ex/doc"))
	assert.Equal(t, []string{"http://ex/doc"}, m.LoadedImports())

	g := store.NewTripleStore()
	m.AddSubGraph(g, false)
	m.AddSubGraph(g, true)
	assert.Equal(t, 1, m.CountSubGraphs())

	assert.True(t, m.RemoveSubGraph(g, false))
	assert.Zero(t, m.CountSubGraphs())
	assert.True(t, m.HasLoadedImport("http://ex/doc"), "bookkeeping survives removal")
}

func TestModel_AddSubModel(t *testing.T) {
	m := newModel(t, "", "ex:A a owl:Class .")
	other := newModel(t, "", "ex:B a owl:Class .")

	require.NoError(t, m.AddSubModel(other, false))
	assert.Equal(t, 1, m.CountSubGraphs())
	assert.Len(t, m.ListNamedClasses(), 2)

	assert.True(t, errors.IsModelError(m.AddSubModel(m, false)))
	assert.True(t, errors.IsModelError(m.AddSubModel(nil, false)))
}

func TestModel_AddSubModelBringsImports(t *testing.T) {
	const root, b = "http://ex/root", "http://ex/B"
	docs, _ := newDocs(map[string]string{
		root: ontologyDoc(root, b),
		b:    ontologyDoc(b),
	})
	other, err := NewModel(context.Background(), ModelSpec{DocumentManager: docs})
	require.NoError(t, err)
	require.NoError(t, other.Read(context.Background(), root))
	_, ok := other.GetOntClass(b + "#C")
	require.True(t, ok)

	m := newModel(t, "", "ex:A a owl:Class .")
	require.NoError(t, m.AddSubModel(other, false))

	_, ok = m.GetOntClass(b + "#C")
	assert.True(t, ok, "classes imported by the sub-model are visible")
	_, ok = m.GetOntClass(root + "#C")
	assert.True(t, ok)
}

func TestModel_AddSubModelRefusesCycles(t *testing.T) {
	m := newModel(t, "", "ex:A a owl:Class .")

	err := m.AddSubModel(m.Union(), false)
	require.Error(t, err)
	assert.True(t, errors.IsModelError(err))
	assert.Zero(t, m.CountSubGraphs())
	_, ok := m.GetOntClass(ex + "A")
	assert.True(t, ok)

	m.AddSubGraph(m.Union(), false)
	assert.Zero(t, m.CountSubGraphs())

	other := newModel(t, "", "ex:B a owl:Class .")
	require.NoError(t, other.AddSubModel(m, false))
	err = m.AddSubModel(other, false)
	require.Error(t, err)
	assert.True(t, errors.IsModelError(err))

	assert.Len(t, m.ListNamedClasses(), 1)
	assert.Len(t, other.ListNamedClasses(), 2)
}

func TestModel_WritesGoToBase(t *testing.T) {
	m := newModel(t, "", "")
	sub := store.NewTripleStore()
	m.AddSubGraph(sub, false)

	_, err := m.CreateClass(ex + "C")
	require.NoError(t, err)
	assert.Zero(t, sub.Count())
	assert.Equal(t, 1, m.BaseGraph().Count())
}

func TestModel_WriteRoundTrip(t *testing.T) {
	m := newModel(t, "", `
ex:A a owl:Class .
ex:B a owl:Class ; rdfs:subClassOf ex:A .
`)
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, store.FormatTurtle))

	again, err := NewModel(context.Background(), ModelSpec{})
	require.NoError(t, err)
	require.NoError(t, again.ReadFrom(context.Background(), &buf, ex, store.FormatTurtle))

	assert.Equal(t, nodes(m.ListNamedClasses()), nodes(again.ListNamedClasses()))
	assert.Equal(t, m.Count(), again.Count())
}

func TestModel_CriticalSections(t *testing.T) {
	m := newModel(t, "", "")

	m.EnterCriticalSection(true)
	m.EnterCriticalSection(true)
	require.NoError(t, m.LeaveCriticalSection())
	require.NoError(t, m.LeaveCriticalSection())

	err := m.LeaveCriticalSection()
	assert.True(t, errors.IsModelError(err))

	m.EnterCriticalSection(false)
	done := make(chan struct{})
	go func() {
		m.EnterCriticalSection(true)
		_ = m.LeaveCriticalSection()
		close(done)
	}()
	_, err = m.CreateClass(ex + "C")
	require.NoError(t, err)
	require.NoError(t, m.LeaveCriticalSection())
	<-done
}

func TestModel_StrictToggle(t *testing.T) {
	m, err := NewModel(context.Background(), ModelSpec{Lax: true})
	require.NoError(t, err)
	assert.False(t, m.Strict())
	m.SetStrict(true)
	assert.True(t, m.Strict())
}
