package docmgr

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// memFetcher serves documents from memory and counts requests.
type memFetcher struct {
	docs      map[string]string
	requests  map[string]int
	forgotten []string
}

func newMemFetcher(docs map[string]string) *memFetcher {
	return &memFetcher{docs: docs, requests: make(map[string]int)}
}

func (f *memFetcher) Fetch(_ context.Context, location string) (io.ReadCloser, error) {
	f.requests[location]++
	body, ok := f.docs[location]
	if !ok {
		return nil, errors.Newf("no document at %s", location)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (f *memFetcher) Forget(location string) { f.forgotten = append(f.forgotten, location) }

// target is a minimal ImportTarget over a union graph.
type target struct {
	union   *store.Union
	maker   *store.MemGraphMaker
	loaded  map[string]bool
	order   []string
	profile *profile.Profile
}

func newTarget(base store.Graph) *target {
	return &target{
		union:   store.NewUnion(base),
		maker:   store.NewMemGraphMaker(),
		loaded:  make(map[string]bool),
		profile: profile.OWLFull(),
	}
}

func (t *target) Profile() *profile.Profile    { return t.profile }
func (t *target) BaseGraph() store.Graph       { return t.union.BaseGraph() }
func (t *target) GraphMaker() store.GraphMaker { return t.maker }
func (t *target) HasLoadedImport(uri string) bool {
	return t.loaded[uri]
}
func (t *target) AddLoadedImport(uri string) {
	if !t.loaded[uri] {
		t.loaded[uri] = true
		t.order = append(t.order, uri)
	}
}
func (t *target) AddSubGraph(g store.Graph, _ bool) { t.union.AddGraph(g) }

func ontologyDoc(uri string, imports ...string) string {
	var b strings.Builder
	b.WriteString("@prefix owl: <http://www.w3.org/2002/07/owl#> .\n")
	b.WriteString("<" + uri + "> a owl:Ontology .\n")
	for _, imp := range imports {
		b.WriteString("<" + uri + "> owl:imports <" + imp + "> .\n")
	}
	b.WriteString("<" + uri + "#C> a owl:Class .\n")
	return b.String()
}

func baseImporting(t *testing.T, uri string, imports ...string) *store.TripleStore {
	t.Helper()
	g := store.NewTripleStore()
	_, err := store.Read(strings.NewReader(ontologyDoc(uri, imports...)), uri, store.FormatTurtle, g)
	require.NoError(t, err)
	return g
}

func turtlePolicy(uris ...string) *Policy {
	p := DefaultPolicy()
	for _, u := range uris {
		p.Documents = append(p.Documents, DocumentSpec{URI: u, Format: "turtle"})
	}
	return p
}

func TestLoadImports_Cycle(t *testing.T) {
	const a, b = "http://ex/A", "http://ex/B"
	fetcher := newMemFetcher(map[string]string{
		a: ontologyDoc(a, b),
		b: ontologyDoc(b, a),
	})
	dm := New(WithFetcher(fetcher), WithPolicy(turtlePolicy(a, b)))

	tgt := newTarget(baseImporting(t, a, b))
	tgt.AddLoadedImport(a)

	state := NewReadState(a)
	require.NoError(t, dm.LoadImports(context.Background(), tgt, state))

	assert.Equal(t, []string{a, b}, tgt.order)
	assert.Len(t, tgt.union.SubGraphs(), 1, "B is added once and A is never reloaded")
	assert.Equal(t, 1, fetcher.requests[b])
	assert.Zero(t, fetcher.requests[a])
	assert.Equal(t, 1, state.LoadedCount)
	assert.Equal(t, []string{b}, state.URIs())
}

func TestLoadImports_Transitive(t *testing.T) {
	const root, a, b, c = "http://ex/root", "http://ex/A", "http://ex/B", "http://ex/C"
	fetcher := newMemFetcher(map[string]string{
		a: ontologyDoc(a, b, c),
		b: ontologyDoc(b, c),
		c: ontologyDoc(c),
	})
	dm := New(WithFetcher(fetcher), WithPolicy(turtlePolicy(a, b, c)))
	tgt := newTarget(baseImporting(t, root, a))

	state := NewReadState(root)
	require.NoError(t, dm.LoadImports(context.Background(), tgt, state))

	assert.Equal(t, []string{a, b, c}, tgt.order, "depth-first order")
	assert.Len(t, tgt.union.SubGraphs(), 3)
	assert.Equal(t, 1, fetcher.requests[c], "C is imported twice but read once")

	depths := map[string]int{}
	for _, r := range state.Results {
		depths[r.URI] = r.Depth
	}
	assert.Equal(t, map[string]int{a: 1, b: 2, c: 3}, depths)
	assert.Contains(t, state.String(), b)
	assert.Contains(t, state.ToMarkdown(), "| Loaded | 3 |")
}

func TestLoadImports_Disabled(t *testing.T) {
	fetcher := newMemFetcher(nil)
	dm := New(WithFetcher(fetcher))
	dm.SetProcessImports(false)

	tgt := newTarget(baseImporting(t, "http://ex/root", "http://ex/A"))
	require.NoError(t, dm.LoadImports(context.Background(), tgt, nil))
	assert.Empty(t, tgt.union.SubGraphs())
	assert.Empty(t, fetcher.requests)
}

func TestLoadImports_FailureHandling(t *testing.T) {
	const root, missing = "http://ex/root", "http://ex/missing"

	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)

	lenient := New(WithFetcher(newMemFetcher(nil)), WithMetrics(metrics))
	tgt := newTarget(baseImporting(t, root, missing))
	state := NewReadState(root)
	require.NoError(t, lenient.LoadImports(context.Background(), tgt, state))
	assert.Equal(t, 1, state.FailedCount)
	assert.True(t, tgt.HasLoadedImport(missing), "a failed import stays marked")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ImportFailures))

	strict := New(WithFetcher(newMemFetcher(nil)), WithStrictReadFailures(true))
	err = strict.LoadImports(context.Background(), newTarget(baseImporting(t, root, missing)), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestLoadImports_IgnoreList(t *testing.T) {
	const root, a = "http://ex/root", "http://ex/A"
	fetcher := newMemFetcher(map[string]string{a: ontologyDoc(a)})
	policy := turtlePolicy(a)
	policy.IgnoreImports = []string{a + "#"}
	dm := New(WithFetcher(fetcher), WithPolicy(policy))

	tgt := newTarget(baseImporting(t, root, a))
	state := NewReadState(root)
	require.NoError(t, dm.LoadImports(context.Background(), tgt, state))
	assert.Empty(t, tgt.union.SubGraphs())
	assert.Equal(t, 1, state.IgnoredCount)
	assert.Zero(t, fetcher.requests[a])
}

func TestLoadImports_ModelCache(t *testing.T) {
	const root, a = "http://ex/root", "http://ex/A"
	fetcher := newMemFetcher(map[string]string{a: ontologyDoc(a)})

	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)
	dm := New(WithFetcher(fetcher), WithPolicy(turtlePolicy(a)), WithMetrics(metrics))

	for i := 0; i < 2; i++ {
		tgt := newTarget(baseImporting(t, root, a))
		require.NoError(t, dm.LoadImports(context.Background(), tgt, nil))
		require.Len(t, tgt.union.SubGraphs(), 1)
	}
	assert.Equal(t, 1, fetcher.requests[a], "second model reuses the parsed document")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.DocumentsFetched))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHits))
	assert.Equal(t, []string{a}, dm.CachedURIs())

	dm.ForgetDocument(a + "#")
	_, ok := dm.GetModel(a)
	assert.False(t, ok)
	assert.Equal(t, []string{a}, fetcher.forgotten)

	dm.AddModel(a, store.NewTripleStore())
	dm.ClearCache()
	assert.Empty(t, dm.CachedURIs())

	dm.SetCacheModels(false)
	dm.AddModel(a, store.NewTripleStore())
	assert.Empty(t, dm.CachedURIs(), "nothing is cached when caching is off")
}

func TestAltURLFor(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "a.ttl")
	require.NoError(t, os.WriteFile(local, []byte(ontologyDoc("http://ex/A")), 0o644))

	dm := New()
	assert.Equal(t, "http://ex/A", dm.AltURLFor("http://ex/A"))

	dm.AddAltEntry("http://ex/A#", local)
	assert.Equal(t, local, dm.AltURLFor("http://ex/A"))

	g := store.NewTripleStore()
	n, err := dm.ReadDocument(context.Background(), "http://ex/A", g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dm.AddAltEntry("http://ex/A", "file://"+filepath.ToSlash(local))
	assert.Len(t, dm.Policy().Documents, 1, "remapping replaces the entry")
}

func TestCacheURLFor(t *testing.T) {
	assert.Equal(t, "http://ex/o", CacheURLFor("http://ex/o#"))
	assert.Equal(t, "http://ex/o", CacheURLFor("http://ex/o#Thing"))
	assert.Equal(t, "http://ex/o", CacheURLFor("http://ex/o"))
}

func TestRoutingFetcher(t *testing.T) {
	f := RoutingFetcher{}
	_, err := f.Fetch(context.Background(), "https://example.org/o.owl")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = f.Fetch(context.Background(), filepath.Join(t.TempDir(), "none.ttl"))
	require.Error(t, err)

	remote := newMemFetcher(map[string]string{"https://example.org/o.owl": "x"})
	f.Remote = remote
	rc, err := f.Fetch(context.Background(), "https://example.org/o.owl")
	require.NoError(t, err)
	rc.Close()
	f.Forget("https://example.org/o.owl")
	assert.Equal(t, []string{"https://example.org/o.owl"}, remote.forgotten)
}

func TestPrefixAndLanguage(t *testing.T) {
	policy := DefaultPolicy()
	policy.Documents = []DocumentSpec{
		{URI: "http://ex/wine", Prefix: "wine", Language: "owl-dl"},
		{URI: "http://ex/food#", Prefix: "food"},
	}
	dm := New(WithPolicy(policy))

	lang, ok := dm.LanguageFor("http://ex/wine#")
	require.True(t, ok)
	assert.Equal(t, profile.LangOWLDL, lang)
	_, ok = dm.LanguageFor("http://ex/food")
	assert.False(t, ok)

	assert.Equal(t, []store.PrefixMapping{
		{Prefix: "food", Namespace: "http://ex/food#"},
		{Prefix: "wine", Namespace: "http://ex/wine#"},
	}, dm.PrefixMappings())
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	assert.Error(t, err)

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.fetched() })
}
