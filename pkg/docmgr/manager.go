package docmgr

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// ImportTarget is the model side of an import traversal.
type ImportTarget interface {
	Profile() *profile.Profile
	BaseGraph() store.Graph
	GraphMaker() store.GraphMaker
	HasLoadedImport(uri string) bool
	AddLoadedImport(uri string)
	AddSubGraph(g store.Graph, rebind bool)
}

// DocumentManager maps document URIs to readable locations, reads them
// into graphs, caches the results and follows imports.
type DocumentManager struct {
	mu        sync.RWMutex
	policy    *Policy
	fetcher   Fetcher
	maker     store.GraphMaker
	metrics   *Metrics
	onFailure ReadFailureHandler
	models    map[string]store.Graph
}

// New creates a document manager with the default policy, a local file
// fetcher and warning-level handling of unreadable imports.
func New(opts ...Option) *DocumentManager {
	dm := &DocumentManager{
		policy:    DefaultPolicy(),
		fetcher:   RoutingFetcher{},
		maker:     store.NewMemGraphMaker(),
		onFailure: LogReadFailure,
		models:    make(map[string]store.Graph),
	}
	for _, opt := range opts {
		opt(dm)
	}
	return dm
}

// Policy returns a copy of the current policy.
func (dm *DocumentManager) Policy() *Policy {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.policy.clone()
}

// ProcessImports reports whether imports are followed.
func (dm *DocumentManager) ProcessImports() bool {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.policy.ProcessImports
}

// SetProcessImports turns import processing on or off.
func (dm *DocumentManager) SetProcessImports(process bool) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.policy.ProcessImports = process
}

// CacheModels reports whether parsed documents are reused.
func (dm *DocumentManager) CacheModels() bool {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.policy.CacheModels
}

// SetCacheModels turns reuse of parsed documents on or off. Turning it
// off also clears the cache.
func (dm *DocumentManager) SetCacheModels(cache bool) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.policy.CacheModels = cache
	if !cache {
		dm.models = make(map[string]store.Graph)
	}
}

// AddAltEntry maps uri to an alternative location.
func (dm *DocumentManager) AddAltEntry(uri, altURL string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	key := CacheURLFor(uri)
	for i, doc := range dm.policy.Documents {
		if CacheURLFor(doc.URI) == key {
			dm.policy.Documents[i].AltURL = altURL
			return
		}
	}
	dm.policy.Documents = append(dm.policy.Documents, DocumentSpec{URI: uri, AltURL: altURL})
}

// AltURLFor returns the location to read uri from. Without a mapping the
// URI itself is the location.
func (dm *DocumentManager) AltURLFor(uri string) string {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	if doc, ok := dm.policy.Document(uri); ok && doc.AltURL != "" {
		return doc.AltURL
	}
	return uri
}

// LanguageFor returns the language declared for uri in the policy.
func (dm *DocumentManager) LanguageFor(uri string) (string, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	if doc, ok := dm.policy.Document(uri); ok && doc.Language != "" {
		return profile.ResolveLanguage(doc.Language), true
	}
	return "", false
}

// PrefixMappings returns the namespace prefixes declared in the policy,
// sorted by prefix.
func (dm *DocumentManager) PrefixMappings() []store.PrefixMapping {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	var mappings []store.PrefixMapping
	for _, doc := range dm.policy.Documents {
		if doc.Prefix == "" {
			continue
		}
		ns := doc.URI
		if !strings.HasSuffix(ns, "#") && !strings.HasSuffix(ns, "/") {
			ns += "#"
		}
		mappings = append(mappings, store.PrefixMapping{Prefix: doc.Prefix, Namespace: ns})
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].Prefix < mappings[j].Prefix })
	return mappings
}

// AddIgnoreImport stops uri from being followed as an import.
func (dm *DocumentManager) AddIgnoreImport(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.policy.IgnoreImports = append(dm.policy.IgnoreImports, uri)
}

// IgnoringImport reports whether uri is on the ignore list.
func (dm *DocumentManager) IgnoringImport(uri string) bool {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	key := CacheURLFor(uri)
	for _, ignored := range dm.policy.IgnoreImports {
		if CacheURLFor(ignored) == key {
			return true
		}
	}
	return false
}

// CacheURLFor normalises a document URI: the fragment and a trailing '#'
// are removed so that "http://ex/o#" and "http://ex/o" name one document.
func CacheURLFor(uri string) string {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		uri = uri[:i]
	}
	return uri
}

// CacheURLFor is the method form of the package function.
func (dm *DocumentManager) CacheURLFor(uri string) string {
	return CacheURLFor(uri)
}

// GetModel returns the cached graph for uri.
func (dm *DocumentManager) GetModel(uri string) (store.Graph, bool) {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	g, ok := dm.models[CacheURLFor(uri)]
	return g, ok
}

// AddModel caches g as the parsed form of uri. It is a no-op when model
// caching is off.
func (dm *DocumentManager) AddModel(uri string, g store.Graph) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	if dm.policy.CacheModels {
		dm.models[CacheURLFor(uri)] = g
	}
}

// CachedURIs returns the URIs of cached documents, sorted.
func (dm *DocumentManager) CachedURIs() []string {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	uris := make([]string, 0, len(dm.models))
	for uri := range dm.models {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

// ClearCache drops every cached document graph.
func (dm *DocumentManager) ClearCache() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	dm.models = make(map[string]store.Graph)
}

// ForgetDocument drops the cached graph for uri and any downloaded copy
// the fetcher keeps.
func (dm *DocumentManager) ForgetDocument(uri string) {
	key := CacheURLFor(uri)
	location := dm.AltURLFor(key)

	dm.mu.Lock()
	delete(dm.models, key)
	fetcher := dm.fetcher
	dm.mu.Unlock()

	if f, ok := fetcher.(Forgetter); ok {
		f.Forget(location)
	}
}

// ReadDocument fetches uri from its mapped location and parses it into g.
func (dm *DocumentManager) ReadDocument(ctx context.Context, uri string, g store.Graph) (int, error) {
	location := dm.AltURLFor(uri)
	format := dm.formatFor(uri, location)

	start := time.Now()
	rc, err := dm.fetcher.Fetch(ctx, location)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to fetch %s", uri)
	}
	defer rc.Close()

	n, err := store.Read(rc, CacheURLFor(uri), format, g)
	if err != nil {
		return n, errors.Wrapf(err, "failed to parse %s", location)
	}
	dm.metrics.fetched()

	logger.Debugw("document read",
		logger.FieldURI, uri,
		logger.FieldAltURL, location,
		logger.FieldCount, n,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return n, nil
}

func (dm *DocumentManager) formatFor(uri, location string) store.Format {
	dm.mu.RLock()
	doc, ok := dm.policy.Document(uri)
	dm.mu.RUnlock()
	if ok && doc.Format != "" {
		if f, err := store.ParseFormat(doc.Format); err == nil {
			return f
		}
	}
	return store.FormatFromPath(location)
}

// documentGraph returns a graph holding uri, from the cache or freshly
// read through maker. The boolean reports a cache hit.
func (dm *DocumentManager) documentGraph(ctx context.Context, uri string, maker store.GraphMaker) (store.Graph, bool, error) {
	if dm.CacheModels() {
		if g, ok := dm.GetModel(uri); ok {
			dm.metrics.cacheHit()
			return g, true, nil
		}
	}
	if maker == nil {
		maker = dm.maker
	}

	g := maker.CreateGraph(uri)
	if _, err := dm.ReadDocument(ctx, uri, g); err != nil {
		maker.RemoveGraph(uri)
		return nil, false, err
	}
	dm.AddModel(uri, g)
	return g, false, nil
}
