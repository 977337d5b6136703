package docmgr

import (
	"context"
	"sort"

	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// ImportsOf returns the distinct document URIs named as imports anywhere
// in g, using p's imports term and its aliases. URIs are sorted within
// each predicate so traversal order is stable.
func ImportsOf(g store.Graph, p *profile.Profile) []string {
	if p == nil {
		return nil
	}
	var uris []string
	seen := make(map[string]bool)
	for _, pred := range p.TermEquivalents(profile.TermImports) {
		var found []string
		for _, t := range g.Find(store.Any, pred, store.Any) {
			if !t.Object.IsURI() {
				continue
			}
			uri := t.Object.Value
			if !seen[uri] {
				seen[uri] = true
				found = append(found, uri)
			}
		}
		sort.Strings(found)
		uris = append(uris, found...)
	}
	return uris
}

// LoadImports walks the import closure of target's base graph depth
// first. Each document URI is marked loaded on target before its own
// imports are followed, so cycles terminate. Unreadable imports go to the
// read failure handler. state may be nil.
func (dm *DocumentManager) LoadImports(ctx context.Context, target ImportTarget, state *ReadState) error {
	if !dm.ProcessImports() {
		logger.Debugw("import processing disabled")
		return nil
	}
	if state == nil {
		state = NewReadState("")
	}
	return dm.loadImportsOf(ctx, target, target.BaseGraph(), 1, state)
}

func (dm *DocumentManager) loadImportsOf(ctx context.Context, target ImportTarget, g store.Graph, depth int, state *ReadState) error {
	for _, uri := range ImportsOf(g, target.Profile()) {
		if err := dm.loadImport(ctx, target, uri, depth, state); err != nil {
			return err
		}
	}
	return nil
}

func (dm *DocumentManager) loadImport(ctx context.Context, target ImportTarget, uri string, depth int, state *ReadState) error {
	key := CacheURLFor(uri)
	if target.HasLoadedImport(key) {
		return nil
	}
	if dm.IgnoringImport(key) {
		state.record(ImportResult{URI: key, Depth: depth, Status: StatusIgnored})
		logger.Debugw("import ignored by policy", logger.FieldURI, key)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Mark before reading so a cycle back to key is a no-op.
	target.AddLoadedImport(key)

	g, cached, err := dm.documentGraph(ctx, key, target.GraphMaker())
	if err != nil {
		dm.metrics.importFailed()
		state.record(ImportResult{
			URI:      key,
			Location: dm.AltURLFor(key),
			Depth:    depth,
			Status:   StatusFailed,
			Error:    err.Error(),
		})
		return dm.readFailure(key, err)
	}

	target.AddSubGraph(g, false)

	status := StatusLoaded
	if cached {
		status = StatusCached
	}
	state.record(ImportResult{
		URI:      key,
		Location: dm.AltURLFor(key),
		Depth:    depth,
		Status:   status,
		Triples:  g.Count(),
	})
	logger.Debugw("import added",
		logger.FieldURI, key,
		logger.FieldDepth, depth,
		logger.FieldCached, cached,
		logger.FieldCount, g.Count())

	return dm.loadImportsOf(ctx, target, g, depth+1, state)
}

func (dm *DocumentManager) readFailure(uri string, err error) error {
	dm.mu.RLock()
	handler := dm.onFailure
	dm.mu.RUnlock()
	return handler(uri, err)
}
