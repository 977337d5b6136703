// Package docmgr locates, fetches, parses and caches ontology documents,
// and performs the depth-first import traversal that builds a model's
// import closure.
package docmgr

import (
	"time"

	"github.com/coolbeans/ontograph/pkg/store"
)

// DefaultCacheTTL is the default time-to-live for documents downloaded
// into the disk cache.
const DefaultCacheTTL = 24 * time.Hour

// DefaultFetchTimeout bounds a single remote download.
const DefaultFetchTimeout = 30 * time.Second

// Option configures a DocumentManager.
type Option func(*DocumentManager)

// WithPolicy replaces the default policy.
func WithPolicy(policy *Policy) Option {
	return func(dm *DocumentManager) {
		if policy != nil {
			dm.policy = policy.clone()
		}
	}
}

// WithFetcher sets the fetcher used to retrieve documents.
func WithFetcher(fetcher Fetcher) Option {
	return func(dm *DocumentManager) {
		if fetcher != nil {
			dm.fetcher = fetcher
		}
	}
}

// WithMetrics attaches Prometheus counters.
func WithMetrics(metrics *Metrics) Option {
	return func(dm *DocumentManager) {
		dm.metrics = metrics
	}
}

// WithReadFailureHandler sets the handler invoked when an import cannot
// be read.
func WithReadFailureHandler(handler ReadFailureHandler) Option {
	return func(dm *DocumentManager) {
		if handler != nil {
			dm.onFailure = handler
		}
	}
}

// WithStrictReadFailures makes unreadable imports abort the traversal
// instead of being logged and skipped.
func WithStrictReadFailures(strict bool) Option {
	return func(dm *DocumentManager) {
		if strict {
			dm.onFailure = FailOnReadError
		} else {
			dm.onFailure = LogReadFailure
		}
	}
}

// WithGraphMaker sets the factory for graphs holding fetched documents
// when the import target does not provide one.
func WithGraphMaker(maker store.GraphMaker) Option {
	return func(dm *DocumentManager) {
		if maker != nil {
			dm.maker = maker
		}
	}
}
