// Package facet resolves graph nodes into typed views. Each facet key
// owns an ordered list of implementations; resolution tries them in
// registration order and the first whose structural test passes wraps
// the node.
//
// Resolution never mutates the graph and performs no I/O.
package facet

import (
	"sync"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/logger"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// View is a typed window onto a single graph node.
type View interface {
	Node() store.Node
}

// CanApplyFunc is a pure structural test on a node within a graph.
type CanApplyFunc func(node store.Node, g store.Graph) bool

// WrapFunc builds a view over a node that passed the matching test.
type WrapFunc func(node store.Node, g store.Graph) View

// Implementation is one way of producing a view for a facet key.
type Implementation struct {
	Name     string
	CanApply CanApplyFunc
	Wrap     WrapFunc
}

// ProfileSource is implemented by graphs that carry a language profile.
type ProfileSource interface {
	Profile() *profile.Profile
}

// ProfileOf returns the profile exposed by g, if any.
func ProfileOf(g store.Graph) (*profile.Profile, bool) {
	src, ok := g.(ProfileSource)
	if !ok {
		return nil, false
	}
	p := src.Profile()
	return p, p != nil
}

// Engine holds the implementation lists for every facet key. Registration
// is expected to happen before concurrent resolution starts; both are
// nevertheless guarded.
type Engine struct {
	mu    sync.RWMutex
	impls map[profile.FacetKey][]Implementation
}

// NewEngine creates an engine with no registrations.
func NewEngine() *Engine {
	return &Engine{impls: make(map[profile.FacetKey][]Implementation)}
}

// Register appends impl to the list for key. Earlier registrations take
// precedence.
func (e *Engine) Register(key profile.FacetKey, impl Implementation) error {
	if impl.CanApply == nil || impl.Wrap == nil {
		return errors.Newf("facet %s: implementation %q needs both CanApply and Wrap", key, impl.Name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.impls[key] = append(e.impls[key], impl)
	return nil
}

// MustRegister is like Register but panics on an incomplete
// implementation.
func (e *Engine) MustRegister(key profile.FacetKey, impl Implementation) {
	if err := e.Register(key, impl); err != nil {
		panic(err)
	}
}

// Implementations returns the registered implementations for key in
// resolution order.
func (e *Engine) Implementations(key profile.FacetKey) []Implementation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Implementation, len(e.impls[key]))
	copy(out, e.impls[key])
	return out
}

// Keys returns the facet keys that have at least one implementation, in
// the canonical facet order.
func (e *Engine) Keys() []profile.FacetKey {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var keys []profile.FacetKey
	for _, k := range profile.Facets() {
		if len(e.impls[k]) > 0 {
			keys = append(keys, k)
		}
	}
	return keys
}

// Match returns the first implementation for key that accepts node.
func (e *Engine) Match(node store.Node, g store.Graph, key profile.FacetKey) (Implementation, bool) {
	e.mu.RLock()
	impls := e.impls[key]
	e.mu.RUnlock()
	for _, impl := range impls {
		if impl.CanApply(node, g) {
			return impl, true
		}
	}
	return Implementation{}, false
}

// CanResolve reports whether Resolve would succeed.
func (e *Engine) CanResolve(node store.Node, g store.Graph, key profile.FacetKey) bool {
	_, ok := e.Match(node, g, key)
	return ok
}

// Resolve views node as key. It fails with a ConversionError when no
// implementation accepts the node.
func (e *Engine) Resolve(node store.Node, g store.Graph, key profile.FacetKey) (View, error) {
	impl, ok := e.Match(node, g, key)
	if !ok {
		logger.Debugw("facet resolution failed",
			logger.FieldNode, node.String(),
			logger.FieldFacet, string(key))
		return nil, errors.NewConversionError(node.String(), string(key))
	}
	return impl.Wrap(node, g), nil
}

// TryResolve is Resolve without the error: the view and whether one was
// produced.
func (e *Engine) TryResolve(node store.Node, g store.Graph, key profile.FacetKey) (View, bool) {
	impl, ok := e.Match(node, g, key)
	if !ok {
		return nil, false
	}
	return impl.Wrap(node, g), true
}
