package ont

import (
	"sort"
	"strconv"

	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
	"github.com/coolbeans/ontograph/pkg/vocab"
)

// checkedProperty returns the canonical node for name, or a ProfileError
// when the language lacks it. Every profile-governed accessor goes
// through here.
func checkedProperty(p *profile.Profile, name profile.Term) (store.Node, error) {
	node, ok := p.Term(name)
	if !ok {
		return store.Node{}, errors.NewProfileError(p.Language(), string(name))
	}
	return node, nil
}

// checkedTerms verifies all names up front so multi-triple writes are all
// or nothing.
func checkedTerms(p *profile.Profile, names ...profile.Term) (map[profile.Term]store.Node, error) {
	nodes := make(map[profile.Term]store.Node, len(names))
	for _, name := range names {
		node, err := checkedProperty(p, name)
		if err != nil {
			return nil, err
		}
		nodes[name] = node
	}
	return nodes, nil
}

// values returns the objects of node under name and its aliases.
func (m *Model) values(node store.Node, name profile.Term) ([]store.Node, error) {
	if _, err := checkedProperty(m.profile, name); err != nil {
		return nil, err
	}
	return sortedNodes(m.profile.Values(node, m, name)), nil
}

// value returns one object of node under name.
func (m *Model) value(node store.Node, name profile.Term) (store.Node, bool, error) {
	values, err := m.values(node, name)
	if err != nil || len(values) == 0 {
		return store.Node{}, false, err
	}
	return values[0], true, nil
}

// subjectsOf returns the subjects that have object under name and its
// aliases.
func (m *Model) subjectsOf(name profile.Term, object store.Node) ([]store.Node, error) {
	if _, err := checkedProperty(m.profile, name); err != nil {
		return nil, err
	}
	seen := make(map[store.Node]bool)
	var out []store.Node
	for _, pred := range m.profile.TermEquivalents(name) {
		for _, s := range store.Subjects(m, pred, object) {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return sortedNodes(out), nil
}

// addValue asserts (node, name, object) in the base graph.
func (m *Model) addValue(node store.Node, name profile.Term, object store.Node) error {
	pred, err := checkedProperty(m.profile, name)
	if err != nil {
		return err
	}
	return m.Add(store.NewTriple(node, pred, object))
}

// setValue replaces every base-graph value of node under name and its
// aliases with object.
func (m *Model) setValue(node store.Node, name profile.Term, object store.Node) error {
	pred, err := checkedProperty(m.profile, name)
	if err != nil {
		return err
	}
	for _, p := range m.profile.TermEquivalents(name) {
		m.Remove(node, p, store.Any)
	}
	return m.Add(store.NewTriple(node, pred, object))
}

// removeValue retracts (node, name, object) and its aliased forms from
// the base graph. A wildcard object removes every value.
func (m *Model) removeValue(node store.Node, name profile.Term, object store.Node) error {
	if _, err := checkedProperty(m.profile, name); err != nil {
		return err
	}
	for _, p := range m.profile.TermEquivalents(name) {
		m.Remove(node, p, object)
	}
	return nil
}

// hasValue reports whether (node, name, object) holds under any alias.
func (m *Model) hasValue(node store.Node, name profile.Term, object store.Node) (bool, error) {
	if _, err := checkedProperty(m.profile, name); err != nil {
		return false, err
	}
	for _, p := range m.profile.TermEquivalents(name) {
		if m.Contains(node, p, object) {
			return true, nil
		}
	}
	return false, nil
}

// intValue reads an integer literal under name.
func (m *Model) intValue(node store.Node, name profile.Term) (int, error) {
	v, ok, err := m.value(node, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Newf("%s has no %s value", node, name)
	}
	n, err := strconv.Atoi(v.Value)
	if err != nil || !v.IsLiteral() {
		return 0, errors.Newf("%s value %s of %s is not an integer", name, v, node)
	}
	return n, nil
}

// setIntValue writes a non-negative integer literal under name.
func (m *Model) setIntValue(node store.Node, name profile.Term, n int) error {
	if n < 0 {
		return errors.Newf("%s must be non-negative, got %d", name, n)
	}
	return m.setValue(node, name, cardinalityLiteral(n))
}

func cardinalityLiteral(n int) store.Node {
	return store.TypedLiteral(strconv.Itoa(n), vocab.XSDNonNegativeInteger.Value)
}

// typesOf returns the asserted rdf:type objects of node.
func (m *Model) typesOf(node store.Node) []store.Node {
	seen := make(map[store.Node]bool)
	var out []store.Node
	for _, pred := range m.profile.TypePredicates() {
		for _, t := range store.Objects(m, node, pred) {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return sortedNodes(out)
}

// instancesOf returns the subjects typed as t or an alias of t.
func (m *Model) instancesOf(t store.Node) []store.Node {
	seen := make(map[store.Node]bool)
	var out []store.Node
	for _, tt := range m.profile.Equivalents(t) {
		for _, pred := range m.profile.TypePredicates() {
			for _, s := range store.Subjects(m, pred, tt) {
				if !seen[s] {
					seen[s] = true
					out = append(out, s)
				}
			}
		}
	}
	return sortedNodes(out)
}

// closure walks next from start breadth first and returns every node
// reached, start included.
func closure(start store.Node, next func(store.Node) []store.Node) []store.Node {
	seen := map[store.Node]bool{start: true}
	out := []store.Node{start}
	queue := []store.Node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range next(n) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
				queue = append(queue, c)
			}
		}
	}
	return out
}

func sortedNodes(nodes []store.Node) []store.Node {
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Kind != nodes[j].Kind {
			return nodes[i].Kind < nodes[j].Kind
		}
		return nodes[i].String() < nodes[j].String()
	})
	return nodes
}

func resourcesOnly(nodes []store.Node) []store.Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n.IsResource() {
			out = append(out, n)
		}
	}
	return out
}
