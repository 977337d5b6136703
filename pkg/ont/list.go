package ont

import (
	"github.com/coolbeans/ontograph/pkg/errors"
	"github.com/coolbeans/ontograph/pkg/profile"
	"github.com/coolbeans/ontograph/pkg/store"
)

// List is a view over an RDF collection.
type List struct {
	*Resource
}

// Members returns the list items in order. A malformed list yields the
// items read so far and a ConsistencyError.
func (l *List) Members() ([]store.Node, error) {
	return l.model.listItems(l.node)
}

// Len returns the number of items.
func (l *List) Len() (int, error) {
	members, err := l.Members()
	return len(members), err
}

// IsEmpty reports whether the list is the nil list.
func (l *List) IsEmpty() (bool, error) {
	n, err := l.Len()
	return n == 0, err
}

// Contains reports whether n is an item of the list.
func (l *List) Contains(n store.Node) (bool, error) {
	members, err := l.Members()
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m == n {
			return true, nil
		}
	}
	return false, nil
}

// DataRange is an enumerated range of data values.
type DataRange struct {
	*Resource
}

// OneOf returns the enumerated values.
func (d *DataRange) OneOf() ([]store.Node, error) {
	return d.model.listValue(d.node, profile.TermOneOf)
}

// AddOneOf appends a value to the enumeration.
func (d *DataRange) AddOneOf(value store.Node) error {
	return d.model.appendListValue(d.node, profile.TermOneOf, value)
}

// listTerms returns the first, rest and nil nodes of the profile.
func (m *Model) listTerms() (first, rest, nilNode store.Node, err error) {
	nodes, err := checkedTerms(m.profile, profile.TermFirst, profile.TermRest, profile.TermNil)
	if err != nil {
		return store.Node{}, store.Node{}, store.Node{}, err
	}
	return nodes[profile.TermFirst], nodes[profile.TermRest], nodes[profile.TermNil], nil
}

// listItems walks the list starting at head.
func (m *Model) listItems(head store.Node) ([]store.Node, error) {
	first, rest, nilNode, err := m.listTerms()
	if err != nil {
		return nil, err
	}
	members, ok := store.ListMembers(m, head, first, rest, nilNode)
	if !ok {
		return members, errors.NewConsistencyError(head.String(), "malformed list")
	}
	return members, nil
}

// buildList writes a fresh list holding members into the base graph and
// returns its head. Either every cell is written or none is.
func (m *Model) buildList(members []store.Node) (store.Node, error) {
	head, cells, err := m.listTriples(members)
	if err != nil {
		return store.Node{}, err
	}
	if err := m.commit(cells...); err != nil {
		return store.Node{}, err
	}
	return head, nil
}

// listTriples lays out a fresh list holding members without writing it.
// An empty list is the profile's nil node.
func (m *Model) listTriples(members []store.Node) (store.Node, []store.Triple, error) {
	first, rest, nilNode, err := m.listTerms()
	if err != nil {
		return store.Node{}, nil, err
	}
	if err := requireValues("list member", members...); err != nil {
		return store.Node{}, nil, err
	}
	head := nilNode
	triples := make([]store.Triple, 0, 2*len(members))
	for i := len(members) - 1; i >= 0; i-- {
		cell := store.NewBlank()
		triples = append(triples,
			store.NewTriple(cell, first, members[i]),
			store.NewTriple(cell, rest, head))
		head = cell
	}
	return head, triples, nil
}

// dropList removes the cells of the list at head from the base graph.
func (m *Model) dropList(head store.Node) {
	first, rest, nilNode, err := m.listTerms()
	if err != nil {
		return
	}
	seen := make(map[store.Node]bool)
	for cell := head; cell != nilNode && cell.IsBlank() && !seen[cell]; {
		seen[cell] = true
		next, ok := store.FirstObject(m, cell, rest)
		m.Remove(cell, first, store.Any)
		m.Remove(cell, rest, store.Any)
		if !ok {
			return
		}
		cell = next
	}
}

// listValue returns the items of the list held under name.
func (m *Model) listValue(node store.Node, name profile.Term) ([]store.Node, error) {
	head, ok, err := m.value(node, name)
	if err != nil || !ok {
		return nil, err
	}
	return m.listItems(head)
}

// setListValue replaces the list under name with a new one holding
// members.
func (m *Model) setListValue(node store.Node, name profile.Term, members []store.Node) error {
	if _, err := checkedTerms(m.profile, name, profile.TermFirst, profile.TermRest, profile.TermNil); err != nil {
		return err
	}
	old, hadOld, _ := m.value(node, name)
	head, err := m.buildList(members)
	if err != nil {
		return err
	}
	if err := m.setValue(node, name, head); err != nil {
		m.dropList(head)
		return err
	}
	if hadOld && old != head {
		m.dropList(old)
	}
	return nil
}

// appendListValue adds item to the end of the list under name, creating
// the list if needed.
func (m *Model) appendListValue(node store.Node, name profile.Term, item store.Node) error {
	members, err := m.listValue(node, name)
	if err != nil {
		return err
	}
	return m.setListValue(node, name, append(members, item))
}
