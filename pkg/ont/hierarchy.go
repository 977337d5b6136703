package ont

import (
	"github.com/coolbeans/ontograph/pkg/store"
)

// ExportHierarchy builds a visualisation of the class hierarchy: one node
// per class and one edge per direct subClassOf assertion between classes.
func ExportHierarchy(m *Model) *store.GraphExport {
	export := store.NewGraphExport()
	classes := m.ListClasses()
	known := make(map[store.Node]bool, len(classes))
	for _, c := range classes {
		known[c.node] = true
	}

	for _, c := range classes {
		label, ok := c.Label("")
		if !ok {
			label = c.LocalName()
		}
		node := store.ExportNode{
			ID:    store.NodeID(c.node),
			Label: label,
			Type:  c.Kind().String(),
		}
		if c.IsHierarchyRoot() {
			node.Metadata = map[string]string{"root": "true"}
		}
		export.AddNode(node)
	}

	for _, c := range classes {
		for _, super := range m.superClassesOf(c.node) {
			if super == c.node || !known[super] {
				continue
			}
			export.AddEdge(store.ExportEdge{
				Source: store.NodeID(c.node),
				Target: store.NodeID(super),
				Label:  "subClassOf",
				Type:   "subClassOf",
			})
		}
	}
	return export
}
