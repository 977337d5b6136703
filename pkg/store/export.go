package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportNode represents a node in a graph visualization.
type ExportNode struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ExportEdge represents an edge in a graph visualization.
type ExportEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Type   string `json:"type"`
}

// GraphExport represents a complete graph for visualization.
type GraphExport struct {
	Nodes []ExportNode `json:"nodes"`
	Edges []ExportEdge `json:"edges"`
	Stats GraphStats   `json:"stats"`
}

// GraphStats contains summary statistics for an export.
type GraphStats struct {
	TotalNodes  int            `json:"total_nodes"`
	TotalEdges  int            `json:"total_edges"`
	NodesByType map[string]int `json:"nodes_by_type"`
	EdgesByType map[string]int `json:"edges_by_type"`
}

// NewGraphExport creates an empty export.
func NewGraphExport() *GraphExport {
	return &GraphExport{
		Nodes: make([]ExportNode, 0),
		Edges: make([]ExportEdge, 0),
		Stats: GraphStats{
			NodesByType: make(map[string]int),
			EdgesByType: make(map[string]int),
		},
	}
}

// AddNode appends a node unless one with the same ID exists.
func (g *GraphExport) AddNode(node ExportNode) {
	for _, existing := range g.Nodes {
		if existing.ID == node.ID {
			return
		}
	}
	g.Nodes = append(g.Nodes, node)
	g.Stats.NodesByType[node.Type]++
	g.Stats.TotalNodes = len(g.Nodes)
}

// AddEdge appends an edge.
func (g *GraphExport) AddEdge(edge ExportEdge) {
	g.Edges = append(g.Edges, edge)
	g.Stats.EdgesByType[edge.Type]++
	g.Stats.TotalEdges = len(g.Edges)
}

// NodeID returns the identifier an export uses for a graph node.
func NodeID(n Node) string {
	if n.IsBlank() {
		return "_:" + n.Value
	}
	return n.Value
}

// ToJSON serializes the graph export to JSON.
func (g *GraphExport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// ToDOT exports the graph in DOT format for Graphviz.
func (g *GraphExport) ToDOT(name string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "digraph %q {\n", name)
	sb.WriteString("  rankdir=BT;\n")
	sb.WriteString("  node [shape=box];\n\n")

	typeColors := map[string]string{
		"Class":        "lightblue",
		"Restriction":  "lightyellow",
		"Union":        "lightgreen",
		"Intersection": "lightgreen",
		"Complement":   "lightpink",
		"Enumerated":   "lavender",
	}

	for _, node := range g.Nodes {
		color := typeColors[node.Type]
		if color == "" {
			color = "white"
		}
		label := strings.ReplaceAll(node.Label, "\"", "\\\"")
		if len(label) > 30 {
			label = label[:30] + "..."
		}
		fmt.Fprintf(&sb, "  %q [label=\"%s\" style=filled fillcolor=%s];\n", node.ID, label, color)
	}

	sb.WriteString("\n")

	for _, edge := range g.Edges {
		fmt.Fprintf(&sb, "  %q -> %q [label=%q];\n", edge.Source, edge.Target, edge.Label)
	}

	sb.WriteString("}\n")
	return sb.String()
}
