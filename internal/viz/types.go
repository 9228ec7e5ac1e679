// Package viz renders researcher networks as self-contained HTML
// visualizations.
package viz

import (
	"github.com/scholarcli/scholar/internal/network"
)

// GraphData contains all data needed to render the visualization.
type GraphData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node represents a researcher in the graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	// Tooltip fields
	Name   string `json:"name,omitempty"`
	HIndex int    `json:"hIndex"`
}

// Edge represents a co-authorship link between two researchers.
type Edge struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Weight     int     `json:"weight"`
	Similarity float64 `json:"similarity"`
}

// IsEmpty returns true if the graph has no nodes.
func (g *GraphData) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// FromNetwork converts a co-authorship network into renderable graph
// data. Node labels are researcher names, falling back to the id when
// the name is the unparsed sentinel.
func FromNetwork(ng *network.Graph) *GraphData {
	g := &GraphData{
		Nodes: make([]Node, 0, len(ng.Nodes)),
		Edges: make([]Edge, 0, len(ng.Edges)),
	}

	for _, n := range ng.Nodes {
		label := n.Name
		if label == "" {
			label = n.ID
		}
		g.Nodes = append(g.Nodes, Node{
			ID:     n.ID,
			Label:  label,
			Name:   n.Name,
			HIndex: n.HIndex,
		})
	}

	for _, e := range ng.Edges {
		g.Edges = append(g.Edges, Edge{
			Source:     e.Source,
			Target:     e.Target,
			Weight:     e.Weight,
			Similarity: e.Similarity,
		})
	}

	return g
}
