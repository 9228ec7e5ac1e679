package viz

import (
	"strings"
	"testing"

	"github.com/scholarcli/scholar/internal/network"
)

func testGraph() *GraphData {
	return &GraphData{
		Nodes: []Node{
			{ID: "A", Label: "Alice", Name: "Alice", HIndex: 30},
			{ID: "B", Label: "Bob", Name: "Bob", HIndex: 20},
		},
		Edges: []Edge{
			{Source: "A", Target: "B", Weight: 3, Similarity: 0.25},
		},
	}
}

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(testGraph(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"cytoscape.min.js",
		"Researcher Network",
		`"label":"Alice"`,
		`"source":"A"`,
		`"similarity":0.25`,
		`"cose"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateHTMLLayouts(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"force", `"cose"`},
		{"circle", `"circle"`},
		{"grid", `"grid"`},
		{"", `"cose"`},
	}

	for _, tt := range tests {
		html, err := GenerateHTML(testGraph(), HTMLOptions{Layout: tt.layout})
		if err != nil {
			t.Fatalf("GenerateHTML(%q): %v", tt.layout, err)
		}
		if !strings.Contains(html, tt.want) {
			t.Errorf("layout %q: output missing %s", tt.layout, tt.want)
		}
	}
}

func TestGenerateHTMLInvalidLayout(t *testing.T) {
	if _, err := GenerateHTML(testGraph(), HTMLOptions{Layout: "spiral"}); err == nil {
		t.Error("GenerateHTML accepted an unknown layout")
	}
}

func TestGenerateHTMLNilGraph(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("GenerateHTML accepted a nil graph")
	}
}

func TestGenerateHTMLEmptyGraph(t *testing.T) {
	html, err := GenerateHTML(&GraphData{}, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(html, "No network data") {
		t.Error("empty graph output missing the empty state")
	}
	if strings.Contains(html, "cytoscape.min.js") {
		t.Error("empty graph output should not pull in the renderer")
	}
}

func TestGenerateHTMLCustomTitle(t *testing.T) {
	html, err := GenerateHTML(testGraph(), HTMLOptions{Title: "Lab Collaborations"})
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	if !strings.Contains(html, "<title>Lab Collaborations</title>") {
		t.Error("output missing the custom title")
	}
}

func TestToCytoscapeJSON(t *testing.T) {
	jsonStr, err := testGraph().ToCytoscapeJSON()
	if err != nil {
		t.Fatalf("ToCytoscapeJSON: %v", err)
	}

	for _, want := range []string{
		`"id":"A"`,
		`"hIndex":30`,
		`"id":"A-B-0"`,
		`"weight":3`,
	} {
		if !strings.Contains(jsonStr, want) {
			t.Errorf("JSON missing %q", want)
		}
	}
}

func TestFromNetwork(t *testing.T) {
	ng := &network.Graph{
		Nodes: []network.Node{
			{ID: "A", Name: "Alice", HIndex: 30},
			{ID: "B", Name: "", HIndex: 0},
		},
		Edges: []network.Edge{
			{Source: "A", Target: "B", Weight: 2, Similarity: 0.5},
		},
	}

	g := FromNetwork(ng)
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes / %d edges, want 2 / 1", len(g.Nodes), len(g.Edges))
	}
	if g.Nodes[0].Label != "Alice" {
		t.Errorf("label = %q, want the researcher name", g.Nodes[0].Label)
	}
	if g.Nodes[1].Label != "B" {
		t.Errorf("label = %q, want fallback to id", g.Nodes[1].Label)
	}
	if g.Edges[0].Weight != 2 || g.Edges[0].Similarity != 0.5 {
		t.Errorf("edge = %+v, want weight 2 similarity 0.5", g.Edges[0])
	}
}
