// Package network builds co-authorship relationship graphs and
// similarity scores across researcher profiles.
//
// The graphs are heuristic: two researchers are linked when their
// publication listings share author names, approximated by re-splitting
// the comma-joined author strings Scholar renders per row. No claim of
// bibliographic completeness is made.
package network

import (
	"sort"
	"strings"

	"github.com/scholarcli/scholar/internal/profile"
)

// Node is one researcher in the relationship graph.
type Node struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	HIndex int    `json:"h_index"`
}

// Edge links two researchers with a co-occurrence weight and the
// Jaccard similarity of their author sets.
type Edge struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Weight     int     `json:"weight"`
	Similarity float64 `json:"similarity"`
}

// Graph is a co-authorship network over a set of profiles.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// SplitAuthors re-splits a raw comma-joined author string into
// trimmed, lower-cased names. Scholar abbreviates and truncates author
// lists ("..."), so entries that are only ellipses are dropped.
func SplitAuthors(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		name = strings.Trim(name, ".")
		if name == "" || name == "…" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// AuthorSet collects the distinct co-author names across all
// publications of a profile.
func AuthorSet(p *profile.ResearcherProfile) map[string]bool {
	set := make(map[string]bool)
	for _, pub := range p.Publications {
		for _, name := range SplitAuthors(pub.Authors) {
			set[name] = true
		}
	}
	return set
}

// Jaccard returns the similarity of two author sets: intersection size
// over union size, 0 when both sets are empty.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for name := range a {
		if b[name] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// SharedAuthors returns how many distinct author names two sets share.
func SharedAuthors(a, b map[string]bool) int {
	shared := 0
	for name := range a {
		if b[name] {
			shared++
		}
	}
	return shared
}

// Build constructs the co-authorship graph over a set of profiles.
// An edge is added for every pair sharing at least one author name;
// node and edge order is deterministic (profile input order, then
// pair order) so repeated builds produce identical graphs.
func Build(profiles []*profile.ResearcherProfile) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(profiles)),
		Edges: []Edge{},
	}

	sets := make([]map[string]bool, len(profiles))
	for i, p := range profiles {
		g.Nodes = append(g.Nodes, Node{ID: p.ID, Name: p.Name, HIndex: p.HIndex})
		sets[i] = AuthorSet(p)
	}

	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			shared := SharedAuthors(sets[i], sets[j])
			if shared == 0 {
				continue
			}
			g.Edges = append(g.Edges, Edge{
				Source:     profiles[i].ID,
				Target:     profiles[j].ID,
				Weight:     shared,
				Similarity: Jaccard(sets[i], sets[j]),
			})
		}
	}

	return g
}

// TopCoauthors returns the n most frequent co-author names in a
// profile's listing, excluding the researcher's own name. Ties break
// alphabetically so the result is stable.
func TopCoauthors(p *profile.ResearcherProfile, n int) []string {
	own := strings.ToLower(strings.TrimSpace(p.Name))
	counts := make(map[string]int)
	for _, pub := range p.Publications {
		for _, name := range SplitAuthors(pub.Authors) {
			if name == own {
				continue
			}
			counts[name]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	if n > 0 && len(names) > n {
		names = names[:n]
	}
	return names
}
