package network

import (
	"math"
	"reflect"
	"testing"

	"github.com/scholarcli/scholar/internal/profile"
)

func pubWithAuthors(authors string) profile.Publication {
	return profile.Publication{Title: "t", Authors: authors}
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"J Doe, A Smith", []string{"j doe", "a smith"}},
		{"  J Doe ,A Smith  ", []string{"j doe", "a smith"}},
		{"J Doe, A Smith, ...", []string{"j doe", "a smith"}},
		{"J Doe, …", []string{"j doe"}},
		{"", []string{}},
		{", ,", []string{}},
	}
	for _, tt := range tests {
		if got := SplitAuthors(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitAuthors(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestAuthorSet(t *testing.T) {
	p := &profile.ResearcherProfile{
		Publications: []profile.Publication{
			pubWithAuthors("J Doe, A Smith"),
			pubWithAuthors("J Doe, B Lee"),
		},
	}
	set := AuthorSet(p)
	for _, name := range []string{"j doe", "a smith", "b lee"} {
		if !set[name] {
			t.Errorf("author set missing %q", name)
		}
	}
	if len(set) != 3 {
		t.Errorf("author set has %d entries, want 3", len(set))
	}
}

func TestJaccard(t *testing.T) {
	a := map[string]bool{"x": true, "y": true, "z": true}
	b := map[string]bool{"y": true, "z": true, "w": true}

	if got := Jaccard(a, b); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Jaccard = %g, want 0.5", got)
	}
	if got := Jaccard(a, a); got != 1 {
		t.Errorf("self Jaccard = %g, want 1", got)
	}
	if got := Jaccard(map[string]bool{}, map[string]bool{}); got != 0 {
		t.Errorf("empty Jaccard = %g, want 0", got)
	}
	if got := Jaccard(a, map[string]bool{}); got != 0 {
		t.Errorf("disjoint Jaccard = %g, want 0", got)
	}
}

func TestBuild(t *testing.T) {
	profiles := []*profile.ResearcherProfile{
		{ID: "A", Name: "Alice", HIndex: 30, Publications: []profile.Publication{
			pubWithAuthors("Alice, Carol"),
		}},
		{ID: "B", Name: "Bob", HIndex: 20, Publications: []profile.Publication{
			pubWithAuthors("Bob, Carol"),
		}},
		{ID: "C", Name: "Chen", HIndex: 10, Publications: []profile.Publication{
			pubWithAuthors("Chen, Dana"),
		}},
	}

	g := Build(profiles)

	if len(g.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(g.Nodes))
	}
	if g.Nodes[0].ID != "A" || g.Nodes[0].HIndex != 30 {
		t.Errorf("first node = %+v, want A with h-index 30", g.Nodes[0])
	}

	// Only A and B share an author (Carol); C is isolated.
	if len(g.Edges) != 1 {
		t.Fatalf("got %d edges, want 1: %+v", len(g.Edges), g.Edges)
	}
	e := g.Edges[0]
	if e.Source != "A" || e.Target != "B" || e.Weight != 1 {
		t.Errorf("edge = %+v, want A-B with weight 1", e)
	}
	// 1 shared of 3 distinct names.
	if math.Abs(e.Similarity-1.0/3.0) > 1e-9 {
		t.Errorf("similarity = %g, want 1/3", e.Similarity)
	}
}

func TestBuildDeterministic(t *testing.T) {
	profiles := []*profile.ResearcherProfile{
		{ID: "A", Publications: []profile.Publication{pubWithAuthors("x, y")}},
		{ID: "B", Publications: []profile.Publication{pubWithAuthors("y, z")}},
		{ID: "C", Publications: []profile.Publication{pubWithAuthors("z, x")}},
	}

	first := Build(profiles)
	for i := 0; i < 10; i++ {
		if g := Build(profiles); !reflect.DeepEqual(g, first) {
			t.Fatalf("build %d differs from first build", i)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	g := Build(nil)
	if g.Nodes == nil || len(g.Nodes) != 0 {
		t.Errorf("Nodes = %v, want empty non-nil slice", g.Nodes)
	}
	if g.Edges == nil || len(g.Edges) != 0 {
		t.Errorf("Edges = %v, want empty non-nil slice", g.Edges)
	}
}

func TestTopCoauthors(t *testing.T) {
	p := &profile.ResearcherProfile{
		Name: "J Doe",
		Publications: []profile.Publication{
			pubWithAuthors("J Doe, A Smith, B Lee"),
			pubWithAuthors("J Doe, A Smith"),
			pubWithAuthors("J Doe, C Wu"),
		},
	}

	got := TopCoauthors(p, 2)
	want := []string{"a smith", "b lee"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCoauthors = %v, want %v", got, want)
	}

	all := TopCoauthors(p, 0)
	if len(all) != 3 {
		t.Errorf("unbounded TopCoauthors returned %d names, want 3", len(all))
	}
	for _, name := range all {
		if name == "j doe" {
			t.Error("own name should be excluded")
		}
	}
}
