package main

import (
	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/network"
)

func init() {
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare <researcher-id>...",
	Short: "Compare citation metrics across researchers",
	Long: `Compare reported citation indicators across two or more fetched
profiles, including the pairwise Jaccard similarity of their co-author
sets.

Example:
  scholar compare A1B2C3D4EF F6G7H8I9JK`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

// CompareRow is one researcher's entry in a comparison.
type CompareRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Affiliation    string `json:"affiliation"`
	CitationsTotal int    `json:"citations_total"`
	HIndex         int    `json:"h_index"`
	I10Index       int    `json:"i10_index"`
	Publications   int    `json:"publications"`
}

// SimilarityRow is the pairwise author-set similarity between two
// researchers.
type SimilarityRow struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Shared     int     `json:"shared_authors"`
	Similarity float64 `json:"similarity"`
}

// CompareResponse is the full comparison output.
type CompareResponse struct {
	Researchers  []CompareRow    `json:"researchers"`
	Similarities []SimilarityRow `json:"similarities"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	profiles := loadProfiles(cfg, args)

	resp := CompareResponse{
		Researchers:  make([]CompareRow, 0, len(profiles)),
		Similarities: []SimilarityRow{},
	}

	sets := make([]map[string]bool, len(profiles))
	for i, p := range profiles {
		resp.Researchers = append(resp.Researchers, CompareRow{
			ID:             p.ID,
			Name:           p.Name,
			Affiliation:    p.Affiliation,
			CitationsTotal: p.CitationsTotal,
			HIndex:         p.HIndex,
			I10Index:       p.I10Index,
			Publications:   len(p.Publications),
		})
		sets[i] = network.AuthorSet(p)
	}

	for i := range profiles {
		for j := i + 1; j < len(profiles); j++ {
			resp.Similarities = append(resp.Similarities, SimilarityRow{
				A:          profiles[i].ID,
				B:          profiles[j].ID,
				Shared:     network.SharedAuthors(sets[i], sets[j]),
				Similarity: network.Jaccard(sets[i], sets[j]),
			})
		}
	}

	if humanOutput {
		for _, r := range resp.Researchers {
			outputHuman("%-14s %-30s cites %-8d h %-4d i10 %-4d pubs %d\n",
				r.ID, truncateString(r.Name, 30), r.CitationsTotal, r.HIndex, r.I10Index, r.Publications)
		}
		outputHuman("\n")
		for _, s := range resp.Similarities {
			outputHuman("%s <-> %s: %d shared authors, similarity %.3f\n", s.A, s.B, s.Shared, s.Similarity)
		}
	} else {
		outputJSON(resp)
	}
	return nil
}
