package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/metrics"
)

func init() {
	rootCmd.AddCommand(metricsCmd)
}

var metricsCmd = &cobra.Command{
	Use:   "metrics <researcher-id>",
	Short: "Compute citation metrics for a fetched profile",
	Long: `Compute h-index, i10-index, and m-index from the publication list of
an already fetched profile, alongside the indicator values the profile
page itself reported.

The computed values can differ from the reported ones when the fetch
was capped below the researcher's full publication count.

Example:
  scholar metrics A1B2C3D4EF`,
	Args: cobra.ExactArgs(1),
	RunE: runMetrics,
}

// MetricsResponse pairs computed indicators with the page-reported ones.
type MetricsResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Publications int             `json:"publications"`
	Computed     metrics.Summary `json:"computed"`
	Reported     ReportedMetrics `json:"reported"`
}

// ReportedMetrics echoes the indicator table from the profile page.
type ReportedMetrics struct {
	CitationsTotal int `json:"citations_total"`
	HIndex         int `json:"h_index"`
	I10Index       int `json:"i10_index"`
}

func runMetrics(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	p := loadProfile(cfg, args[0])

	computed := metrics.Compute(p.CitationCounts(), p.PublicationYears(), time.Now().Year())

	resp := MetricsResponse{
		ID:           p.ID,
		Name:         p.Name,
		Publications: len(p.Publications),
		Computed:     computed,
		Reported: ReportedMetrics{
			CitationsTotal: p.CitationsTotal,
			HIndex:         p.HIndex,
			I10Index:       p.I10Index,
		},
	}

	if humanOutput {
		outputHuman("%s (%s), %d publications\n", resp.Name, resp.ID, resp.Publications)
		outputHuman("  computed: h-index %d, i10-index %d, m-index %.2f\n",
			computed.HIndex, computed.I10Index, computed.MIndex)
		outputHuman("  reported: h-index %d, i10-index %d, %s citations\n",
			p.HIndex, p.I10Index, fmt.Sprintf("%d", p.CitationsTotal))
	} else {
		outputJSON(resp)
	}
	return nil
}
