package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/network"
	"github.com/scholarcli/scholar/internal/viz"
)

var (
	networkOutput string
	networkLayout string
)

func init() {
	networkCmd.Flags().StringVarP(&networkOutput, "output", "o", "", "Write an HTML visualization to this path")
	networkCmd.Flags().StringVar(&networkLayout, "layout", "force", "Visualization layout: force, circle, or grid")
	rootCmd.AddCommand(networkCmd)
}

var networkCmd = &cobra.Command{
	Use:   "network [researcher-id...]",
	Short: "Build a co-authorship network across researchers",
	Long: `Build a co-authorship network over the given researchers, or over
every archived profile when no ids are given. Two researchers are
linked when their publication listings share author names.

Without --output the graph is printed as JSON; with --output a
self-contained HTML visualization is written.

Example:
  scholar network -o network.html`,
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	profiles := loadProfiles(cfg, args)

	graph := network.Build(profiles)

	if networkOutput == "" {
		if humanOutput {
			outputHuman("%d researchers, %d links\n", len(graph.Nodes), len(graph.Edges))
			for _, e := range graph.Edges {
				outputHuman("  %s <-> %s: %d shared authors (similarity %.3f)\n",
					e.Source, e.Target, e.Weight, e.Similarity)
			}
		} else {
			outputJSON(graph)
		}
		return nil
	}

	html, err := viz.GenerateHTML(viz.FromNetwork(graph), viz.HTMLOptions{
		Layout: networkLayout,
		Title:  "Researcher Network",
	})
	if err != nil {
		exitWithError(ExitError, "generating visualization: %v", err)
	}

	if err := os.WriteFile(networkOutput, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", networkOutput, err)
	}

	if humanOutput {
		outputHuman("wrote %s (%d researchers, %d links)\n", networkOutput, len(graph.Nodes), len(graph.Edges))
	} else {
		outputJSON(StatusResponse{Status: "written", Path: networkOutput, Count: len(graph.Nodes)})
	}
	return nil
}
