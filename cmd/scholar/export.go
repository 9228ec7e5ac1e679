package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarcli/scholar/internal/export"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the BibTeX to this path instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <researcher-id>",
	Short: "Export a fetched profile's publications as BibTeX",
	Long: `Export the publication listing of an already fetched profile as a
BibTeX document. Citation keys derive from the first author, year, and
title, with letter suffixes on clashes.

Example:
  scholar export A1B2C3D4EF -o refs.bib`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	p := loadProfile(cfg, args[0])

	bib := export.ToBibTeXList(p)

	if exportOutput == "" {
		os.Stdout.WriteString(bib)
		return nil
	}

	if err := os.WriteFile(exportOutput, []byte(bib), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", exportOutput, err)
	}
	if humanOutput {
		outputHuman("wrote %s (%d entries)\n", exportOutput, len(p.Publications))
	} else {
		outputJSON(StatusResponse{Status: "written", Path: exportOutput, Count: len(p.Publications)})
	}
	return nil
}
