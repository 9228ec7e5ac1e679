package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/scholarcli/scholar/internal/profile"
)

// Title truncation lengths by context.
const (
	ListTitleMaxLen   = 50 // Used in publication listings
	DetailTitleMaxLen = 70 // Used in profile detail view
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// printProfileHuman prints a researcher profile in human-readable format.
func printProfileHuman(p *profile.ResearcherProfile) {
	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	fmt.Printf("  %s\n", p.Affiliation)
	if p.Interests != profile.UnknownInterests {
		fmt.Printf("  Interests: %s\n", p.Interests)
	}
	if p.Homepage != "" {
		fmt.Printf("  Homepage: %s\n", p.Homepage)
	}
	fmt.Printf("  Citations: %d (5y: %d)  h-index: %d (5y: %d)  i10: %d (5y: %d)\n",
		p.CitationsTotal, p.Citations5y, p.HIndex, p.HIndex5y, p.I10Index, p.I10Index5y)
	fmt.Printf("  Publications: %d\n", len(p.Publications))

	for i, pub := range p.Publications {
		year := "----"
		if pub.Year != nil {
			year = fmt.Sprintf("%d", *pub.Year)
		}
		fmt.Printf("  %3d. [%s] %s (%d citations)\n",
			i+1, year, truncateString(pub.Title, ListTitleMaxLen), pub.CitedBy)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatIDList formats a list of IDs as a comma-separated string.
func formatIDList(ids []string) string {
	return strings.Join(ids, ", ")
}
