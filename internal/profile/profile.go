// Package profile defines the researcher profile records produced by
// extraction and consumed by the metrics, network, and archive layers.
package profile

// Default values substituted when a profile field cannot be parsed.
const (
	UnknownName        = "Unknown Scholar"
	UnknownAffiliation = "Unknown Institution"
	UnknownInterests   = "Unknown Interests"
)

// Publication is one row of a researcher's citation listing.
// Authors is kept as the raw comma-joined string from the page;
// consumers that need individual names re-split it (see network.SplitAuthors).
type Publication struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Journal string `json:"journal,omitempty"`
	// Year is nil when the page carried no parseable year for the row.
	// It is never coerced to 0 so that downstream year filters can
	// distinguish "missing" from an actual value.
	Year    *int   `json:"year,omitempty"`
	CitedBy int    `json:"citedby"`
	PubID   string `json:"pub_id,omitempty"`
}

// ResearcherProfile is the assembled result of one extraction.
// It is a value object: never mutated after assembly.
type ResearcherProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Interests   string `json:"interests"`
	Homepage    string `json:"homepage"`

	CitationsTotal int `json:"citations_total"`
	Citations5y    int `json:"citations_5y"`
	HIndex         int `json:"h_index"`
	HIndex5y       int `json:"h_index_5y"`
	I10Index       int `json:"i10_index"`
	I10Index5y     int `json:"i10_index_5y"`

	Publications []Publication `json:"publications"`
}

// CitationCounts returns the per-publication citation counts in
// extraction order.
func (p *ResearcherProfile) CitationCounts() []int {
	counts := make([]int, len(p.Publications))
	for i, pub := range p.Publications {
		counts[i] = pub.CitedBy
	}
	return counts
}

// PublicationYears returns the years of publications that carry one,
// in extraction order. Rows with a missing year are skipped.
func (p *ResearcherProfile) PublicationYears() []int {
	years := make([]int, 0, len(p.Publications))
	for _, pub := range p.Publications {
		if pub.Year != nil {
			years = append(years, *pub.Year)
		}
	}
	return years
}
