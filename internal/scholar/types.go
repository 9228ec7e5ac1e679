// Package scholar extracts researcher profiles from Google Scholar
// citation pages. The pipeline is deliberately sequential: each page
// fetch is paced by a rate limiter and retried with a bounded backoff,
// and parsed fields degrade to documented defaults rather than failing
// the whole extraction.
package scholar

// PageSize is the number of publication rows per citation page. A page
// returning fewer rows signals the end of the listing.
const PageSize = 100

// profileFields holds the per-field parse results for a profile page.
// A nil pointer means the field could not be located or converted;
// the assembler substitutes the documented default.
type profileFields struct {
	Name        *string
	Affiliation *string
	Interests   *string
	Homepage    *string
	Metrics     *metricBlock
}

// metricBlock is the six-value citation indicator table, in the fixed
// order the page renders them. It is all-or-nothing: if fewer than six
// values parse, the whole block is absent.
type metricBlock struct {
	CitationsTotal int
	Citations5y    int
	HIndex         int
	HIndex5y       int
	I10Index       int
	I10Index5y     int
}
