package scholar

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/scholarcli/scholar/internal/profile"
)

// Selectors for the citation page markup. Scholar ships no versioned
// API, so these track the current class names and every lookup built
// on them degrades field-by-field when the markup shifts.
const (
	selName        = "#gsc_prf_in"
	selAffiliation = ".gsc_prf_il"
	selInterests   = "#gsc_prf_int a"
	selHomepage    = "#gsc_prf_ivh a"
	selMetricCell  = "td.gsc_rsb_std"
	selPubRow      = "tr.gsc_a_tr"
	selPubTitle    = "a.gsc_a_at"
	selPubGray     = ".gs_gray"
	selPubCited    = "a.gsc_a_ac"
	selPubYear     = ".gsc_a_y span"
)

// metricCellCount is the number of indicator cells required before the
// metric block is trusted: {citations, citations_5y, h, h_5y, i10, i10_5y}.
const metricCellCount = 6

// Parser extracts structured fields from citation page markup.
// Every field is extracted independently; a missing or malformed node
// produces a warning and an absent value, never an error.
type Parser struct {
	warnings io.Writer
}

// NewParser creates a Parser that reports dropped fields and rows to w.
func NewParser(w io.Writer) *Parser {
	if w == nil {
		w = io.Discard
	}
	return &Parser{warnings: w}
}

func (p *Parser) warnf(format string, args ...any) {
	fmt.Fprintf(p.warnings, "warning: "+format+"\n", args...)
}

// ParseDocument parses raw page markup into a goquery document.
// goquery's underlying html parser is permissive, so this only fails
// on unreadable input, not on malformed markup.
func ParseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page markup: %w", err)
	}
	return doc, nil
}

// ParseProfile extracts the researcher header fields and the metric
// block from a profile page.
func (p *Parser) ParseProfile(doc *goquery.Document) profileFields {
	var fields profileFields

	fields.Name = p.textField(doc, selName, "name")
	fields.Affiliation = p.textField(doc, selAffiliation, "affiliation")
	fields.Interests = p.interests(doc)
	fields.Homepage = p.homepage(doc)
	fields.Metrics = p.metrics(doc)

	return fields
}

// textField extracts the trimmed text of the first node matching sel.
func (p *Parser) textField(doc *goquery.Document, sel, name string) *string {
	node := doc.Find(sel).First()
	if node.Length() == 0 {
		p.warnf("profile %s not found (selector %s)", name, sel)
		return nil
	}
	text := strings.TrimSpace(node.Text())
	if text == "" {
		p.warnf("profile %s is empty", name)
		return nil
	}
	return &text
}

// interests extracts the research interest labels, comma-joined.
func (p *Parser) interests(doc *goquery.Document) *string {
	var labels []string
	doc.Find(selInterests).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			labels = append(labels, t)
		}
	})
	if len(labels) == 0 {
		p.warnf("profile interests not found")
		return nil
	}
	joined := strings.Join(labels, ", ")
	return &joined
}

// homepage extracts the homepage link, if the profile carries one.
func (p *Parser) homepage(doc *goquery.Document) *string {
	href, ok := doc.Find(selHomepage).First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil
	}
	href = strings.TrimSpace(href)
	return &href
}

// metrics extracts the six-value indicator table. The block is
// all-or-nothing: the page renders the values positionally with no
// per-cell labels we can trust, so fewer than six recognizable cells
// means the whole block is reported absent.
func (p *Parser) metrics(doc *goquery.Document) *metricBlock {
	cells := doc.Find(selMetricCell)
	if cells.Length() < metricCellCount {
		p.warnf("metric table has %d cells, want %d; skipping metrics", cells.Length(), metricCellCount)
		return nil
	}

	values := make([]int, 0, metricCellCount)
	ok := true
	cells.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= metricCellCount {
			return false
		}
		n, err := strconv.Atoi(strings.TrimSpace(s.Text()))
		if err != nil || n < 0 {
			p.warnf("metric cell %d is not a count: %q", i, strings.TrimSpace(s.Text()))
			ok = false
			return false
		}
		values = append(values, n)
		return true
	})
	if !ok {
		return nil
	}

	return &metricBlock{
		CitationsTotal: values[0],
		Citations5y:    values[1],
		HIndex:         values[2],
		HIndex5y:       values[3],
		I10Index:       values[4],
		I10Index5y:     values[5],
	}
}

// ParsePublications extracts the publication rows of a citation page.
// Rows are independent: a row missing its title is dropped with a
// warning, a row with a malformed year or citation count keeps its
// remaining fields, and neither failure affects other rows.
//
// The second return value is the number of rows the page rendered,
// dropped rows included, so pagination can tell a short page from a
// full page with unparsable rows.
func (p *Parser) ParsePublications(doc *goquery.Document) ([]profile.Publication, int) {
	var pubs []profile.Publication

	rows := doc.Find(selPubRow)
	rows.Each(func(i int, row *goquery.Selection) {
		pub, ok := p.parseRow(i, row)
		if !ok {
			return
		}
		pubs = append(pubs, pub)
	})

	return pubs, rows.Length()
}

// parseRow extracts a single publication row. The title is the only
// required field; everything else degrades to its zero value.
func (p *Parser) parseRow(i int, row *goquery.Selection) (profile.Publication, bool) {
	var pub profile.Publication

	titleNode := row.Find(selPubTitle).First()
	pub.Title = strings.TrimSpace(titleNode.Text())
	if pub.Title == "" {
		p.warnf("publication row %d has no title; dropping row", i)
		return profile.Publication{}, false
	}

	if href, ok := titleNode.Attr("href"); ok {
		pub.PubID = pubIDFromHref(href)
	}

	// The two gray lines below the title are authors then venue.
	gray := row.Find(selPubGray)
	if gray.Length() > 0 {
		pub.Authors = strings.TrimSpace(gray.Eq(0).Text())
	} else {
		p.warnf("publication row %d (%q) has no author line", i, pub.Title)
	}
	if gray.Length() > 1 {
		pub.Journal = strings.TrimSpace(gray.Eq(1).Text())
	}

	if cited := strings.TrimSpace(row.Find(selPubCited).First().Text()); cited != "" {
		n, err := strconv.Atoi(cited)
		if err != nil || n < 0 {
			p.warnf("publication row %d (%q) has malformed citation count %q", i, pub.Title, cited)
		} else {
			pub.CitedBy = n
		}
	}

	if yearText := strings.TrimSpace(row.Find(selPubYear).First().Text()); yearText != "" {
		year, err := strconv.Atoi(yearText)
		if err != nil {
			p.warnf("publication row %d (%q) has malformed year %q", i, pub.Title, yearText)
		} else {
			pub.Year = &year
		}
	}

	return pub, true
}

// pubIDFromHref pulls the per-publication identifier out of the title
// link, e.g. "...&citation_for_view=USER:ABC123" -> "USER:ABC123".
func pubIDFromHref(href string) string {
	const marker = "citation_for_view="
	idx := strings.Index(href, marker)
	if idx < 0 {
		return ""
	}
	id := href[idx+len(marker):]
	if amp := strings.IndexByte(id, '&'); amp >= 0 {
		id = id[:amp]
	}
	return id
}
