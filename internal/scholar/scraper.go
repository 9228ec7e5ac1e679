package scholar

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/scholarcli/scholar/internal/cache"
	"github.com/scholarcli/scholar/internal/profile"
)

// Options configures a single extraction call.
type Options struct {
	// MaxPublications caps the number of publication rows accumulated.
	// Must be positive.
	MaxPublications int

	// RateLimit is the minimum delay between consecutive page fetches.
	// Must be non-negative; zero disables pacing.
	RateLimit time.Duration

	// Retries is the per-page fetch attempt budget. Zero means
	// DefaultRetries.
	Retries int

	// UserAgent overrides the identity header sent upstream.
	UserAgent string

	// CacheDir overrides the cache location. Empty means the
	// process-scoped default.
	CacheDir string

	// Warnings receives non-fatal pipeline warnings. Nil discards them.
	Warnings io.Writer
}

// validate checks caller input before any network or cache activity.
func (o Options) validate(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: researcher id must not be empty", ErrInvalidArgument)
	}
	if o.MaxPublications <= 0 {
		return fmt.Errorf("%w: max publications must be positive, got %d", ErrInvalidArgument, o.MaxPublications)
	}
	if o.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must be non-negative, got %v", ErrInvalidArgument, o.RateLimit)
	}
	if o.Retries < 0 {
		return fmt.Errorf("%w: retries must be non-negative, got %d", ErrInvalidArgument, o.Retries)
	}
	return nil
}

// Scraper drives the extraction pipeline for researcher profiles:
// cache lookup, paced page fetches, tolerant parsing, assembly.
type Scraper struct {
	client *Client
	parser *Parser
	store  *cache.Store
}

// NewScraper wires a client and a cache store into a Scraper.
func NewScraper(client *Client, store *cache.Store) *Scraper {
	return &Scraper{
		client: client,
		parser: NewParser(client.warnings),
		store:  store,
	}
}

// Extract returns the profile for a researcher identifier, from cache
// when available. The package-level Extract validates arguments; here
// id and maxPublications are assumed valid.
//
// The cache is keyed by id alone: a hit is returned as cached even if
// it was created with a different publication limit.
func (s *Scraper) Extract(ctx context.Context, id string, maxPublications int) (*profile.ResearcherProfile, error) {
	if cached, ok, err := s.store.Get(id); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	// Page 1 doubles as the profile page: header fields and the first
	// batch of rows come from one fetch.
	body, err := s.client.fetchWithRetry(ctx, s.client.profileURL(id))
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(body)
	if err != nil {
		return nil, err
	}

	fields := s.parser.ParseProfile(doc)
	pubs, rowCount := s.parser.ParsePublications(doc)

	// Keep paging while full pages keep coming and the cap is not hit.
	// A short page means the listing is done; the decision is made on
	// rendered rows, not parsed ones, so a dropped row never ends
	// pagination early. The limiter paces every follow-up fetch.
	start := PageSize
	for rowCount == PageSize && len(pubs) < maxPublications {
		body, err := s.client.fetchWithRetry(ctx, s.client.pageURL(id, start))
		if err != nil {
			return nil, err
		}
		doc, err := ParseDocument(body)
		if err != nil {
			return nil, err
		}

		page, n := s.parser.ParsePublications(doc)
		pubs = append(pubs, page...)
		rowCount = n
		start += PageSize
	}

	if len(pubs) > maxPublications {
		pubs = pubs[:maxPublications]
	}

	assembled := assemble(id, fields, pubs)
	if err := s.store.Put(assembled); err != nil {
		return nil, err
	}
	return assembled, nil
}

// assemble merges parsed fields and accumulated publications into one
// profile record, substituting the documented defaults for any field
// that failed to parse.
func assemble(id string, fields profileFields, pubs []profile.Publication) *profile.ResearcherProfile {
	p := &profile.ResearcherProfile{
		ID:           id,
		Name:         profile.UnknownName,
		Affiliation:  profile.UnknownAffiliation,
		Interests:    profile.UnknownInterests,
		Publications: pubs,
	}
	if p.Publications == nil {
		p.Publications = []profile.Publication{}
	}

	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.Affiliation != nil {
		p.Affiliation = *fields.Affiliation
	}
	if fields.Interests != nil {
		p.Interests = *fields.Interests
	}
	if fields.Homepage != nil {
		p.Homepage = *fields.Homepage
	}
	if m := fields.Metrics; m != nil {
		p.CitationsTotal = m.CitationsTotal
		p.Citations5y = m.Citations5y
		p.HIndex = m.HIndex
		p.HIndex5y = m.HIndex5y
		p.I10Index = m.I10Index
		p.I10Index5y = m.I10Index5y
	}

	return p
}

// Extract validates the call arguments, builds a client and cache
// store from the options, and runs one extraction. It is the
// package-level entry point used by the CLI.
func Extract(ctx context.Context, id string, opts Options) (*profile.ResearcherProfile, error) {
	if err := opts.validate(id); err != nil {
		return nil, err
	}

	store, err := cache.Open(opts.CacheDir)
	if err != nil {
		return nil, err
	}

	clientOpts := []ClientOption{
		WithRateLimit(opts.RateLimit),
	}
	if opts.Retries > 0 {
		clientOpts = append(clientOpts, WithRetries(opts.Retries))
	}
	if opts.UserAgent != "" {
		clientOpts = append(clientOpts, WithUserAgent(opts.UserAgent))
	}
	if opts.Warnings != nil {
		clientOpts = append(clientOpts, WithWarnings(opts.Warnings))
	}

	return NewScraper(NewClient(clientOpts...), store).Extract(ctx, id, opts.MaxPublications)
}
