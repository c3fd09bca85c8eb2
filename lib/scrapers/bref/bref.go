// Package bref extracts normalized tabular statistics from the site's
// box score, player, and team pages. Extraction itself never touches
// the network: pages arrive as Documents, either fetched through the
// package's rate-limited Client or constructed from stored files, and
// the reference lookups (team abbreviation history, no-hitter
// registry) are injected at construction.
package bref

import (
	"time"

	"go.opentelemetry.io/otel"

	"brstats/lib/options"
	"brstats/lib/refdata/abbrevs"
	"brstats/lib/refdata/nohitters"
)

var tracer = otel.Tracer("scrapers/bref")

// TeamRef identifies one team season.
type TeamRef struct {
	Abv  string
	Year string
}

// ID is the team page id, abbreviation plus year (e.g. "SEA2018").
func (t TeamRef) ID() string { return t.Abv + t.Year }

// GameRef identifies one game the way its box score url does: home
// team abbreviation, YYYYMMDD date, and doubleheader ordinal. All-Star
// Games use home team "ALLSTAR" with a YYYY date.
type GameRef struct {
	HomeTeam     string
	Date         string
	Doubleheader string
}

type Scraper struct {
	client *Client
	abvs   *abbrevs.Lookup
	nh     *nohitters.Registry
	opts   *options.Options
	now    func() time.Time
}

type ScraperOptions struct {
	// Client may be nil when every entity is fed pre-fetched pages.
	Client        *Client
	Abbreviations *abbrevs.Lookup
	// NoHitters may be nil; annotation then degrades to a no-op.
	NoHitters *nohitters.Registry
	Options   *options.Options
	// Now overrides the clock used by input validation. Nil means
	// time.Now.
	Now func() time.Time
}

func NewScraper(o ScraperOptions) *Scraper {
	opts := o.Options
	if opts == nil {
		opts = options.Open("")
	}
	now := o.Now
	if now == nil {
		now = time.Now
	}
	abvs := o.Abbreviations
	if abvs == nil {
		abvs = abbrevs.New(nil)
	}
	return &Scraper{
		client: o.Client,
		abvs:   abvs,
		nh:     o.NoHitters,
		opts:   opts,
		now:    now,
	}
}
