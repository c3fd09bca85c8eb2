package bref_test

import (
	"time"

	"brstats/lib/refdata/abbrevs"
	"brstats/lib/refdata/nohitters"
	"brstats/lib/scrapers/bref"
)

func testSpans() []abbrevs.Span {
	return []abbrevs.Span{
		{Team: "NYY", Franchise: "NYY", First: 1913, Last: 2025, Majors: true, Alias: "NYA"},

		{Team: "PHA", Franchise: "ATH", First: 1901, Last: 1954, Majors: true},
		{Team: "KCA", Franchise: "ATH", First: 1955, Last: 1967, Majors: true, Alias: "KC1"},
		{Team: "OAK", Franchise: "ATH", First: 1968, Last: 2025, Majors: true},

		{Team: "MON", Franchise: "WSN", First: 1969, Last: 2004, Majors: true},
		{Team: "WSN", Franchise: "WSN", First: 2005, Last: 2025, Majors: true},

		{Team: "SEA", Franchise: "SEA", First: 1977, Last: 2025, Majors: true},

		// Negro league team, no box scores on the site
		{Team: "CAG", Franchise: "CAG", First: 1920, Last: 1948, Majors: false},
	}
}

// testScraper builds a scraper around fixture reference data and a
// fixed clock, with no http client.
func testScraper(records []nohitters.Record) *bref.Scraper {
	return bref.NewScraper(bref.ScraperOptions{
		Abbreviations: abbrevs.New(testSpans()),
		NoHitters:     nohitters.Build(records),
		Now: func() time.Time {
			return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		},
	})
}
