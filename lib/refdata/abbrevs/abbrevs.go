// Package abbrevs resolves team abbreviations across years. The site
// keys team pages by era-specific abbreviations, so a modern
// abbreviation has to be translated before historical pages can be
// fetched, and franchise identity has to be tracked across
// relocations and renames.
package abbrevs

import (
	"sort"
)

// Span is one team abbreviation and the year range it was in use.
// Franchise is the abbreviation the franchise's own page uses today,
// shared by every span of the franchise's history. Alias is the
// alternate id some page urls use for this span, if any.
type Span struct {
	Team      string
	Franchise string
	First     int
	Last      int
	Majors    bool
	Alias     string
}

func (s Span) covers(year int) bool {
	return s.First <= year && year <= s.Last
}

// Lookup answers abbreviation queries over a fixed set of spans.
type Lookup struct {
	spans  []Span
	byTeam map[string][]Span
}

// New builds a lookup. Spans are ordered by first year, then
// abbreviation, which fixes the order of multi-result queries.
func New(spans []Span) *Lookup {
	sorted := append([]Span(nil), spans...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].First != sorted[j].First {
			return sorted[i].First < sorted[j].First
		}
		return sorted[i].Team < sorted[j].Team
	})

	byTeam := map[string][]Span{}
	for _, s := range sorted {
		byTeam[s.Team] = append(byTeam[s.Team], s)
	}
	return &Lookup{spans: sorted, byTeam: byTeam}
}

// Spans returns every span, ordered by first year then abbreviation.
func (l *Lookup) Spans() []Span {
	return append([]Span(nil), l.spans...)
}

// IsValid reports whether the abbreviation was ever used by a team.
func (l *Lookup) IsValid(abv string) bool {
	_, ok := l.byTeam[abv]
	return ok
}

// CorrectAbvs maps an abbreviation a caller knows to the
// abbreviation(s) actually in use in the given year. Without era
// adjustment the abbreviation resolves to itself when it covers the
// year; when it does not, it is treated as a franchise id and resolves
// to that franchise's abbreviation for the year. With era adjustment
// every franchise the abbreviation ever belonged to contributes its
// abbreviation for the year, so "BAL" in 1915 yields both the
// Terrapins and the span the modern Orioles franchise occupied then.
func (l *Lookup) CorrectAbvs(abv string, year int, eraAdjustment bool) []string {
	uniq := map[string]bool{}
	var out []string
	add := func(team string) {
		if !uniq[team] {
			uniq[team] = true
			out = append(out, team)
		}
	}

	direct := false
	for _, s := range l.byTeam[abv] {
		if s.covers(year) {
			direct = true
		}
	}

	if eraAdjustment {
		franchises := map[string]bool{}
		for _, s := range l.byTeam[abv] {
			franchises[s.Franchise] = true
		}
		for _, s := range l.spans {
			if s.covers(year) && franchises[s.Franchise] {
				add(s.Team)
			}
		}
		if direct {
			add(abv)
		}
		return out
	}

	if direct {
		add(abv)
		return out
	}
	for _, s := range l.spans {
		if s.covers(year) && s.Franchise == abv {
			add(s.Team)
		}
	}
	return out
}

// FranchiseAbv returns the franchise id of the team using the
// abbreviation in the given year, or "" when no team did.
func (l *Lookup) FranchiseAbv(abv string, year int) string {
	for _, s := range l.byTeam[abv] {
		if s.covers(year) {
			return s.Franchise
		}
	}
	return ""
}

// AllTeamAbvs returns every abbreviation, sorted, ever used by the
// franchise of the team using abv in the given year. Empty when abv
// was not in use that year.
func (l *Lookup) AllTeamAbvs(abv string, year int) []string {
	franchise := l.FranchiseAbv(abv, year)
	if franchise == "" {
		return []string{}
	}
	uniq := map[string]bool{}
	for _, s := range l.spans {
		if s.Franchise == franchise {
			uniq[s.Team] = true
		}
	}
	out := make([]string, 0, len(uniq))
	for team := range uniq {
		out = append(out, team)
	}
	sort.Strings(out)
	return out
}

// ToAlias translates an abbreviation to the alternate id some urls
// use for it in the given year. Abbreviations without an alias pass
// through unchanged.
func (l *Lookup) ToAlias(abv string, year int) string {
	for _, s := range l.byTeam[abv] {
		if s.covers(year) && s.Alias != "" {
			return s.Alias
		}
	}
	return abv
}

// ToRegular is the inverse of ToAlias: it translates an alternate id
// back to the abbreviation in use in the given year.
func (l *Lookup) ToRegular(abv string, year int) string {
	for _, s := range l.spans {
		if s.covers(year) && s.Alias == abv {
			return s.Team
		}
	}
	return abv
}

// ActiveSpans returns the spans covering the given year.
func (l *Lookup) ActiveSpans(year int) []Span {
	var out []Span
	for _, s := range l.spans {
		if s.covers(year) {
			out = append(out, s)
		}
	}
	return out
}
