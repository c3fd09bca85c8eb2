package bref

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// asgCancelledYears are seasons whose All-Star Game never happened.
var asgCancelledYears = map[int]bool{1945: true, 2020: true}

// ValidateGames filters a list of game refs down to the ones that can
// be fetched, warning about each rejected entry. Team abbreviations
// are uppercased and translated to the id box score urls use.
func (s *Scraper) ValidateGames(refs []GameRef) []GameRef {
	var out []GameRef
	for _, ref := range refs {
		home := strings.ToUpper(ref.HomeTeam)
		if home == "ALLSTAR" {
			if ok := s.validASG(ref.Date, ref.Doubleheader); !ok {
				slog.Warn("skipping invalid all-star game",
					"date", ref.Date, "doubleheader", ref.Doubleheader)
				continue
			}
			out = append(out, GameRef{HomeTeam: home, Date: ref.Date, Doubleheader: ref.Doubleheader})
			continue
		}

		if !validGameDate(ref.Date, s.now()) {
			slog.Warn("skipping game with invalid date", "team", home, "date", ref.Date)
			continue
		}
		if ref.Doubleheader != "0" && ref.Doubleheader != "1" &&
			ref.Doubleheader != "2" && ref.Doubleheader != "3" {
			slog.Warn("skipping game with invalid doubleheader slot",
				"team", home, "date", ref.Date, "doubleheader", ref.Doubleheader)
			continue
		}
		year, _ := strconv.Atoi(ref.Date[:4])
		teamID, ok := s.boxScoreTeamID(home, year)
		if !ok {
			slog.Warn("skipping game with invalid team", "team", home, "date", ref.Date)
			continue
		}
		out = append(out, GameRef{HomeTeam: teamID, Date: ref.Date, Doubleheader: ref.Doubleheader})
	}
	return out
}

func (s *Scraper) validASG(date, doubleheader string) bool {
	if len(date) != 4 || !isDigits(date) {
		return false
	}
	year, _ := strconv.Atoi(date)
	if year < 1933 || year > s.now().Year() || asgCancelledYears[year] {
		return false
	}
	return doubleheader == "0" || doubleheader == "1" || doubleheader == "2"
}

func validGameDate(date string, now time.Time) bool {
	if len(date) != 8 || !isDigits(date) {
		return false
	}
	day, err := time.Parse("20060102", date)
	if err != nil {
		return false
	}
	// no major league box scores before 1901
	return day.Year() >= 1901 && !day.After(now)
}

// boxScoreTeamID translates an abbreviation into the id box score urls
// use for the team in the given year. Abbreviations of teams without
// box scores on the site resolve to not-ok.
func (s *Scraper) boxScoreTeamID(abv string, year int) (string, bool) {
	for _, span := range s.abvs.Spans() {
		if span.Alias == abv && span.First <= year && year <= span.Last {
			return abv, span.Majors
		}
	}
	for _, span := range s.abvs.Spans() {
		if span.Team == abv && span.First <= year && year <= span.Last {
			return s.abvs.ToAlias(abv, year), span.Majors
		}
	}
	return "", false
}

// ValidatePlayers filters player ids down to well-formed ones,
// lowercased.
func (s *Scraper) ValidatePlayers(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.ToLower(id)
		if !playerIDRegex.MatchString(id) {
			slog.Warn("skipping invalid player id", "id", id)
			continue
		}
		out = append(out, id)
	}
	return out
}

// ValidateTeams filters team refs down to abbreviation and season
// pairs the site has a page for, uppercased.
func (s *Scraper) ValidateTeams(refs []TeamRef) []TeamRef {
	var out []TeamRef
	for _, ref := range refs {
		abv := strings.ToUpper(ref.Abv)
		if len(ref.Year) != 4 || !isDigits(ref.Year) {
			slog.Warn("skipping team with invalid season", "team", abv, "season", ref.Year)
			continue
		}
		year, _ := strconv.Atoi(ref.Year)
		if year < 1871 || year > s.now().Year() {
			slog.Warn("skipping team with invalid season", "team", abv, "season", ref.Year)
			continue
		}
		if !s.teamCovers(abv, year) {
			slog.Warn("skipping invalid team", "team", abv, "season", ref.Year)
			continue
		}
		out = append(out, TeamRef{Abv: abv, Year: ref.Year})
	}
	return out
}

func (s *Scraper) teamCovers(abv string, year int) bool {
	for _, span := range s.abvs.Spans() {
		if (span.Team == abv || span.Alias == abv) && span.First <= year && year <= span.Last {
			return true
		}
	}
	return false
}

// ValidateDates filters month-day filters down to well-formed ones.
// Entries are a 3 or 4 digit MDD/MMDD, or two joined by a hyphen;
// backwards ranges are reversed. A single "ALL" entry overrides the
// whole list.
func (s *Scraper) ValidateDates(dates []string) []string {
	var out []string
	for _, date := range dates {
		if date == "ALL" {
			return []string{"ALL"}
		}
		start, end, isRange := strings.Cut(date, "-")
		if !isRange {
			if _, ok := monthDay(date); !ok {
				slog.Warn("skipping invalid date filter", "date", date)
				continue
			}
			out = append(out, date)
			continue
		}
		a, okA := monthDay(start)
		b, okB := monthDay(end)
		if !okA || !okB {
			slog.Warn("skipping invalid date filter", "date", date)
			continue
		}
		if a > b {
			start, end = end, start
		}
		out = append(out, start+"-"+end)
	}
	return out
}

// monthDay parses a 3 or 4 digit month-day string into a comparable
// MMDD number.
func monthDay(s string) (int, bool) {
	if len(s) != 3 && len(s) != 4 || !isDigits(s) {
		return 0, false
	}
	n, _ := strconv.Atoi(s)
	month, day := n/100, n%100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, false
	}
	return n, true
}
