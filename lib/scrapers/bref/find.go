package bref

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"

	"brstats/lib/frame"
	"brstats/lib/htmlutil"
)

const (
	firstTeamsYear = 1871
	firstGamesYear = 1901
	firstASGYear   = 1933
)

// noPostseasonYears are seasons without a postseason: the pre-World
// Series years, the 1904 boycott, and the 1994 strike.
var noPostseasonYears = map[int]bool{1901: true, 1902: true, 1904: true, 1994: true}

// twoASGYears are seasons with two All-Star Games.
var twoASGYears = map[int]bool{1959: true, 1960: true, 1961: true, 1962: true}

var (
	seasonRegex      = regexp.MustCompile(`^\d{4}$`)
	seasonRangeRegex = regexp.MustCompile(`^\d{4}-\d{4}$`)
	scheduleIDRegex  = regexp.MustCompile(`^div_\d+$`)
)

// HomeAway filters found games by the role the searched teams play.
type HomeAway string

const (
	HomeAwayAll  HomeAway = "ALL"
	HomeAwayHome HomeAway = "HOME"
	HomeAwayAway HomeAway = "AWAY"
)

// GameTypeFilter filters found games by season phase.
type GameTypeFilter string

const (
	GameTypeAll  GameTypeFilter = "ALL"
	GameTypeReg  GameTypeFilter = "REG"
	GameTypePost GameTypeFilter = "POST"
)

// GameSearch describes a schedule search. Zero-value fields mean
// "all". Teams and Opponents take era-adjusted abbreviations, not
// aliases; Dates takes MMDD values or inclusive ranges like
// "0314-0325"; Seasons takes years or inclusive ranges.
type GameSearch struct {
	Teams     []string
	Seasons   []string
	Opponents []string
	Dates     []string
	HomeAway  HomeAway
	GameType  GameTypeFilter
}

// FindGames walks the league schedule pages matching the search and
// returns refs suitable for Games. Abbreviations are era adjusted per
// season, so one input team can match several historical teams.
func (s *Scraper) FindGames(ctx context.Context, search GameSearch) ([]GameRef, error) {
	ctx, span := tracer.Start(ctx, "scraper:FindGames")
	defer span.End()

	teams := s.boxScoreAbvs(upperAll(orAll(search.Teams)))
	opponents := s.boxScoreAbvs(upperAll(orAll(search.Opponents)))
	dates := s.ValidateDates(upperAll(orAll(search.Dates)))

	homeAway := search.HomeAway
	if homeAway == "" {
		homeAway = HomeAwayAll
	}
	gameType := search.GameType
	if gameType == "" {
		gameType = GameTypeAll
	}
	if homeAway != HomeAwayAll && homeAway != HomeAwayHome && homeAway != HomeAwayAway {
		return nil, fmt.Errorf("invalid home/away filter %q", homeAway)
	}
	if gameType != GameTypeAll && gameType != GameTypeReg && gameType != GameTypePost {
		return nil, fmt.Errorf("invalid game type filter %q", gameType)
	}

	years := s.gameSearchYears(teams, upperAll(orAll(search.Seasons)), opponents, gameType)
	if len(years) == 0 {
		return nil, nil
	}
	if s.client == nil {
		return nil, fmt.Errorf("scraper has no client")
	}

	tracker, stop := s.progressTracker("searching seasons", len(years))
	defer stop()

	var refs []GameRef
	for _, year := range years {
		yearTeams := s.eraAdjustAll(teams, year)
		yearOpponents := s.eraAdjustAll(opponents, year)

		doc, err := s.client.GetPage(ctx, fmt.Sprintf("/leagues/majors/%d-schedule.shtml", year))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch schedule page")
			return refs, err
		}
		found, err := findSeasonGames(ctx, doc, yearTeams, yearOpponents, dates, homeAway, gameType)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse schedule page")
			return refs, fmt.Errorf("season %d: %w", year, err)
		}
		s.opts.PrintPage("searched schedule", "season", year)
		refs = append(refs, found...)
		tracker.Increment(1)
	}
	return refs, nil
}

// boxScoreAbvs keeps the valid non-alias abbreviations of teams that
// have box scores. An "ALL" input short-circuits the whole list.
func (s *Scraper) boxScoreAbvs(abvs []string) []string {
	var result []string
	for _, abv := range abvs {
		if abv == "ALL" {
			return []string{"ALL"}
		}
		if s.isAliasAbv(abv) || !s.abvs.IsValid(abv) {
			s.opts.Write("skipping invalid team", "team", abv)
			continue
		}
		if !s.hasBoxScores(abv) {
			s.opts.Write("skipping team: no box scores available", "team", abv)
			continue
		}
		result = append(result, abv)
	}
	return result
}

func (s *Scraper) isAliasAbv(abv string) bool {
	for _, sp := range s.abvs.Spans() {
		if sp.Alias == abv && sp.Team != abv {
			return true
		}
	}
	return false
}

func (s *Scraper) hasBoxScores(abv string) bool {
	for _, sp := range s.abvs.Spans() {
		if sp.Team == abv && sp.Majors {
			return true
		}
	}
	return false
}

func (s *Scraper) eraAdjustAll(abvs []string, year int) []string {
	if len(abvs) == 1 && abvs[0] == "ALL" {
		return abvs
	}
	var result []string
	for _, abv := range abvs {
		for _, match := range s.abvs.CorrectAbvs(abv, year, true) {
			if match != "" {
				result = append(result, match)
			}
		}
	}
	return result
}

// gameSearchYears resolves the season inputs to the sorted years that
// could contain a matching game.
func (s *Scraper) gameSearchYears(teams, seasons, opponents []string, gameType GameTypeFilter) []int {
	lastYear := s.now().Year()
	years := s.parseSeasonInputs(seasons, firstGamesYear, lastYear, func(year int) bool {
		if gameType == GameTypePost && noPostseasonYears[year] {
			s.opts.Write("no postseason held", "season", year)
			return false
		}
		return true
	})
	if len(years) == 0 {
		s.opts.Write("box scores are only available in a fixed range",
			"first", firstGamesYear, "last", lastYear)
		return nil
	}
	if gameType == GameTypePost {
		kept := years[:0]
		for _, y := range years {
			if !noPostseasonYears[y] {
				kept = append(kept, y)
			}
		}
		years = kept
	}

	// keep only years in which the franchises behind the inputs played
	if !allOnly(teams) || !allOnly(opponents) {
		valid := map[int]bool{}
		for y := firstGamesYear; y <= lastYear; y++ {
			valid[y] = true
		}
		if !allOnly(teams) {
			intersectYears(valid, s.franchiseSeasons(teams))
		}
		if !allOnly(opponents) {
			intersectYears(valid, s.franchiseSeasons(opponents))
		}
		kept := years[:0]
		for _, y := range years {
			if valid[y] {
				kept = append(kept, y)
			}
		}
		years = kept
	}
	return years
}

// parseSeasonInputs expands year and year-range inputs into a sorted,
// bounded year list. keep vetoes individual years.
func (s *Scraper) parseSeasonInputs(seasons []string, first, last int, keep func(int) bool) []int {
	years := map[int]bool{}
	for _, input := range seasons {
		if input == "ALL" {
			years = map[int]bool{}
			for y := first; y <= last; y++ {
				years[y] = true
			}
			break
		}
		if strings.Contains(input, "-") {
			if !seasonRangeRegex.MatchString(input) {
				s.opts.Write("skipping invalid seasons input", "input", input)
				continue
			}
			a, b, _ := strings.Cut(input, "-")
			start, _ := strconv.Atoi(a)
			end, _ := strconv.Atoi(b)
			if start > end {
				start, end = end, start
			}
			for y := start; y <= end; y++ {
				years[y] = true
			}
			continue
		}
		if !seasonRegex.MatchString(input) {
			s.opts.Write("skipping invalid seasons input", "input", input)
			continue
		}
		year, _ := strconv.Atoi(input)
		if keep != nil && !keep(year) {
			continue
		}
		years[year] = true
	}

	var result []int
	for y := range years {
		if y >= first && y <= last {
			result = append(result, y)
		}
	}
	sort.Ints(result)
	return result
}

// franchiseSeasons returns every year in which any franchise that ever
// used one of the abbreviations fielded a team.
func (s *Scraper) franchiseSeasons(abvs []string) map[int]bool {
	inputs := map[string]bool{}
	for _, abv := range abvs {
		inputs[abv] = true
	}
	franchises := map[string]bool{}
	for _, sp := range s.abvs.Spans() {
		if inputs[sp.Team] {
			franchises[sp.Franchise] = true
		}
	}
	years := map[int]bool{}
	for _, sp := range s.abvs.Spans() {
		if !franchises[sp.Franchise] {
			continue
		}
		for y := sp.First; y <= sp.Last; y++ {
			years[y] = true
		}
	}
	return years
}

func findSeasonGames(ctx context.Context, doc *Document, teams, opponents, dates []string, homeAway HomeAway, gameType GameTypeFilter) ([]GameRef, error) {
	teamSet := stringSet(teams)
	opponentSet := stringSet(opponents)

	dateSet := map[int]bool{}
	if len(dates) == 1 && dates[0] == "ALL" {
		for d := 301; d < 1130; d++ {
			dateSet[d] = true
		}
	} else {
		for _, date := range dates {
			if a, b, ok := strings.Cut(date, "-"); ok {
				start, _ := strconv.Atoi(a)
				end, _ := strconv.Atoi(b)
				for d := start; d <= end; d++ {
					dateSet[d] = true
				}
			} else if d, err := strconv.Atoi(date); err == nil {
				dateSet[d] = true
			}
		}
	}

	root, err := doc.Parse()
	if err != nil {
		return nil, err
	}

	var schedules []*goquery.Selection
	root.Find("#content div.section_wrapper").Each(func(_ int, sel *goquery.Selection) {
		if id, _ := sel.Attr("id"); scheduleIDRegex.MatchString(id) {
			schedules = append(schedules, sel)
		}
	})
	// a regular season schedule, probably followed by a postseason one
	if len(schedules) == 0 || len(schedules) > 2 {
		return nil, fmt.Errorf("expected 1 or 2 schedule sections, found %d", len(schedules))
	}
	if len(schedules) == 2 {
		switch gameType {
		case GameTypeReg:
			schedules = schedules[:1]
		case GameTypePost:
			schedules = schedules[1:]
		}
	} else if gameType == GameTypePost {
		return nil, nil
	}

	var refs []GameRef
	for _, schedule := range schedules {
		schedule.Find("p").Each(func(_ int, game *goquery.Selection) {
			anchors := htmlutil.GetAnchors(ctx, game.Find("a[href]"))
			// away team, home team, and box score links; games without
			// box scores lack the third
			if len(anchors) != 3 {
				return
			}
			endpoint := anchors[2].Href
			if strings.Contains(endpoint, "previews") || len(endpoint) < 15 {
				return
			}

			date := endpoint[len(endpoint)-15 : len(endpoint)-7]
			doubleheader := string(endpoint[len(endpoint)-7])
			awayTeam := pathSegment(anchors[0].Href, 1)
			homeTeam := pathSegment(anchors[1].Href, 1)
			monthDay, err := strconv.Atoi(date[4:])
			if err != nil || !dateSet[monthDay] {
				return
			}

			var match bool
			switch homeAway {
			case HomeAwayAll:
				match = (teamSet["ALL"] || teamSet[awayTeam] || teamSet[homeTeam]) &&
					(opponentSet["ALL"] || opponentSet[awayTeam] || opponentSet[homeTeam])
			case HomeAwayHome:
				match = (teamSet["ALL"] || teamSet[homeTeam]) &&
					(opponentSet["ALL"] || opponentSet[awayTeam])
			case HomeAwayAway:
				match = (teamSet["ALL"] || teamSet[awayTeam]) &&
					(opponentSet["ALL"] || opponentSet[homeTeam])
			}
			if match {
				refs = append(refs, GameRef{HomeTeam: homeTeam, Date: date, Doubleheader: doubleheader})
			}
		})
	}
	return refs, nil
}

// TeamSearch describes a franchise search. Teams additionally accepts
// the league selectors "BML" and "WML" to pick every Black or White
// major league team of the segregation era.
type TeamSearch struct {
	Teams   []string
	Seasons []string
}

// FindTeams resolves the search into refs suitable for Teams, era
// adjusting abbreviations per season. No pages are fetched; the
// abbreviation data answers the whole search.
func (s *Scraper) FindTeams(search TeamSearch) []TeamRef {
	teams := s.validSearchAbvs(upperAll(orAll(search.Teams)))
	years := s.parseSeasonInputs(upperAll(orAll(search.Seasons)), firstTeamsYear, s.now().Year(), nil)
	if len(years) == 0 {
		s.opts.Write("team stats are only available in a fixed range",
			"first", firstTeamsYear, "last", s.now().Year())
		return nil
	}

	var refs []TeamRef
	for _, year := range years {
		var yearTeams []string
		hasBML := containsStr(teams, "BML")
		hasWML := containsStr(teams, "WML")
		switch {
		case allOnly(teams) || (hasBML && hasWML):
			yearTeams = []string{"ALL"}
		case leagueSelectorsOnly(teams):
			yearTeams = teams
		default:
			for _, t := range teams {
				if t == "BML" || t == "WML" {
					yearTeams = append(yearTeams, t)
					continue
				}
				for _, match := range s.abvs.CorrectAbvs(t, year, true) {
					if match != "" {
						yearTeams = append(yearTeams, match)
					}
				}
			}
		}
		if len(yearTeams) == 0 {
			continue
		}
		refs = append(refs, s.findSeasonTeams(year, yearTeams)...)
	}
	return refs
}

func (s *Scraper) validSearchAbvs(abvs []string) []string {
	var result []string
	for _, abv := range abvs {
		if abv == "ALL" {
			return []string{"ALL"}
		}
		if !s.abvs.IsValid(abv) && abv != "BML" && abv != "WML" {
			s.opts.Write("skipping invalid team", "team", abv)
			continue
		}
		result = append(result, abv)
	}
	return result
}

func (s *Scraper) findSeasonTeams(year int, yearTeams []string) []TeamRef {
	var refs []TeamRef
	for _, team := range yearTeams {
		var matches []string
		for _, sp := range s.abvs.ActiveSpans(year) {
			switch team {
			case "ALL":
				matches = append(matches, sp.Team)
			case "BML":
				if !sp.Majors {
					matches = append(matches, sp.Team)
				}
			case "WML":
				if sp.Majors {
					matches = append(matches, sp.Team)
				}
			default:
				if sp.Team == team {
					matches = append(matches, sp.Team)
				}
			}
		}
		sort.Strings(matches)
		for _, abv := range matches {
			refs = append(refs, TeamRef{Abv: abv, Year: strconv.Itoa(year)})
		}
	}
	return refs
}

// FindASG resolves season inputs into All-Star Game refs, skipping the
// cancelled games and doubling the seasons that held two.
func (s *Scraper) FindASG(seasons []string) []GameRef {
	years := s.parseSeasonInputs(upperAll(orAll(seasons)), firstASGYear, s.now().Year(), func(year int) bool {
		if asgCancelledYears[year] {
			s.opts.Write("no All-Star Game held", "season", year)
			return false
		}
		return true
	})
	if len(years) == 0 {
		s.opts.Write("All-Star Games are only available in a fixed range",
			"first", firstASGYear, "last", s.now().Year())
		return nil
	}

	var refs []GameRef
	for _, year := range years {
		if asgCancelledYears[year] {
			continue
		}
		date := strconv.Itoa(year)
		if twoASGYears[year] {
			refs = append(refs,
				GameRef{HomeTeam: "ALLSTAR", Date: date, Doubleheader: "1"},
				GameRef{HomeTeam: "ALLSTAR", Date: date, Doubleheader: "2"})
		} else {
			refs = append(refs, GameRef{HomeTeam: "ALLSTAR", Date: date, Doubleheader: "0"})
		}
	}
	return refs
}

// AllPlayers fetches the site's player search index and returns one
// row per player in major league history: Player ID, Name, Career
// Start, Career End, and Active as 0 or 1.
func (s *Scraper) AllPlayers(ctx context.Context) (*frame.Frame, error) {
	ctx, span := tracer.Start(ctx, "scraper:AllPlayers")
	defer span.End()

	if s.client == nil {
		return nil, fmt.Errorf("scraper has no client")
	}
	doc, err := s.client.GetPage(ctx, "/short/inc/players_search_list.csv")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch player index")
		return nil, err
	}
	s.opts.PrintPage("fetched player index")

	f := frame.New("Player ID", "Name", "Career Start", "Career End", "Active")
	for _, line := range strings.Split(strings.TrimSpace(string(doc.Body)), "\n") {
		// the payload ships without a header row
		fields := strings.Split(strings.TrimRight(line, "\r"), ",")
		if len(fields) < 4 {
			continue
		}
		// a one year career lists the year alone
		start, end, ok := strings.Cut(fields[2], "-")
		if !ok {
			end = start
		}
		startYear, err1 := strconv.Atoi(start)
		endYear, err2 := strconv.Atoi(end)
		if err1 != nil || err2 != nil {
			continue
		}
		active := 0
		if fields[3] == "1" {
			active = 1
		}
		f.AppendMap(map[string]frame.Value{
			"Player ID":    frame.Text(fields[0]),
			"Name":         frame.Text(fields[1]),
			"Career Start": frame.Int(startYear),
			"Career End":   frame.Int(endYear),
			"Active":       frame.Int(active),
		})
	}
	return f, nil
}

func orAll(inputs []string) []string {
	if len(inputs) == 0 {
		return []string{"ALL"}
	}
	return inputs
}

func upperAll(inputs []string) []string {
	out := make([]string, len(inputs))
	for i, s := range inputs {
		out[i] = strings.ToUpper(s)
	}
	return out
}

func allOnly(abvs []string) bool {
	return len(abvs) == 1 && abvs[0] == "ALL"
}

func leagueSelectorsOnly(abvs []string) bool {
	if len(abvs) == 0 {
		return false
	}
	for _, abv := range abvs {
		if abv != "BML" && abv != "WML" {
			return false
		}
	}
	return true
}

func containsStr(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func intersectYears(dst, src map[int]bool) {
	for y := range dst {
		if !src[y] {
			delete(dst, y)
		}
	}
}

func stringSet(items []string) map[string]bool {
	set := map[string]bool{}
	for _, item := range items {
		set[item] = true
	}
	return set
}

func pathSegment(path string, index int) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if index < len(parts) {
		return parts[index]
	}
	return ""
}
