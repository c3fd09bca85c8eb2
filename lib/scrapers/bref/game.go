package bref

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"

	"brstats/lib/frame"
	"brstats/lib/htmltable"
	"brstats/lib/htmlutil"
	"brstats/lib/textutil"
)

// Game is one extracted box score. Info holds a single row; Batting,
// Pitching, and Fielding hold one row per participating player plus a
// "Team Totals" row per team.
type Game struct {
	Name string
	ID   string

	Info      *frame.Frame
	Linescore *frame.Frame
	TeamInfo  *frame.Frame
	Batting   *frame.Frame
	Pitching  *frame.Frame
	Fielding  *frame.Frame
	UmpInfo   *frame.Frame

	// Players holds the id of every player who appears in the box
	// score, in order of first appearance, without duplicates.
	Players []string
	Teams   []TeamRef

	isASG      bool
	homeTeamID string
}

func gamePath(ref GameRef) string {
	if ref.HomeTeam == "ALLSTAR" {
		suffix := ""
		if ref.Doubleheader != "0" {
			suffix = "-" + ref.Doubleheader
		}
		return fmt.Sprintf("/allstar/%s-allstar-game%s.shtml", ref.Date, suffix)
	}
	return fmt.Sprintf("/boxes/%s/%s%s%s.shtml", ref.HomeTeam, ref.HomeTeam, ref.Date, ref.Doubleheader)
}

// Game fetches and extracts one box score.
func (s *Scraper) Game(ctx context.Context, ref GameRef) (*Game, error) {
	ctx, span := tracer.Start(ctx, "scraper:Game")
	defer span.End()

	refs := s.ValidateGames([]GameRef{ref})
	if len(refs) == 0 {
		err := fmt.Errorf("invalid game %q %q %q", ref.HomeTeam, ref.Date, ref.Doubleheader)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid game")
		return nil, err
	}
	if s.client == nil {
		return nil, fmt.Errorf("scraper has no client")
	}

	doc, err := s.client.GetPage(ctx, gamePath(refs[0]))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch game page")
		return nil, err
	}
	return s.ExtractGame(ctx, doc)
}

// ExtractGame extracts a box score from an already fetched page.
func (s *Scraper) ExtractGame(ctx context.Context, doc *Document) (*Game, error) {
	_, span := tracer.Start(ctx, "scraper:ExtractGame")
	defer span.End()

	if !gamePathRegex.MatchString(doc.Path) && !allstarPathRegex.MatchString(doc.Path) {
		err := fmt.Errorf("page %q does not contain a game", doc.Path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "not a game page")
		return nil, err
	}
	id, err := textutil.Between(doc.Path, "/", ".", textutil.AnchorEnd)
	if err != nil {
		return nil, err
	}

	root, err := doc.Parse()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page")
		return nil, err
	}

	e := &gameExtractor{s: s, id: id}
	if err := e.scrape(root); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract game")
		return nil, fmt.Errorf("game %s: %w", id, err)
	}

	g := &Game{
		Name:       e.name,
		ID:         e.id,
		Info:       e.info.Reindex(gameInfoCols),
		Linescore:  e.linescore,
		TeamInfo:   e.teamInfo.Reindex(gameTeamInfoCols),
		Batting:    e.batting.Reindex(gameBattingCols),
		Pitching:   e.pitching.Reindex(gamePitchingCols),
		Fielding:   e.fielding.Reindex(gameFieldingCols),
		UmpInfo:    e.umpInfo,
		Players:    e.players,
		Teams:      e.teams,
		isASG:      e.isASG,
		homeTeamID: e.homeTeamID,
	}

	settings := s.opts.Current()
	if settings.AddNoHitters {
		s.AddGameNoHitters(g)
	}
	if settings.UpdateTeamNames {
		s.UpdateGameTeamNames(g)
	}
	if settings.UpdateVenueNames {
		s.UpdateGameVenueNames(g)
	}
	s.opts.PrintPage("extracted game", "name", g.Name)
	return g, nil
}

// AddGameNoHitters fills the pitching table's NH, PG, and CNH columns
// from the no-hitter registry. The columns stay null when the registry
// never populated.
func (s *Scraper) AddGameNoHitters(g *Game) {
	if s.nh == nil || !s.nh.Populated() {
		return
	}
	p := g.Pitching
	for _, col := range []string{"NH", "PG", "CNH"} {
		p.SetAll(col, frame.Int(0))
	}

	credit := func(col, playerID string) {
		rows := p.FindRows(func(r int) bool {
			return p.At(r, "Player ID").String() == playerID
		})
		if len(rows) == 0 {
			return
		}
		teamID := p.At(rows[0], "Team ID")
		p.SetWhere(col, frame.Int(1), func(r int) bool {
			if p.At(r, "Player ID").String() == playerID {
				return true
			}
			return p.At(r, "Player").String() == "Team Totals" && p.At(r, "Team ID").Equal(teamID)
		})
	}

	if playerID := s.nh.GameINH[g.ID]; playerID != "" {
		credit("NH", playerID)
	}
	if playerID := s.nh.GamePG[g.ID]; playerID != "" {
		credit("PG", playerID)
	}
	for _, playerID := range s.nh.GameCNH[g.ID] {
		credit("CNH", playerID)
	}
}

// UpdateGameTeamNames standardizes team names across every table so a
// franchise goes by one name regardless of the era the game was played
// in. Relocations keep their original city.
func (s *Scraper) UpdateGameTeamNames(g *Game) {
	if g.isASG {
		return
	}
	rules := teamRenameRules(yearOfTeamID(g.homeTeamID))

	replacePartial(g.Linescore, rules, "Team")
	replacePartial(g.TeamInfo, rules, "Team")
	replacePartial(g.Info, rules, "Game")
	replaceExact(g.Info, rules, "Home Team", "Away Team", "Winning Team", "Losing Team")
	replaceExact(g.Batting, rules, "Team", "Opponent")
	replaceExact(g.Pitching, rules, "Team", "Opponent")
	replaceExact(g.Fielding, rules, "Team", "Opponent")

	g.Name = g.Info.At(0, "Game").String()
}

// UpdateGameVenueNames standardizes the venue name so a venue goes by
// one name regardless of era.
func (s *Scraper) UpdateGameVenueNames(g *Game) {
	replaceVenues(g.Info)
}

type gameExtractor struct {
	s  *Scraper
	id string

	name  string
	isASG bool

	info      *frame.Frame
	linescore *frame.Frame
	teamInfo  *frame.Frame
	batting   *frame.Frame
	pitching  *frame.Frame
	fielding  *frame.Frame
	umpInfo   *frame.Frame

	players []string
	teams   []TeamRef

	homeTeam, awayTeam   string
	homeScore, awayScore int
	winningTeam          string
	tie                  bool

	homeTeamID, awayTeamID string
}

func (e *gameExtractor) scrape(root *goquery.Document) error {
	content := root.Find("#content").First()
	if content.Length() == 0 {
		return fmt.Errorf("page has no content element")
	}

	var sections []*goquery.Selection
	content.Find("div.section_wrapper").Each(func(_ int, sel *goquery.Selection) {
		sections = append(sections, sel)
	})
	otherInfoIndex := -1
	for i, sel := range sections {
		if strings.TrimSpace(sel.Text()) == "Other Info" {
			otherInfoIndex = i
		}
	}
	if otherInfoIndex < 1 {
		return fmt.Errorf("page has no Other Info section")
	}

	if err := e.scrapeInfo(root, content, sections[otherInfoIndex]); err != nil {
		return err
	}

	var battingWrappers []*goquery.Selection
	content.Find("div.table_wrapper").Each(func(i int, sel *goquery.Selection) {
		if i < 2 {
			battingWrappers = append(battingWrappers, sel)
		}
	})
	if len(battingWrappers) != 2 {
		return fmt.Errorf("expected 2 batting tables, found %d", len(battingWrappers))
	}

	e.batting = frame.New()
	for _, wrapper := range battingWrappers {
		f, err := e.scrapeBatting(wrapper)
		if err != nil {
			return err
		}
		e.batting = frame.Concat(e.batting, f)
	}

	e.pitching = frame.New()
	if err := e.scrapePitching(sections[otherInfoIndex-1]); err != nil {
		return err
	}

	e.batting.ConvertNumeric()
	e.pitching.ConvertNumeric()
	e.players = dedup(e.players)

	e.info.Set(0, "Game", frame.Text(e.name))
	e.info.Set(0, "Game ID", frame.Text(e.id))
	e.setTeamID(e.info, 0, "Home Team ID", e.homeTeamID)
	e.setTeamID(e.info, 0, "Away Team ID", e.awayTeamID)
	e.batting.SetAll("Game ID", frame.Text(e.id))
	e.pitching.SetAll("Game ID", frame.Text(e.id))

	e.deriveFielding()
	if err := e.scrapeStolenBases(battingWrappers); err != nil {
		return err
	}
	e.gatherUmpInfo()
	return nil
}

func (e *gameExtractor) setTeamID(f *frame.Frame, row int, col, id string) {
	if id == "" {
		f.Set(row, col, frame.Null())
		return
	}
	f.Set(row, col, frame.Text(id))
}

func (e *gameExtractor) scrapeInfo(root *goquery.Document, content, otherInfo *goquery.Selection) error {
	e.info = frame.New("Game")
	e.info.AppendMap(map[string]frame.Value{"Game": frame.Text(e.name)})
	e.teamInfo = frame.New("Home/Away", "Game ID")
	e.teamInfo.AppendMap(map[string]frame.Value{
		"Home/Away": frame.Text("Away"), "Game ID": frame.Text(e.id),
	})
	e.teamInfo.AppendMap(map[string]frame.Value{
		"Home/Away": frame.Text("Home"), "Game ID": frame.Text(e.id),
	})

	heading := textutil.CleanSpaces(content.Find("h1").First().Text())
	if err := e.scrapeHeading(heading); err != nil {
		return err
	}
	if err := e.scrapeLinescore(content.Find("div.linescore_wrap").First()); err != nil {
		return err
	}
	if err := e.scrapeScorebox(root.Find("div.scorebox").First()); err != nil {
		return err
	}
	e.gatherTeamInfo()
	e.scrapeOtherInfo(otherInfo)
	e.info.ConvertNumeric()
	return nil
}

func (e *gameExtractor) scrapeHeading(heading string) error {
	switch {
	case strings.Contains(heading, "All-Star"):
		e.isASG = true
		e.info.Set(0, "Game Type", frame.Text("All-Star Game"))
		last := e.id[len(e.id)-1:]
		if last >= "0" && last <= "9" {
			e.name = strings.ReplaceAll(heading, "Box Score", last)
		} else {
			e.name = strings.ReplaceAll(heading, " Box Score", "")
		}

	case !strings.Contains(heading, ")") && !strings.Contains(heading, "World Series"):
		e.info.Set(0, "Game Type", frame.Text("Regular Season"))
		matchup, date, ok := strings.Cut(strings.ReplaceAll(heading, " Box Score:", ","), ", ")
		if !ok {
			return fmt.Errorf("malformed heading %q", heading)
		}
		doubleheader := e.id[len(e.id)-1:]
		if doubleheader == "0" {
			e.name = fmt.Sprintf("%s, %s", date, matchup)
		} else {
			e.name = fmt.Sprintf("%s, %s, Game %s", date, matchup, doubleheader)
		}

	default:
		rest, monthDay, ok := cutLast(heading, ", ")
		if !ok {
			return fmt.Errorf("malformed heading %q", heading)
		}
		yearSeriesGame, matchup, ok := cutLast(rest, ", ")
		if !ok {
			return fmt.Errorf("malformed heading %q", heading)
		}
		year, seriesGame, ok := strings.Cut(yearSeriesGame, " ")
		if !ok {
			return fmt.Errorf("malformed heading %q", heading)
		}
		// print the series abbreviation instead of the full name,
		// except for the World Series
		if strings.Contains(seriesGame, "(") {
			_, seriesGame, _ = strings.Cut(seriesGame, "(")
			seriesGame = strings.ReplaceAll(seriesGame, ")", "")
		}
		e.name = fmt.Sprintf("%s, %s, %s, %s", monthDay, year, matchup, seriesGame)

		if strings.Contains(heading, "World Series") {
			e.info.Set(0, "Game Type", frame.Text("World Series"))
		} else {
			gameType, err := textutil.Between(heading, "League ", " (", textutil.AnchorStart)
			if err != nil {
				return fmt.Errorf("malformed heading %q: %w", heading, err)
			}
			e.info.Set(0, "Game Type", frame.Text(gameType))
		}
	}
	return nil
}

func (e *gameExtractor) scrapeLinescore(linescore *goquery.Selection) error {
	rows := htmltable.Rows(htmltable.Unwrap(linescore, false))
	if len(rows) < 3 {
		return fmt.Errorf("linescore has %d rows", len(rows))
	}

	var records [][]string
	for _, row := range rows[:3] {
		var record []string
		for _, cell := range row.Cells {
			if strings.Contains(cell, "Sports Logos.net") {
				continue
			}
			record = append(record, cell)
		}
		records = append(records, record)
	}
	// extra empty string before the column labels
	records[0] = records[0][1:]
	if len(records[0]) < 5 || len(records[1]) < 4 || len(records[2]) < 4 {
		return fmt.Errorf("linescore is malformed")
	}

	// the Team, R, H, E columns aren't innings
	e.info.Set(0, "Innings", frame.Int(len(records[0])-4))

	awayScore, err := strconv.Atoi(records[1][len(records[1])-3])
	if err != nil {
		return fmt.Errorf("invalid away score: %w", err)
	}
	homeScore, err := strconv.Atoi(records[2][len(records[2])-3])
	if err != nil {
		return fmt.Errorf("invalid home score: %w", err)
	}
	e.awayScore, e.homeScore = awayScore, homeScore
	e.awayTeam, e.homeTeam = records[1][0], records[2][0]
	e.info.Set(0, "Away Score", frame.Int(awayScore))
	e.info.Set(0, "Home Score", frame.Int(homeScore))
	e.info.Set(0, "Away Team", frame.Text(e.awayTeam))
	e.info.Set(0, "Home Team", frame.Text(e.homeTeam))

	changedWinner := forfeitedGameWinners[e.id]
	switch {
	case e.homeScore > e.awayScore || changedWinner == e.homeTeam:
		e.winningTeam = e.homeTeam
		e.info.Set(0, "Winning Team", frame.Text(e.homeTeam))
		e.info.Set(0, "Losing Team", frame.Text(e.awayTeam))
	case e.awayScore > e.homeScore || changedWinner == e.awayTeam:
		e.winningTeam = e.awayTeam
		e.info.Set(0, "Winning Team", frame.Text(e.awayTeam))
		e.info.Set(0, "Losing Team", frame.Text(e.homeTeam))
	default:
		e.tie = true
		e.info.Set(0, "Winning Team", frame.Null())
		e.info.Set(0, "Losing Team", frame.Null())
	}

	records[0][0] = "Team"
	for _, record := range records[1:] {
		// the X in the bottom of the ninth, if applicable
		for i, cell := range record {
			if cell == "X" {
				record[i] = ""
			}
		}
	}
	ls, err := frame.FromRecords(records[0], records[1:3], nil)
	if err != nil {
		return fmt.Errorf("linescore: %w", err)
	}
	ls.ConvertNumeric()
	e.linescore = ls

	if e.isASG {
		return nil
	}
	// record the teams by using the links to their pages
	var teams []TeamRef
	linescore.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.HasPrefix(href, "/teams/") {
			return
		}
		part, err := textutil.Between(href, "/teams/", ".", textutil.AnchorStart)
		if err != nil {
			return
		}
		abv, year, ok := strings.Cut(part, "/")
		if !ok {
			return
		}
		teams = append(teams, TeamRef{Abv: abv, Year: year})
	})
	if len(teams) != 2 {
		return fmt.Errorf("expected 2 team links in linescore, found %d", len(teams))
	}
	e.awayTeamID, e.homeTeamID = teams[0].ID(), teams[1].ID()
	e.teams = append(e.teams, teams...)
	return nil
}

func (e *gameExtractor) scrapeScorebox(scorebox *goquery.Selection) error {
	elements := scorebox.ChildrenFiltered("div")
	if elements.Length() < 3 {
		return fmt.Errorf("scorebox is malformed")
	}
	gameInfo := elements.Eq(2)

	for i := 0; i < 2; i++ {
		team := elements.Eq(i)
		altText, _ := team.Find("img").First().Attr("alt")
		if e.isASG {
			altText = strings.ReplaceAll(altText, ".", "")
		}
		isHome := strings.Contains(altText, e.homeTeam)
		row := 0
		if isHome {
			row = 1
		}

		if !e.isASG {
			record := ""
			team.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
				text := strings.TrimSpace(div.Text())
				if strings.Contains(text, "-") && !strings.Contains(text, "via") && !strings.Contains(text, "\n") {
					record = text
					return false
				}
				return true
			})
			e.teamInfo.Set(row, "Record", frame.Text(record))

			score, err := strconv.Atoi(strings.TrimSpace(team.Find("div.score").First().Text()))
			if err != nil {
				return fmt.Errorf("invalid scorebox score: %w", err)
			}
			want := e.awayScore
			if isHome {
				want = e.homeScore
			}
			if score != want {
				return fmt.Errorf("scorebox score %d does not match linescore %d", score, want)
			}
		}

		var prevNextErr error
		team.Find("div.prevnext a").Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			gameID, err := textutil.Between(href, "/", ".", textutil.AnchorEnd)
			if err != nil {
				prevNextErr = err
				return
			}
			switch strings.TrimSpace(a.Text()) {
			case "Prev Game":
				e.teamInfo.Set(row, "Previous Game ID", frame.Text(gameID))
			case "Next Game":
				e.teamInfo.Set(row, "Next Game ID", frame.Text(gameID))
			}
		})
		if prevNextErr != nil {
			return prevNextErr
		}
	}

	var lineErr error
	gameInfo.Find("div").Each(func(_ int, div *goquery.Selection) {
		line := div.Text()
		switch {
		case strings.Contains(line, "day, "):
			day, rest, _ := strings.Cut(line, ", ")
			e.info.Set(0, "Day of Week", frame.Text(day))
			e.info.Set(0, "Date", frame.Text(textutil.ReformatDate(rest)))
		case strings.Contains(line, "Start Time:"):
			start := textutil.BetweenOr(line, "Time: ", " Local", textutil.AnchorStart, "")
			if start != "" {
				e.info.Set(0, "Start Time", frame.Text(start))
			}
		case strings.Contains(line, "Attendance:"):
			raw := strings.ReplaceAll(strings.ReplaceAll(line, "Attendance: ", ""), ",", "")
			attendance, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				lineErr = fmt.Errorf("invalid attendance: %w", err)
				return
			}
			e.info.Set(0, "Attendance", frame.Int(attendance))
		case strings.Contains(line, "Venue:"):
			e.info.Set(0, "Venue", frame.Text(strings.TrimSpace(strings.ReplaceAll(line, "Venue: ", ""))))
		case strings.Contains(line, "Duration:"):
			duration := strings.ReplaceAll(line, "Game Duration: ", "")
			hours, minutes, ok := strings.Cut(strings.TrimSpace(duration), ":")
			if !ok {
				lineErr = fmt.Errorf("invalid duration %q", line)
				return
			}
			h, err1 := strconv.Atoi(hours)
			m, err2 := strconv.Atoi(minutes)
			if err1 != nil || err2 != nil {
				lineErr = fmt.Errorf("invalid duration %q", line)
				return
			}
			e.info.Set(0, "Duration", frame.Int(h*60+m))
		case strings.Contains(line, "Game, on"):
			_, surface, _ := strings.Cut(line, ", on ")
			e.info.Set(0, "Surface", frame.Text(capitalize(strings.TrimSpace(surface))))
		}
	})
	return lineErr
}

func (e *gameExtractor) gatherTeamInfo() {
	e.teamInfo.EnsureColumns("Team", "Team ID", "Score", "Result")
	e.teamInfo.Set(0, "Team", frame.Text(e.awayTeam))
	e.teamInfo.Set(1, "Team", frame.Text(e.homeTeam))
	e.setTeamID(e.teamInfo, 0, "Team ID", e.awayTeamID)
	e.setTeamID(e.teamInfo, 1, "Team ID", e.homeTeamID)
	e.teamInfo.Set(0, "Score", frame.Int(e.awayScore))
	e.teamInfo.Set(1, "Score", frame.Int(e.homeScore))

	switch {
	case !e.tie && e.winningTeam == e.homeTeam:
		e.teamInfo.Set(0, "Result", frame.Text("Loss"))
		e.teamInfo.Set(1, "Result", frame.Text("Win"))
	case !e.tie && e.winningTeam == e.awayTeam:
		e.teamInfo.Set(0, "Result", frame.Text("Win"))
		e.teamInfo.Set(1, "Result", frame.Text("Loss"))
	default:
		e.teamInfo.Set(0, "Result", frame.Text("Tie"))
		e.teamInfo.Set(1, "Result", frame.Text("Tie"))
	}
}

func (e *gameExtractor) scrapeOtherInfo(section *goquery.Selection) {
	section = unwrapSection(section)

	umpires, weatherInfo := "", ""
	section.Find("div").Each(func(i int, div *goquery.Selection) {
		if i == 0 {
			return
		}
		line := strings.Trim(div.Text(), " \n.")
		switch {
		case strings.Contains(line, "Umpires"):
			umpires = strings.ReplaceAll(line, "Umpires: ", "")
		case strings.Contains(line, "Field Condition"):
			e.info.Set(0, "Field Condition", frame.Text(strings.ReplaceAll(line, "Field Condition: ", "")))
		case strings.Contains(line, "Start Time Weather"):
			if len(line) > len("Start Time Weather: ") {
				weatherInfo = line[len("Start Time Weather: "):]
			}
		}
	})

	e.info.EnsureColumns("HP Ump", "1B Ump", "2B Ump", "3B Ump", "LF Ump", "RF Ump")
	for _, line := range strings.Split(umpires, ", ") {
		// "HP - Pat Hoberg"
		if len(line) < 6 {
			continue
		}
		spot, ump := line[0:2], line[5:]
		if ump == "(none)" {
			continue
		}
		e.info.Set(0, spot+" Ump", frame.Text(ump))
	}

	for _, info := range strings.Split(strings.Trim(weatherInfo, "."), ", ") {
		switch {
		case info == "" || strings.Contains(info, "Unknown"):
		case strings.Contains(info, "°"):
			temp, _, _ := strings.Cut(info, "°")
			e.info.Set(0, "Temperature", frame.Text(temp))
		case strings.Contains(info, "Dome"):
			e.info.Set(0, "Weather", frame.Text(info))
			e.info.Set(0, "Wind Speed", frame.Text("0"))
		case strings.Contains(info, "Wind"):
			speed := textutil.BetweenOr(info, "Wind ", "mph", textutil.AnchorStart, "")
			e.info.Set(0, "Wind Speed", frame.Text(speed))
			if speed != "0" {
				if _, direction, ok := strings.Cut(info, "mph "); ok {
					e.info.Set(0, "Wind Direction", frame.Text(direction))
				}
			}
		case info == "Sunny" || info == "Night" || info == "Overcast" || info == "Cloudy":
			e.info.Set(0, "Weather", frame.Text(info))
		case info == "No Precipitation" || info == "Rain" || info == "Drizzle" ||
			info == "Showers" || info == "Snow":
			e.info.Set(0, "Precipitation", frame.Text(info))
		default:
			e.s.opts.DevAlert("unexpected weather description", "game", e.id, "description", info)
		}
	}
}

func (e *gameExtractor) scrapeBatting(wrapper *goquery.Selection) (*frame.Frame, error) {
	tableID, _ := wrapper.Attr("id")
	section := unwrapSection(wrapper)
	table := section.Find("table").First()
	records := htmltable.Records(table)
	if len(records) < 2 {
		return nil, fmt.Errorf("batting table %q is empty", tableID)
	}

	f, err := frame.FromRecords(records[0], records[1:], nil)
	if err != nil {
		return nil, fmt.Errorf("batting table %q: %w", tableID, err)
	}
	f.Rename("Batting", "Player")

	// remove blank rows
	full := f
	f = f.Filter(func(r int) bool { return full.At(r, "Player").String() != "" })

	// separate batter name and position
	f.EnsureColumns("Position", "Player ID")
	for r := 0; r < f.Len(); r++ {
		player := f.At(r, "Player").String()
		if player == "Team Totals" {
			continue
		}
		name, pos, ok := cutLast(player, " ")
		// fix split-up player names where no position was present
		if ok && textutil.IsUpper(pos) {
			f.Set(r, "Player", frame.Text(name))
			f.Set(r, "Position", frame.Text(pos))
		}
	}

	// get player ids from the name links
	playerIDs := htmlutil.PlayerIDs(table)
	playerRows := f.FindRows(func(r int) bool { return f.At(r, "Player").String() != "Team Totals" })
	if len(playerIDs) != len(playerRows) {
		return nil, fmt.Errorf("batting table %q has %d player links for %d players", tableID, len(playerIDs), len(playerRows))
	}
	for i, r := range playerRows {
		f.Set(r, "Player ID", frame.Text(playerIDs[i]))
	}
	e.players = append(e.players, playerIDs...)

	// make sure all batters have only one row, combine their stats if
	// not (a player can be DH and pitch, or substitute illegally)
	if err := mergeDuplicateBatters(f); err != nil {
		return nil, fmt.Errorf("batting table %q: %w", tableID, err)
	}

	switch {
	case strings.Contains(tableID, textutil.Remove(e.homeTeam, " ", "-", ".")):
		e.setHomeTeam(f, true)
	case strings.Contains(tableID, textutil.Remove(e.awayTeam, " ", "-", ".")):
		e.setHomeTeam(f, false)
	default:
		return nil, fmt.Errorf("home and away teams cannot be found from batting tables")
	}

	e.scrapeBattingDetails(f)
	if err := e.scrapeBattingFooter(f, section); err != nil {
		return nil, fmt.Errorf("batting table %q: %w", tableID, err)
	}

	convertCWPA(f)
	return f, nil
}

// scrapeBattingDetails expands the Details column ("2·2B,HR,SF") into
// per-stat counters, crediting the team totals row as it goes.
func (e *gameExtractor) scrapeBattingDetails(f *frame.Frame) {
	for _, col := range []string{"2B", "3B", "HR", "SB", "CS", "SF", "SH", "HBP", "GDP", "IBB"} {
		f.SetAll(col, frame.Int(0))
	}
	if !f.HasColumn("Details") {
		return
	}
	totalsRow := f.Len() - 1
	for r := 0; r < f.Len(); r++ {
		for _, stat := range strings.Split(f.At(r, "Details").String(), ",") {
			if stat == "" {
				continue
			}
			count := 1
			if num, rest, ok := strings.Cut(stat, "·"); ok {
				n, err := strconv.Atoi(num)
				if err != nil {
					continue
				}
				count, stat = n, rest
			}
			// the rest of the site abbreviates intentional walks IBB
			if stat == "IW" {
				stat = "IBB"
			}
			f.Set(r, stat, frame.Int(count))
			f.AddNum(totalsRow, stat, float64(count))
		}
	}
	f.Drop("Details")
}

func (e *gameExtractor) scrapeBattingFooter(f *frame.Frame, section *goquery.Selection) error {
	playerStats := map[string]string{
		"TB":               "TB",
		"2-out RBI":        "2-Out RBI",
		"E":                "E",
		"Outfield Assists": "OFA",
		"PB":               "PB",
		"Passed Balls":     "PB",
	}
	teamStats := map[string]string{"Team LOB": "LOB", "With RISP": "RISP"}
	for _, col := range []string{"TB", "2-Out RBI", "E", "OFA", "PB", "DP", "TP"} {
		f.SetAll(col, frame.Int(0))
	}
	f.EnsureColumns("LOB", "RISP")

	totalsRows := f.FindRows(func(r int) bool { return f.At(r, "Player").String() == "Team Totals" })

	footer := section.Find("div.footer.no_hide_long").First()
	footer.Find("div").Each(func(i int, div *goquery.Selection) {
		if i == 0 {
			return
		}
		// skip the divs which contain the fielding and baserunning divs
		if strings.Contains(div.Text(), "\n") {
			return
		}
		line := strings.ReplaceAll(div.Text(), " ", " ")
		// can't Trim on "." because "Jr." ends with a period
		line = strings.TrimSuffix(line, ".")
		stat, players, ok := strings.Cut(line, ": ")
		if !ok {
			return
		}

		switch {
		case playerStats[stat] != "":
			statName := playerStats[stat]
			for _, player := range strings.Split(players, "; ") {
				player, _, _ = strings.Cut(player, " (")
				player, number := textutil.TrailingInt(player)
				// += because players can be listed twice
				for _, r := range f.FindRows(func(r int) bool { return f.At(r, "Player").String() == player }) {
					f.AddNum(r, statName, float64(number))
				}
				for _, r := range totalsRows {
					f.AddNum(r, statName, float64(number))
				}
			}

		case teamStats[stat] != "":
			for _, r := range totalsRows {
				f.Set(r, teamStats[stat], frame.Text(players))
			}

		case stat == "DP" || stat == "TP":
			total, playerList, ok := strings.Cut(players, ". ")
			if !ok {
				return
			}
			if n, err := strconv.Atoi(total); err == nil {
				for _, r := range totalsRows {
					f.Set(r, stat, frame.Int(n))
				}
			}
			for _, group := range strings.Split(playerList, "; ") {
				group, number := textutil.TrailingInt(group)
				for _, player := range dedup(strings.Split(group, "-")) {
					for _, r := range f.FindRows(func(r int) bool { return f.At(r, "Player").String() == player }) {
						f.AddNum(r, stat, float64(number))
					}
				}
			}
		}
	})
	return nil
}

func mergeDuplicateBatters(f *frame.Frame) error {
	counts := map[string][]int{}
	for r := 0; r < f.Len(); r++ {
		id := f.At(r, "Player ID").String()
		if id == "" {
			continue
		}
		counts[id] = append(counts[id], r)
	}

	var dropRows []int
	for id, rows := range counts {
		if len(rows) == 1 {
			continue
		}
		if len(rows) > 2 {
			return fmt.Errorf("player %s has %d batting rows", id, len(rows))
		}
		keep, drop := rows[0], rows[1]

		// stats are split across only certain columns, the rest are
		// copied
		for _, col := range []string{"AB", "R", "H", "RBI", "BB", "SO", "PO", "A"} {
			sum := f.At(keep, col).Int() + f.At(drop, col).Int()
			f.Set(keep, col, frame.Text(strconv.Itoa(sum)))
		}

		keepPos, dropPos := f.At(keep, "Position").String(), f.At(drop, "Position").String()
		if keepPos != dropPos {
			f.Set(keep, "Position", frame.Text(keepPos+"-"+dropPos))
		}
		dropRows = append(dropRows, drop)
	}

	sort.Ints(dropRows)
	for i := len(dropRows) - 1; i >= 0; i-- {
		f.DropRow(dropRows[i])
	}
	return nil
}

func (e *gameExtractor) setHomeTeam(f *frame.Frame, teamIsHome bool) {
	team, opponent := e.awayTeam, e.homeTeam
	teamID, opponentID := e.awayTeamID, e.homeTeamID
	teamScore := e.awayScore
	side := "Away"
	if teamIsHome {
		team, opponent = e.homeTeam, e.awayTeam
		teamID, opponentID = e.homeTeamID, e.awayTeamID
		teamScore = e.homeScore
		side = "Home"
	}

	f.SetAll("Home/Away", frame.Text(side))
	f.SetAll("Team Score", frame.Int(teamScore))
	f.SetAll("Team", frame.Text(team))
	f.SetAll("Opponent", frame.Text(opponent))
	f.EnsureColumns("Team ID", "Opponent Team ID")
	if teamID != "" {
		f.SetAll("Team ID", frame.Text(teamID))
	}
	if opponentID != "" {
		f.SetAll("Opponent Team ID", frame.Text(opponentID))
	}

	switch {
	case e.tie:
		f.SetAll("Result for Team", frame.Text("Tie"))
	case e.winningTeam == team:
		f.SetAll("Result for Team", frame.Text("Win"))
	case e.winningTeam == opponent:
		f.SetAll("Result for Team", frame.Text("Loss"))
	}
}

func (e *gameExtractor) scrapePitching(section *goquery.Selection) error {
	section = unwrapSection(section)

	var wrapErr error
	section.Find("div.table_wrapper").Each(func(_ int, wrapper *goquery.Selection) {
		if wrapErr != nil {
			return
		}
		if err := e.scrapePitchingTable(wrapper); err != nil {
			wrapErr = err
		}
	})
	if wrapErr != nil {
		return wrapErr
	}
	if e.pitching.Len() == 0 {
		return fmt.Errorf("no pitching tables found")
	}

	if err := e.scrapePitchingEvents(section); err != nil {
		return err
	}
	convertCWPA(e.pitching)
	return nil
}

func (e *gameExtractor) scrapePitchingTable(wrapper *goquery.Selection) error {
	tableID, _ := wrapper.Attr("id")
	table := htmltable.Unwrap(wrapper, true)
	records := htmltable.Records(table)
	if len(records) < 2 {
		return fmt.Errorf("pitching table %q is empty", tableID)
	}

	f, err := frame.FromRecords(records[0], records[1:], nil)
	if err != nil {
		return fmt.Errorf("pitching table %q: %w", tableID, err)
	}
	f.Rename("Pitching", "Player")

	playerIDs := htmlutil.PlayerIDs(table)
	playerRows := f.FindRows(func(r int) bool { return f.At(r, "Player").String() != "Team Totals" })
	if len(playerIDs) != len(playerRows) {
		return fmt.Errorf("pitching table %q has %d player links for %d players", tableID, len(playerIDs), len(playerRows))
	}
	f.EnsureColumns("Player ID")
	for i, r := range playerRows {
		f.Set(r, "Player ID", frame.Text(playerIDs[i]))
	}
	e.players = append(e.players, playerIDs...)

	switch {
	case strings.Contains(tableID, textutil.Remove(e.homeTeam, " ", "-", ".")):
		e.setHomeTeam(f, true)
	case strings.Contains(tableID, textutil.Remove(e.awayTeam, " ", "-", ".")):
		e.setHomeTeam(f, false)
	default:
		return fmt.Errorf("home and away teams cannot be found from pitching tables")
	}

	// an infinite season ERA would make the column non-numeric
	if f.HasColumn("ERA") {
		f.Apply("ERA", func(v frame.Value) frame.Value {
			if v.String() == "inf" {
				return frame.Null()
			}
			return v
		})
	}
	convertInnings(f, "IP")

	f.EnsureColumns("Position")
	f.SetWhere("Position", frame.Text("RP"), func(r int) bool {
		return f.At(r, "Player").String() != "Team Totals"
	})
	// the first pitcher to appear for the team
	f.Set(0, "Position", frame.Text("SP"))

	n := f.Len()
	for _, col := range []string{"GS", "GF", "CG", "SHO"} {
		f.SetAll(col, frame.Int(0))
	}
	f.Set(0, "GS", frame.Int(1))
	f.Set(n-1, "GS", frame.Int(1))
	if n >= 2 {
		f.Set(n-2, "GF", frame.Int(1))
	}
	f.Set(n-1, "GF", frame.Int(1))
	if n == 2 {
		// only the starter and team totals: a complete game
		f.SetAll("CG", frame.Int(1))
		if f.At(0, "R").String() == "0" {
			f.SetAll("SHO", frame.Int(1))
		}
	}

	// the decision suffix on the pitcher name, e.g. "W (3-1), H (5)"
	for _, col := range []string{"W", "L", "SV", "BS", "Holds"} {
		f.SetAll(col, frame.Int(0))
	}
	for r := 0; r < n; r++ {
		player, details, ok := strings.Cut(f.At(r, "Player").String(), ", ")
		if !ok {
			continue
		}
		f.Set(r, "Player", frame.Text(player))
		for _, d := range strings.Split(details, ", ") {
			stat, _, _ := strings.Cut(d, " ")
			switch stat {
			// "H" is also the name of the hits allowed column
			case "H":
				stat = "Holds"
			// the rest of the site abbreviates saves SV
			case "S":
				stat = "SV"
			case "W", "L", "BS":
			default:
				continue
			}
			f.Set(r, stat, frame.Int(1))
			f.AddNum(n-1, stat, 1)
		}
	}

	e.pitching = frame.Concat(e.pitching, f)
	return nil
}

func (e *gameExtractor) scrapePitchingEvents(section *goquery.Selection) error {
	stats := map[string]string{
		"Balks":        "Balks",
		"WP":           "WP",
		"Wild Pitches": "WP",
		"HBP":          "HBP",
		"IBB":          "IBB",
	}
	p := e.pitching
	for _, col := range []string{"Balks", "WP", "HBP", "IBB"} {
		p.SetAll(col, frame.Int(0))
	}

	events := section.Find("div.indiv_events").First()
	var eventErr error
	events.Find("div").Each(func(i int, div *goquery.Selection) {
		if i == 0 || eventErr != nil {
			return
		}
		line := strings.Trim(div.Text(), "\n .")
		stat, value, ok := strings.Cut(line, ": ")
		if !ok {
			return
		}
		statName := stats[stat]
		if statName == "" || value == "None" {
			return
		}

		for _, player := range strings.Split(value, "); ") {
			player, _, _ = strings.Cut(player, " (")
			player = strings.ReplaceAll(player, " ", " ")
			player, number := textutil.TrailingInt(player)

			playerRows := p.FindRows(func(r int) bool { return p.At(r, "Player").String() == player })
			if len(playerRows) == 0 {
				eventErr = fmt.Errorf("pitcher %q from events is not in the pitching tables", player)
				return
			}
			teamName := p.At(playerRows[0], "Team")
			for _, r := range playerRows {
				p.Set(r, statName, frame.Int(number))
			}
			for _, r := range p.FindRows(func(r int) bool {
				return p.At(r, "Player").String() == "Team Totals" && p.At(r, "Team").Equal(teamName)
			}) {
				p.AddNum(r, statName, float64(number))
			}
		}
	})
	return eventErr
}

// deriveFielding copies the defensive columns of the batting table
// into the fielding table, then drops non-fielders from fielding and
// non-batters from batting.
func (e *gameExtractor) deriveFielding() {
	cols := append([]string{"Player", "Player ID", "Position"}, battingFieldingCols...)
	cols = append(cols, "SB", "CS",
		"Team", "Team ID", "Opponent", "Opponent Team ID",
		"Team Score", "Result for Team", "Home/Away", "Game ID")
	fielding := e.batting.Select(cols...)

	// filter out batters who did not appear in the field
	fielding = fielding.Filter(func(r int) bool {
		positions := strings.Split(fielding.At(r, "Position").String(), "-")
		for _, pos := range positions {
			switch pos {
			case "", "DH", "PH", "PR":
			default:
				return true
			}
		}
		return false
	})

	// some old games have an asterisk in PO team total rows
	fielding.Apply("PO", func(v frame.Value) frame.Value {
		if v.String() == "*" {
			return frame.Null()
		}
		return v
	})
	e.fielding = fielding

	// remove pitchers who did not hit
	batting := e.batting
	e.batting = batting.Filter(func(r int) bool { return !batting.At(r, "AB").IsNull() })
}

func (e *gameExtractor) scrapeStolenBases(battingWrappers []*goquery.Selection) error {
	for _, col := range []string{
		"2B SB", "3B SB", "HP SB", "2B CS", "3B CS", "HP CS",
		"Pick", "1B Pick", "2B Pick", "3B Pick",
	} {
		e.batting.SetAll(col, frame.Int(0))
	}
	for _, col := range []string{
		"SB", "2B SB", "3B SB", "HP SB", "CS", "2B CS", "3B CS", "HP CS",
		"Pick", "1B Pick", "2B Pick", "3B Pick",
	} {
		e.fielding.SetAll(col, frame.Int(0))
	}

	sbIDs := map[string]bool{
		"SBhome": true, "SBvisitor": true,
		"CShome": true, "CSvisitor": true,
		"Pickoffshome": true, "Pickoffsvisitor": true,
	}

	for _, wrapper := range battingWrappers {
		section := unwrapSection(wrapper)
		footer := section.Find("div.footer.no_hide_long").First()

		var lineErr error
		footer.Find("div").Each(func(_ int, div *goquery.Selection) {
			id, _ := div.Attr("id")
			if !sbIDs[id] || lineErr != nil {
				return
			}
			if err := e.scrapeStolenBaseLine(div.Text()); err != nil {
				lineErr = err
			}
		})
		if lineErr != nil {
			return lineErr
		}
	}
	return nil
}

func (e *gameExtractor) scrapeStolenBaseLine(line string) error {
	line = strings.Trim(strings.TrimSpace(line), ".")
	stat, players, ok := strings.Cut(line, ": ")
	if !ok {
		return nil
	}
	if stat == "Pickoffs" {
		stat = "Pick"
	}

	for _, player := range strings.Split(players, "; ") {
		stealer, info, ok := strings.Cut(strings.TrimSuffix(player, ")"), " (")
		if !ok || info == "" {
			// no info for many old games
			continue
		}
		// remove the player's game total, if applicable
		stealer, _ = cutTrailingDigits(stealer)

		for _, attempt := range strings.Split(info, ", ") {
			// skip the running season total, sometimes empty in older
			// box scores
			if attempt == "" || isDigits(attempt) {
				continue
			}
			if err := e.recordStolenBaseAttempt(stat, stealer, attempt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *gameExtractor) recordStolenBaseAttempt(stat, stealer, attempt string) error {
	match := sbAttemptRegex.FindStringSubmatch(attempt)
	isAttempt := match != nil
	if match == nil {
		match = pickoffRegex.FindStringSubmatch(attempt)
	}
	if match == nil {
		return fmt.Errorf("unparseable stolen base attempt %q", attempt)
	}

	base, ok := baseConversions[match[1]]
	if !ok {
		return fmt.Errorf("unknown base in stolen base attempt %q", attempt)
	}
	// the pitcher may be the catcher on some POCS, which still
	// credits correctly
	pitcher := strings.TrimSpace(strings.ReplaceAll(match[2], "POCS", ""))
	times := 1
	if raw := match[len(match)-1]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("unparseable stolen base attempt %q", attempt)
		}
		times = n
	}

	fd := e.fielding
	defenders := map[string]bool{pitcher: true}
	if isAttempt {
		defenders[strings.TrimSpace(match[3])] = true
	}
	defenderRows := fd.FindRows(func(r int) bool { return defenders[fd.At(r, "Player").String()] })
	if len(defenderRows) == 0 {
		return fmt.Errorf("defenders of stolen base attempt %q are not in the fielding table", attempt)
	}
	defenseTeam := fd.At(defenderRows[0], "Team")

	for _, r := range fd.FindRows(func(r int) bool {
		if defenders[fd.At(r, "Player").String()] {
			return true
		}
		return fd.At(r, "Player").String() == "Team Totals" && fd.At(r, "Team").Equal(defenseTeam)
	}) {
		fd.AddNum(r, stat, float64(times))
		fd.AddNum(r, base+" "+stat, float64(times))
	}

	bt := e.batting
	for _, r := range bt.FindRows(func(r int) bool {
		if bt.At(r, "Player").String() == stealer {
			return true
		}
		return bt.At(r, "Player").String() == "Team Totals" && !bt.At(r, "Team").Equal(defenseTeam)
	}) {
		// SB and CS are already tallied from the stat tables
		if stat == "Pick" {
			bt.AddNum(r, "Pick", float64(times))
		}
		bt.AddNum(r, base+" "+stat, float64(times))
	}
	return nil
}

// gatherUmpInfo reshapes the umpire columns of info into one row per
// filled position.
func (e *gameExtractor) gatherUmpInfo() {
	e.umpInfo = frame.New("Game ID", "Position", "Umpire")
	for _, col := range []string{"HP Ump", "1B Ump", "2B Ump", "3B Ump", "LF Ump", "RF Ump"} {
		v := e.info.At(0, col)
		if v.IsNull() {
			continue
		}
		e.umpInfo.AppendMap(map[string]frame.Value{
			"Game ID":  frame.Text(e.id),
			"Position": frame.Text(strings.TrimSuffix(col, " Ump")),
			"Umpire":   v,
		})
	}
}

// unwrapSection returns a selection containing the section's table and
// footer, re-parsing the markup when the section body is deferred
// inside an HTML comment.
func unwrapSection(sel *goquery.Selection) *goquery.Selection {
	if sel.Find("table").Length() > 0 {
		return sel
	}
	for _, doc := range htmlutil.UnwrapComments(sel) {
		if doc.Find("table").Length() > 0 {
			return doc.Selection
		}
	}
	return sel
}

// convertCWPA converts the cWPA column from a percentage string to a
// share, rounded to four places.
func convertCWPA(f *frame.Frame) {
	if !f.HasColumn("cWPA") {
		return
	}
	f.Apply("cWPA", func(v frame.Value) frame.Value {
		raw := strings.TrimSuffix(v.String(), "%")
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return frame.Null()
		}
		return frame.Num(float64(int(n/100*10000+0.5*sign(n))) / 10000)
	})
}

// convertInnings rewrites a thirds-notation innings column ("6.1" is
// six and one third) into a true decimal count. Cells that do not
// parse pass through untouched.
func convertInnings(f *frame.Frame, col string) {
	if f == nil || !f.HasColumn(col) {
		return
	}
	f.Apply(col, func(v frame.Value) frame.Value {
		if v.IsNull() {
			return v
		}
		n, err := textutil.InningsPitched(v.String())
		if err != nil {
			return v
		}
		return frame.Num(n)
	})
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

func cutTrailingDigits(s string) (string, bool) {
	if s == "" || !isDigits(s[len(s)-1:]) {
		return s, false
	}
	if before, _, ok := cutLast(s, " "); ok {
		return before, true
	}
	return s, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func dedup(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
