package bref

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"

	"brstats/lib/frame"
	"brstats/lib/htmltable"
	"brstats/lib/htmlutil"
	"brstats/lib/textutil"
)

// Team is one extracted team season page.
type Team struct {
	Name string
	ID   string

	Info     *frame.Frame
	Batting  *frame.Frame
	Pitching *frame.Frame
	Fielding *frame.Frame

	// Players lists the ids of everyone who appeared for the team, in
	// page order.
	Players []string
}

func teamPagePath(ref TeamRef) string {
	return fmt.Sprintf("/teams/%s/%s.shtml", ref.Abv, ref.Year)
}

// Team fetches and extracts one team season page. The abbreviation is
// taken as is: no era adjustment and no alias conversion.
func (s *Scraper) Team(ctx context.Context, ref TeamRef) (*Team, error) {
	ctx, span := tracer.Start(ctx, "scraper:Team")
	defer span.End()

	refs := s.ValidateTeams([]TeamRef{ref})
	if len(refs) == 0 {
		err := fmt.Errorf("invalid team %s %s", ref.Abv, ref.Year)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid team")
		return nil, err
	}
	if s.client == nil {
		return nil, fmt.Errorf("scraper has no client")
	}

	doc, err := s.client.GetPage(ctx, teamPagePath(refs[0]))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch team page")
		return nil, err
	}
	return s.ExtractTeam(ctx, doc)
}

// ExtractTeam extracts a team from an already fetched page.
func (s *Scraper) ExtractTeam(ctx context.Context, doc *Document) (*Team, error) {
	_, span := tracer.Start(ctx, "scraper:ExtractTeam")
	defer span.End()

	if !teamPathRegex.MatchString(doc.Path) {
		err := fmt.Errorf("page %q does not contain a team", doc.Path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "not a team page")
		return nil, err
	}
	id, err := textutil.Between(doc.Path, "teams/", ".shtml", textutil.AnchorStart)
	if err != nil {
		return nil, err
	}
	id = strings.ReplaceAll(id, "/", "")

	root, err := doc.Parse()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page")
		return nil, err
	}

	e := &teamExtractor{s: s, id: id}
	if err := e.scrape(root); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract team")
		return nil, fmt.Errorf("team %s: %w", id, err)
	}

	t := &Team{
		Name:     e.name,
		ID:       e.id,
		Info:     e.info,
		Batting:  e.batting.Reindex(teamBattingCols),
		Pitching: e.pitching.Reindex(teamPitchingCols),
		Fielding: e.fielding.Reindex(teamFieldingCols),
		Players:  dedup(e.players),
	}

	settings := s.opts.Current()
	if settings.AddNoHitters {
		s.AddTeamNoHitters(t)
	}
	if settings.UpdateTeamNames {
		s.UpdateTeamTeamNames(t)
	}
	if settings.UpdateVenueNames {
		s.UpdateTeamVenueNames(t)
	}
	s.opts.PrintPage("extracted team", "name", t.Name)
	return t, nil
}

// AddTeamNoHitters fills the pitching table's NH, PG, and CNH columns
// from the no-hitter registry. A combined no-hitter counts once per
// pitcher on the player rows but once per game on the totals row.
func (s *Scraper) AddTeamNoHitters(t *Team) {
	if s.nh == nil || !s.nh.Populated() {
		return
	}
	pt := t.Pitching
	for _, col := range []string{"NH", "PG", "CNH"} {
		pt.SetAll(col, frame.Int(0))
	}

	credit := func(col, playerID, gameType string) {
		for _, r := range pt.FindRows(func(r int) bool {
			if !strings.HasPrefix(pt.At(r, "Game Type").String(), gameType) {
				return false
			}
			return pt.At(r, "Player ID").String() == playerID ||
				pt.At(r, "Player").String() == "Team Totals"
		}) {
			pt.AddNum(r, col, 1)
		}
	}
	for _, entry := range s.nh.TeamINH[t.ID] {
		credit("NH", entry.PlayerID, entry.GameType)
	}
	for _, entry := range s.nh.TeamPG[t.ID] {
		credit("PG", entry.PlayerID, entry.GameType)
	}

	var gamesLogged []string
	for _, entry := range s.nh.TeamCNH[t.ID] {
		for _, r := range pt.FindRows(func(r int) bool {
			return pt.At(r, "Player ID").String() == entry.PlayerID &&
				strings.HasPrefix(pt.At(r, "Game Type").String(), entry.GameType)
		}) {
			pt.AddNum(r, "CNH", 1)
		}
		// no team without box scores had multiple combined no-hitters,
		// so an empty game id always counts
		logged := false
		for _, id := range gamesLogged {
			if id == entry.GameID {
				logged = true
			}
		}
		if !logged || entry.GameID == "" {
			for _, r := range pt.FindRows(func(r int) bool {
				return pt.At(r, "Player").String() == "Team Totals" &&
					strings.HasPrefix(pt.At(r, "Game Type").String(), entry.GameType)
			}) {
				pt.AddNum(r, "CNH", 1)
			}
			gamesLogged = append(gamesLogged, entry.GameID)
		}
	}
}

// UpdateTeamTeamNames standardizes the team name across the tables and
// refreshes Name from the result.
func (s *Scraper) UpdateTeamTeamNames(t *Team) {
	rules := teamRenameRules(yearOfTeamID(t.ID))
	for _, f := range []*frame.Frame{t.Info, t.Batting, t.Pitching, t.Fielding} {
		replaceExact(f, rules, "Team")
	}
	if t.Info.Len() > 0 {
		t.Name = t.ID[len(t.ID)-4:] + " " + t.Info.At(0, "Team").String()
	}
}

// UpdateTeamVenueNames standardizes the venue name.
func (s *Scraper) UpdateTeamVenueNames(t *Team) {
	replaceVenues(t.Info)
}

type teamExtractor struct {
	s  *Scraper
	id string

	name     string
	teamName string
	season   string

	info     *frame.Frame
	batting  *frame.Frame
	pitching *frame.Frame
	fielding *frame.Frame
	players  []string
}

func (e *teamExtractor) scrape(root *goquery.Document) error {
	title := root.Find("title").First().Text()
	season, remainder, ok := strings.Cut(title, " ")
	if !ok {
		return fmt.Errorf("malformed page title %q", title)
	}
	teamName, _, _ := strings.Cut(remainder, " Statistics")
	e.season, e.teamName = season, teamName
	e.name = season + " " + teamName

	e.info = frame.New("Team", "Season", "Team ID")
	e.info.AppendMap(map[string]frame.Value{
		"Team":    frame.Text(teamName),
		"Season":  frame.Text(season),
		"Team ID": frame.Text(e.id),
	})
	e.batting = frame.New()
	e.pitching = frame.New()
	e.fielding = frame.New()

	info := root.Find("#info").First()
	if info.Length() == 0 {
		return fmt.Errorf("page has no info element")
	}
	e.scrapeInfo(info)

	content := root.Find("#content").First()
	contentText := content.Text()
	// spring training only teams and some early NL seasons have no
	// player tables
	if strings.Contains(contentText, "No stats are currently available for this team.") ||
		strings.Contains(contentText, "These stats are for the players to appear in spring training games") {
		return nil
	}

	var battingStd, battingVal, pitchingStd, pitchingVal *frame.Frame
	var err error

	content.ChildrenFiltered("div.table_wrapper").Each(func(_ int, wrapper *goquery.Selection) {
		if err != nil {
			return
		}
		id, _ := wrapper.Attr("id")
		switch id {
		case "all_players_standard_batting":
			battingStd, err = e.scrapeStandardTable(wrapper)
			if battingStd != nil {
				battingStd.Rename("WAR", "Batting bWAR")
			}
		case "all_players_value_batting":
			battingVal, err = e.scrapeValueTable(wrapper)
		case "all_players_standard_pitching":
			pitchingStd, err = e.scrapeStandardTable(wrapper)
			if pitchingStd != nil {
				pitchingStd.Rename("WAR", "Pitching bWAR")
				convertInnings(pitchingStd, "IP")
			}
		case "all_players_value_pitching":
			pitchingVal, err = e.scrapeValueTable(wrapper)
		case "all_players_standard_fielding":
			e.fielding, err = e.scrapeStandardTable(wrapper)
			convertInnings(e.fielding, "Inn")
		}
		if err != nil {
			err = fmt.Errorf("table %s: %w", id, err)
		}
	})
	if err != nil {
		return err
	}
	if battingStd == nil || pitchingStd == nil {
		return fmt.Errorf("page is missing standard stat tables")
	}

	battingStd.Join(battingVal)
	e.batting = battingStd
	pitchingStd.Join(pitchingVal)
	e.pitching = pitchingStd

	for _, f := range []*frame.Frame{e.batting, e.pitching, e.fielding} {
		f.SetAll("Season", frame.Text(e.season))
		f.SetAll("Team", frame.Text(e.teamName))
		f.SetAll("Team ID", frame.Text(e.id))
		f.ConvertNumeric()
	}
	return nil
}

func (e *teamExtractor) scrapeInfo(info *goquery.Selection) {
	info.Find("p").Each(func(_ int, p *goquery.Selection) {
		line := strings.ReplaceAll(p.Text(), "\n", "")
		line = strings.ReplaceAll(line, "\t", " ")
		line = strings.ReplaceAll(line, " ", " ")

		// nested p tags make substring checks overlap, so most
		// branches match on the prefix
		prefix, _, _ := strings.Cut(line, ":")
		switch {
		case strings.Contains(line, "Record"):
			e.scrapeRecord(line)
		case strings.Contains(line, "Postseason"):
			result := strings.TrimSpace(textutil.BetweenOr(line, "Postseason:", "(", textutil.AnchorStart, ""))
			e.info.Set(0, "Postseason Finish", frame.Text(textutil.CleanSpaces(result)))
		case strings.HasPrefix(line, "Manager"):
			_, managers, _ := strings.Cut(line, ":")
			managers = strings.ReplaceAll(textutil.CleanSpaces(managers), " , ", ", ")
			e.info.Set(0, "Managers", frame.Text(managers))
		case prefix == "President" || prefix == "General Manager" ||
			prefix == "Farm Director" || prefix == "Scouting Director" || prefix == "Ballpark":
			_, value, _ := strings.Cut(line, ":")
			col := prefix
			if col == "Ballpark" {
				col = "Venue"
			}
			e.info.Set(0, col, frame.Text(textutil.CleanSpaces(value)))
		case strings.HasPrefix(line, "Attendance"):
			att := strings.TrimSpace(textutil.BetweenOr(line, "Attendance:", "(", textutil.AnchorStart, ""))
			e.info.Set(0, "Attendance", frame.Text(att))
			e.info.Set(0, "Attendance Rank", frame.Text(textutil.BetweenOr(line, "(", ")", textutil.AnchorStart, "")))
		case strings.HasPrefix(line, "Park Factors"):
			e.scrapeParkFactors(line)
		case strings.HasPrefix(line, "Pythagorean"):
			record := textutil.BetweenOr(line, "Pythagorean W-L: ", ", ", textutil.AnchorStart, "")
			if wins, losses, ok := strings.Cut(record, "-"); ok {
				e.info.Set(0, "Pythagorean Wins", frame.Text(wins))
				e.info.Set(0, "Pythagorean Losses", frame.Text(losses))
			}
		}
	})

	e.scrapeTeamBling(info.Find("#bling").First())

	e.info = e.info.Reindex(teamInfoCols)
	e.info.ConvertNumeric()
}

func (e *teamExtractor) scrapeRecord(line string) {
	record := strings.TrimSpace(textutil.BetweenOr(line, "Record:", ",", textutil.AnchorStart, ""))
	parts := strings.Split(record, "-")
	if len(parts) >= 2 {
		e.info.Set(0, "Wins", frame.Text(parts[0]))
		e.info.Set(0, "Losses", frame.Text(parts[1]))
		if len(parts) > 2 {
			e.info.Set(0, "Ties", frame.Text(parts[2]))
		} else {
			e.info.Set(0, "Ties", frame.Int(0))
		}
	}

	// "Finished" only appears once the season is complete
	var finish string
	if strings.Contains(line, "Finished") {
		finish = textutil.BetweenOr(line, "Finished", "in", textutil.AnchorStart, "")
	} else {
		finish = textutil.BetweenOr(line, ",", "place", textutil.AnchorStart, "")
		if fields := strings.Fields(finish); len(fields) > 0 {
			finish = fields[0]
		}
	}
	finish = strings.Trim(strings.TrimSpace(finish), "stndrh")
	if finish != "" {
		e.info.Set(0, "Division Finish", frame.Text(finish))
	}

	var division string
	if strings.Contains(line, "(Schedule") {
		division = textutil.BetweenOr(line, " in ", "(Schedule", textutil.AnchorStart, "")
	} else if _, after, ok := cutLast(line, " in "); ok {
		division = after
	}
	division = strings.ReplaceAll(strings.TrimSpace(division), "_", " ")
	if division != "" {
		e.info.Set(0, "Division", frame.Text(division))
	}
}

func (e *teamExtractor) scrapeParkFactors(line string) {
	// when park factors are the last info item the section footer can
	// leak into the line
	line = strings.ReplaceAll(line, "More team info, park factors, postseason, & more", "")

	var multiYear, oneYear string
	if strings.Contains(line, "Multi-year:") {
		if strings.Contains(line, "One-year") {
			multiYear = textutil.BetweenOr(line, "Multi-year:", "One-year:", textutil.AnchorStart, "")
			_, oneYear, _ = strings.Cut(line, "One-year:")
		} else {
			_, multiYear, _ = strings.Cut(line, "Multi-year:")
		}
	} else {
		_, oneYear, _ = strings.Cut(line, "One-year:")
	}

	parse := func(section string) (bat, pit string) {
		bat, pit, ok := strings.Cut(strings.TrimSpace(section), ", ")
		if !ok {
			return "", ""
		}
		_, bat, _ = strings.Cut(bat, " - ")
		_, pit, _ = strings.Cut(pit, " - ")
		return bat, pit
	}
	myBat, myPit, oyBat, oyPit := "", "", "", ""
	if multiYear != "" {
		myBat, myPit = parse(multiYear)
	}
	if oneYear != "" {
		oyBat, oyPit = parse(oneYear)
	}
	e.info.Set(0, "Multi-Year Batting Park Factor", frame.Text(myBat))
	e.info.Set(0, "Multi-Year Pitching Park Factor", frame.Text(myPit))
	e.info.Set(0, "One-Year Batting Park Factor", frame.Text(oyBat))
	e.info.Set(0, "One-Year Pitching Park Factor", frame.Text(oyPit))
}

func (e *teamExtractor) scrapeTeamBling(bling *goquery.Selection) {
	for _, col := range []string{"Team Gold Glove", "Pennant", "World Series"} {
		e.info.Set(0, col, frame.Int(0))
	}
	if bling.Length() == 0 {
		return
	}
	bling.Find("a").Each(func(_ int, a *goquery.Selection) {
		label := a.Text()
		switch {
		case label == "Team Gold Glove":
			e.info.Set(0, "Team Gold Glove", frame.Int(1))
		case label == "World Series Champions":
			e.info.Set(0, "World Series", frame.Int(1))
		case strings.HasSuffix(label, "Pennant"):
			e.info.Set(0, "Pennant", frame.Int(1))
		default:
			e.s.opts.DevAlert("unexpected bling element", "team", e.id, "element", label)
		}
	})
}

// scrapeStandardTable parses a standard batting, pitching, or fielding
// table. The regular season and postseason tabs render as two stacked
// tables in one element, recognized by a second header row after the
// totals rows.
func (e *teamExtractor) scrapeStandardTable(wrapper *goquery.Selection) (*frame.Frame, error) {
	table := htmltable.Unwrap(wrapper, true)
	rows := htmltable.Rows(table)

	var regRecords, postRecords [][]string
	endOfReg, foundPostseason := false, false
	for _, row := range rows {
		if len(row.Cells) < 2 {
			continue
		}
		if strings.Contains(row.Cells[1], "Totals") {
			endOfReg = true
		}
		if endOfReg && row.Cells[0] == "Rk" {
			foundPostseason = true
		}
		if foundPostseason {
			postRecords = append(postRecords, row.Cells)
		} else {
			regRecords = append(regRecords, row.Cells)
		}
	}
	if len(regRecords) < 2 {
		return nil, fmt.Errorf("standard table has no rows")
	}

	// the fielding table puts a category spanner row above the header
	if len(regRecords[0]) != len(regRecords[1]) {
		regRecords = regRecords[1:]
	}
	header := regRecords[0]
	regRecords = regRecords[1:]
	// the summary position column near the end keeps the Pos name
	if len(header) > 3 && header[3] == "Pos" {
		header[3] = "Position"
	}

	reg, err := frame.FromRecords(header, regRecords, nil)
	if err != nil {
		return nil, err
	}
	reg.SetAll("Game Type", frame.Text("Regular Season"))
	f := reg
	if foundPostseason && len(postRecords) > 1 {
		post, err := frame.FromRecords(postRecords[0], postRecords[1:], nil)
		if err != nil {
			return nil, err
		}
		post.SetAll("Game Type", frame.Text("Postseason"))
		f = frame.Concat(reg, post)
	}

	dropLabelRows(f)
	f.Apply("Player", func(v frame.Value) frame.Value {
		return frame.Text(strings.Trim(v.String(), "*#"))
	})
	for _, col := range []string{"Pos", "Position"} {
		if f.HasColumn(col) {
			f.Apply(col, func(v frame.Value) frame.Value {
				if v.String() == "" {
					return frame.Null()
				}
				return v
			})
		}
	}

	e.assignPlayerIDs(f, table)
	sortForJoin(f, true)
	processTeamAwardsColumn(f)
	return f, nil
}

// scrapeValueTable parses a value batting or pitching table and drops
// the columns the standard table already carries.
func (e *teamExtractor) scrapeValueTable(wrapper *goquery.Selection) (*frame.Frame, error) {
	table := htmltable.Unwrap(wrapper, true)
	records := htmltable.Records(table)
	if len(records) < 2 {
		return nil, fmt.Errorf("value table has no rows")
	}

	f, err := frame.FromRecords(records[0], records[1:], nil)
	if err != nil {
		return nil, err
	}
	dropLabelRows(f)

	e.assignPlayerIDs(f, table)
	sortForJoin(f, false)
	f.Drop("Rk", "Player", "Player ID", "Age", "PA", "IP", "G", "GS", "R", "WAR", "Pos", "Awards")
	return f, nil
}

func dropLabelRows(f *frame.Frame) {
	if !f.HasColumn("Rk") {
		return
	}
	kept := f.Filter(func(r int) bool {
		if f.At(r, "Rk").String() == "Rk" {
			return false
		}
		return !f.HasColumn("Player") || f.At(r, "Player").String() != "Standard"
	})
	*f = *kept
}

// assignPlayerIDs attaches ids parsed from the table's links to the
// ranked rows. Totals and rank rows have no rank and no link.
func (e *teamExtractor) assignPlayerIDs(f *frame.Frame, table *goquery.Selection) {
	ids := htmlutil.PlayerIDs(table)
	e.players = append(e.players, ids...)

	f.EnsureColumns("Player ID")
	next := 0
	for r := 0; r < f.Len(); r++ {
		if f.At(r, "Rk").String() == "" || next >= len(ids) {
			continue
		}
		f.Set(r, "Player ID", frame.Text(ids[next]))
		next++
	}
}

// sortForJoin orders rows so the standard and value tables line up for
// a positional join: regular season before postseason, players in
// descending id order, totals rows last.
func sortForJoin(f *frame.Frame, byGameType bool) {
	rank := func(r int) string {
		if byGameType {
			return f.At(r, "Game Type").String()
		}
		return ""
	}
	f.SortStable(func(i, j int) bool {
		if gi, gj := rank(i), rank(j); gi != gj {
			return gi > gj
		}
		pi, pj := f.At(i, "Player ID"), f.At(j, "Player ID")
		if pi.IsNull() != pj.IsNull() {
			return pj.IsNull()
		}
		return pi.String() > pj.String()
	})
}

// processTeamAwardsColumn expands the comma-joined Awards cell into
// honor counters and award voting finishes. Totals rows stay null.
func processTeamAwardsColumn(f *frame.Frame) {
	counters := []string{"AS", "GG", "SS", "LCS MVP", "WS MVP"}
	for _, col := range counters {
		f.SetAll(col, frame.Int(0))
	}
	f.EnsureColumns("MVP Finish", "CYA Finish", "ROY Finish")
	for _, col := range counters {
		f.SetWhere(col, frame.Null(), func(r int) bool { return f.At(r, "Player ID").IsNull() })
	}
	if !f.HasColumn("Awards") {
		return
	}

	for r := 0; r < f.Len(); r++ {
		id := f.At(r, "Player ID")
		if id.IsNull() {
			continue
		}
		playerRows := f.FindRows(func(i int) bool { return f.At(i, "Player ID").Equal(id) })
		for _, award := range strings.Split(f.At(r, "Awards").String(), ",") {
			switch award {
			case "AS", "GG", "SS", "WS MVP":
				for _, i := range playerRows {
					f.AddNum(i, award, 1)
				}
			case "ALCS MVP", "NLCS MVP":
				for _, i := range playerRows {
					f.Set(i, "LCS MVP", frame.Int(1))
				}
			default:
				for _, col := range []string{"MVP", "CYA", "ROY"} {
					if strings.Contains(award, col) && len(award) > 4 {
						if n, err := strconv.Atoi(award[4:]); err == nil {
							for _, i := range playerRows {
								f.Set(i, col+" Finish", frame.Int(n))
							}
						}
					}
				}
			}
		}
	}
}
