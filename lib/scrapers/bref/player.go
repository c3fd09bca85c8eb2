package bref

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"

	"brstats/lib/frame"
	"brstats/lib/htmltable"
	"brstats/lib/textutil"
)

// Player is one extracted player page. Info and Bling hold a single
// row; Batting, Pitching, and Fielding hold one row per season per
// team plus synthetic aggregate rows ("Career Totals" per team, league
// and overall, and a "162 Game Avg" row).
type Player struct {
	Name string
	ID   string

	Info     *frame.Frame
	Bling    *frame.Frame
	Batting  *frame.Frame
	Pitching *frame.Frame
	Fielding *frame.Frame

	// Relatives maps a relationship ("Son", "Brother") to the ids of
	// the related major leaguers.
	Relatives map[string][]string
	Teams     []TeamRef
}

func playerPath(id string) string {
	return fmt.Sprintf("/players/%s/%s.shtml", id[:1], id)
}

// Player fetches and extracts one player page.
func (s *Scraper) Player(ctx context.Context, playerID string) (*Player, error) {
	ctx, span := tracer.Start(ctx, "scraper:Player")
	defer span.End()

	ids := s.ValidatePlayers([]string{playerID})
	if len(ids) == 0 {
		err := fmt.Errorf("invalid player id %q", playerID)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid player id")
		return nil, err
	}
	if s.client == nil {
		return nil, fmt.Errorf("scraper has no client")
	}

	doc, err := s.client.GetPage(ctx, playerPath(ids[0]))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch player page")
		return nil, err
	}
	return s.ExtractPlayer(ctx, doc)
}

// ExtractPlayer extracts a player from an already fetched page.
func (s *Scraper) ExtractPlayer(ctx context.Context, doc *Document) (*Player, error) {
	_, span := tracer.Start(ctx, "scraper:ExtractPlayer")
	defer span.End()

	if !playerPathRegex.MatchString(doc.Path) {
		err := fmt.Errorf("page %q does not contain a player", doc.Path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "not a player page")
		return nil, err
	}
	id, err := textutil.Between(doc.Path, "/", ".shtml", textutil.AnchorEnd)
	if err != nil {
		return nil, err
	}

	root, err := doc.Parse()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse page")
		return nil, err
	}

	e := &playerExtractor{s: s, id: id, salaries: map[string]int{}, relatives: map[string][]string{}}
	if err := e.scrape(root); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract player")
		return nil, fmt.Errorf("player %s: %w", id, err)
	}

	p := &Player{
		Name:      e.name,
		ID:        e.id,
		Info:      e.info.Reindex(playerInfoCols),
		Bling:     e.bling.Reindex(playerBlingCols),
		Batting:   e.batting.Reindex(playerBattingCols),
		Pitching:  e.pitching.Reindex(playerPitchingCols),
		Fielding:  e.fielding.Reindex(playerFieldingCols),
		Relatives: e.relatives,
	}

	// the final pieces of info require the finished stat tables
	countYearsPlayed(p)
	p.Teams = s.findPlayerTeams(p)

	settings := s.opts.Current()
	if settings.AddNoHitters {
		s.AddPlayerNoHitters(p)
	}
	if settings.UpdateTeamNames {
		s.UpdatePlayerTeamNames(p)
	}
	s.opts.PrintPage("extracted player", "name", p.Name)
	return p, nil
}

// AddPlayerNoHitters fills the pitching table's NH, PG, and CNH
// columns from the no-hitter registry. The "162 Game Avg" row and
// cross-league aggregate rows stay null because they can't be
// meaningfully summed; everything stays null when the registry never
// populated.
func (s *Scraper) AddPlayerNoHitters(p *Player) {
	if s.nh == nil || !s.nh.Populated() {
		return
	}
	pt := p.Pitching
	if pt.Len() == 0 {
		return
	}

	computable := func(r int) bool {
		season := pt.At(r, "Season").String()
		if season == "162 Game Avg" {
			return false
		}
		return !(season == "Career Totals" && !pt.At(r, "League").IsNull())
	}
	for _, col := range []string{"NH", "PG", "CNH"} {
		pt.SetWhere(col, frame.Int(0), computable)
	}

	credit := func(col, year, team, gameType string) {
		// the team career totals row can be under any abbreviation
		// the franchise has used, not just the one the no-hitter was
		// recorded under
		y, _ := strconv.Atoi(year)
		allAbvs := map[string]bool{}
		for _, abv := range s.abvs.AllTeamAbvs(team, y) {
			allAbvs[abv] = true
		}
		for _, r := range pt.FindRows(func(r int) bool {
			if !computable(r) {
				return false
			}
			season := pt.At(r, "Season").String()
			rowTeam := pt.At(r, "Team").String()
			gt := pt.At(r, "Game Type").String()
			switch {
			case season == year && rowTeam == team && strings.HasPrefix(gt, gameType):
				return true
			case season == year && multiTeamRegex.MatchString(rowTeam):
				return true
			case season == "Career Totals" &&
				(pt.At(r, "Team").IsNull() || allAbvs[rowTeam]) &&
				pt.At(r, "League").IsNull() &&
				strings.HasPrefix(gt, gameType):
				return true
			}
			return false
		}) {
			pt.AddNum(r, col, 1)
		}
	}

	for _, entry := range s.nh.PlayerINH[p.ID] {
		credit("NH", entry.Year, entry.Team, entry.GameType)
	}
	for _, entry := range s.nh.PlayerPG[p.ID] {
		credit("PG", entry.Year, entry.Team, entry.GameType)
	}
	for _, entry := range s.nh.PlayerCNH[p.ID] {
		credit("CNH", entry.Year, entry.Team, entry.GameType)
	}
}

// UpdatePlayerTeamNames standardizes the draft team name.
func (s *Scraper) UpdatePlayerTeamNames(p *Player) {
	replaceExact(p.Info, teamRenameRules(0), "Draft Team")
}

type playerExtractor struct {
	s  *Scraper
	id string

	name      string
	info      *frame.Frame
	bling     *frame.Frame
	batting   *frame.Frame
	pitching  *frame.Frame
	fielding  *frame.Frame
	relatives map[string][]string
	salaries  map[string]int

	birth   time.Time
	birthOK bool
}

func (e *playerExtractor) scrape(root *goquery.Document) error {
	info := root.Find("#info").First()
	content := root.Find("#content").First()
	if info.Length() == 0 || content.Length() == 0 {
		return fmt.Errorf("page has no info or content element")
	}
	e.name = strings.TrimSpace(info.Find("h1").First().Text())

	e.info = oneRowFrame("Player ID", frame.Text(e.id))
	e.bling = oneRowFrame("Player ID", frame.Text(e.id))
	e.batting = frame.New()
	e.pitching = frame.New()
	e.fielding = frame.New()

	e.scrapeInfo(info, root.Find("#wrap").First())
	e.info.ConvertNumeric()

	var wrappers []*goquery.Selection
	content.ChildrenFiltered("div.table_wrapper").Each(func(_ int, sel *goquery.Selection) {
		wrappers = append(wrappers, sel)
	})

	// find salary data first so it can be folded into the stat tables
	for _, wrapper := range wrappers {
		if id, _ := wrapper.Attr("id"); id == "all_br-salaries" {
			e.findCareerEarnings(wrapper)
			total := 0
			for _, v := range e.salaries {
				total += v
			}
			e.info.Set(0, "Minimum Career Earnings", frame.Int(total))
		}
	}

	var battingStd, battingVal, battingAdv *frame.Frame
	var pitchingStd, pitchingVal, pitchingAdv *frame.Frame
	battingBuffer, pitchingBuffer := 0, 0
	var err error

	for _, wrapper := range wrappers {
		id, _ := wrapper.Attr("id")
		switch id {
		case "all_players_standard_batting":
			battingStd, battingBuffer, err = scrapeStandardBatting(wrapper)
		case "all_players_value_batting":
			battingVal, err = scrapeValueTable(wrapper)
		case "all_players_advanced_batting":
			battingAdv, err = scrapeAdvancedTable(wrapper, battingBuffer)
		case "all_players_standard_pitching":
			pitchingStd, pitchingBuffer, err = scrapeStandardPitching(wrapper)
		case "all_players_value_pitching":
			pitchingVal, err = scrapeValueTable(wrapper)
		case "all_players_advanced_pitching":
			pitchingAdv, err = scrapeAdvancedTable(wrapper, pitchingBuffer)
		case "all_players_standard_fielding":
			e.fielding, err = scrapeStandardFielding(wrapper)
		}
		if err != nil {
			return fmt.Errorf("table %s: %w", id, err)
		}
	}

	if battingStd != nil {
		battingStd.Join(battingVal)
		battingStd.Join(battingAdv)
		e.batting = battingStd
		e.finishStats(e.batting)
	}
	if pitchingStd != nil {
		pitchingStd.Join(pitchingVal)
		pitchingStd.Join(pitchingAdv)
		e.pitching = pitchingStd
		e.finishStats(e.pitching)
	}
	if e.fielding.Len() > 0 {
		e.finishStats(e.fielding)
	}
	return nil
}

func oneRowFrame(col string, v frame.Value) *frame.Frame {
	f := frame.New(col)
	f.AppendMap(map[string]frame.Value{col: v})
	return f
}

func (e *playerExtractor) scrapeInfo(info, wrap *goquery.Selection) {
	e.info.Set(0, "Player", frame.Text(e.name))
	e.scrapeBio(info.Find("div#meta").First())
	e.scrapeBling(info.Find("ul#bling").First())

	// career wins above replacement from the header summary; missing
	// when the player appeared in the postseason but never the regular
	// season
	war := strings.TrimSpace(wrap.Find("div.p1 p").First().Text())
	e.info.Set(0, "bWAR", frame.Text(war))
}

func (e *playerExtractor) scrapeBio(bio *goquery.Selection) {
	bio.Find("p").Each(func(_ int, p *goquery.Selection) {
		line := textutil.Remove(p.Text(), "\n", "•")
		line = strings.ReplaceAll(line, " ", " ")

		switch {
		case strings.HasPrefix(line, "Bats"):
			e.scrapeHandedness(line)
		case (strings.Contains(line, "kg)") || strings.Contains(line, "cm,") || strings.Contains(line, "cm)")) &&
			strings.Contains(line, "(") && strings.Contains(line, ")"):
			e.scrapeHeightWeight(line)
		case strings.HasPrefix(line, "Born"):
			e.scrapeBirth(line)
		case strings.HasPrefix(line, "Died"):
			e.scrapeDeath(line)
		case strings.HasPrefix(line, "Draft"):
			e.scrapeDraft(line)
		case strings.Contains(line, "School:"):
			schoolType, name, _ := strings.Cut(line, ": ")
			e.info.Set(0, schoolType+"s", frame.Text(`"`+name+`"`))
		case strings.Contains(line, "Schools"):
			e.scrapeSchools(line)
		case strings.HasPrefix(line, "Debut") && !strings.Contains(line, "AL/NL"):
			e.scrapeDebut(line, p)
		case strings.HasPrefix(line, "Last Game"):
			e.scrapeLastGame(line, p)
		case strings.HasPrefix(line, "Hall of Fame"):
			e.scrapeHallOfFame(line)
		case strings.HasPrefix(line, "Rookie Status") && !strings.Contains(line, "Still Intact"):
			season := textutil.BetweenOr(line, "Exceeded rookie limits during ", " season", textutil.AnchorStart, "")
			if season != "" {
				e.info.Set(0, "Exceeded Rookie Limits", frame.Text(season))
			}
		case strings.HasPrefix(line, "Full Name"):
			e.info.Set(0, "Full Name", frame.Text(strings.TrimSpace(strings.ReplaceAll(line, "Full Name: ", ""))))
		case strings.HasPrefix(line, "Relatives"):
			e.scrapeRelatives(line, p)
		}
	})
}

func (e *playerExtractor) scrapeHandedness(line string) {
	parts := strings.Split(line, "\t")
	if len(parts) < 2 {
		return
	}
	// no further splitting so trailing easter eggs are excluded
	_, bats, _ := strings.Cut(parts[0], ":")
	_, throws, _ := strings.Cut(parts[1], ":")
	e.info.Set(0, "Batting Hand", frame.Text(strings.TrimSpace(bats)))
	e.info.Set(0, "Throwing Hand", frame.Text(strings.TrimSpace(throws)))
}

func (e *playerExtractor) scrapeHeightWeight(line string) {
	line, _, _ = strings.Cut(line, "(")
	// either height or weight can be missing
	for _, measurement := range strings.SplitN(line, ",", 2) {
		measurement = strings.TrimSpace(measurement)
		if strings.Contains(measurement, "-") {
			feet, inches, _ := strings.Cut(measurement, "-")
			ft, err1 := strconv.Atoi(feet)
			in, err2 := strconv.Atoi(inches)
			if err1 == nil && err2 == nil {
				e.info.Set(0, "Height (in.)", frame.Int(ft*12+in))
			}
		} else if strings.Contains(measurement, "lb") {
			e.info.Set(0, "Weight (lbs.)", frame.Text(strings.Trim(measurement, "  lb")))
		}
	}
}

func (e *playerExtractor) scrapeBirth(line string) {
	birthDate, birthPlace, found := strings.Cut(line, " in ")
	if !found {
		birthPlace = ""
	}

	if !strings.Contains(birthDate, "(Date unknown)") {
		_, date, _ := strings.Cut(birthDate, ":")
		date = strings.TrimSpace(date)
		// the date can have two spaces when it is only month and year
		e.info.Set(0, "Birth Date", frame.Text(textutil.ReformatDate(strings.ReplaceAll(date, "  ", " "))))
		if t, err := time.Parse("January 2, 2006", date); err == nil {
			e.birth, e.birthOK = t, true
		}
	}

	switch {
	case strings.Contains(birthPlace, "Ocean"):
		// players born at sea
		e.info.Set(0, "Birth Country", frame.Text(strings.TrimSpace(birthPlace)))
	case birthPlace != "":
		if len(birthPlace) > 2 {
			// remove the text representation of the country flag
			birthPlace = birthPlace[:len(birthPlace)-2]
		}
		parts := strings.Split(birthPlace, ", ")
		switch len(parts) {
		case 1:
			e.s.opts.DevAlert("malformed birth place", "player", e.id, "place", strings.TrimSpace(birthPlace))
		case 2:
			e.info.Set(0, "Birth City", frame.Text(parts[0]))
			e.setRegion("Birth", parts[1])
		default:
			e.info.Set(0, "Birth City", frame.Text(parts[0]))
			e.info.Set(0, "Birth State/Province", frame.Text(parts[1]))
			e.info.Set(0, "Birth Country", frame.Text(strings.Join(parts[2:], ", ")))
		}
	}
}

// setRegion distinguishes US state abbreviations from country names by
// length.
func (e *playerExtractor) setRegion(prefix, region string) {
	if len(region) == 2 {
		e.info.Set(0, prefix+" State/Province", frame.Text(region))
		e.info.Set(0, prefix+" Country", frame.Text("U.S."))
	} else {
		e.info.Set(0, prefix+" Country", frame.Text(region))
	}
}

func (e *playerExtractor) scrapeDeath(line string) {
	deathDate, deathPlace, found := strings.Cut(line, " in ")
	if !found {
		deathPlace = ""
	}

	_, date, _ := strings.Cut(deathDate, ":")
	date = strings.TrimSpace(date)
	e.info.Set(0, "Death Date", frame.Text(textutil.ReformatDate(date)))
	if t, err := time.Parse("January 2, 2006", date); err == nil && e.birthOK {
		e.info.Set(0, "Age At Death", frame.Text(ageString(e.birth, t)))
		e.info.Set(0, "Age At Death (Days)", frame.Int(daysBetween(e.birth, t)))
	}
	// current age would be inaccurate for a dead player
	e.info.Set(0, "Age", frame.Null())
	e.info.Set(0, "Age (Days)", frame.Null())

	switch {
	case strings.Contains(deathPlace, "Ocean"):
		e.info.Set(0, "Death Country", frame.Text(strings.TrimSpace(deathPlace)))
	case strings.Contains(deathPlace, ", "):
		city, region, _ := strings.Cut(deathPlace, ", ")
		e.info.Set(0, "Death City", frame.Text(city))
		e.setRegion("Death", region)
	case deathPlace != "":
		e.setRegion("Death", deathPlace)
	}
}

func (e *playerExtractor) scrapeDraft(line string) {
	// only use the final time the player was drafted
	parts := strings.Split(line, "and  the")
	draftLine := textutil.CleanSpaces(parts[len(parts)-1])

	draftTeam, rest, ok := strings.Cut(draftLine, " in the ")
	if !ok || len(rest) < 2 {
		return
	}
	round := strings.Trim(rest[0:2], "snrt")
	// draftTeam includes "Drafted by the" when the player was drafted
	// once, and is just the team name when drafted multiple times
	if _, after, ok := cutLast(draftTeam, "the "); ok {
		draftTeam = after
	}
	e.info.Set(0, "Draft Team", frame.Text(strings.TrimSpace(draftTeam)))
	e.info.Set(0, "Draft Round", frame.Text(round))

	var yearAndType string
	if pick, err := textutil.Between(rest, "round (", ")", textutil.AnchorStart); err == nil {
		e.info.Set(0, "Draft Pick", frame.Text(strings.Trim(pick, "stndrh")))
		_, yearAndType, _ = strings.Cut(rest, ") of the ")
	} else {
		// the pick is not listed after the first round
		_, yearAndType, _ = strings.Cut(rest, "round of the ")
	}
	year, draftType, ok := strings.Cut(yearAndType, " ")
	if !ok {
		return
	}
	draftType, _, _ = strings.Cut(draftType, " from ")
	e.info.Set(0, "Draft Year", frame.Text(year))
	e.info.Set(0, "Draft Type", frame.Text(strings.Trim(draftType, ".")))
}

func (e *playerExtractor) scrapeSchools(line string) {
	col, schoolList, ok := strings.Cut(line, ": ")
	if !ok {
		return
	}
	// split on ")," because the schools' city names also contain commas
	var schools []string
	for _, school := range strings.Split(schoolList, "),") {
		school = strings.TrimSpace(school)
		if school != "" && !strings.HasSuffix(school, ")") {
			school += ")"
		}
		schools = append(schools, school)
	}
	e.info.Set(0, col, frame.Text(`"`+strings.Join(schools, `", "`)+`"`))
}

func (e *playerExtractor) scrapeDebut(line string, p *goquery.Selection) {
	debutDate := strings.TrimSpace(textutil.BetweenOr(line, "Debut:", "(", textutil.AnchorStart, ""))
	if debutDate == "" {
		return
	}
	e.info.Set(0, "Debut Date", frame.Text(textutil.ReformatDate(debutDate)))
	if t, err := time.Parse("January 2, 2006", debutDate); err == nil && e.birthOK {
		e.info.Set(0, "Debut Age", frame.Text(ageString(e.birth, t)))
		e.info.Set(0, "Debut Age (Days)", frame.Int(daysBetween(e.birth, t)))
	}

	if link := lastBoxScoreLink(p); link != "" {
		e.info.Set(0, "Debut Game ID", frame.Text(link))
	}

	rank, err := textutil.Between(line, " ", " in major league history", textutil.AnchorEnd)
	if err != nil {
		return
	}
	// "(" is at the start when the age is not listed
	rank = strings.Trim(rank, "(stndrh ")
	if n, err := strconv.Atoi(strings.ReplaceAll(rank, ",", "")); err == nil {
		e.info.Set(0, "Debut Rank", frame.Int(n))
	}
}

func (e *playerExtractor) scrapeLastGame(line string, p *goquery.Selection) {
	var lastGame string
	if strings.Contains(line, "(") {
		lastGame = strings.TrimSpace(textutil.BetweenOr(line, "Last Game:", "(", textutil.AnchorStart, ""))
	} else {
		lastGame = strings.TrimSpace(strings.ReplaceAll(line, "Last Game:", ""))
	}
	e.info.Set(0, "Last Game", frame.Text(textutil.ReformatDate(lastGame)))

	t, err := time.Parse("January 2, 2006", lastGame)
	if err != nil || !e.birthOK {
		return
	}
	e.info.Set(0, "Last Game Age", frame.Text(ageString(e.birth, t)))
	e.info.Set(0, "Last Game Age (Days)", frame.Int(daysBetween(e.birth, t)))

	if link := lastBoxScoreLink(p); link != "" {
		e.info.Set(0, "Last Game ID", frame.Text(link))
	}
}

func lastBoxScoreLink(p *goquery.Selection) string {
	href := ""
	p.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if h, _ := a.Attr("href"); h != "" {
			href = h
		}
	})
	if !strings.Contains(href, "/boxes/") {
		return ""
	}
	id, err := textutil.Between(href, "/", ".", textutil.AnchorEnd)
	if err != nil {
		return ""
	}
	return id
}

func (e *playerExtractor) scrapeHallOfFame(line string) {
	hofType, hofYear, ok := strings.Cut(line, " in ")
	if !ok || len(hofYear) < 4 {
		return
	}
	e.info.Set(0, "HOF Year", frame.Text(hofYear[:4]))
	if _, after, ok := strings.Cut(hofType, "as "); ok {
		e.info.Set(0, "HOF Type", frame.Text(after))
	}
	if strings.Contains(line, "BBWAA") {
		_, vote, _ := strings.Cut(line, " on ")
		yes, total, ok := strings.Cut(vote, "/")
		if !ok {
			return
		}
		total, _, _ = strings.Cut(total, " ballots")
		y, err1 := strconv.Atoi(yes)
		t, err2 := strconv.Atoi(total)
		if err1 == nil && err2 == nil && t != 0 {
			e.info.Set(0, "HOF %", frame.Num(float64(int(float64(y)/float64(t)*10000+0.5))/10000))
		}
	}
}

func (e *playerExtractor) scrapeRelatives(line string, p *goquery.Selection) {
	var playerIDs []string
	var isPlayer []bool
	p.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		id, err := textutil.Between(href, "/", ".", textutil.AnchorEnd)
		if err != nil {
			return
		}
		playerIDs = append(playerIDs, id)
		// relatives can also be managers
		kind := textutil.BetweenOr(href, "/", "/", textutil.AnchorStart, "")
		isPlayer = append(isPlayer, kind == "players")
	})

	relations := strings.Split(strings.ReplaceAll(line, "Relatives: ", ""), ";")
	for _, r := range relations {
		relation, players, ok := strings.Cut(strings.TrimSpace(r), " of ")
		if !ok {
			continue
		}
		playerCount := strings.Count(players, ", ") + 1
		// the page states the listed players' relation to this one,
		// so the direction flips
		converted, known := relativesConversions[relation]
		if !known {
			e.s.opts.DevAlert("unexpected relation", "player", e.id, "relation", strings.TrimSpace(r))
			continue
		}
		for i := 0; i < playerCount && len(playerIDs) > 0; i++ {
			relative := playerIDs[0]
			playerIDs = playerIDs[1:]
			ok := isPlayer[0]
			isPlayer = isPlayer[1:]
			if ok {
				e.relatives[converted] = append(e.relatives[converted], relative)
			}
		}
	}
}

func (e *playerExtractor) scrapeBling(bling *goquery.Selection) {
	e.bling.Set(0, "Player", frame.Text(e.name))
	for _, col := range blingCounterCols {
		e.bling.SetAll(col, frame.Int(0))
	}
	if bling.Length() == 0 {
		return
	}

	bling.Find("a").Each(func(_ int, a *goquery.Selection) {
		label := a.Text()
		times := 1
		if count, rest, ok := strings.Cut(label, "x "); ok {
			if n, err := strconv.Atoi(count); err == nil {
				times, label = n, rest
			}
		}
		switch col, known := blingColumns[label]; {
		case known:
			e.bling.Set(0, col, frame.Int(times))
		case strings.Contains(label, "World Series"):
			// a single ring shows its year instead of a count
			e.bling.Set(0, "WS Wins", frame.Int(1))
		case !strings.Contains(label, "Hall of Fame"):
			// HOF is handled in the bio
			e.s.opts.DevAlert("unexpected bling element", "player", e.id, "element", label)
		}
	})
}

func (e *playerExtractor) findCareerEarnings(wrapper *goquery.Selection) {
	table := htmltable.Unwrap(wrapper, true)
	records := htmltable.Records(table)
	if len(records) == 0 {
		return
	}
	numColumns := len(records[0])
	for _, record := range records[1:] {
		if len(record) != numColumns || len(record) < 4 || record[3] == "" {
			continue
		}
		// future option years carry a leading asterisk; a trailing
		// asterisk just means inconsistent reports
		if record[3][0] == '*' {
			continue
		}
		salary := strings.Trim(record[3], "$*")
		n, err := strconv.Atoi(strings.ReplaceAll(salary, ",", ""))
		if err != nil {
			continue
		}
		// years can have multiple rows, like a salary and a paid
		// buyout
		e.salaries[record[0]] += n
	}
}

// finishStats adds the player name, id, salary, and team ids to a stat
// table and converts numeric columns.
func (e *playerExtractor) finishStats(f *frame.Frame) {
	f.SetAll("Player ID", frame.Text(e.id))
	f.SetAll("Player", frame.Text(e.name))

	f.EnsureColumns("Salary", "Team ID")
	for r := 0; r < f.Len(); r++ {
		season := f.At(r, "Season").String()
		if salary, ok := e.salaries[season]; ok {
			f.Set(r, "Salary", frame.Int(salary))
		}

		team := f.At(r, "Team")
		if team.IsNull() || season == "Career Totals" {
			continue
		}
		// multi-team season summary rows like "2TM" have no team id
		if multiTeamRegex.MatchString(team.String()) {
			continue
		}
		f.Set(r, "Team ID", frame.Text(team.String()+season))
	}
	f.ConvertNumeric()
}

func scrapeStandardBatting(wrapper *goquery.Selection) (*frame.Frame, int, error) {
	f, err := playerStatsFrame(wrapper, true, 0)
	if err != nil {
		return nil, 0, err
	}
	f.Rename("WAR", "Batting bWAR")
	f.Rename("Lg", "League")
	processAwardsColumn(f)
	processCareerTotals(f)

	if f.HasColumn("Pos") {
		f.SetWhere("Pos", frame.Null(), func(r int) bool {
			return f.At(r, "Season").String() == "162 Game Avg" || f.At(r, "Pos").String() == ""
		})
	}
	return f, advancedBuffer(f), nil
}

func scrapeStandardPitching(wrapper *goquery.Selection) (*frame.Frame, int, error) {
	f, err := playerStatsFrame(wrapper, true, 0)
	if err != nil {
		return nil, 0, err
	}
	f.Rename("WAR", "Pitching bWAR")
	f.Rename("Lg", "League")
	processAwardsColumn(f)
	processCareerTotals(f)
	convertInnings(f, "IP")
	return f, advancedBuffer(f), nil
}

func scrapeStandardFielding(wrapper *goquery.Selection) (*frame.Frame, error) {
	f, err := playerStatsFrame(wrapper, true, 0)
	if err != nil {
		return nil, err
	}
	f.Rename("Lg", "League")
	f.Rename("Pos", "Position")
	processAwardsColumn(f)

	if f.HasColumn("Position") {
		f.Apply("Position", func(v frame.Value) frame.Value {
			if v.String() == "" {
				return frame.Null()
			}
			return v
		})
	}
	// by-position career totals rows ("16 Yr (1B)") become plain
	// career totals; the Positions column already exists
	for r := 0; r < f.Len(); r++ {
		if strings.Contains(f.At(r, "Season").String(), "(") {
			f.Set(r, "Season", frame.Text("Career Totals"))
		}
	}
	convertInnings(f, "Inn")
	return f, nil
}

// advancedBuffer counts the summary rows the advanced table lacks: the
// team and league career totals under the regular season section, plus
// the 162 game average row.
func advancedBuffer(f *frame.Frame) int {
	count := 0
	for r := 0; r < f.Len(); r++ {
		if f.At(r, "Season").String() != "Career Totals" {
			continue
		}
		if f.At(r, "Game Type").String() != "Regular Season" {
			continue
		}
		if !f.At(r, "Team").IsNull() || !f.At(r, "League").IsNull() {
			count++
		}
	}
	return count + 1
}

func scrapeValueTable(wrapper *goquery.Selection) (*frame.Frame, error) {
	f, err := playerStatsFrame(wrapper, false, 0)
	if err != nil {
		return nil, err
	}
	f.Drop("Season", "Age", "Team", "Lg", "PA", "IP", "G", "GS", "R", "WAR", "Pos", "Awards")
	return f, nil
}

func scrapeAdvancedTable(wrapper *goquery.Selection, buffer int) (*frame.Frame, error) {
	f, err := playerStatsFrame(wrapper, false, buffer)
	if err != nil {
		return nil, err
	}
	f.Drop("Season", "Age", "Team", "Lg", "PA", "IP", "rOBA", "Rbat+", "Pos", "Awards")
	convertCWPA(f)
	return f, nil
}

// playerStatsFrame turns a player stats table into a frame. The table
// can stack a regular season and a postseason sub-table under one
// element, separated by a repeated header row. buffer blank rows go
// between the two sections to stand in for the summary rows the other
// table variants have.
func playerStatsFrame(wrapper *goquery.Selection, addGameType bool, buffer int) (*frame.Frame, error) {
	table := htmltable.Unwrap(wrapper, true)
	rows := htmltable.Rows(table)
	sections := htmltable.SplitOnHeader(rows, "Season")
	if len(sections) == 0 || len(sections) > 2 {
		return nil, fmt.Errorf("expected 1 or 2 stats sections, found %d", len(sections))
	}

	postseasonIncluded := false
	for _, row := range rows {
		if strings.Contains(row.ID, "_post.") {
			postseasonIncluded = true
		}
	}

	reg, err := sectionFrame(sections[0])
	if err != nil {
		return nil, err
	}

	if len(sections) == 2 {
		post, err := sectionFrame(sections[1])
		if err != nil {
			return nil, err
		}
		if addGameType {
			reg.SetAll("Game Type", frame.Text("Regular Season"))
			post.SetAll("Game Type", frame.Text("Postseason"))
		}
		for i := 0; i < buffer; i++ {
			reg.AppendMap(map[string]frame.Value{})
		}
		return frame.Concat(reg, post), nil
	}

	if addGameType {
		// a player can have appeared only in the postseason
		if postseasonIncluded {
			reg.SetAll("Game Type", frame.Text("Postseason"))
		} else {
			reg.SetAll("Game Type", frame.Text("Regular Season"))
		}
	}
	return reg, nil
}

func sectionFrame(section htmltable.Section) (*frame.Frame, error) {
	records := make([][]string, len(section.Rows))
	for i, row := range section.Rows {
		records[i] = row.Cells
	}
	f, err := frame.FromRecords(section.Header, records, nil)
	if err != nil {
		return nil, err
	}
	cleanStatsFrame(f)
	return f, nil
}

// cleanStatsFrame drops filler rows and corrects the column shift the
// markup gives aggregate rows.
func cleanStatsFrame(f *frame.Frame) {
	if !f.HasColumn("Team") || !f.HasColumn("Season") {
		return
	}

	// missed seasons and spacer or MLB average rows
	kept := f.Filter(func(r int) bool {
		if f.At(r, "Team").IsNull() {
			return false
		}
		season := f.At(r, "Season").String()
		return season != "" && season != "MLB Average"
	})
	*f = *kept

	// career totals and 162 game average rows are misaligned by three
	// columns by default
	cols := f.Columns()
	for r := 0; r < f.Len(); r++ {
		season := f.At(r, "Season").String()
		if !strings.Contains(season, " Yr") && season != "162 Game Avg" {
			continue
		}
		for i := len(cols) - 1; i >= 3; i-- {
			f.Set(r, cols[i], f.At(r, cols[i-3]))
		}
		for i := 1; i < 3; i++ {
			f.Set(r, cols[i], frame.Null())
		}
		f.Set(r, "Season", frame.Text(season))
		if f.HasColumn("Lg") {
			f.Set(r, "Lg", frame.Null())
		}
	}

	// properly label the overall career totals row
	for r := 0; r < f.Len(); r++ {
		season := f.At(r, "Season").String()
		if strings.HasSuffix(season, " Yr") || strings.HasSuffix(season, " Yrs") {
			f.Set(r, "Season", frame.Text("Career Totals"))
		}
	}
}

// processAwardsColumn expands the comma-joined Awards cell into honor
// counters and award voting finishes, applied once per season so a
// season split over several fielding positions is not counted twice.
func processAwardsColumn(f *frame.Frame) {
	for _, col := range []string{"AS", "GG", "SS", "LCS MVP", "WS MVP"} {
		f.SetAll(col, frame.Int(0))
	}
	f.EnsureColumns("MVP Finish", "CYA Finish", "ROY Finish")
	if !f.HasColumn("Awards") {
		return
	}

	lastSeason := ""
	for r := 0; r < f.Len(); r++ {
		season := f.At(r, "Season").String()
		if season == lastSeason {
			continue
		}
		lastSeason = season

		seasonRows := f.FindRows(func(i int) bool { return f.At(i, "Season").String() == season })
		for _, award := range strings.Split(f.At(r, "Awards").String(), ",") {
			switch award {
			case "AS", "GG", "SS", "WS MVP":
				for _, i := range seasonRows {
					f.AddNum(i, award, 1)
				}
			case "ALCS MVP", "NLCS MVP":
				for _, i := range seasonRows {
					f.AddNum(i, "LCS MVP", 1)
				}
			default:
				for _, col := range []string{"MVP", "CYA", "ROY"} {
					if strings.Contains(award, col) && len(award) > 4 {
						if n, err := strconv.Atoi(award[4:]); err == nil {
							for _, i := range seasonRows {
								f.Set(i, col+" Finish", frame.Int(n))
							}
						}
					}
				}
			}
		}
	}

	// summary rows get missing values; their totals live in the bling
	// table
	for _, col := range []string{"AS", "GG", "SS", "LCS MVP", "WS MVP"} {
		f.SetWhere(col, frame.Null(), func(r int) bool { return f.At(r, "Team").IsNull() })
	}
}

// processCareerTotals moves the abbreviation embedded in a franchise
// or league career totals row's season cell ("SEA (6 yrs)", "AL (9
// yrs)") into the Team or League column.
func processCareerTotals(f *frame.Frame) {
	for r := 0; r < f.Len(); r++ {
		season := f.At(r, "Season").String()
		if !strings.Contains(season, "(") {
			continue
		}
		abv, _, _ := strings.Cut(season, " (")
		if leagueAbvs[abv] {
			f.Set(r, "League", frame.Text(abv))
		} else {
			f.Set(r, "Team", frame.Text(abv))
		}
		f.Set(r, "Season", frame.Text("Career Totals"))
	}
}

func countYearsPlayed(p *Player) {
	years := map[string]bool{}
	for _, f := range []*frame.Frame{p.Batting, p.Pitching, p.Fielding} {
		if !f.HasColumn("Season") {
			continue
		}
		for r := 0; r < f.Len(); r++ {
			season := f.At(r, "Season").String()
			if isDigits(season) {
				years[season] = true
			}
		}
	}
	p.Info.Set(0, "Years Played", frame.Int(len(years)))
}

func (s *Scraper) findPlayerTeams(p *Player) []TeamRef {
	var teams []TeamRef
	seen := map[TeamRef]bool{}
	for _, f := range []*frame.Frame{p.Batting, p.Pitching, p.Fielding} {
		if !f.HasColumn("Season") || !f.HasColumn("Team") {
			continue
		}
		for r := 0; r < f.Len(); r++ {
			season := f.At(r, "Season").String()
			if len(season) != 4 || !isDigits(season) {
				continue
			}
			team := f.At(r, "Team").String()
			if team == "" || multiTeamRegex.MatchString(team) {
				continue
			}
			ref := TeamRef{Abv: team, Year: season}
			if !seen[ref] {
				seen[ref] = true
				teams = append(teams, ref)
			}
		}
	}
	sortTeamRefs(teams)

	if len(teams) == 0 {
		return teams
	}
	perSeason := map[string]int{}
	most := 0
	for _, ref := range teams {
		perSeason[ref.Year]++
		if perSeason[ref.Year] > most {
			most = perSeason[ref.Year]
		}
	}
	p.Info.Set(0, "Most Teams in a Year", frame.Int(most))

	franchises := map[string]bool{}
	for _, ref := range teams {
		year, _ := strconv.Atoi(ref.Year)
		franchises[s.abvs.FranchiseAbv(ref.Abv, year)] = true
	}
	p.Info.Set(0, "Teams Played For", frame.Int(len(franchises)))
	return teams
}

func sortTeamRefs(teams []TeamRef) {
	for i := 1; i < len(teams); i++ {
		for j := i; j > 0; j-- {
			a, b := teams[j-1], teams[j]
			if a.Year < b.Year || (a.Year == b.Year && a.Abv <= b.Abv) {
				break
			}
			teams[j-1], teams[j] = b, a
		}
	}
}

// ageString renders an exact age as years, months, and days.
func ageString(from, to time.Time) string {
	y := to.Year() - from.Year()
	m := int(to.Month()) - int(from.Month())
	d := to.Day() - from.Day()
	if d < 0 {
		m--
		// days in the month before `to`
		prev := time.Date(to.Year(), to.Month(), 0, 0, 0, 0, 0, time.UTC)
		d += prev.Day()
	}
	if m < 0 {
		y--
		m += 12
	}
	return fmt.Sprintf("%dy-%dm-%dd", y, m, d)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
