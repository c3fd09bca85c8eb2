package bref

import (
	"sort"
	"strconv"
	"strings"

	"brstats/lib/frame"
	"brstats/lib/refdata/nohitters"
)

var recordsCols = []string{"Franchise", "Games", "Wins", "Losses", "Ties", "Win %"}

// GameSet aggregates the tables of several games. Records summarizes
// team results grouped by franchise.
type GameSet struct {
	Info     *frame.Frame
	Batting  *frame.Frame
	Pitching *frame.Frame
	Fielding *frame.Frame
	TeamInfo *frame.Frame
	UmpInfo  *frame.Frame
	Records  *frame.Frame

	Players []string
	Teams   []TeamRef

	s        *Scraper
	contents []string
}

// GameSet aggregates games into one set of tables.
func (s *Scraper) GameSet(games []*Game) *GameSet {
	set := &GameSet{s: s}
	if len(games) == 0 {
		return set
	}

	var info, batting, pitching, fielding, teamInfo, umpInfo []*frame.Frame
	for _, g := range games {
		set.contents = append(set.contents, g.ID)
		info = append(info, g.Info)
		batting = append(batting, g.Batting)
		pitching = append(pitching, g.Pitching)
		fielding = append(fielding, g.Fielding)
		teamInfo = append(teamInfo, g.TeamInfo)
		umpInfo = append(umpInfo, g.UmpInfo)
		set.Players = append(set.Players, g.Players...)
		set.Teams = append(set.Teams, g.Teams...)
	}
	set.Info = frame.Concat(info...)
	set.Batting = frame.Concat(batting...)
	set.Pitching = frame.Concat(pitching...)
	set.Fielding = frame.Concat(fielding...)
	set.TeamInfo = frame.Concat(teamInfo...)
	set.UmpInfo = frame.Concat(umpInfo...)
	set.Players = dedup(set.Players)
	set.Teams = dedupTeamRefs(set.Teams)

	set.Records = s.gatherGameRecords(set.TeamInfo)
	return set
}

// Len returns the number of games in the set.
func (gs *GameSet) Len() int { return len(gs.contents) }

// gatherGameRecords tallies wins, losses, and ties by franchise.
// All-Star teams have no team id, so their team name stands in for a
// franchise.
func (s *Scraper) gatherGameRecords(teamInfo *frame.Frame) *frame.Frame {
	type tally struct{ wins, losses, ties int }
	tallies := map[string]*tally{}
	var order []string

	for r := 0; r < teamInfo.Len(); r++ {
		franchise := teamInfo.At(r, "Team").String()
		if teamID := teamInfo.At(r, "Team ID"); !teamID.IsNull() {
			id := teamID.String()
			franchise = s.abvs.FranchiseAbv(id[:len(id)-4], yearOfTeamID(id))
		}
		t, ok := tallies[franchise]
		if !ok {
			t = &tally{}
			tallies[franchise] = t
			order = append(order, franchise)
		}
		switch teamInfo.At(r, "Result").String() {
		case "Win":
			t.wins++
		case "Loss":
			t.losses++
		case "Tie":
			t.ties++
		}
	}
	sort.Strings(order)

	records := frame.New(recordsCols...)
	for _, franchise := range order {
		t := tallies[franchise]
		games := t.wins + t.losses + t.ties
		row := map[string]frame.Value{
			"Franchise": frame.Text(franchise),
			"Games":     frame.Int(games),
			"Wins":      frame.Int(t.wins),
			"Losses":    frame.Int(t.losses),
			"Ties":      frame.Int(t.ties),
		}
		if t.wins+t.losses > 0 {
			row["Win %"] = frame.Num(float64(t.wins) / float64(t.wins+t.losses))
		}
		records.AppendMap(row)
	}
	return records
}

// AddNoHitters fills the set's pitching NH, PG, and CNH columns from
// the no-hitter registry, matching records to the set's games by game
// id.
func (gs *GameSet) AddNoHitters() {
	nh := gs.s.nh
	if nh == nil || !nh.Populated() || gs.Pitching == nil {
		return
	}
	pt := gs.Pitching
	for _, col := range []string{"NH", "PG", "CNH"} {
		pt.SetAll(col, frame.Int(0))
	}

	mark := func(gameID, playerID, col string) {
		gameRows := pt.FindRows(func(r int) bool {
			return pt.At(r, "Game ID").String() == gameID
		})
		teamID := ""
		for _, r := range gameRows {
			if pt.At(r, "Player ID").String() == playerID {
				teamID = pt.At(r, "Team ID").String()
			}
		}
		if teamID == "" {
			return
		}
		for _, r := range gameRows {
			if pt.At(r, "Player ID").String() == playerID ||
				(pt.At(r, "Player").String() == "Team Totals" &&
					pt.At(r, "Team ID").String() == teamID) {
				pt.Set(r, col, frame.Int(1))
			}
		}
	}

	for _, gameID := range gs.contents {
		if playerID, ok := nh.GameINH[gameID]; ok {
			mark(gameID, playerID, "NH")
		}
		if playerID, ok := nh.GamePG[gameID]; ok {
			mark(gameID, playerID, "PG")
		}
		for _, playerID := range nh.GameCNH[gameID] {
			mark(gameID, playerID, "CNH")
		}
	}
}

// UpdateTeamNames standardizes team names across the set. Ranged
// renames apply per row based on the row's team id, so a set spanning
// eras renames each game against its own season.
func (gs *GameSet) UpdateTeamNames() {
	applyRowRenames(gs.Info, "Home Team ID", true, "Game")
	applyRowRenames(gs.Info, "Home Team ID", false,
		"Home Team", "Away Team", "Winning Team", "Losing Team")
	applyRowRenames(gs.TeamInfo, "Team ID", false, "Team")
	applyRowRenames(gs.Batting, "Team ID", false, "Team", "Opponent")
	applyRowRenames(gs.Pitching, "Team ID", false, "Team", "Opponent")
	applyRowRenames(gs.Fielding, "Team ID", false, "Team", "Opponent")
}

// UpdateVenueNames standardizes venue names across the set.
func (gs *GameSet) UpdateVenueNames() {
	replaceVenues(gs.Info)
}

// PlayerSet aggregates the tables of several players.
type PlayerSet struct {
	Info     *frame.Frame
	Bling    *frame.Frame
	Batting  *frame.Frame
	Pitching *frame.Frame
	Fielding *frame.Frame

	Teams []TeamRef

	s        *Scraper
	contents []string
}

// PlayerSet aggregates players into one set of tables.
func (s *Scraper) PlayerSet(players []*Player) *PlayerSet {
	set := &PlayerSet{s: s}
	if len(players) == 0 {
		return set
	}

	var info, bling, batting, pitching, fielding []*frame.Frame
	for _, p := range players {
		set.contents = append(set.contents, p.ID)
		info = append(info, p.Info)
		bling = append(bling, p.Bling)
		batting = append(batting, p.Batting)
		pitching = append(pitching, p.Pitching)
		fielding = append(fielding, p.Fielding)
		set.Teams = append(set.Teams, p.Teams...)
	}
	set.Info = frame.Concat(info...)
	set.Bling = frame.Concat(bling...)
	set.Batting = frame.Concat(batting...)
	set.Pitching = frame.Concat(pitching...)
	set.Fielding = frame.Concat(fielding...)
	set.Teams = dedupTeamRefs(set.Teams)
	return set
}

// Len returns the number of players in the set.
func (ps *PlayerSet) Len() int { return len(ps.contents) }

// AddNoHitters fills the set's pitching NH, PG, and CNH columns from
// the no-hitter registry.
func (ps *PlayerSet) AddNoHitters() {
	nh := ps.s.nh
	if nh == nil || !nh.Populated() || ps.Pitching == nil {
		return
	}
	pt := ps.Pitching

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

	credit := func(playerID, col string, entries []nohitters.PlayerEntry) {
		for _, entry := range entries {
			year, _ := strconv.Atoi(entry.Year)
			allAbvs := map[string]bool{}
			for _, abv := range ps.s.abvs.AllTeamAbvs(entry.Team, year) {
				allAbvs[abv] = true
			}
			for _, r := range pt.FindRows(func(r int) bool {
				if pt.At(r, "Player ID").String() != playerID || !computable(r) {
					return false
				}
				season := pt.At(r, "Season").String()
				rowTeam := pt.At(r, "Team").String()
				gt := pt.At(r, "Game Type").String()
				switch {
				case season == entry.Year && rowTeam == entry.Team && strings.HasPrefix(gt, entry.GameType):
					return true
				case season == entry.Year && multiTeamRegex.MatchString(rowTeam):
					return true
				case season == "Career Totals" &&
					(pt.At(r, "Team").IsNull() || allAbvs[rowTeam]) &&
					pt.At(r, "League").IsNull() &&
					strings.HasPrefix(gt, entry.GameType):
					return true
				}
				return false
			}) {
				pt.AddNum(r, col, 1)
			}
		}
	}

	for _, playerID := range ps.contents {
		credit(playerID, "NH", nh.PlayerINH[playerID])
		credit(playerID, "PG", nh.PlayerPG[playerID])
		credit(playerID, "CNH", nh.PlayerCNH[playerID])
	}
}

// UpdateTeamNames standardizes the draft team names.
func (ps *PlayerSet) UpdateTeamNames() {
	replaceExact(ps.Info, teamRenameRules(0), "Draft Team")
}

// TeamSet aggregates the tables of several team seasons. Records
// summarizes regular season results grouped by franchise.
type TeamSet struct {
	Info     *frame.Frame
	Batting  *frame.Frame
	Pitching *frame.Frame
	Fielding *frame.Frame
	Records  *frame.Frame

	Players []string

	s        *Scraper
	contents []string
}

// TeamSet aggregates teams into one set of tables.
func (s *Scraper) TeamSet(teams []*Team) *TeamSet {
	set := &TeamSet{s: s}
	if len(teams) == 0 {
		return set
	}

	var info, batting, pitching, fielding []*frame.Frame
	for _, t := range teams {
		set.contents = append(set.contents, t.ID)
		info = append(info, t.Info)
		batting = append(batting, t.Batting)
		pitching = append(pitching, t.Pitching)
		fielding = append(fielding, t.Fielding)
		set.Players = append(set.Players, t.Players...)
	}
	set.Info = frame.Concat(info...)
	set.Batting = frame.Concat(batting...)
	set.Pitching = frame.Concat(pitching...)
	set.Fielding = frame.Concat(fielding...)
	set.Players = dedup(set.Players)

	set.Records = set.gatherTeamRecords()
	return set
}

// Len returns the number of teams in the set.
func (ts *TeamSet) Len() int { return len(ts.contents) }

func (ts *TeamSet) gatherTeamRecords() *frame.Frame {
	type tally struct{ wins, losses, ties int }
	tallies := map[string]*tally{}
	var order []string

	for r := 0; r < ts.Info.Len(); r++ {
		id := ts.Info.At(r, "Team ID").String()
		franchise := ts.s.abvs.FranchiseAbv(id[:len(id)-4], yearOfTeamID(id))
		if franchise == "" {
			franchise = ts.Info.At(r, "Team").String()
		}
		t, ok := tallies[franchise]
		if !ok {
			t = &tally{}
			tallies[franchise] = t
			order = append(order, franchise)
		}
		t.wins += ts.Info.At(r, "Wins").Int()
		t.losses += ts.Info.At(r, "Losses").Int()
		t.ties += ts.Info.At(r, "Ties").Int()
	}
	sort.Strings(order)

	records := frame.New(recordsCols...)
	for _, franchise := range order {
		t := tallies[franchise]
		games := t.wins + t.losses + t.ties
		row := map[string]frame.Value{
			"Franchise": frame.Text(franchise),
			"Games":     frame.Int(games),
			"Wins":      frame.Int(t.wins),
			"Losses":    frame.Int(t.losses),
			"Ties":      frame.Int(t.ties),
		}
		if games-t.ties > 0 {
			row["Win %"] = frame.Num(float64(t.wins) / float64(games-t.ties))
		}
		records.AppendMap(row)
	}
	return records
}

// AddNoHitters fills the set's pitching NH, PG, and CNH columns from
// the no-hitter registry, matching records to the set's teams by team
// id.
func (ts *TeamSet) AddNoHitters() {
	nh := ts.s.nh
	if nh == nil || !nh.Populated() || ts.Pitching == nil {
		return
	}
	pt := ts.Pitching
	for _, col := range []string{"NH", "PG", "CNH"} {
		pt.SetAll(col, frame.Int(0))
	}

	for _, teamID := range ts.contents {
		teamRows := func(pred func(r int) bool) []int {
			return pt.FindRows(func(r int) bool {
				return pt.At(r, "Team ID").String() == teamID && pred(r)
			})
		}

		credit := func(col, playerID, gameType string) {
			for _, r := range teamRows(func(r int) bool {
				if !strings.HasPrefix(pt.At(r, "Game Type").String(), gameType) {
					return false
				}
				return pt.At(r, "Player ID").String() == playerID ||
					pt.At(r, "Player").String() == "Team Totals"
			}) {
				pt.AddNum(r, col, 1)
			}
		}
		for _, entry := range nh.TeamINH[teamID] {
			credit("NH", entry.PlayerID, entry.GameType)
		}
		for _, entry := range nh.TeamPG[teamID] {
			credit("PG", entry.PlayerID, entry.GameType)
		}

		var gamesLogged []string
		for _, entry := range nh.TeamCNH[teamID] {
			for _, r := range teamRows(func(r int) bool {
				return pt.At(r, "Player ID").String() == entry.PlayerID &&
					strings.HasPrefix(pt.At(r, "Game Type").String(), entry.GameType)
			}) {
				pt.AddNum(r, "CNH", 1)
			}
			logged := containsStr(gamesLogged, entry.GameID)
			if !logged || entry.GameID == "" {
				for _, r := range teamRows(func(r int) bool {
					return pt.At(r, "Player").String() == "Team Totals" &&
						strings.HasPrefix(pt.At(r, "Game Type").String(), entry.GameType)
				}) {
					pt.AddNum(r, "CNH", 1)
				}
				gamesLogged = append(gamesLogged, entry.GameID)
			}
		}
	}
}

// UpdateTeamNames standardizes team names across the set, applying
// ranged renames per row from the row's team id.
func (ts *TeamSet) UpdateTeamNames() {
	applyRowRenames(ts.Info, "Team ID", false, "Team")
	applyRowRenames(ts.Batting, "Team ID", false, "Team")
	applyRowRenames(ts.Pitching, "Team ID", false, "Team")
	applyRowRenames(ts.Fielding, "Team ID", false, "Team")
}

// UpdateVenueNames standardizes venue names across the set.
func (ts *TeamSet) UpdateVenueNames() {
	replaceVenues(ts.Info)
}

