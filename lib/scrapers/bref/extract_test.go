package bref_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/frame"
	"brstats/lib/scrapers/bref"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return body
}

func requireNum(t *testing.T, want float64, v frame.Value) {
	t.Helper()
	got, ok := v.Float()
	require.True(t, ok, "value %q is not numeric", v.String())
	require.InDelta(t, want, got, 0.001)
}

func TestExtractGame(t *testing.T) {
	s := testScraper(nil)
	g, err := s.ExtractGame(context.Background(), &bref.Document{
		Path: "/boxes/NYA/NYA201705110.shtml",
		Body: readFixture(t, "box_NYA201705110.html"),
	})
	require.NoError(t, err)

	require.Equal(t, "NYA201705110", g.ID)
	require.Equal(t, "May 11, 2017, Houston Astros at New York Yankees", g.Name)
	require.Equal(t, []bref.TeamRef{
		{Abv: "HOU", Year: "2017"},
		{Abv: "NYY", Year: "2017"},
	}, g.Teams)
	require.Equal(t, []string{
		"springe01", "altuvjo01", "gattiev01",
		"gardnbr01", "judgeaa01", "sanchga02",
		"keuchda01", "devench01", "tanakma01",
	}, g.Players)

	info := g.Info
	require.Equal(t, 1, info.Len())
	require.Equal(t, "Regular Season", info.At(0, "Game Type").String())
	require.Equal(t, "2017-05-11", info.At(0, "Date").String())
	require.Equal(t, "Thursday", info.At(0, "Day of Week").String())
	require.Equal(t, "7:05 p.m.", info.At(0, "Start Time").String())
	require.Equal(t, "Yankee Stadium III", info.At(0, "Venue").String())
	require.Equal(t, 38512, info.At(0, "Attendance").Int())
	require.Equal(t, 185, info.At(0, "Duration").Int())
	require.Equal(t, "Grass", info.At(0, "Surface").String())
	require.Equal(t, "Dry", info.At(0, "Field Condition").String())
	require.Equal(t, 72, info.At(0, "Temperature").Int())
	require.Equal(t, "Night", info.At(0, "Weather").String())
	require.Equal(t, 8, info.At(0, "Wind Speed").Int())
	require.Equal(t, "out to Rightfield", info.At(0, "Wind Direction").String())
	require.Equal(t, "No Precipitation", info.At(0, "Precipitation").String())
	require.Equal(t, 9, info.At(0, "Innings").Int())
	require.Equal(t, "Houston Astros", info.At(0, "Away Team").String())
	require.Equal(t, "HOU2017", info.At(0, "Away Team ID").String())
	require.Equal(t, 3, info.At(0, "Away Score").Int())
	require.Equal(t, "New York Yankees", info.At(0, "Home Team").String())
	require.Equal(t, "NYY2017", info.At(0, "Home Team ID").String())
	require.Equal(t, 4, info.At(0, "Home Score").Int())
	require.Equal(t, "New York Yankees", info.At(0, "Winning Team").String())
	require.Equal(t, "Houston Astros", info.At(0, "Losing Team").String())
	require.Equal(t, "Pat Hoberg", info.At(0, "HP Ump").String())
	require.Equal(t, "Lance Barksdale", info.At(0, "3B Ump").String())
	require.True(t, info.At(0, "LF Ump").IsNull())

	ls := g.Linescore
	require.Equal(t, 2, ls.Len())
	require.Equal(t, "Houston Astros", ls.At(0, "Team").String())
	require.Equal(t, 2, ls.At(1, "1").Int())
	require.True(t, ls.At(1, "9").IsNull(), "the X in the bottom of the ninth")
	require.Equal(t, 3, ls.At(0, "R").Int())
	require.Equal(t, 4, ls.At(1, "R").Int())
	require.Equal(t, 0, ls.At(1, "E").Int())

	ti := g.TeamInfo
	require.Equal(t, 2, ti.Len())
	require.Equal(t, "Away", ti.At(0, "Home/Away").String())
	require.Equal(t, "HOU2017", ti.At(0, "Team ID").String())
	require.Equal(t, "Loss", ti.At(0, "Result").String())
	require.Equal(t, "22-14", ti.At(0, "Record").String())
	require.Equal(t, "HOU201705100", ti.At(0, "Previous Game ID").String())
	require.Equal(t, "HOU201705120", ti.At(0, "Next Game ID").String())
	require.Equal(t, "Home", ti.At(1, "Home/Away").String())
	require.Equal(t, "Win", ti.At(1, "Result").String())
	require.Equal(t, "22-13", ti.At(1, "Record").String())
	require.Equal(t, "NYA201705100", ti.At(1, "Previous Game ID").String())
	require.Equal(t, "NYA201705110", ti.At(1, "Game ID").String())

	bt := g.Batting
	require.Equal(t, 8, bt.Len())
	require.Equal(t, "George Springer", bt.At(0, "Player").String())
	require.Equal(t, "springe01", bt.At(0, "Player ID").String())
	require.Equal(t, "CF", bt.At(0, "Position").String())
	require.Equal(t, 4, bt.At(0, "AB").Int())
	require.Equal(t, 1, bt.At(0, "2B").Int())
	require.Equal(t, 1, bt.At(0, "TB").Int())
	require.Equal(t, "Houston Astros", bt.At(0, "Team").String())
	require.Equal(t, "HOU2017", bt.At(0, "Team ID").String())
	require.Equal(t, "New York Yankees", bt.At(0, "Opponent").String())
	require.Equal(t, "Away", bt.At(0, "Home/Away").String())
	require.Equal(t, "Loss", bt.At(0, "Result for Team").String())
	require.Equal(t, 3, bt.At(0, "Team Score").Int())
	require.Equal(t, 1, bt.At(1, "SB").Int())
	require.Equal(t, 1, bt.At(1, "2B SB").Int())
	require.Equal(t, 2, bt.At(1, "TB").Int())
	require.Equal(t, 1, bt.At(2, "HR").Int())
	require.Equal(t, 2, bt.At(2, "RBI").Int())
	require.Equal(t, "Team Totals", bt.At(3, "Player").String())
	require.Equal(t, 3, bt.At(3, "TB").Int())
	require.Equal(t, 7, bt.At(3, "LOB").Int())
	require.Equal(t, 1, bt.At(3, "2B").Int())
	require.Equal(t, 1, bt.At(3, "SB").Int())
	require.Equal(t, 1, bt.At(3, "2B SB").Int())
	require.Equal(t, "Aaron Judge", bt.At(5, "Player").String())
	require.Equal(t, 2, bt.At(5, "2B").Int())
	require.Equal(t, 5, bt.At(5, "TB").Int())
	require.Equal(t, "Win", bt.At(5, "Result for Team").String())
	require.Equal(t, "Team Totals", bt.At(7, "Player").String())
	require.Equal(t, 2, bt.At(7, "2B").Int())
	require.Equal(t, 1, bt.At(7, "HR").Int())
	require.Equal(t, 10, bt.At(7, "TB").Int())
	require.Equal(t, 5, bt.At(7, "LOB").Int())

	pt := g.Pitching
	require.Equal(t, 5, pt.Len())
	require.Equal(t, "Dallas Keuchel", pt.At(0, "Player").String())
	require.Equal(t, "SP", pt.At(0, "Position").String())
	require.Equal(t, 1, pt.At(0, "GS").Int())
	require.Equal(t, 0, pt.At(0, "GF").Int())
	require.Equal(t, 1, pt.At(0, "HBP").Int())
	require.Equal(t, 0, pt.At(0, "W").Int())
	requireNum(t, 6.3333, pt.At(0, "IP"))
	requireNum(t, 2.30, pt.At(0, "ERA"))
	require.Equal(t, "Chris Devenski", pt.At(1, "Player").String())
	require.Equal(t, "RP", pt.At(1, "Position").String())
	require.Equal(t, 1, pt.At(1, "GF").Int())
	require.Equal(t, 1, pt.At(1, "L").Int())
	require.Equal(t, 1, pt.At(1, "BS").Int())
	requireNum(t, 1.6667, pt.At(1, "IP"))
	require.Equal(t, "Team Totals", pt.At(2, "Player").String())
	require.Equal(t, 1, pt.At(2, "L").Int())
	require.Equal(t, 1, pt.At(2, "BS").Int())
	require.Equal(t, 1, pt.At(2, "HBP").Int())
	require.Equal(t, 0, pt.At(2, "CG").Int())
	requireNum(t, 8, pt.At(2, "IP"))
	require.Equal(t, "Masahiro Tanaka", pt.At(3, "Player").String())
	require.Equal(t, "SP", pt.At(3, "Position").String())
	require.Equal(t, 1, pt.At(3, "W").Int())
	require.Equal(t, 1, pt.At(3, "GS").Int())
	require.Equal(t, 1, pt.At(3, "GF").Int())
	require.Equal(t, 1, pt.At(3, "CG").Int())
	require.Equal(t, 0, pt.At(3, "SHO").Int())
	require.Equal(t, 1, pt.At(3, "WP").Int())
	requireNum(t, 9, pt.At(3, "IP"))
	require.Equal(t, "Team Totals", pt.At(4, "Player").String())
	require.Equal(t, 1, pt.At(4, "CG").Int())
	require.Equal(t, 1, pt.At(4, "W").Int())
	require.Equal(t, 1, pt.At(4, "WP").Int())

	fd := g.Fielding
	require.Equal(t, 5, fd.Len())
	require.Equal(t, "George Springer", fd.At(0, "Player").String())
	require.Equal(t, "Jose Altuve", fd.At(1, "Player").String())
	require.Equal(t, "Brett Gardner", fd.At(2, "Player").String())
	require.Equal(t, "Aaron Judge", fd.At(3, "Player").String())
	require.Equal(t, "Gary Sanchez", fd.At(4, "Player").String())
	require.Equal(t, 7, fd.At(4, "PO").Int())
	require.Equal(t, 1, fd.At(4, "SB").Int())
	require.Equal(t, 1, fd.At(4, "2B SB").Int())
	require.Equal(t, 0, fd.At(3, "SB").Int())

	ump := g.UmpInfo
	require.Equal(t, 4, ump.Len())
	require.Equal(t, "HP", ump.At(0, "Position").String())
	require.Equal(t, "Pat Hoberg", ump.At(0, "Umpire").String())
	require.Equal(t, "3B", ump.At(3, "Position").String())
	require.Equal(t, "NYA201705110", ump.At(0, "Game ID").String())
}

func TestExtractGamePathValidation(t *testing.T) {
	s := testScraper(nil)
	empty := []byte("<html><body></body></html>")

	// the doubleheader suffix used by the 1959-1962 seasons is part of
	// the accepted path shape
	for _, path := range []string{
		"/allstar/1999-allstar-game.shtml",
		"/allstar/1961-allstar-game-2.shtml",
		"/boxes/NYA/NYA201705110.shtml",
	} {
		_, err := s.ExtractGame(context.Background(), &bref.Document{Path: path, Body: empty})
		require.ErrorContains(t, err, "page has no content element", path)
	}

	for _, path := range []string{
		"/allstar/1961-allstar-game-23.shtml",
		"/players/p/paxtoja01.shtml",
		"/boxes/NYA/NYA20170511.shtml",
	} {
		_, err := s.ExtractGame(context.Background(), &bref.Document{Path: path, Body: empty})
		require.ErrorContains(t, err, "does not contain a game", path)
	}
}

func TestExtractPlayer(t *testing.T) {
	s := testScraper(nil)
	p, err := s.ExtractPlayer(context.Background(), &bref.Document{
		Path: "/players/p/paxtoja01.shtml",
		Body: readFixture(t, "player_paxtoja01.html"),
	})
	require.NoError(t, err)

	require.Equal(t, "James Paxton", p.Name)
	require.Equal(t, "paxtoja01", p.ID)
	require.Equal(t, []bref.TeamRef{
		{Abv: "SEA", Year: "2013"},
		{Abv: "SEA", Year: "2018"},
		{Abv: "NYY", Year: "2019"},
	}, p.Teams)

	info := p.Info
	require.Equal(t, 1, info.Len())
	requireNum(t, 20.2, info.At(0, "bWAR"))
	require.Equal(t, "Left", info.At(0, "Batting Hand").String())
	require.Equal(t, "Left", info.At(0, "Throwing Hand").String())
	require.Equal(t, 76, info.At(0, "Height (in.)").Int())
	require.Equal(t, 220, info.At(0, "Weight (lbs.)").Int())
	require.Equal(t, "1988-11-06", info.At(0, "Birth Date").String())
	require.Equal(t, "Ladner", info.At(0, "Birth City").String())
	require.Equal(t, "BC", info.At(0, "Birth State/Province").String())
	require.Equal(t, "Canada", info.At(0, "Birth Country").String())
	require.True(t, info.At(0, "Age").IsNull())
	require.True(t, info.At(0, "Death Date").IsNull())
	require.Equal(t, "Seattle Mariners", info.At(0, "Draft Team").String())
	require.Equal(t, 4, info.At(0, "Draft Round").Int())
	require.Equal(t, 132, info.At(0, "Draft Pick").Int())
	require.Equal(t, 2010, info.At(0, "Draft Year").Int())
	require.Equal(t, "MLB June Amateur Draft", info.At(0, "Draft Type").String())
	require.Equal(t, `"Delta Secondary School (Delta, BC)"`, info.At(0, "High Schools").String())
	require.Equal(t, "2013-05-31", info.At(0, "Debut Date").String())
	require.Equal(t, "24y-6m-25d", info.At(0, "Debut Age").String())
	require.Equal(t, "SEA201305310", info.At(0, "Debut Game ID").String())
	require.Equal(t, 18236, info.At(0, "Debut Rank").Int())
	require.Equal(t, "2019-09-27", info.At(0, "Last Game").String())
	require.Equal(t, "30y-10m-21d", info.At(0, "Last Game Age").String())
	require.Equal(t, "NYA201909270", info.At(0, "Last Game ID").String())
	require.Equal(t, 2013, info.At(0, "Exceeded Rookie Limits").Int())
	require.Equal(t, "James Alston Paxton", info.At(0, "Full Name").String())
	require.Equal(t, 5440000, info.At(0, "Minimum Career Earnings").Int())
	require.Equal(t, 3, info.At(0, "Years Played").Int())
	require.Equal(t, 2, info.At(0, "Teams Played For").Int())
	require.Equal(t, 1, info.At(0, "Most Teams in a Year").Int())

	bling := p.Bling
	require.Equal(t, 1, bling.Len())
	require.Equal(t, 2, bling.At(0, "All-Star").Int())
	require.Equal(t, 1, bling.At(0, "WS Wins").Int())
	require.Equal(t, 0, bling.At(0, "MVPs").Int())
	require.Equal(t, 0, bling.At(0, "Cy Youngs").Int())

	require.Equal(t, 0, p.Batting.Len())

	pt := p.Pitching
	require.Equal(t, 9, pt.Len())

	// regular seasons
	require.Equal(t, "2013", pt.At(0, "Season").String())
	require.Equal(t, "SEA", pt.At(0, "Team").String())
	require.Equal(t, "SEA2013", pt.At(0, "Team ID").String())
	require.Equal(t, "AL", pt.At(0, "League").String())
	require.Equal(t, "Regular Season", pt.At(0, "Game Type").String())
	require.Equal(t, 3, pt.At(0, "W").Int())
	require.Equal(t, 21, pt.At(0, "SO").Int())
	requireNum(t, 24, pt.At(0, "IP"))
	requireNum(t, 1.50, pt.At(0, "RA9"))
	require.Equal(t, 490000, pt.At(0, "Salary").Int())
	requireNum(t, 0.268, pt.At(0, "BAbip"))
	require.Equal(t, "22.1%", pt.At(0, "SO%").String())
	requireNum(t, 0.004, pt.At(0, "cWPA"))

	require.Equal(t, "2018", pt.At(1, "Season").String())
	require.Equal(t, 1, pt.At(1, "AS").Int())
	require.Equal(t, 5, pt.At(1, "CYA Finish").Int())
	requireNum(t, 160.333, pt.At(1, "IP"))
	require.Equal(t, 4950000, pt.At(1, "Salary").Int())
	requireNum(t, 0.024, pt.At(1, "cWPA"))

	require.Equal(t, "NYY2019", pt.At(2, "Team ID").String())
	require.Equal(t, 0, pt.At(2, "AS").Int())
	require.True(t, pt.At(2, "CYA Finish").IsNull())
	requireNum(t, 150.667, pt.At(2, "IP"))
	require.Equal(t, "$8,575,000", pt.At(2, "Salary").String())

	// overall career totals, shifted by the markup
	require.Equal(t, "Career Totals", pt.At(3, "Season").String())
	require.True(t, pt.At(3, "Team").IsNull())
	require.True(t, pt.At(3, "League").IsNull())
	require.True(t, pt.At(3, "AS").IsNull())
	require.Equal(t, 29, pt.At(3, "W").Int())
	requireNum(t, 335.333, pt.At(3, "IP"))
	requireNum(t, 7.2, pt.At(3, "Pitching bWAR"))
	requireNum(t, 3.87, pt.At(3, "RA9"))
	requireNum(t, 0.303, pt.At(3, "BAbip"))

	// franchise and league career totals
	require.Equal(t, "Career Totals", pt.At(4, "Season").String())
	require.Equal(t, "SEA", pt.At(4, "Team").String())
	require.True(t, pt.At(4, "Team ID").IsNull())
	require.Equal(t, 0, pt.At(4, "AS").Int())
	require.Equal(t, 14, pt.At(4, "W").Int())
	requireNum(t, 3.71, pt.At(4, "RA9"))
	require.True(t, pt.At(4, "BAbip").IsNull())
	require.Equal(t, "NYY", pt.At(5, "Team").String())
	require.Equal(t, "AL", pt.At(6, "League").String())
	require.Equal(t, 29, pt.At(6, "W").Int())

	// postseason
	require.Equal(t, "2019", pt.At(7, "Season").String())
	require.Equal(t, "Postseason", pt.At(7, "Game Type").String())
	require.Equal(t, "NYY2019", pt.At(7, "Team ID").String())
	require.Equal(t, 1, pt.At(7, "W").Int())
	requireNum(t, 13, pt.At(7, "IP"))
	require.Equal(t, "Career Totals", pt.At(8, "Season").String())
	require.Equal(t, "Postseason", pt.At(8, "Game Type").String())
	require.True(t, pt.At(8, "AS").IsNull())
	requireNum(t, 13, pt.At(8, "IP"))

	fd := p.Fielding
	require.Equal(t, 4, fd.Len())
	require.Equal(t, "2013", fd.At(0, "Season").String())
	require.Equal(t, "P", fd.At(0, "Position").String())
	requireNum(t, 24, fd.At(0, "Inn"))
	requireNum(t, 160.333, fd.At(1, "Inn"))
	require.Equal(t, "SEA2018", fd.At(1, "Team ID").String())
	require.Equal(t, "Career Totals", fd.At(3, "Season").String())
	require.Equal(t, "P", fd.At(3, "Position").String())
	require.Equal(t, 61, fd.At(3, "G").Int())
	requireNum(t, 335.333, fd.At(3, "Inn"))
}

func TestExtractTeam(t *testing.T) {
	s := testScraper(nil)
	tm, err := s.ExtractTeam(context.Background(), &bref.Document{
		Path: "/teams/NYY/2017.shtml",
		Body: readFixture(t, "team_NYY_2017.html"),
	})
	require.NoError(t, err)

	require.Equal(t, "2017 New York Yankees", tm.Name)
	require.Equal(t, "NYY2017", tm.ID)
	require.Equal(t, []string{"judgeaa01", "gardnbr01", "severlu01", "sabatcc01"}, tm.Players)

	info := tm.Info
	require.Equal(t, 1, info.Len())
	require.Equal(t, "New York Yankees", info.At(0, "Team").String())
	require.Equal(t, 2017, info.At(0, "Season").Int())
	require.Equal(t, 91, info.At(0, "Wins").Int())
	require.Equal(t, 71, info.At(0, "Losses").Int())
	require.Equal(t, 0, info.At(0, "Ties").Int())
	require.Equal(t, 2, info.At(0, "Division Finish").Int())
	require.Equal(t, "AL East", info.At(0, "Division").String())
	require.Equal(t, "Lost ALCS", info.At(0, "Postseason Finish").String())
	require.Equal(t, "Joe Girardi (91-71)", info.At(0, "Managers").String())
	require.Equal(t, "Randy Levine", info.At(0, "President").String())
	require.Equal(t, "Brian Cashman", info.At(0, "General Manager").String())
	require.Equal(t, "Yankee Stadium III", info.At(0, "Venue").String())
	require.Equal(t, "3,146,966", info.At(0, "Attendance").String())
	require.Equal(t, "6th of 30", info.At(0, "Attendance Rank").String())
	require.Equal(t, 104, info.At(0, "Multi-Year Batting Park Factor").Int())
	require.Equal(t, 103, info.At(0, "Multi-Year Pitching Park Factor").Int())
	require.Equal(t, 105, info.At(0, "One-Year Batting Park Factor").Int())
	require.Equal(t, 104, info.At(0, "One-Year Pitching Park Factor").Int())
	require.Equal(t, 100, info.At(0, "Pythagorean Wins").Int())
	require.Equal(t, 62, info.At(0, "Pythagorean Losses").Int())
	require.Equal(t, 0, info.At(0, "Team Gold Glove").Int())
	require.Equal(t, 0, info.At(0, "Pennant").Int())
	require.Equal(t, 0, info.At(0, "World Series").Int())

	// regular season sorts before postseason, players in descending id
	// order, totals rows last
	bt := tm.Batting
	require.Equal(t, 4, bt.Len())
	require.Equal(t, "Aaron Judge", bt.At(0, "Player").String())
	require.Equal(t, "judgeaa01", bt.At(0, "Player ID").String())
	require.Equal(t, "Regular Season", bt.At(0, "Game Type").String())
	require.Equal(t, "RF", bt.At(0, "Position").String())
	require.Equal(t, 52, bt.At(0, "HR").Int())
	require.Equal(t, 1, bt.At(0, "AS").Int())
	require.Equal(t, 1, bt.At(0, "SS").Int())
	require.Equal(t, 2, bt.At(0, "MVP Finish").Int())
	require.Equal(t, 0, bt.At(0, "GG").Int())
	require.Equal(t, 51, bt.At(0, "Rbat").Int())
	require.Equal(t, "$544,500", bt.At(0, "Salary").String())
	require.Equal(t, "2017", bt.At(0, "Season").String())
	require.Equal(t, "New York Yankees", bt.At(0, "Team").String())
	require.Equal(t, "NYY2017", bt.At(0, "Team ID").String())
	require.Equal(t, "Brett Gardner", bt.At(1, "Player").String())
	require.Equal(t, 0, bt.At(1, "AS").Int())
	require.Equal(t, 10, bt.At(1, "Rbat").Int())
	require.Equal(t, "Team Totals", bt.At(2, "Player").String())
	require.True(t, bt.At(2, "Player ID").IsNull())
	require.True(t, bt.At(2, "AS").IsNull())
	require.Equal(t, 61, bt.At(2, "Rbat").Int())
	require.Equal(t, "Postseason", bt.At(3, "Game Type").String())
	require.Equal(t, "judgeaa01", bt.At(3, "Player ID").String())
	require.Equal(t, 4, bt.At(3, "HR").Int())
	require.Equal(t, 1, bt.At(3, "AS").Int())
	require.Equal(t, 2, bt.At(3, "MVP Finish").Int())
	require.True(t, bt.At(3, "Rbat").IsNull())

	pt := tm.Pitching
	require.Equal(t, 4, pt.Len())
	require.Equal(t, "Luis Severino", pt.At(0, "Player").String())
	require.Equal(t, 1, pt.At(0, "AS").Int())
	require.Equal(t, 3, pt.At(0, "CYA Finish").Int())
	requireNum(t, 193.333, pt.At(0, "IP"))
	requireNum(t, 3.26, pt.At(0, "RA9"))
	require.Equal(t, "$550,975", pt.At(0, "Salary").String())
	require.Equal(t, "CC Sabathia", pt.At(1, "Player").String())
	requireNum(t, 148.667, pt.At(1, "IP"))
	require.Equal(t, "Team Totals", pt.At(2, "Player").String())
	requireNum(t, 1458.333, pt.At(2, "IP"))
	require.Equal(t, "Postseason", pt.At(3, "Game Type").String())
	require.Equal(t, "severlu01", pt.At(3, "Player ID").String())
	require.Equal(t, 3, pt.At(3, "CYA Finish").Int())
	requireNum(t, 16, pt.At(3, "IP"))
	require.True(t, pt.At(3, "RA9").IsNull())

	fd := tm.Fielding
	require.Equal(t, 2, fd.Len())
	require.Equal(t, "Aaron Judge", fd.At(0, "Player").String())
	require.Equal(t, "RF", fd.At(0, "Position").String())
	requireNum(t, 1302.667, fd.At(0, "Inn"))
	require.Equal(t, "Team Totals", fd.At(1, "Player").String())
	require.True(t, fd.At(1, "Player ID").IsNull())
	requireNum(t, 1458.333, fd.At(1, "Inn"))
}
