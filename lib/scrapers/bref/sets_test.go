package bref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/frame"
	"brstats/lib/refdata/nohitters"
	"brstats/lib/scrapers/bref"
)

func setGame(id string, players []string, teamInfo *frame.Frame) *bref.Game {
	empty := func() *frame.Frame { return frame.New("Game ID") }
	return &bref.Game{
		ID:       id,
		Info:     empty(),
		Batting:  empty(),
		Pitching: empty(),
		Fielding: empty(),
		TeamInfo: teamInfo,
		UmpInfo:  empty(),
		Players:  players,
	}
}

func teamInfoFrame(rows ...map[string]frame.Value) *frame.Frame {
	f := frame.New("Team", "Team ID", "Result")
	for _, row := range rows {
		f.AppendMap(row)
	}
	return f
}

func TestGameSetRecords(t *testing.T) {
	s := testScraper(nil)

	g1 := setGame("SEA201205070", []string{"suzukic01", "hernafe02"}, teamInfoFrame(
		map[string]frame.Value{"Team": frame.Text("Seattle Mariners"), "Team ID": frame.Text("SEA2012"), "Result": frame.Text("Win")},
		map[string]frame.Value{"Team": frame.Text("New York Yankees"), "Team ID": frame.Text("NYY2012"), "Result": frame.Text("Loss")},
	))
	g2 := setGame("SEA201205080", []string{"suzukic01", "darviyu01"}, teamInfoFrame(
		map[string]frame.Value{"Team": frame.Text("Seattle Mariners"), "Team ID": frame.Text("SEA2012"), "Result": frame.Text("Win")},
		map[string]frame.Value{"Team": frame.Text("New York Yankees"), "Team ID": frame.Text("NYY2012"), "Result": frame.Text("Loss")},
	))

	set := s.GameSet([]*bref.Game{g1, g2})
	require.Equal(t, 2, set.Len())
	require.Equal(t, []string{"suzukic01", "hernafe02", "darviyu01"}, set.Players)
	require.Equal(t, 4, set.TeamInfo.Len())

	rec := set.Records
	require.Equal(t, 2, rec.Len())
	require.Equal(t, "NYY", rec.At(0, "Franchise").String())
	require.Equal(t, frame.Int(0), rec.At(0, "Wins"))
	require.Equal(t, frame.Int(2), rec.At(0, "Losses"))
	require.Equal(t, frame.Num(0), rec.At(0, "Win %"))
	require.Equal(t, "SEA", rec.At(1, "Franchise").String())
	require.Equal(t, frame.Int(2), rec.At(1, "Wins"))
	require.Equal(t, frame.Num(1), rec.At(1, "Win %"))
}

func TestGameSetRecordsAllStarFallback(t *testing.T) {
	s := testScraper(nil)

	// All-Star teams have no team id, so the team name stands in
	g := setGame("1999", nil, teamInfoFrame(
		map[string]frame.Value{"Team": frame.Text("American League"), "Result": frame.Text("Win")},
		map[string]frame.Value{"Team": frame.Text("National League"), "Result": frame.Text("Loss")},
	))

	rec := s.GameSet([]*bref.Game{g}).Records
	require.Equal(t, 2, rec.Len())
	require.Equal(t, "American League", rec.At(0, "Franchise").String())
	require.Equal(t, frame.Int(1), rec.At(0, "Wins"))
	require.Equal(t, "National League", rec.At(1, "Franchise").String())
	require.Equal(t, frame.Int(1), rec.At(1, "Losses"))
}

func TestGameSetAddNoHitters(t *testing.T) {
	s := testScraper([]nohitters.Record{{
		GameID:   "SEA201208150",
		Year:     "2012",
		Team:     "SEA",
		GameType: "R",
		Perfect:  true,
		Pitchers: []string{"hernafe02"},
	}})

	pitching := frame.New("Game ID", "Player ID", "Player", "Team ID", "NH", "PG", "CNH")
	addRow := func(gameID, playerID, player, teamID string) {
		row := map[string]frame.Value{
			"Game ID": frame.Text(gameID),
			"Player":  frame.Text(player),
			"Team ID": frame.Text(teamID),
		}
		if playerID != "" {
			row["Player ID"] = frame.Text(playerID)
		}
		pitching.AppendMap(row)
	}
	addRow("SEA201208150", "hernafe02", "Felix Hernandez", "SEA2012")
	addRow("SEA201208150", "", "Team Totals", "SEA2012")
	addRow("SEA201208150", "darviyu01", "Yu Darvish", "NYY2012")
	addRow("SEA201208150", "", "Team Totals", "NYY2012")
	addRow("SEA201205070", "hernafe02", "Felix Hernandez", "SEA2012")

	g1 := setGame("SEA201208150", nil, teamInfoFrame())
	g2 := setGame("SEA201205070", nil, teamInfoFrame())
	set := s.GameSet([]*bref.Game{g1, g2})
	set.Pitching = pitching

	set.AddNoHitters()
	for r, want := range []int{1, 1, 0, 0, 0} {
		require.Equal(t, frame.Int(want), pitching.At(r, "NH"), "NH row %d", r)
		require.Equal(t, frame.Int(want), pitching.At(r, "PG"), "PG row %d", r)
	}
}

func TestTeamSetRecords(t *testing.T) {
	s := testScraper(nil)

	team := func(id, name string, wins, losses, ties int, players ...string) *bref.Team {
		info := frame.New("Team", "Team ID", "Wins", "Losses", "Ties")
		info.AppendMap(map[string]frame.Value{
			"Team":    frame.Text(name),
			"Team ID": frame.Text(id),
			"Wins":    frame.Int(wins),
			"Losses":  frame.Int(losses),
			"Ties":    frame.Int(ties),
		})
		empty := func() *frame.Frame { return frame.New("Team ID") }
		return &bref.Team{
			ID:       id,
			Info:     info,
			Batting:  empty(),
			Pitching: empty(),
			Fielding: empty(),
			Players:  players,
		}
	}

	set := s.TeamSet([]*bref.Team{
		team("MON2004", "Montreal Expos", 67, 95, 0, "vidrojo01"),
		team("WSN2005", "Washington Nationals", 81, 81, 1, "vidrojo01", "guillcr01"),
	})
	require.Equal(t, 2, set.Len())
	require.Equal(t, []string{"vidrojo01", "guillcr01"}, set.Players)

	// both seasons roll up under the franchise id
	rec := set.Records
	require.Equal(t, 1, rec.Len())
	require.Equal(t, "WSN", rec.At(0, "Franchise").String())
	require.Equal(t, frame.Int(325), rec.At(0, "Games"))
	require.Equal(t, frame.Int(148), rec.At(0, "Wins"))
	require.Equal(t, frame.Int(176), rec.At(0, "Losses"))
	require.Equal(t, frame.Int(1), rec.At(0, "Ties"))
	require.Equal(t, frame.Num(148.0/324.0), rec.At(0, "Win %"))
}

func TestTeamSetAddNoHitters(t *testing.T) {
	s := testScraper([]nohitters.Record{{
		GameID:   "SEA201208150",
		Year:     "2012",
		Team:     "SEA",
		GameType: "R",
		Perfect:  true,
		Pitchers: []string{"hernafe02"},
	}})

	pitching := frame.New("Player ID", "Player", "Team ID", "Game Type", "NH", "PG", "CNH")
	addRow := func(playerID, player, teamID string) {
		row := map[string]frame.Value{
			"Player":    frame.Text(player),
			"Team ID":   frame.Text(teamID),
			"Game Type": frame.Text("Regular Season"),
		}
		if playerID != "" {
			row["Player ID"] = frame.Text(playerID)
		}
		pitching.AppendMap(row)
	}
	addRow("hernafe02", "Felix Hernandez", "SEA2012")
	addRow("", "Team Totals", "SEA2012")
	addRow("hernafe02", "Felix Hernandez", "SEA2011")
	addRow("", "Team Totals", "SEA2011")

	empty := func() *frame.Frame { return frame.New("Team ID") }
	mkTeam := func(id string) *bref.Team {
		info := frame.New("Team", "Team ID", "Wins", "Losses", "Ties")
		info.AppendMap(map[string]frame.Value{"Team ID": frame.Text(id)})
		return &bref.Team{ID: id, Info: info, Batting: empty(), Pitching: empty(), Fielding: empty()}
	}
	set := s.TeamSet([]*bref.Team{mkTeam("SEA2012"), mkTeam("SEA2011")})
	set.Pitching = pitching

	set.AddNoHitters()
	for r, want := range []int{1, 1, 0, 0} {
		require.Equal(t, frame.Int(want), pitching.At(r, "NH"), "NH row %d", r)
		require.Equal(t, frame.Int(want), pitching.At(r, "PG"), "PG row %d", r)
		require.Equal(t, frame.Int(0), pitching.At(r, "CNH"), "CNH row %d", r)
	}
}

func TestPlayerSetUpdateTeamNames(t *testing.T) {
	s := testScraper(nil)

	info := frame.New("Player ID", "Draft Team")
	info.AppendMap(map[string]frame.Value{
		"Player ID":  frame.Text("glaustr01"),
		"Draft Team": frame.Text("Anaheim Angels"),
	})
	p := &bref.Player{
		ID:       "glaustr01",
		Info:     info,
		Bling:    frame.New("Player ID"),
		Batting:  frame.New("Player ID"),
		Pitching: frame.New("Player ID"),
		Fielding: frame.New("Player ID"),
	}

	set := s.PlayerSet([]*bref.Player{p})
	set.UpdateTeamNames()
	require.Equal(t, "Los Angeles Angels", set.Info.At(0, "Draft Team").String())
}
