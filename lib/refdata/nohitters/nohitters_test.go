package nohitters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/refdata/nohitters"
	"brstats/lib/testutil"
)

func fixtureRecords() []nohitters.Record {
	return []nohitters.Record{
		{GameID: "CIN202408020", Year: "2024", Team: "CIN", GameType: "R", Pitchers: []string{"snellbl01"}},
		{GameID: "NYA195610080", Year: "1956", Team: "NYY", GameType: "P", Perfect: true, Pitchers: []string{"larsedo01"}},
		{GameID: "PHI201005290", Year: "2010", Team: "PHI", GameType: "R", Perfect: true, Pitchers: []string{"hallaro01"}},
		{GameID: "CIN201010060", Year: "2010", Team: "PHI", GameType: "P", Pitchers: []string{"hallaro01"}},
		{GameID: "SEA201206080", Year: "2012", Team: "SEA", GameType: "R", Pitchers: []string{
			"millwke01", "pryorst01", "furbuch01", "luetglu01", "leagubr01", "wilheto01",
		}},
		{GameID: "SDN201805040", Year: "2018", Team: "LAD", GameType: "R", Pitchers: []string{
			"buehlwa01", "cingrto01", "garciyi01", "liberad01",
		}},
		{GameID: "NYA202206250", Year: "2022", Team: "HOU", GameType: "R", Pitchers: []string{
			"javiecr01", "nerishe01", "pressry01",
		}},
		{GameID: "PHI202211020", Year: "2022", Team: "HOU", GameType: "P", Pitchers: []string{
			"javiecr01", "abreubr01", "montera01", "pressry01",
		}},
		{Year: "1923", Team: "KCM", GameType: "R", Pitchers: []string{"roganbu99"}},
	}
}

func TestGameMaps(t *testing.T) {
	r := nohitters.Build(fixtureRecords())

	require.Equal(t, "snellbl01", r.GameINH["CIN202408020"])
	require.Equal(t, "larsedo01", r.GameINH["NYA195610080"])

	_, ok := r.GamePG["CIN202408020"]
	require.False(t, ok)
	require.Equal(t, "larsedo01", r.GamePG["NYA195610080"])

	_, ok = r.GameCNH["NYA195610080"]
	require.False(t, ok)
	require.Equal(t, []string{
		"millwke01", "pryorst01", "furbuch01", "luetglu01", "leagubr01", "wilheto01",
	}, r.GameCNH["SEA201206080"])
}

func TestPlayerMaps(t *testing.T) {
	r := nohitters.Build(fixtureRecords())

	require.Nil(t, r.PlayerINH["pressry01"])
	require.Equal(t, []nohitters.PlayerEntry{
		{Year: "2010", Team: "PHI", GameType: "P"},
		{Year: "2010", Team: "PHI", GameType: "R"},
	}, r.PlayerINH["hallaro01"])

	require.Nil(t, r.PlayerPG["snellbl01"])
	require.Equal(t, []nohitters.PlayerEntry{
		{Year: "1956", Team: "NYY", GameType: "P"},
	}, r.PlayerPG["larsedo01"])

	require.Equal(t, []nohitters.PlayerEntry{
		{Year: "2022", Team: "HOU", GameType: "P"},
		{Year: "2022", Team: "HOU", GameType: "R"},
	}, r.PlayerCNH["pressry01"])
}

func TestTeamMaps(t *testing.T) {
	r := nohitters.Build(fixtureRecords())

	require.Nil(t, r.TeamINH["LAD2018"])
	require.Equal(t, []nohitters.TeamEntry{
		{PlayerID: "hallaro01", GameType: "P"},
		{PlayerID: "hallaro01", GameType: "R"},
	}, r.TeamINH["PHI2010"])

	require.Equal(t, []nohitters.TeamEntry{
		{PlayerID: "larsedo01", GameType: "P"},
	}, r.TeamPG["NYY1956"])

	require.Equal(t, []nohitters.TeamCombinedEntry{
		{PlayerID: "javiecr01", GameType: "P", GameID: "PHI202211020"},
		{PlayerID: "abreubr01", GameType: "P", GameID: "PHI202211020"},
		{PlayerID: "montera01", GameType: "P", GameID: "PHI202211020"},
		{PlayerID: "pressry01", GameType: "P", GameID: "PHI202211020"},
		{PlayerID: "javiecr01", GameType: "R", GameID: "NYA202206250"},
		{PlayerID: "nerishe01", GameType: "R", GameID: "NYA202206250"},
		{PlayerID: "pressry01", GameType: "R", GameID: "NYA202206250"},
	}, r.TeamCNH["HOU2022"])

	// no box score, so the game id stays empty
	require.Equal(t, []nohitters.TeamEntry{
		{PlayerID: "roganbu99", GameType: "R"},
	}, r.TeamINH["KCM1923"])
	_, ok := r.GameINH[""]
	require.False(t, ok)
}

func TestPopulated(t *testing.T) {
	require.False(t, nohitters.Build(nil).Populated())
	require.True(t, nohitters.Build(fixtureRecords()).Populated())
}

func TestCacheRoundTrip(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "nohitters",
		DbSchema: nohitters.Schema,
	})
	defer cleanup()

	ctx := context.Background()
	records := fixtureRecords()
	require.NoError(t, nohitters.Save(ctx, res.DB, records))

	loaded, err := nohitters.Load(ctx, res.DB)
	require.NoError(t, err)
	require.Equal(t, records, loaded)
}
