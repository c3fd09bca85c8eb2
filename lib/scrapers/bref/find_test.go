package bref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/scrapers/bref"
)

func TestFindTeamsEraAdjusts(t *testing.T) {
	s := testScraper(nil)

	refs := s.FindTeams(bref.TeamSearch{
		Teams:   []string{"wsn"},
		Seasons: []string{"2004-2005"},
	})
	require.Equal(t, []bref.TeamRef{
		{Abv: "MON", Year: "2004"},
		{Abv: "WSN", Year: "2005"},
	}, refs)
}

func TestFindTeamsBackwardsRange(t *testing.T) {
	s := testScraper(nil)

	refs := s.FindTeams(bref.TeamSearch{
		Teams:   []string{"WSN"},
		Seasons: []string{"2005-2004"},
	})
	require.Equal(t, []bref.TeamRef{
		{Abv: "MON", Year: "2004"},
		{Abv: "WSN", Year: "2005"},
	}, refs)
}

func TestFindTeamsLeagueSelectors(t *testing.T) {
	s := testScraper(nil)

	refs := s.FindTeams(bref.TeamSearch{
		Teams:   []string{"BML"},
		Seasons: []string{"1930"},
	})
	require.Equal(t, []bref.TeamRef{{Abv: "CAG", Year: "1930"}}, refs)

	refs = s.FindTeams(bref.TeamSearch{
		Teams:   []string{"WML"},
		Seasons: []string{"1930"},
	})
	require.Equal(t, []bref.TeamRef{
		{Abv: "NYY", Year: "1930"},
		{Abv: "PHA", Year: "1930"},
	}, refs)
}

func TestFindTeamsInvalidInputs(t *testing.T) {
	s := testScraper(nil)

	require.Empty(t, s.FindTeams(bref.TeamSearch{
		Teams:   []string{"ZZZ"},
		Seasons: []string{"2018"},
	}))
	require.Empty(t, s.FindTeams(bref.TeamSearch{
		Teams:   []string{"SEA"},
		Seasons: []string{"1850-1860"},
	}))
}

func TestFindASG(t *testing.T) {
	s := testScraper(nil)

	require.Equal(t, []bref.GameRef{
		{HomeTeam: "ALLSTAR", Date: "1959", Doubleheader: "1"},
		{HomeTeam: "ALLSTAR", Date: "1959", Doubleheader: "2"},
	}, s.FindASG([]string{"1959"}))

	require.Empty(t, s.FindASG([]string{"2020"}))

	// 1945 was cancelled
	require.Equal(t, []bref.GameRef{
		{HomeTeam: "ALLSTAR", Date: "1944", Doubleheader: "0"},
		{HomeTeam: "ALLSTAR", Date: "1946", Doubleheader: "0"},
	}, s.FindASG([]string{"1944-1946"}))

	require.Empty(t, s.FindASG([]string{"1920"}))
}

func TestFindASGAllSeasons(t *testing.T) {
	s := testScraper(nil)

	refs := s.FindASG(nil)
	// 1933 through 2025, minus two cancellations, plus the four
	// two-game summers
	require.Len(t, refs, 95)
	require.Equal(t, bref.GameRef{HomeTeam: "ALLSTAR", Date: "1933", Doubleheader: "0"}, refs[0])
	require.Equal(t, bref.GameRef{HomeTeam: "ALLSTAR", Date: "2025", Doubleheader: "0"}, refs[len(refs)-1])
}
