package bref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/scrapers/bref"
)

func TestValidateGames(t *testing.T) {
	s := testScraper(nil)

	refs := s.ValidateGames([]bref.GameRef{
		{HomeTeam: "NYY", Date: "20180507", Doubleheader: "0"},
		{HomeTeam: "sea", Date: "20180507", Doubleheader: "2"},
		{HomeTeam: "CAG", Date: "19300601", Doubleheader: "0"},
		{HomeTeam: "SEA", Date: "18991004", Doubleheader: "0"},
		{HomeTeam: "SEA", Date: "20251225", Doubleheader: "0"},
		{HomeTeam: "SEA", Date: "2018057", Doubleheader: "0"},
		{HomeTeam: "SEA", Date: "20180507", Doubleheader: "4"},
		{HomeTeam: "KCM", Date: "20180507", Doubleheader: "0"},
	})

	require.Equal(t, []bref.GameRef{
		// box score urls use the alias id
		{HomeTeam: "NYA", Date: "20180507", Doubleheader: "0"},
		{HomeTeam: "SEA", Date: "20180507", Doubleheader: "2"},
	}, refs)
}

func TestValidateAllStarGames(t *testing.T) {
	s := testScraper(nil)

	refs := s.ValidateGames([]bref.GameRef{
		{HomeTeam: "ALLSTAR", Date: "1999", Doubleheader: "0"},
		{HomeTeam: "allstar", Date: "1959", Doubleheader: "2"},
		{HomeTeam: "ALLSTAR", Date: "2020", Doubleheader: "0"},
		{HomeTeam: "ALLSTAR", Date: "1945", Doubleheader: "0"},
		{HomeTeam: "ALLSTAR", Date: "1932", Doubleheader: "0"},
		{HomeTeam: "ALLSTAR", Date: "2026", Doubleheader: "0"},
		{HomeTeam: "ALLSTAR", Date: "1999", Doubleheader: "3"},
		{HomeTeam: "ALLSTAR", Date: "19990713", Doubleheader: "0"},
	})

	require.Equal(t, []bref.GameRef{
		{HomeTeam: "ALLSTAR", Date: "1999", Doubleheader: "0"},
		{HomeTeam: "ALLSTAR", Date: "1959", Doubleheader: "2"},
	}, refs)
}

func TestValidatePlayers(t *testing.T) {
	s := testScraper(nil)

	ids := s.ValidatePlayers([]string{
		"Suzukic01",
		"o'neilp01",
		"nodigits",
		"waytoolongname01",
		"a01",
	})
	require.Equal(t, []string{"suzukic01", "o'neilp01"}, ids)
}

func TestValidateTeams(t *testing.T) {
	s := testScraper(nil)

	refs := s.ValidateTeams([]bref.TeamRef{
		{Abv: "sea", Year: "2018"},
		{Abv: "NYA", Year: "1950"},
		{Abv: "SEA", Year: "1950"},
		{Abv: "SEA", Year: "1870"},
		{Abv: "SEA", Year: "2026"},
		{Abv: "SEA", Year: "20x8"},
		{Abv: "KCM", Year: "2000"},
	})

	require.Equal(t, []bref.TeamRef{
		{Abv: "SEA", Year: "2018"},
		{Abv: "NYA", Year: "1950"},
	}, refs)
}

func TestValidateDates(t *testing.T) {
	s := testScraper(nil)

	require.Equal(t, []string{"ALL"}, s.ValidateDates([]string{"0420", "ALL", "0501"}))
	require.Equal(t, []string{"0314-0325"}, s.ValidateDates([]string{"0325-0314"}))
	require.Equal(t, []string{"314", "0420-0501"}, s.ValidateDates([]string{"314", "0420-0501"}))
	require.Empty(t, s.ValidateDates([]string{"1332", "0025", "abc", "04200-0501"}))
}
