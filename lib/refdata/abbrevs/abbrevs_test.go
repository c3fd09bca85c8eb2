package abbrevs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"brstats/lib/refdata/abbrevs"
	"brstats/lib/testutil"
)

func fixtureSpans() []abbrevs.Span {
	return []abbrevs.Span{
		{Team: "ATH", Franchise: "ATH", First: 1876, Last: 1876, Majors: true},
		{Team: "PHA", Franchise: "ATH", First: 1901, Last: 1954, Majors: true},
		{Team: "KCA", Franchise: "ATH", First: 1955, Last: 1967, Majors: true, Alias: "KC1"},
		{Team: "OAK", Franchise: "ATH", First: 1968, Last: 2024, Majors: true},
		{Team: "ATH", Franchise: "ATH", First: 2025, Last: 2025, Majors: true},

		{Team: "SLB", Franchise: "BAL", First: 1902, Last: 1953, Majors: true},
		{Team: "BAL", Franchise: "BAL", First: 1954, Last: 2025, Majors: true},
		{Team: "BAL", Franchise: "BLT", First: 1914, Last: 1915, Majors: true},

		{Team: "LAA", Franchise: "LAA", First: 1961, Last: 1964, Majors: true},
		{Team: "CAL", Franchise: "LAA", First: 1965, Last: 1996, Majors: true},
		{Team: "ANA", Franchise: "LAA", First: 1997, Last: 2004, Majors: true},
		{Team: "LAA", Franchise: "LAA", First: 2005, Last: 2025, Majors: true},

		{Team: "KCR", Franchise: "KCR", First: 1969, Last: 2025, Majors: true, Alias: "KCA"},
		{Team: "SEA", Franchise: "SEA", First: 1977, Last: 2025, Majors: true},
	}
}

func TestCorrectAbvs(t *testing.T) {
	l := abbrevs.New(fixtureSpans())

	require.Equal(t, []string{"ATH"}, l.CorrectAbvs("OAK", 2025, true))
	require.Empty(t, l.CorrectAbvs("OAK", 2025, false))
	require.Equal(t, []string{"SLB", "BAL"}, l.CorrectAbvs("BAL", 1915, true))
	require.Equal(t, []string{"BAL"}, l.CorrectAbvs("BAL", 1915, false))
	require.Equal(t, []string{"CAL"}, l.CorrectAbvs("LAA", 1977, false))
	require.Empty(t, l.CorrectAbvs("LAA", 1907, false))
	require.Empty(t, l.CorrectAbvs("SER", 2025, false))
}

func TestFranchiseAbv(t *testing.T) {
	l := abbrevs.New(fixtureSpans())

	require.Equal(t, "ATH", l.FranchiseAbv("ATH", 1876))
	require.Equal(t, "BLT", l.FranchiseAbv("BAL", 1915))
	require.Equal(t, "", l.FranchiseAbv("OAK", 2025))
	require.Equal(t, "", l.FranchiseAbv("SER", 2025))
}

func TestAllTeamAbvs(t *testing.T) {
	l := abbrevs.New(fixtureSpans())

	require.Equal(t, []string{"ATH", "KCA", "OAK", "PHA"}, l.AllTeamAbvs("ATH", 2025))
	require.Empty(t, l.AllTeamAbvs("OAK", 2025))
	require.Empty(t, l.AllTeamAbvs("SER", 2025))
}

func TestAliases(t *testing.T) {
	l := abbrevs.New(fixtureSpans())

	require.Equal(t, "SEA", l.ToAlias("SEA", 2025))
	require.Equal(t, "KC1", l.ToAlias("KCA", 1963))
	require.Equal(t, "SER", l.ToAlias("SER", 2025))

	require.Equal(t, "SEA", l.ToRegular("SEA", 2025))
	require.Equal(t, "KCR", l.ToRegular("KCA", 1999))
	require.Equal(t, "KC1", l.ToRegular("KC1", 2025))
	require.Equal(t, "SER", l.ToRegular("SER", 2025))
}

func TestCacheRoundTrip(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "abbrevs",
		DbSchema: abbrevs.Schema,
	})
	defer cleanup()

	ctx := context.Background()
	spans := fixtureSpans()
	require.NoError(t, abbrevs.Save(ctx, res.DB, spans))

	loaded, err := abbrevs.Load(ctx, res.DB)
	require.NoError(t, err)
	require.ElementsMatch(t, spans, loaded)

	l := abbrevs.New(loaded)
	require.Equal(t, []string{"ATH"}, l.CorrectAbvs("OAK", 2025, true))
}
