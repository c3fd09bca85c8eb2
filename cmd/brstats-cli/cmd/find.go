package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"brstats/cmd/brstats-cli/utils"
	"brstats/lib/scrapers/bref"
)

var (
	searchTeams     []string
	searchSeasons   []string
	searchOpponents []string
	searchDates     []string
	searchHomeAway  string
	searchGameType  string
)

func init() {
	findGamesCmd.Flags().StringSliceVarP(&searchTeams, "team", "t", nil, "team abbreviations, ALL for every team")
	findGamesCmd.Flags().StringSliceVarP(&searchSeasons, "season", "s", nil, "seasons or inclusive ranges like 1995-2001")
	findGamesCmd.Flags().StringSliceVarP(&searchOpponents, "opponent", "o", nil, "opponent abbreviations")
	findGamesCmd.Flags().StringSliceVarP(&searchDates, "date", "d", nil, "MMDD dates or inclusive ranges like 0314-0325")
	findGamesCmd.Flags().StringVar(&searchHomeAway, "home-away", "ALL", "HOME, AWAY, or ALL")
	findGamesCmd.Flags().StringVar(&searchGameType, "game-type", "ALL", "REG, POST, or ALL")
	rootCmd.AddCommand(findGamesCmd)

	findTeamsCmd.Flags().StringSliceVarP(&searchTeams, "team", "t", nil, "team abbreviations, or the league selectors BML and WML")
	findTeamsCmd.Flags().StringSliceVarP(&searchSeasons, "season", "s", nil, "seasons or inclusive ranges like 1995-2001")
	rootCmd.AddCommand(findTeamsCmd)

	rootCmd.AddCommand(findASGCmd)
}

var findGamesCmd = &cobra.Command{
	Use:   "find-games",
	Short: "Searches season schedules for games matching the flags and prints their refs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		refs, err := scraper.FindGames(cmd.Context(), bref.GameSearch{
			Teams:     searchTeams,
			Seasons:   searchSeasons,
			Opponents: searchOpponents,
			Dates:     searchDates,
			HomeAway:  bref.HomeAway(searchHomeAway),
			GameType:  bref.GameTypeFilter(searchGameType),
		})
		if err != nil {
			return err
		}
		renderGameRefs(refs)
		return nil
	},
}

var findTeamsCmd = &cobra.Command{
	Use:   "find-teams",
	Short: "Resolves team abbreviations and seasons into team refs. No pages are fetched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		refs := scraper.FindTeams(bref.TeamSearch{
			Teams:   searchTeams,
			Seasons: searchSeasons,
		})

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Team", "Season"})
		for _, ref := range refs {
			t.AppendRow(table.Row{ref.Abv, ref.Year})
		}
		t.Render()
		return nil
	},
}

var findASGCmd = &cobra.Command{
	Use:   "find-asg [season...]",
	Short: "Prints refs for the All-Star Games of the given seasons, or of every season.",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderGameRefs(scraper.FindASG(args))
		return nil
	},
}

func renderGameRefs(refs []bref.GameRef) {
	t := utils.NewTable()
	t.AppendHeader(table.Row{"Home Team", "Date", "Doubleheader"})
	for _, ref := range refs {
		t.AppendRow(table.Row{ref.HomeTeam, ref.Date, ref.Doubleheader})
	}
	t.Render()
}
