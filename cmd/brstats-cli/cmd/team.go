package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"brstats/cmd/brstats-cli/utils"
	"brstats/lib/scrapers/bref"
)

func init() {
	rootCmd.AddCommand(teamCmd)
}

var teamCmd = &cobra.Command{
	Use:   "team <abbreviation> <season>",
	Short: "Prints the tables of one team season. The abbreviation must be the one in use that season.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := scraper.Team(cmd.Context(), bref.TeamRef{
			Abv:  args[0],
			Year: args[1],
		})
		if err != nil {
			return err
		}

		fmt.Println(team.Name)
		utils.RenderFrame("Info", team.Info, csvOut)
		utils.RenderFrame("Batting", team.Batting, csvOut)
		utils.RenderFrame("Pitching", team.Pitching, csvOut)
		utils.RenderFrame("Fielding", team.Fielding, csvOut)
		return nil
	},
}
