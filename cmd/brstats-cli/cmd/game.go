package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"brstats/cmd/brstats-cli/utils"
	"brstats/lib/scrapers/bref"
)

func init() {
	rootCmd.AddCommand(gameCmd)
}

var gameCmd = &cobra.Command{
	Use:   "game <home team> <date> [doubleheader]",
	Short: "Prints the tables of one box score. All-Star Games take home team ALLSTAR and a year as the date.",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := bref.GameRef{
			HomeTeam:     args[0],
			Date:         args[1],
			Doubleheader: "0",
		}
		if len(args) == 3 {
			ref.Doubleheader = args[2]
		}

		game, err := scraper.Game(cmd.Context(), ref)
		if err != nil {
			return err
		}

		fmt.Println(game.Name)
		utils.RenderFrame("Info", game.Info, csvOut)
		utils.RenderFrame("Linescore", game.Linescore, csvOut)
		utils.RenderFrame("Team Info", game.TeamInfo, csvOut)
		utils.RenderFrame("Batting", game.Batting, csvOut)
		utils.RenderFrame("Pitching", game.Pitching, csvOut)
		utils.RenderFrame("Fielding", game.Fielding, csvOut)
		utils.RenderFrame("Umpires", game.UmpInfo, csvOut)
		return nil
	},
}
