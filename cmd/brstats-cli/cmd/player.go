package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"brstats/cmd/brstats-cli/utils"
)

func init() {
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <player id>",
	Short: "Prints the career tables of one player.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player, err := scraper.Player(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(player.Name)
		utils.RenderFrame("Info", player.Info, csvOut)
		utils.RenderFrame("Bling", player.Bling, csvOut)
		utils.RenderFrame("Batting", player.Batting, csvOut)
		utils.RenderFrame("Pitching", player.Pitching, csvOut)
		utils.RenderFrame("Fielding", player.Fielding, csvOut)
		return nil
	},
}
