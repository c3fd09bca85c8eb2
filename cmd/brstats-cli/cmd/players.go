package cmd

import (
	"github.com/spf13/cobra"

	"brstats/cmd/brstats-cli/utils"
	"brstats/lib/textutil"
)

func init() {
	rootCmd.AddCommand(allPlayersCmd)
}

var allPlayersCmd = &cobra.Command{
	Use:   "all-players [name...]",
	Short: "Prints the id, name, and career span of every player in the site index, optionally filtered by name.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := scraper.AllPlayers(cmd.Context())
		if err != nil {
			return err
		}
		if len(args) > 0 {
			matchers := make([]string, len(args))
			for i, a := range args {
				matchers[i] = textutil.NormalizeName(a)
			}
			players = players.Filter(func(row int) bool {
				return textutil.MatchName(players.At(row, "Name").String(), matchers)
			})
		}
		utils.RenderFrame("Players", players, csvOut)
		return nil
	},
}
