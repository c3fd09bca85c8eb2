package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"brstats/lib/configutil"
	"brstats/lib/refdata/abbrevs"
	"brstats/lib/refdata/nohitters"
)

func init() {
	refdataCmd.AddCommand(refdataImportCmd)
	rootCmd.AddCommand(refdataCmd)
}

var refdataCmd = &cobra.Command{
	Use:   "refdata",
	Short: "Manages the reference tables every scrape consults.",
}

// refdataFile is the import format: one json5 document carrying both
// reference tables.
type refdataFile struct {
	Abbreviations []struct {
		Team      string `json:"team"`
		Franchise string `json:"franchise"`
		First     int    `json:"first"`
		Last      int    `json:"last"`
		Majors    bool   `json:"majors"`
		Alias     string `json:"alias"`
	} `json:"abbreviations"`
	NoHitters []struct {
		GameID   string   `json:"game_id"`
		Year     string   `json:"year"`
		Team     string   `json:"team"`
		GameType string   `json:"game_type"`
		Perfect  bool     `json:"perfect"`
		Pitchers []string `json:"pitchers"`
	} `json:"no_hitters"`
}

var refdataImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Loads reference tables from a json5 file into the local cache.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := configutil.ReadConfig[refdataFile](args[0])
		if err != nil {
			return fmt.Errorf("read reference data: %w", err)
		}

		var spans []abbrevs.Span
		for _, e := range parsed.Abbreviations {
			spans = append(spans, abbrevs.Span{
				Team:      e.Team,
				Franchise: e.Franchise,
				First:     e.First,
				Last:      e.Last,
				Majors:    e.Majors,
				Alias:     e.Alias,
			})
		}
		var records []nohitters.Record
		for _, e := range parsed.NoHitters {
			records = append(records, nohitters.Record{
				GameID:   e.GameID,
				Year:     e.Year,
				Team:     e.Team,
				GameType: e.GameType,
				Perfect:  e.Perfect,
				Pitchers: e.Pitchers,
			})
		}

		db, err := openRefdata()
		if err != nil {
			return err
		}
		defer db.Close()

		if len(spans) > 0 {
			if err := abbrevs.Save(cmd.Context(), db, spans); err != nil {
				return fmt.Errorf("save abbreviations: %w", err)
			}
		}
		if len(records) > 0 {
			if err := nohitters.Save(cmd.Context(), db, records); err != nil {
				return fmt.Errorf("save no-hitters: %w", err)
			}
		}

		fmt.Printf("imported %d abbreviation spans and %d no-hitters\n", len(spans), len(records))
		return nil
	},
}
