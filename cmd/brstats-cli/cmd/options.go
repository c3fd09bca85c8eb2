package cmd

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"brstats/cmd/brstats-cli/utils"
	"brstats/lib/options"
)

func init() {
	optionsCmd.AddCommand(optionsSetCmd)
	optionsCmd.AddCommand(optionsUnsetCmd)
	optionsCmd.AddCommand(optionsClearCmd)
	rootCmd.AddCommand(optionsCmd)
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Prints the current options.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := opts.Current()

		t := utils.NewTable()
		t.AppendHeader(table.Row{"Option", "Value"})
		t.AppendRow(table.Row{options.AddNoHitters, s.AddNoHitters})
		t.AppendRow(table.Row{options.UpdateTeamNames, s.UpdateTeamNames})
		t.AppendRow(table.Row{options.UpdateVenueNames, s.UpdateVenueNames})
		t.AppendRow(table.Row{options.RequestBuffer, s.RequestBuffer})
		t.AppendRow(table.Row{options.TimeoutLimit, s.TimeoutLimit})
		t.AppendRow(table.Row{options.MaxRetries, s.MaxRetries})
		t.AppendRow(table.Row{options.PBDisable, s.PBDisable})
		t.AppendRow(table.Row{options.PrintPages, s.PrintPages})
		t.AppendRow(table.Row{options.DevAlerts, s.DevAlerts})
		t.AppendRow(table.Row{options.Quiet, s.Quiet})
		t.Render()
		return nil
	},
}

var optionsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Saves an option as a preference for future runs.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setOption(opts.SetPreference, args[0], args[1])
	},
}

var optionsUnsetCmd = &cobra.Command{
	Use:   "unset <name>",
	Short: "Drops a saved preference, restoring the default.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.RemovePreference(args[0])
	},
}

var optionsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drops every saved preference.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return opts.ClearPreferences()
	},
}

// setOption parses the raw value into each plausible type in turn and
// keeps the first one the option accepts.
func setOption(set func(string, any) error, name, raw string) error {
	var candidates []any
	if n, err := strconv.Atoi(raw); err == nil {
		candidates = append(candidates, n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		candidates = append(candidates, f)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		candidates = append(candidates, b)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("option %q must be a bool or a number, got %q", name, raw)
	}

	var err error
	for _, candidate := range candidates {
		if err = set(name, candidate); err == nil {
			return nil
		}
	}
	return err
}
