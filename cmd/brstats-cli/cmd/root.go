package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"brstats/lib/options"
	"brstats/lib/refdata/abbrevs"
	"brstats/lib/refdata/nohitters"
	"brstats/lib/scrapers/bref"
	"brstats/lib/telemetry"
)

var (
	optionsFile string
	dataDir     string
	verbose     bool
	csvOut      bool
)

var (
	opts    *options.Options
	scraper *bref.Scraper
	tel     telemetry.Telemetry
)

var rootCmd = &cobra.Command{
	Use:   "brstats",
	Short: "brstats pulls baseball statistics tables from box score, player, and team pages.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return tel.Shutdown(context.Background())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "", "preferences file (default <user config dir>/brstats/options.json5)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "reference data directory (default <user cache dir>/brstats)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&csvOut, "csv", false, "print tables as csv instead of rendering them")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(ctx context.Context) error {
	telemetry.InitSlog(verbose)

	var err error
	tel, err = telemetry.SetupFromEnv(ctx, "brstats-cli")
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	if optionsFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve options file: %w", err)
		}
		optionsFile = filepath.Join(dir, "brstats", "options.json5")
	}
	opts = options.Open(optionsFile)

	db, err := openRefdata()
	if err != nil {
		return err
	}
	defer db.Close()

	spans, err := abbrevs.Load(ctx, db)
	if err != nil {
		return fmt.Errorf("load abbreviations: %w", err)
	}
	records, err := nohitters.Load(ctx, db)
	if err != nil {
		return fmt.Errorf("load no-hitters: %w", err)
	}

	scraper = bref.NewScraper(bref.ScraperOptions{
		Client:        bref.NewClient(opts),
		Abbreviations: abbrevs.New(spans),
		NoHitters:     nohitters.Build(records),
		Options:       opts,
	})
	return nil
}

// openRefdata opens the sqlite cache holding the reference tables,
// creating the file and its schema on first use.
func openRefdata() (*sql.DB, error) {
	if dataDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data directory: %w", err)
		}
		dataDir = filepath.Join(dir, "brstats")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "refdata.db"))
	if err != nil {
		return nil, fmt.Errorf("open reference database: %w", err)
	}
	for _, schema := range []string{abbrevs.Schema, nohitters.Schema} {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply reference schema: %w", err)
		}
	}
	return db, nil
}
