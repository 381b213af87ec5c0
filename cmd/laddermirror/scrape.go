package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwjr/ladder-mirror/internal/ingest"
	"github.com/jwjr/ladder-mirror/internal/ladder"
)

var (
	scrapeLastNDays int
	scrapeSeason    int

	scrapeCmd = &cobra.Command{
		Use:   "scrape",
		Short: "Scrape ladder flights into the mirror",
		Long: `Scrape flight records from the ladder's scoring feed and insert them
into the mirror. Already-mirrored flights are skipped, so overlapping
windows are safe to re-run.

Two modes are available and may be combined:
  --last-n-days N   scrape each of the last N days, most recent first
  --season YEAR     scrape an entire season in one sweep`,
		RunE: runScrape,
	}
)

func init() {
	scrapeCmd.Flags().IntVar(&scrapeLastNDays, "last-n-days", 0, "scrape each of the last N days one by one")
	scrapeCmd.Flags().IntVar(&scrapeSeason, "season", 0, "bulk scrape an entire season")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	setupLogging()

	if scrapeLastNDays <= 0 && scrapeSeason == 0 {
		return fmt.Errorf("nothing to do: pass --last-n-days and/or --season")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ingestor := &ingest.Ingestor{
		Store:       db,
		Client:      ladder.NewClient(),
		ArchiveRoot: viper.GetString("archive-root"),
	}

	ctx := context.Background()

	if scrapeLastNDays > 0 {
		if _, err := ingestor.ScrapeLastNDays(ctx, scrapeLastNDays); err != nil {
			return fmt.Errorf("day scrape failed: %w", err)
		}
	}

	if scrapeSeason != 0 {
		if _, err := ingestor.ScrapeSeason(ctx, scrapeSeason); err != nil {
			return fmt.Errorf("season scrape failed: %w", err)
		}
	}

	return nil
}
