package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwjr/ladder-mirror/internal/store"
	"github.com/jwjr/ladder-mirror/internal/util"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mirror contents and recent scrape runs",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	setupLogging()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Mirror contents:")
	for _, table := range store.MirrorTables {
		count, err := db.TableCount(table)
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s %s\n", table, humanize.Comma(count))
	}

	tasks, err := db.CountTasks()
	if err != nil {
		return err
	}
	fmt.Printf("  %-14s %s\n", "task", humanize.Comma(tasks))

	archiveRoot := viper.GetString("archive-root")
	files, bytes := archiveUsage(archiveRoot)
	fmt.Printf("\nTrace archive (%s): %s files, %s\n",
		archiveRoot, humanize.Comma(files), humanize.Bytes(uint64(bytes)))

	runs, err := db.RecentScrapeRuns(5)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Println("\nRecent scrape runs:")
		for _, r := range runs {
			fmt.Printf("  %s  %-6s %-6s found=%d new=%d skipped=%d\n",
				r.StartedAt.Format("2006-01-02 15:04"), r.Kind, r.Target,
				r.Found, r.New, r.Skipped)
		}
	}

	return nil
}

// archiveUsage totals the archived trace files under root. Missing or
// unreadable entries count as zero.
func archiveUsage(root string) (files int64, bytes int64) {
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if !os.IsNotExist(err) {
				util.DebugLog("Skipping %s: %v", path, err)
			}
			return nil
		}
		if d.Type().IsRegular() {
			files++
			if info, err := d.Info(); err == nil {
				bytes += info.Size()
			}
		}
		return nil
	})
	return files, bytes
}
