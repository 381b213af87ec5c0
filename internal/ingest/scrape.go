package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/jwjr/ladder-mirror/internal/ladder"
	"github.com/jwjr/ladder-mirror/internal/util"
)

// Summary totals one scrape sweep
type Summary struct {
	Found   int // records seen in the feed
	New     int // flights inserted
	Skipped int // malformed records skipped
}

func (s *Summary) add(other Summary) {
	s.Found += other.Found
	s.New += other.New
	s.Skipped += other.Skipped
}

// onRecord builds the per-record callback shared by the scrape modes.
// AlreadyExists is an ordinary outcome; malformed records are logged,
// counted and skipped so one bad upstream row cannot halt a backfill.
func (in *Ingestor) onRecord(ctx context.Context, sum *Summary, bar *progressbar.ProgressBar) func(time.Time, *ladder.FlightRecord) error {
	return func(scrapedAt time.Time, rec *ladder.FlightRecord) error {
		if bar != nil {
			bar.Add(1)
		}

		outcome, err := in.Ingest(ctx, rec, scrapedAt)
		if errors.Is(err, ErrBadRecord) {
			util.WarnLog("Skipping flight %d: %v", rec.FlightID, err)
			sum.Skipped++
			return nil
		}
		if err != nil {
			return err
		}

		if outcome == Inserted {
			sum.New++
		}
		return nil
	}
}

// ScrapeDay mirrors all flights of one calendar date
func (in *Ingestor) ScrapeDay(ctx context.Context, day time.Time) (Summary, error) {
	util.InfoLog("Scraping flights for %s", day.Format("2006-01-02"))

	var sum Summary
	query := ladder.ScoreQuery{
		Season: day.Year(),
		Month:  int(day.Month()),
		Day:    day.Day(),
	}

	found, err := in.Client.DailyScores(ctx, query, in.onRecord(ctx, &sum, nil))
	sum.Found = found
	if err != nil {
		return sum, err
	}

	util.InfoLog("Finished scraping flights for %s. %d flights / %d new",
		day.Format("2006-01-02"), sum.Found, sum.New)

	return sum, nil
}

// ScrapeLastNDays mirrors each of the last N days, most recent first
func (in *Ingestor) ScrapeLastNDays(ctx context.Context, days int) (Summary, error) {
	util.InfoLog("Scraping all flights from the last %d days", days)

	runID, err := in.Store.BeginScrapeRun("days", strconv.Itoa(days))
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	today := time.Now()
	for lookback := 0; lookback < days; lookback++ {
		daySum, err := in.ScrapeDay(ctx, today.AddDate(0, 0, -lookback))
		sum.add(daySum)
		if err != nil {
			return sum, err
		}
	}

	if err := in.Store.FinishScrapeRun(runID, sum.Found, sum.New, sum.Skipped); err != nil {
		return sum, err
	}

	util.SuccessLog("Finished scraping flights for the last %d days. %d flights / %d new",
		days, sum.Found, sum.New)
	if sum.Skipped > 0 {
		util.WarnLog("Skipped %d malformed records", sum.Skipped)
	}

	return sum, nil
}

// ScrapeSeason mirrors an entire season in one sweep
func (in *Ingestor) ScrapeSeason(ctx context.Context, season int) (Summary, error) {
	util.InfoLog("Scraping all flights for the %d season", season)

	runID, err := in.Store.BeginScrapeRun("season", strconv.Itoa(season))
	if err != nil {
		return Summary{}, err
	}

	// Season sweeps run for a while; show progress when interactive
	var bar *progressbar.ProgressBar
	if util.IsTerminal(os.Stderr.Fd()) && !util.IsQuiet() {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription(fmt.Sprintf("Season %d", season)),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("flights"),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	var sum Summary
	found, err := in.Client.DailyScores(ctx, ladder.ScoreQuery{Season: season}, in.onRecord(ctx, &sum, bar))
	sum.Found = found
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return sum, err
	}

	if err := in.Store.FinishScrapeRun(runID, sum.Found, sum.New, sum.Skipped); err != nil {
		return sum, err
	}

	util.SuccessLog("Finished scraping flights for the %d season. %d flights / %d new",
		season, sum.Found, sum.New)
	if sum.Skipped > 0 {
		util.WarnLog("Skipped %d malformed records", sum.Skipped)
	}

	return sum, nil
}
