// Package bootstrap performs the one-time prefill of reference tables
// from the ladder's bulk endpoints.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/jwjr/ladder-mirror/internal/ladder"
	"github.com/jwjr/ladder-mirror/internal/store"
	"github.com/jwjr/ladder-mirror/internal/util"
)

const feetToMetres = 0.3048

// Prefill loads glider models, launch points, clubs and active pilots
// into the mirror. All four bulk fetches must succeed; the inserts then
// run in a single transaction. Meant for a freshly initialized database.
func Prefill(ctx context.Context, st *store.Store, client *ladder.Client) error {
	models, err := client.FetchGliderModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch glider models: %w", err)
	}

	points, err := client.FetchLaunchPoints(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch launch points: %w", err)
	}

	clubs, err := client.FetchClubs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch clubs: %w", err)
	}

	pilots, err := client.FetchActivePilots(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch active pilots: %w", err)
	}

	err = st.Transaction(func(tx *sql.Tx) error {
		for _, m := range models {
			if err := store.InsertGliderModelFull(tx, m.GliderType, m.Seats, m.Vintage, m.Turbo, m.Handicap, m.GliderID); err != nil {
				return err
			}
		}

		for _, p := range points {
			clubCode := sql.NullString{String: p.ClubID, Valid: p.ClubID != ""}
			if err := store.InsertLaunchPoint(tx, p.Site, p.Latitude, p.Longitude, p.Altitude*feetToMetres, p.LPCode, clubCode); err != nil {
				return err
			}
		}

		for _, c := range clubs {
			if err := store.InsertClubFull(tx, c.Name, c.University, c.ID); err != nil {
				return err
			}
		}

		for _, p := range pilots {
			if err := store.InsertPilot(tx, p.ForeName, p.Surname, p.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	util.SuccessLog("Prefilled %s glider models, %s launch points, %s clubs, %s pilots",
		humanize.Comma(int64(len(models))), humanize.Comma(int64(len(points))),
		humanize.Comma(int64(len(clubs))), humanize.Comma(int64(len(pilots))))

	return nil
}
