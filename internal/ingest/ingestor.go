package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jwjr/ladder-mirror/internal/archive"
	"github.com/jwjr/ladder-mirror/internal/ladder"
	"github.com/jwjr/ladder-mirror/internal/store"
	"github.com/jwjr/ladder-mirror/internal/util"
)

// ErrBadRecord marks a flight record the ladder served in a shape we
// cannot ingest (e.g. an unparsable date). The scrape drivers skip such
// records and carry on; any other error aborts the run.
var ErrBadRecord = errors.New("malformed flight record")

// Outcome reports what ingesting one record did
type Outcome int

const (
	// Inserted means a new flight row was committed
	Inserted Outcome = iota
	// AlreadyExists means the flight's ladder id was already stored and
	// nothing was done
	AlreadyExists
)

// Ingestor inserts ladder flight records into the mirror, one
// transaction per flight
type Ingestor struct {
	Store       *store.Store
	Client      *ladder.Client
	ArchiveRoot string
}

// Ingest inserts one flight record. The existence check, entity
// resolution, trace archival, task decomposition and flight insert all
// happen inside a single transaction, so a failure part-way leaves no
// partial rows. Re-ingesting a stored ladder id is a no-op.
func (in *Ingestor) Ingest(ctx context.Context, rec *ladder.FlightRecord, scrapedAt time.Time) (Outcome, error) {
	outcome := Inserted

	err := in.Store.Transaction(func(tx *sql.Tx) error {
		exists, err := store.FlightExists(tx, rec.FlightID)
		if err != nil {
			return err
		}
		if exists {
			util.DebugLog("Flight with ladder id %d was already in database", rec.FlightID)
			outcome = AlreadyExists
			return nil
		}

		util.DebugLog("Inserting ladder flight %d", rec.FlightID)

		pilotID, err := store.GetOrCreatePilot(tx, rec.Forename, rec.Surname, rec.PilotID)
		if err != nil {
			return err
		}
		clubID, err := store.GetOrCreateClub(tx, rec.ClubID)
		if err != nil {
			return err
		}
		modelID, err := store.GetOrCreateGliderModel(tx, rec.Glider, rec.GliderCode)
		if err != nil {
			return err
		}
		gliderID, err := store.GetOrCreateGlider(tx, rec.Registration, modelID)
		if err != nil {
			return err
		}

		traceID, err := in.archiveTrace(ctx, tx, rec)
		if err != nil {
			return err
		}

		taskID, err := store.InsertTask(tx, TurnpointSequence(rec))
		if err != nil {
			return err
		}

		flightDate, err := time.Parse("2006-01-02T15:04:05", rec.FlightDate)
		if err != nil {
			return fmt.Errorf("%w: bad flight date %q: %v", ErrBadRecord, rec.FlightDate, err)
		}

		return store.InsertFlight(tx, &store.Flight{
			LadderID:   rec.FlightID,
			PilotID:    pilotID,
			ClubID:     clubID,
			GliderID:   gliderID,
			TraceID:    traceID,
			TaskID:     taskID,
			FlightDate: flightDate,
			ScrapedAt:  scrapedAt,
			Weekend:    rec.Weekend,
			Junior:     rec.Junior,
			Height:     rec.Height,
			TwoSeater:  rec.TwoSeater,
			// the upstream schema carries both spellings and they
			// occasionally disagree; trust either
			Wooden:          rec.Wood || rec.Wooden,
			Engine:          rec.Engine,
			Penalty:         rec.Penalty,
			Speed:           rec.Speed,
			HandicapSpeed:   rec.HandicapSpeed,
			ScoringDistance: rec.ScoringDistance,
			SpeedPoints:     rec.SpeedPoints,
			HeightGain:      rec.HeightGain,
			HeightPoints:    rec.HeightPoints,
			TotalPoints:     rec.TotalPoints,
		})
	})
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}

// archiveTrace downloads and archives the flight log. A NotFound from
// the ladder leaves the trace reference NULL; the flight is still
// ingested. Identical bytes already archived dedup to the existing row
// without touching disk.
func (in *Ingestor) archiveTrace(ctx context.Context, tx *sql.Tx, rec *ladder.FlightRecord) (sql.NullInt64, error) {
	downloadedAt := time.Now()

	data, err := in.Client.FetchTrace(ctx, rec.FlightID)
	if errors.Is(err, util.ErrNotFound) {
		util.WarnLog("No trace available for flight %d, ingesting without one", rec.FlightID)
		return sql.NullInt64{}, nil
	}
	if err != nil {
		return sql.NullInt64{}, err
	}

	hash := archive.Hash(data)

	id, ok, err := store.TraceIDByHash(tx, hash)
	if err != nil {
		return sql.NullInt64{}, err
	}
	if ok {
		util.WarnLog("Found existing trace in DB with same hash: %s", hash)
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}

	if _, err := archive.Write(in.ArchiveRoot, hash, data); err != nil {
		return sql.NullInt64{}, err
	}
	util.DebugLog("Archived %s (%s) as %s", rec.LoggerFile, humanize.Bytes(uint64(len(data))), hash)

	id, err = store.InsertTrace(tx, downloadedAt, rec.LoggerFile, hash)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}
