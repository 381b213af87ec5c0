package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreOpenAndMigrate(t *testing.T) {
	s := openTestStore(t)

	version, err := s.getSchemaVersion()
	if err != nil {
		t.Fatalf("failed to get schema version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("expected schema version %d, got %d", currentSchemaVersion, version)
	}

	tables := []string{
		"pilot", "club", "glider_model", "glider", "launch_point",
		"task", "trace", "flight", "scrape_run", "schema_version",
	}
	for _, table := range tables {
		var count int
		err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestGetOrCreatePilotIsStable(t *testing.T) {
	s := openTestStore(t)

	var first, second int64
	err := s.Transaction(func(tx *sql.Tx) error {
		var err error
		first, err = GetOrCreatePilot(tx, "Amy", "Barrington", 42)
		if err != nil {
			return err
		}
		second, err = GetOrCreatePilot(tx, "Amy", "Barrington", 42)
		return err
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	if first != second {
		t.Errorf("same natural key resolved to different ids: %d vs %d", first, second)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM pilot").Scan(&count); err != nil {
		t.Fatalf("failed to count pilots: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 pilot row, got %d", count)
	}
}

func TestGetOrCreateResolversAcrossTransactions(t *testing.T) {
	s := openTestStore(t)

	resolve := func() (club, model, glider int64) {
		err := s.Transaction(func(tx *sql.Tx) error {
			var err error
			if club, err = GetOrCreateClub(tx, "BIC"); err != nil {
				return err
			}
			if model, err = GetOrCreateGliderModel(tx, "Discus 2b", 77); err != nil {
				return err
			}
			glider, err = GetOrCreateGlider(tx, "G-CKPM", model)
			return err
		})
		if err != nil {
			t.Fatalf("transaction failed: %v", err)
		}
		return club, model, glider
	}

	c1, m1, g1 := resolve()
	c2, m2, g2 := resolve()

	if c1 != c2 || m1 != m2 || g1 != g2 {
		t.Errorf("resolvers unstable across transactions: (%d,%d,%d) vs (%d,%d,%d)",
			c1, m1, g1, c2, m2, g2)
	}

	for _, q := range []struct {
		table string
		want  int
	}{
		{"club", 1}, {"glider_model", 1}, {"glider", 1},
	} {
		var count int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + q.table).Scan(&count); err != nil {
			t.Fatalf("failed to count %s: %v", q.table, err)
		}
		if count != q.want {
			t.Errorf("expected %d %s rows, got %d", q.want, q.table, count)
		}
	}
}

func TestClubCreatedByReferenceHasNoName(t *testing.T) {
	s := openTestStore(t)

	err := s.Transaction(func(tx *sql.Tx) error {
		_, err := GetOrCreateClub(tx, "LAS")
		return err
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	var name sql.NullString
	if err := s.db.QueryRow("SELECT club_name FROM club WHERE ladder_code = 'LAS'").Scan(&name); err != nil {
		t.Fatalf("failed to query club: %v", err)
	}
	if name.Valid {
		t.Errorf("expected NULL club_name on reference-created club, got %q", name.String)
	}
}

func TestInsertTaskAllocatesSequentialIDs(t *testing.T) {
	s := openTestStore(t)

	var id1, id2 int64
	err := s.Transaction(func(tx *sql.Tx) error {
		var err error
		if id1, err = InsertTask(tx, []string{"LAS", "DID", "LAS"}); err != nil {
			return err
		}
		id2, err = InsertTask(tx, []string{"BIC"})
		return err
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	if id1 != 0 || id2 != 1 {
		t.Errorf("expected task ids 0 and 1, got %d and %d", id1, id2)
	}

	err = s.Transaction(func(tx *sql.Tx) error {
		codes, err := TaskTurnpoints(tx, id1)
		if err != nil {
			return err
		}
		want := []string{"LAS", "DID", "LAS"}
		if len(codes) != len(want) {
			t.Fatalf("expected %d turnpoints, got %d", len(want), len(codes))
		}
		for i := range want {
			if codes[i] != want[i] {
				t.Errorf("turnpoint %d = %q, want %q", i, codes[i], want[i])
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}
}

func TestTraceDedupByHash(t *testing.T) {
	s := openTestStore(t)

	const hash = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	err := s.Transaction(func(tx *sql.Tx) error {
		if _, found, err := TraceIDByHash(tx, hash); err != nil {
			return err
		} else if found {
			t.Error("hash found before insert")
		}

		id, err := InsertTrace(tx, time.Now(), "1234.igc", hash)
		if err != nil {
			return err
		}

		got, found, err := TraceIDByHash(tx, hash)
		if err != nil {
			return err
		}
		if !found {
			t.Fatal("hash not found after insert")
		}
		if got != id {
			t.Errorf("lookup returned id %d, insert returned %d", got, id)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}
}

func TestFlightExistsAfterInsert(t *testing.T) {
	s := openTestStore(t)

	err := s.Transaction(func(tx *sql.Tx) error {
		pilot, err := GetOrCreatePilot(tx, "Amy", "Barrington", 42)
		if err != nil {
			return err
		}
		club, err := GetOrCreateClub(tx, "BIC")
		if err != nil {
			return err
		}
		model, err := GetOrCreateGliderModel(tx, "Discus 2b", 77)
		if err != nil {
			return err
		}
		glider, err := GetOrCreateGlider(tx, "G-CKPM", model)
		if err != nil {
			return err
		}
		task, err := InsertTask(tx, []string{"LAS", "LAS"})
		if err != nil {
			return err
		}

		exists, err := FlightExists(tx, 555001)
		if err != nil {
			return err
		}
		if exists {
			t.Error("flight reported as existing before insert")
		}

		err = InsertFlight(tx, &Flight{
			LadderID:    555001,
			PilotID:     pilot,
			ClubID:      club,
			GliderID:    glider,
			TaskID:      task,
			FlightDate:  time.Date(2024, 6, 15, 11, 30, 0, 0, time.UTC),
			ScrapedAt:   time.Now(),
			Weekend:     true,
			Speed:       87.3,
			TotalPoints: 412.5,
		})
		if err != nil {
			return err
		}

		exists, err = FlightExists(tx, 555001)
		if err != nil {
			return err
		}
		if !exists {
			t.Error("flight not found after insert")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	count, err := s.CountFlights()
	if err != nil {
		t.Fatalf("CountFlights failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 flight, got %d", count)
	}
}

func TestScrapeRunLifecycle(t *testing.T) {
	s := openTestStore(t)

	id, err := s.BeginScrapeRun("season", "2024")
	if err != nil {
		t.Fatalf("BeginScrapeRun failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty run id")
	}

	if err := s.FinishScrapeRun(id, 247, 31, 1); err != nil {
		t.Fatalf("FinishScrapeRun failed: %v", err)
	}

	runs, err := s.RecentScrapeRuns(5)
	if err != nil {
		t.Fatalf("RecentScrapeRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.Kind != "season" || r.Target != "2024" {
		t.Errorf("unexpected run identity: %+v", r)
	}
	if r.Found != 247 || r.New != 31 || r.Skipped != 1 {
		t.Errorf("unexpected run counts: %+v", r)
	}
}
