package store

// Schema v1 - Initial database schema
//
// External "ladder" identifiers are unique so that re-scraping the same
// window is idempotent: flights dedup on flight.ladder_id, traces on the
// content hash, reference entities on their natural keys.
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
  version INTEGER PRIMARY KEY,
  applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Pilots, created by bulk prefill or lazily on first reference
CREATE TABLE IF NOT EXISTS pilot (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  forename TEXT,
  surname TEXT,
  ladder_id INTEGER UNIQUE
);

-- Clubs; club_name stays NULL when the row was created from a flight
-- reference and may be enriched later by the bulk prefill
CREATE TABLE IF NOT EXISTS club (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  club_name TEXT,
  is_university INTEGER DEFAULT 0,
  ladder_code TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS glider_model (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  model_name TEXT NOT NULL,
  seats INTEGER,
  vintage INTEGER,
  turbo INTEGER,
  handicap REAL,
  ladder_id INTEGER UNIQUE
);

CREATE TABLE IF NOT EXISTS glider (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  reg TEXT UNIQUE NOT NULL,
  model INTEGER REFERENCES glider_model(id)
);

CREATE TABLE IF NOT EXISTS launch_point (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  site_name TEXT,
  lat REAL,
  lon REAL,
  height_amsl REAL,
  ladder_id TEXT UNIQUE,
  club_ladder_code TEXT
);

-- A task is its ordered turnpoint list; one task per flight, immutable
CREATE TABLE IF NOT EXISTS task (
  id INTEGER NOT NULL,
  turnpoint_index INTEGER NOT NULL,
  turnpoint_code TEXT NOT NULL,
  PRIMARY KEY (id, turnpoint_index)
);

-- Content-addressed flight log attachments
CREATE TABLE IF NOT EXISTS trace (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  downloaded_at DATETIME NOT NULL,
  original_filename TEXT,
  sha256_hash TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS flight (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  pilot INTEGER NOT NULL REFERENCES pilot(id),
  club INTEGER NOT NULL REFERENCES club(id),
  glider INTEGER NOT NULL REFERENCES glider(id),
  trace INTEGER REFERENCES trace(id),
  flight_date DATETIME NOT NULL,
  scraped_at DATETIME NOT NULL,
  is_weekend INTEGER DEFAULT 0,
  is_junior INTEGER DEFAULT 0,
  is_height INTEGER DEFAULT 0,
  is_two_seater INTEGER DEFAULT 0,
  is_wooden INTEGER DEFAULT 0,
  has_engine INTEGER DEFAULT 0,
  penalty REAL,
  task INTEGER NOT NULL,
  speed REAL,
  handicap_speed REAL,
  scoring_distance REAL,
  speed_points REAL,
  height_gain REAL,
  height_points REAL,
  total_points REAL,
  ladder_id INTEGER UNIQUE NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_flight_pilot ON flight(pilot);
CREATE INDEX IF NOT EXISTS idx_flight_date ON flight(flight_date);

-- One audit row per scrape invocation
CREATE TABLE IF NOT EXISTS scrape_run (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  target TEXT NOT NULL,
  started_at DATETIME NOT NULL,
  finished_at DATETIME,
  records_found INTEGER DEFAULT 0,
  records_new INTEGER DEFAULT 0,
  records_skipped INTEGER DEFAULT 0
);
`
