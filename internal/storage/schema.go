// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines workouts, lift_prs, daily metric logs, mobility_log, and programs.
package storage

// Dates are stored as TEXT (YYYY-MM-DD) so the driver hands them back as
// strings. Optional text columns default to '' so the workouts uniqueness
// key is never defeated by NULLs.
const schema = `
CREATE TABLE IF NOT EXISTS workouts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL CHECK (date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'),
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	score_type TEXT NOT NULL DEFAULT ''
		CHECK (score_type IN ('', 'time', 'reps', 'rounds', 'load', 'distance', 'other')),
	result_raw INTEGER,
	result_display TEXT NOT NULL DEFAULT '',
	barbell_lift TEXT NOT NULL DEFAULT '',
	set_details TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	rx_or_scaled TEXT NOT NULL DEFAULT '',
	is_pr INTEGER NOT NULL DEFAULT 0,
	source TEXT NOT NULL DEFAULT 'manual' CHECK (source IN ('manual', 'imported')),
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (date, title, result_display)
);

CREATE TABLE IF NOT EXISTS lift_prs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lift_name TEXT NOT NULL,
	weight REAL NOT NULL CHECK (weight > 0),
	reps INTEGER NOT NULL DEFAULT 1 CHECK (reps >= 1),
	date TEXT NOT NULL,
	workout_id INTEGER REFERENCES workouts(id) ON DELETE SET NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS protein_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL UNIQUE,
	grams INTEGER NOT NULL CHECK (grams >= 0),
	notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS weight_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL UNIQUE,
	weight REAL NOT NULL CHECK (weight > 0),
	notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS readiness_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL UNIQUE,
	sleep_quality INTEGER NOT NULL CHECK (sleep_quality BETWEEN 1 AND 5),
	energy INTEGER NOT NULL CHECK (energy BETWEEN 1 AND 5),
	soreness INTEGER NOT NULL CHECK (soreness BETWEEN 1 AND 5),
	stress INTEGER NOT NULL CHECK (stress BETWEEN 1 AND 5),
	notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS mobility_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
	focus_area TEXT NOT NULL DEFAULT '',
	exercises TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS programs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL,
	end_date TEXT,
	is_active INTEGER NOT NULL DEFAULT 1,
	program_data TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date DESC, id DESC);
CREATE INDEX IF NOT EXISTS idx_workouts_lift ON workouts(barbell_lift);
CREATE INDEX IF NOT EXISTS idx_lift_prs_lift_reps ON lift_prs(lift_name, reps, weight DESC);
CREATE INDEX IF NOT EXISTS idx_mobility_date ON mobility_log(date);
CREATE UNIQUE INDEX IF NOT EXISTS idx_programs_single_active ON programs(is_active) WHERE is_active = 1;
`

// initSchema creates or updates the database schema.
func (s *Store) initSchema() error {
	_, err := s.db.Exec(schema)
	return err
}
