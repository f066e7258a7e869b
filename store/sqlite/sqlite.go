/*
Package sqlite provides the SQLite-backed PlanStore.

PURPOSE:
  Persists the plan snapshot between sessions. This replaces the
  browser-local storage the planner's UI used to own: the server keeps
  one plan row plus a table of selected dates, so toggling a day is a
  single-row write instead of rewriting the whole snapshot.

KEY TABLES:
  plan:           single-row configuration (id fixed to 1)
  selected_dates: one row per selected PTO date (ISO string primary key)

WAL MODE:
  SQLite is opened with WAL so reads don't block the occasional write.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool with versioned migrations.

USAGE:
  store, err := sqlite.New("./data/plan.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - engine/store.go: interface definition
  - engine/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/pto-planner/engine"
)

// Store implements engine.PlanStore using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plan (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		starting_balance REAL NOT NULL,
		as_of_date TEXT NOT NULL,
		accrual_amount REAL NOT NULL,
		accrual_cadence TEXT NOT NULL,
		first_accrual_date TEXT NOT NULL,
		window_months INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS selected_dates (
		date TEXT PRIMARY KEY
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SavePlan replaces the stored snapshot, selections included, atomically.
func (s *Store) SavePlan(ctx context.Context, snap engine.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plan (id, starting_balance, as_of_date, accrual_amount, accrual_cadence, first_accrual_date, window_months)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			starting_balance = excluded.starting_balance,
			as_of_date = excluded.as_of_date,
			accrual_amount = excluded.accrual_amount,
			accrual_cadence = excluded.accrual_cadence,
			first_accrual_date = excluded.first_accrual_date,
			window_months = excluded.window_months`,
		snap.StartingBalance, snap.AsOfDate, snap.AccrualAmount,
		snap.AccrualCadence, snap.FirstAccrualDate, snap.WindowMonths,
	)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM selected_dates`); err != nil {
		return err
	}
	for _, d := range snap.SelectedDates {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO selected_dates (date) VALUES (?)`, d); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadPlan returns the stored snapshot, or ok=false when nothing has been
// saved yet.
func (s *Store) LoadPlan(ctx context.Context) (engine.Snapshot, bool, error) {
	var snap engine.Snapshot
	row := s.db.QueryRowContext(ctx, `
		SELECT starting_balance, as_of_date, accrual_amount, accrual_cadence, first_accrual_date, window_months
		FROM plan WHERE id = 1`)
	err := row.Scan(&snap.StartingBalance, &snap.AsOfDate, &snap.AccrualAmount,
		&snap.AccrualCadence, &snap.FirstAccrualDate, &snap.WindowMonths)
	if err == sql.ErrNoRows {
		return engine.Snapshot{}, false, nil
	}
	if err != nil {
		return engine.Snapshot{}, false, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT date FROM selected_dates ORDER BY date`)
	if err != nil {
		return engine.Snapshot{}, false, err
	}
	defer rows.Close()
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return engine.Snapshot{}, false, err
		}
		snap.SelectedDates = append(snap.SelectedDates, d)
	}
	if err := rows.Err(); err != nil {
		return engine.Snapshot{}, false, err
	}

	return snap, true, nil
}

// AddSelection records one selected date; duplicates are ignored.
func (s *Store) AddSelection(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO selected_dates (date) VALUES (?)`, date)
	return err
}

// RemoveSelection deletes one selected date; absent dates are a no-op.
func (s *Store) RemoveSelection(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM selected_dates WHERE date = ?`, date)
	return err
}
