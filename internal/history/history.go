// Package history persists completed lookups to a SQLite journal.
//
// The schema is managed by embedded golang-migrate migrations, applied
// on Open. The journal is append-only from the application's point of
// view; rows are only read back for the recent-lookups listing.
package history

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Outcome labels stored in the journal. They mirror the engine's
// terminal states.
const (
	OutcomeAnswered      = "answered"
	OutcomeNoGlue        = "no_glue"
	OutcomeDepthExceeded = "depth_exceeded"
	OutcomeProtocolError = "protocol_error"
	OutcomeTransportFail = "transport_failure"
)

// Entry is one journaled lookup.
type Entry struct {
	ID         int64     `json:"id"`
	Domain     string    `json:"domain"`
	RootServer string    `json:"root_server"`
	Outcome    string    `json:"outcome"`
	Address    string    `json:"address,omitempty"`
	Hops       int       `json:"hops"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is a SQLite-backed lookup journal.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal at path and brings the schema up to
// date.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func applyMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	drv, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("prepare migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Record appends a lookup to the journal.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO lookups (domain, root_server, outcome, address, hops, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Domain, e.RootServer, e.Outcome, e.Address, e.Hops, e.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("record lookup: %w", err)
	}
	return nil
}

// Recent returns up to limit journal entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, domain, root_server, outcome, address, hops, duration_ms, created_at
		 FROM lookups ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list lookups: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Domain, &e.RootServer, &e.Outcome,
			&e.Address, &e.Hops, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Health checks database connectivity.
func (s *Store) Health() error {
	var one int
	return s.db.QueryRow("SELECT 1").Scan(&one)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
