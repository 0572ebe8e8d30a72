// Package missiondb archives conversion runs and their diagnostics in a
// local SQLite database, so past dives stay queryable after the scene files
// have been handed off.
package missiondb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nautilus-data/dive.report/internal/telemetry"
)

type DB struct {
	*sql.DB
}

// Open opens (creating if necessary) the archive database at path. The
// schema is managed by migrations; call MigrateUp before writing.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}
	// modernc sqlite serializes access itself, but a single connection
	// avoids SQLITE_BUSY on concurrent writers.
	db.SetMaxOpenConns(1)
	return &DB{db}, nil
}

// Run is one archived conversion run.
type Run struct {
	ID           string
	StartedAt    time.Time
	Source       string
	Output       string
	PositionMode string
	Records      int
	Packets      int
	Warnings     int
	Errors       int
}

// RecordRun stores a run and its diagnostics, assigning the run a fresh id.
func (db *DB) RecordRun(run Run, diags []telemetry.Diagnostic) (string, error) {
	id := uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin run transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (
			run_id, started_at, source, output, position_mode,
			record_count, packet_count, warning_count, error_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.StartedAt.UTC().Format(time.RFC3339), run.Source, run.Output,
		run.PositionMode, run.Records, run.Packets, run.Warnings, run.Errors,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, d := range diags {
		_, err = tx.Exec(`
			INSERT INTO run_diagnostics (run_id, severity, record_idx, message)
			VALUES (?, ?, ?, ?)`,
			id, string(d.Severity), d.Record, d.Message,
		)
		if err != nil {
			return "", fmt.Errorf("insert diagnostic: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// GetRun returns the archived run with the given id.
func (db *DB) GetRun(id string) (*Run, error) {
	row := db.QueryRow(`
		SELECT run_id, started_at, source, output, position_mode,
		       record_count, packet_count, warning_count, error_count
		FROM runs WHERE run_id = ?`, id)

	var run Run
	var started string
	err := row.Scan(&run.ID, &started, &run.Source, &run.Output,
		&run.PositionMode, &run.Records, &run.Packets, &run.Warnings, &run.Errors)
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", id, err)
	}
	run.StartedAt, err = time.Parse(time.RFC3339, started)
	if err != nil {
		return nil, fmt.Errorf("parse started_at for run %s: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns archived runs, most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, started_at, source, output, position_mode,
		       record_count, packet_count, warning_count, error_count
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		err := rows.Scan(&run.ID, &started, &run.Source, &run.Output,
			&run.PositionMode, &run.Records, &run.Packets, &run.Warnings, &run.Errors)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunDiagnostics returns the stored diagnostics for a run, in emission order.
func (db *DB) RunDiagnostics(id string) ([]telemetry.Diagnostic, error) {
	rows, err := db.Query(`
		SELECT severity, record_idx, message
		FROM run_diagnostics WHERE run_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("query diagnostics for run %s: %w", id, err)
	}
	defer rows.Close()

	var out []telemetry.Diagnostic
	for rows.Next() {
		var d telemetry.Diagnostic
		var sev string
		if err := rows.Scan(&sev, &d.Record, &d.Message); err != nil {
			return nil, fmt.Errorf("scan diagnostic: %w", err)
		}
		d.Severity = telemetry.Severity(sev)
		out = append(out, d)
	}
	return out, rows.Err()
}
