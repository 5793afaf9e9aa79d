package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/exquisite-dentistry/sitegen/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/exquisite-dentistry/sitegen/internal/core/domain"
	"github.com/exquisite-dentistry/sitegen/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BuildLedger = (*Store)(nil)

// Store is a SQLite build ledger.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the ledger database at dbPath and applies
// pending migrations.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every NNN_*.up.sql newer than the recorded schema version.
// Each migration records its own version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Build Ledger ====================

// Save stores or replaces a run together with its outputs.
func (s *Store) Save(ctx context.Context, run domain.BuildRun) error {
	if run.ID == "" {
		return fmt.Errorf("%w: build run without id", domain.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO build_runs (id, started_at, finished_at, status, error, routes, items, fallbacks, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			status = excluded.status,
			error = excluded.error,
			routes = excluded.routes,
			items = excluded.items,
			fallbacks = excluded.fallbacks,
			warnings = excluded.warnings
	`, run.ID, run.StartedAt.UnixNano(), nullableTime(run.FinishedAt), string(run.Status),
		nullString(run.Error), run.Routes, run.Items, run.Fallbacks, run.Warnings)
	if err != nil {
		return fmt.Errorf("saving build run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM build_outputs WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing build outputs: %w", err)
	}
	for i, out := range run.Outputs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO build_outputs (run_id, position, step, path, bytes, sha256)
			VALUES (?, ?, ?, ?, ?, ?)
		`, run.ID, i, string(out.Step), out.Path, out.Bytes, out.SHA256)
		if err != nil {
			return fmt.Errorf("saving build output %s: %w", out.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing build run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.BuildRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, status, error, routes, items, fallbacks, warnings
		FROM build_runs WHERE id = ?
	`, id)

	run, err := scanBuildRun(row)
	if err != nil {
		return nil, err
	}

	outputs, err := s.outputs(ctx, id)
	if err != nil {
		return nil, err
	}
	run.Outputs = outputs
	return run, nil
}

// List returns up to limit runs, most recent first. Outputs are not loaded.
func (s *Store) List(ctx context.Context, limit int) ([]domain.BuildRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, status, error, routes, items, fallbacks, warnings
		FROM build_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying build runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.BuildRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanBuildRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build runs: %w", err)
	}

	return runs, nil
}

func (s *Store) outputs(ctx context.Context, runID string) ([]domain.OutputFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT step, path, bytes, sha256
		FROM build_outputs
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying build outputs: %w", err)
	}
	defer rows.Close()

	var outputs []domain.OutputFile //nolint:prealloc // size unknown from query
	for rows.Next() {
		var out domain.OutputFile
		var step string
		if err := rows.Scan(&step, &out.Path, &out.Bytes, &out.SHA256); err != nil {
			return nil, fmt.Errorf("scanning build output: %w", err)
		}
		out.Step = domain.BuildStep(step)
		outputs = append(outputs, out)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating build outputs: %w", err)
	}
	return outputs, nil
}

// ==================== Helper Functions ====================

type scanner interface {
	Scan(dest ...any) error
}

func scanBuildRun(row scanner) (*domain.BuildRun, error) {
	var run domain.BuildRun
	var startedAt int64
	var finishedAt sql.NullInt64
	var status string
	var errText sql.NullString

	if err := row.Scan(&run.ID, &startedAt, &finishedAt, &status, &errText,
		&run.Routes, &run.Items, &run.Fallbacks, &run.Warnings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning build run: %w", err)
	}

	run.StartedAt = time.Unix(0, startedAt).UTC()
	if finishedAt.Valid {
		run.FinishedAt = time.Unix(0, finishedAt.Int64).UTC()
	}
	run.Status = domain.BuildStatus(status)
	run.Error = errText.String
	return &run, nil
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UnixNano()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
