package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLocalDBName = "hanoi_local.db"

type SQLiteService struct {
	db          *sql.DB
	recentLimit int
}

func NewSQLiteServiceFromEnv() (*SQLiteService, error) {
	dbPath := strings.TrimSpace(os.Getenv("LEDGER_SQLITE_PATH"))
	if dbPath == "" {
		dbPath = filepath.Join("data", defaultLocalDBName)
	}
	return NewSQLiteService(dbPath)
}

func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteService{
		db:          db,
		recentLimit: envIntOrDefault("LEDGER_RECENT_LIMIT", defaultRecentLimit),
	}, nil
}

func (s *SQLiteService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteService) RecordSolve(ctx context.Context, rec SolveRecord) error {
	if strings.TrimSpace(rec.SolveID) == "" {
		return errors.New("solve id is required")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO solve_history (
    solve_id, label, disks, moves, elapsed_ms, created_at_ms, tape_blob
)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (solve_id) DO UPDATE
SET
    label = excluded.label,
    disks = excluded.disks,
    moves = excluded.moves,
    elapsed_ms = excluded.elapsed_ms,
    tape_blob = COALESCE(excluded.tape_blob, solve_history.tape_blob)
`, rec.SolveID, rec.Label, rec.Disks, int64(rec.Moves), rec.ElapsedMs, rec.CreatedAt.UnixMilli(), nullableBytes(rec.Tape)); err != nil {
		return err
	}

	if s.recentLimit > 0 {
		if _, err := tx.ExecContext(ctx, `
DELETE FROM solve_history
WHERE id IN (
    SELECT id
    FROM solve_history
    ORDER BY created_at_ms DESC, id DESC
    LIMIT -1 OFFSET ?
)
`, s.recentLimit); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteService) ListRecent(ctx context.Context, limit int) ([]SolveRecord, error) {
	limit = clampLimit(limit)

	rows, err := s.db.QueryContext(ctx, `
SELECT solve_id, label, disks, moves, elapsed_ms, created_at_ms
FROM solve_history
ORDER BY created_at_ms DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]SolveRecord, 0, limit)
	for rows.Next() {
		var rec SolveRecord
		var moves, createdAtMs int64
		if err := rows.Scan(&rec.SolveID, &rec.Label, &rec.Disks, &moves, &rec.ElapsedMs, &createdAtMs); err != nil {
			return nil, err
		}
		rec.Moves = uint64(moves)
		rec.CreatedAt = time.UnixMilli(createdAtMs).UTC()
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (s *SQLiteService) GetTape(ctx context.Context, solveID string) (json.RawMessage, error) {
	if strings.TrimSpace(solveID) == "" {
		return nil, ErrNotFound
	}
	var blob []byte
	err := s.db.QueryRowContext(ctx, `
SELECT tape_blob
FROM solve_history
WHERE solve_id = ?
`, solveID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, ErrNotFound
	}
	return blob, nil
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS solve_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    solve_id TEXT NOT NULL UNIQUE,
    label TEXT NOT NULL DEFAULT '',
    disks INTEGER NOT NULL,
    moves INTEGER NOT NULL,
    elapsed_ms INTEGER NOT NULL DEFAULT 0,
    created_at_ms INTEGER NOT NULL,
    tape_blob BLOB
)`,
		`CREATE INDEX IF NOT EXISTS idx_solve_history_created_at ON solve_history(created_at_ms)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
