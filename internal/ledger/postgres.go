package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"
)

type PostgresService struct {
	db          *sql.DB
	recentLimit int
}

func (s *PostgresService) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresService) RecordSolve(ctx context.Context, rec SolveRecord) error {
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
    solve_id, label, disks, moves, elapsed_ms, created_at, tape_blob
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (solve_id) DO UPDATE
SET
    label = EXCLUDED.label,
    disks = EXCLUDED.disks,
    moves = EXCLUDED.moves,
    elapsed_ms = EXCLUDED.elapsed_ms,
    tape_blob = COALESCE(EXCLUDED.tape_blob, solve_history.tape_blob)
`, rec.SolveID, rec.Label, rec.Disks, int64(rec.Moves), rec.ElapsedMs, rec.CreatedAt, nullableBytes(rec.Tape)); err != nil {
		return err
	}

	if s.recentLimit > 0 {
		if _, err := tx.ExecContext(ctx, `
DELETE FROM solve_history
WHERE id IN (
    SELECT id
    FROM solve_history
    ORDER BY created_at DESC, id DESC
    OFFSET $1
)
`, s.recentLimit); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresService) ListRecent(ctx context.Context, limit int) ([]SolveRecord, error) {
	limit = clampLimit(limit)

	rows, err := s.db.QueryContext(ctx, `
SELECT solve_id, label, disks, moves, elapsed_ms, created_at
FROM solve_history
ORDER BY created_at DESC, id DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]SolveRecord, 0, limit)
	for rows.Next() {
		var rec SolveRecord
		var moves int64
		if err := rows.Scan(&rec.SolveID, &rec.Label, &rec.Disks, &moves, &rec.ElapsedMs, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Moves = uint64(moves)
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (s *PostgresService) GetTape(ctx context.Context, solveID string) (json.RawMessage, error) {
	if strings.TrimSpace(solveID) == "" {
		return nil, ErrNotFound
	}
	var blob []byte
	err := s.db.QueryRowContext(ctx, `
SELECT tape_blob
FROM solve_history
WHERE solve_id = $1
`, solveID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		log.Printf("[Ledger] solve %s has no stored tape", solveID)
		return nil, ErrNotFound
	}
	return blob, nil
}

func nullableBytes(v []byte) any {
	if len(v) == 0 {
		return nil
	}
	return v
}
