package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/showcase/internal/db"
)

// ErrNoSession is returned for operations without a session id.
var ErrNoSession = errors.New("no session")

// Store persists per-session progress: completed implementation steps and
// downloaded items. It is backed by the in-memory database, so nothing
// outlives the process.
type Store struct {
	db *db.DB
}

// NewStore creates a session store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Touch records that a session is active, creating it if needed.
func (s *Store) Touch(ctx context.Context, sid string) error {
	if sid == "" {
		return ErrNoSession
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id) VALUES (?)
		ON CONFLICT(id) DO UPDATE SET last_seen = datetime('now')`, sid)
	if err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	return nil
}

// ToggleStep flips the completion of stepID and reports whether the step is
// now complete.
func (s *Store) ToggleStep(ctx context.Context, sid, stepID string) (bool, error) {
	if sid == "" {
		return false, ErrNoSession
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ensure(ctx, tx, sid); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM completed_steps WHERE session_id = ? AND step_id = ?`, sid, stepID)
	if err != nil {
		return false, fmt.Errorf("clearing step: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("clearing step: %w", err)
	}
	completed := n == 0
	if completed {
		if _, err := tx.ExecContext(ctx, `INSERT INTO completed_steps (session_id, step_id) VALUES (?, ?)`, sid, stepID); err != nil {
			return false, fmt.Errorf("completing step: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing step toggle: %w", err)
	}
	return completed, nil
}

// CompletedSteps returns the set of steps the session has completed.
func (s *Store) CompletedSteps(ctx context.Context, sid string) (map[string]bool, error) {
	return s.set(ctx, `SELECT step_id FROM completed_steps WHERE session_id = ?`, sid)
}

// MarkDownloaded records that the session downloaded itemID.
func (s *Store) MarkDownloaded(ctx context.Context, sid, itemID string) error {
	if sid == "" {
		return ErrNoSession
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := ensure(ctx, tx, sid); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO downloads (session_id, item_id) VALUES (?, ?)
		ON CONFLICT(session_id, item_id) DO UPDATE SET downloaded_at = datetime('now')`, sid, itemID)
	if err != nil {
		return fmt.Errorf("recording download: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing download: %w", err)
	}
	return nil
}

// Downloaded returns the set of items the session has downloaded.
func (s *Store) Downloaded(ctx context.Context, sid string) (map[string]bool, error) {
	return s.set(ctx, `SELECT item_id FROM downloads WHERE session_id = ?`, sid)
}

func (s *Store) set(ctx context.Context, query, sid string) (map[string]bool, error) {
	out := make(map[string]bool)
	if sid == "" {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, query, sid)
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		out[id] = true
	}
	return out, rows.Err()
}

func ensure(ctx context.Context, tx *sql.Tx, sid string) error {
	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO sessions (id) VALUES (?)`, sid); err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	return nil
}
