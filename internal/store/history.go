package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ichimon-app/ichimon/internal/mastery"
)

// historyKey is the single key under which the history blob is stored.
const historyKey = "quizHistory"

// HistoryRepo reads and writes the mastery history blob. Both operations
// degrade rather than fail: a missing or corrupt blob loads as an empty
// history, a failed save is logged and dropped. Persistence problems must
// never take down a study session.
type HistoryRepo struct {
	db     *sql.DB
	logger *log.Logger
}

// HistoryRepo returns a HistoryRepo backed by this store. A nil logger
// falls back to the package default.
func (s *Store) HistoryRepo(logger *log.Logger) *HistoryRepo {
	if logger == nil {
		logger = log.Default()
	}
	return &HistoryRepo{db: s.db, logger: logger}
}

// Load reads the persisted history. Returns an empty store when no
// history exists yet or the stored value cannot be read or decoded.
func (r *HistoryRepo) Load(ctx context.Context) mastery.HistoryStore {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM history WHERE key = ?", historyKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return mastery.HistoryStore{}
	}
	if err != nil {
		r.logger.Error("load history", "err", err)
		return mastery.HistoryStore{}
	}

	var h mastery.HistoryStore
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		r.logger.Error("decode history, starting fresh", "err", err)
		return mastery.HistoryStore{}
	}
	if h == nil {
		h = mastery.HistoryStore{}
	}
	return h
}

// Save writes the history blob, replacing whatever was stored before.
// Best-effort: failures are logged, not retried, and never propagate.
func (r *HistoryRepo) Save(ctx context.Context, h mastery.HistoryStore) {
	raw, err := json.Marshal(h)
	if err != nil {
		r.logger.Error("encode history", "err", err)
		return
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO history (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		historyKey, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		r.logger.Error("save history", "err", err)
	}
}
