package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"campus-assistant/internal/conversation"
	pkgLog "campus-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversation_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	user_key     TEXT    NOT NULL,
	ts           INTEGER NOT NULL,
	user_message TEXT    NOT NULL,
	bot_reply    TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversation_log_user ON conversation_log(user_key, id);
`

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// Open opens (or creates) the database at path and prepares the schema.
func Open(ctx context.Context, l pkgLog.Logger, path string) (conversation.Repository, func() error, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("conversation/repository/sqlite: create dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)")
	if err != nil {
		return nil, nil, fmt.Errorf("conversation/repository/sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo, err := New(ctx, db, l)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, db.Close, nil
}

// New wraps an open database handle.
func New(ctx context.Context, db *sql.DB, l pkgLog.Logger) (conversation.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("conversation/repository/sqlite: db is required")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("conversation/repository/sqlite: create schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}
