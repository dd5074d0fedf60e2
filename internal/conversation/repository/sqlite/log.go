package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-assistant/internal/conversation"
	"campus-assistant/internal/model"
)

func (r *implRepository) Append(ctx context.Context, entry model.ConversationLogEntry) error {
	if entry.UserID == "" {
		return conversation.ErrEmptyEntry
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversation_log (user_key, ts, user_message, bot_reply) VALUES (?, ?, ?, ?)`,
		conversation.Key(entry.UserID), entry.Timestamp.UnixNano(), entry.UserMessage, entry.BotReply,
	)
	if err != nil {
		return fmt.Errorf("insert conversation entry: %w", err)
	}
	return nil
}

// Export renders the stored rows in insertion order using the same block
// format as the file backend.
func (r *implRepository) Export(ctx context.Context, userID string) ([]byte, error) {
	key := conversation.Key(userID)

	rows, err := r.db.QueryContext(ctx,
		`SELECT ts, user_message, bot_reply FROM conversation_log WHERE user_key = ? ORDER BY id`, key)
	if err != nil {
		return nil, fmt.Errorf("query conversation log: %w", err)
	}
	defer rows.Close()

	var b strings.Builder
	n := 0
	for rows.Next() {
		var (
			ts  int64
			msg string
			bot string
		)
		if err := rows.Scan(&ts, &msg, &bot); err != nil {
			return nil, fmt.Errorf("scan conversation entry: %w", err)
		}
		b.WriteString(conversation.FormatEntry(model.ConversationLogEntry{
			UserID:      key,
			Timestamp:   time.Unix(0, ts),
			UserMessage: msg,
			BotReply:    bot,
		}))
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversation log: %w", err)
	}

	if n == 0 {
		return nil, conversation.ErrNotFound
	}
	return []byte(b.String()), nil
}

func (r *implRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM conversation_log WHERE user_key = ?`, conversation.Key(userID)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count conversation log: %w", err)
	}
	return n > 0, nil
}
