package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"campus-assistant/internal/conversation"
	"campus-assistant/internal/model"
)

func (r *implRepository) path(userID string) string {
	return filepath.Join(r.dir, conversation.Key(userID)+fileExt)
}

// Append writes one block in append mode. The file is closed before
// returning, on every path.
func (r *implRepository) Append(ctx context.Context, entry model.ConversationLogEntry) (err error) {
	if entry.UserID == "" {
		return conversation.ErrEmptyEntry
	}
	defer func() {
		if err != nil {
			r.l.Errorf(ctx, "conversation/repository/file.Append: user=%s: %v", entry.UserID, err)
		}
	}()

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path(entry.UserID), os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("open conversation log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close conversation log: %w", cerr)
		}
	}()

	if _, err = f.WriteString(conversation.FormatEntry(entry)); err != nil {
		return fmt.Errorf("write conversation log: %w", err)
	}
	return nil
}

func (r *implRepository) Export(ctx context.Context, userID string) ([]byte, error) {
	data, err := os.ReadFile(r.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, conversation.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read conversation log: %w", err)
	}
	return data, nil
}

func (r *implRepository) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := os.Stat(r.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat conversation log: %w", err)
	}
	return true, nil
}
