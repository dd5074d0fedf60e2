package conversation

import (
	"context"

	"campus-assistant/internal/model"
)

// Repository persists conversation history per user. Implementations must
// keep entries for one user in the order they were appended.
type Repository interface {
	// Append adds one exchange to the user's log, creating it if needed.
	Append(ctx context.Context, entry model.ConversationLogEntry) error

	// Export returns the user's full log in block format, or ErrNotFound.
	Export(ctx context.Context, userID string) ([]byte, error)

	// Exists reports whether the user has any stored history.
	Exists(ctx context.Context, userID string) (bool, error)
}
