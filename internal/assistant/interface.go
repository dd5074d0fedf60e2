package assistant

import (
	"context"

	"campus-assistant/internal/model"
)

// UseCase is the channel-independent question answering pipeline.
type UseCase interface {
	// Reply answers one user message and records the exchange. It always
	// returns a reply to show the user unless the input itself is invalid.
	Reply(ctx context.Context, sc model.Scope, input ReplyInput) (ReplyOutput, error)

	// History returns the stored conversation log for a user id or storage key.
	History(ctx context.Context, userID string) (HistoryOutput, error)
}
