package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campus-assistant/internal/assistant"
	"campus-assistant/internal/conversation"
	"campus-assistant/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, userID string) (assistant.HistoryOutput, error) {
	key := conversation.Key(userID)

	data, err := uc.repo.Export(ctx, key)
	if errors.Is(err, conversation.ErrNotFound) {
		return assistant.HistoryOutput{}, assistant.ErrHistoryNotFound
	}
	if err != nil {
		return assistant.HistoryOutput{}, fmt.Errorf("assistant.usecase.History: %w", err)
	}

	return assistant.HistoryOutput{
		FileName: key + historyFileExt,
		Content:  data,
	}, nil
}

// downloadReply answers the "download chat" command. It is not persisted.
func (uc *implUseCase) downloadReply(ctx context.Context, sc model.Scope) (assistant.ReplyOutput, error) {
	out := assistant.ReplyOutput{Kind: assistant.ReplyKindDownload}

	ok, err := uc.repo.Exists(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.downloadReply: %v", err)
	}
	if !ok {
		out.Text = downloadMissingReply
		return out, nil
	}

	out.Text = fmt.Sprintf(downloadReadyReply, uc.DownloadURL(sc.UserID))
	return out, nil
}

// DownloadURL is the public link serving a user's history.
func (uc *implUseCase) DownloadURL(userID string) string {
	return strings.TrimRight(uc.opts.PublicURL, "/") + downloadPath + conversation.Key(userID)
}

func isDownloadRequest(text string) bool {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "chat") {
		return false
	}
	for _, v := range downloadVerbs {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
