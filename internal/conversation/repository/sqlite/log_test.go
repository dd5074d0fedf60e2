package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"campus-assistant/internal/conversation"
	"campus-assistant/internal/conversation/repository/file"
	"campus-assistant/internal/model"
	pkgLog "campus-assistant/pkg/log"
)

func openRepo(t *testing.T) conversation.Repository {
	t.Helper()
	repo, closeFn, err := Open(context.Background(), pkgLog.NewNop(), filepath.Join(t.TempDir(), "log.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = closeFn() })
	return repo
}

func TestExport_MatchesFileFormat(t *testing.T) {
	ctx := context.Background()
	db := openRepo(t)
	fs, err := file.New(pkgLog.NewNop(), t.TempDir())
	if err != nil {
		t.Fatalf("file.New: %v", err)
	}

	t0 := time.Date(2025, 5, 6, 7, 8, 9, 123456000, time.Local)
	entries := []model.ConversationLogEntry{
		{UserID: "whats:521", Timestamp: t0, UserMessage: "¿Becas?", BotReply: "Sí, hay becas."},
		{UserID: "whats:521", Timestamp: t0.Add(time.Minute), UserMessage: "gracias", BotReply: "¡De nada!"},
	}
	for _, e := range entries {
		if err := db.Append(ctx, e); err != nil {
			t.Fatalf("sqlite Append: %v", err)
		}
		if err := fs.Append(ctx, e); err != nil {
			t.Fatalf("file Append: %v", err)
		}
	}

	got, err := db.Export(ctx, "whats_521")
	if err != nil {
		t.Fatalf("sqlite Export: %v", err)
	}
	want, err := fs.Export(ctx, "whats_521")
	if err != nil {
		t.Fatalf("file Export: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("sqlite export differs:\n%s\nwant:\n%s", got, want)
	}
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t)

	ok, err := repo.Exists(ctx, "u1")
	if err != nil || ok {
		t.Fatalf("Exists before append = (%v, %v)", ok, err)
	}

	if err := repo.Append(ctx, model.ConversationLogEntry{UserID: "u1", Timestamp: time.Now(), UserMessage: "a", BotReply: "b"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	ok, err = repo.Exists(ctx, "u1")
	if err != nil || !ok {
		t.Errorf("Exists after append = (%v, %v)", ok, err)
	}
}

func TestExport_NotFound(t *testing.T) {
	_, err := openRepo(t).Export(context.Background(), "ghost")
	if !errors.Is(err, conversation.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
