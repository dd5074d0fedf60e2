package file

import (
	"fmt"
	"os"
	"sync"

	"campus-assistant/internal/conversation"
	pkgLog "campus-assistant/pkg/log"
)

const (
	fileExt  = ".txt"
	dirPerm  = 0o755
	filePerm = 0o644
)

type implRepository struct {
	l   pkgLog.Logger
	dir string
	mu  sync.Mutex
}

// New creates a directory-backed conversation repository, one text file per user.
func New(l pkgLog.Logger, dir string) (conversation.Repository, error) {
	if dir == "" {
		return nil, fmt.Errorf("conversation/repository/file: dir is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("conversation/repository/file: create dir: %w", err)
	}
	return &implRepository{l: l, dir: dir}, nil
}
