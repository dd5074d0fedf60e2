package conversation

import "errors"

var (
	ErrNotFound   = errors.New("conversation log not found")
	ErrEmptyEntry = errors.New("conversation entry has no user id")
)
