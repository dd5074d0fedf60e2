package assistant

import "errors"

var (
	ErrEmptyInput      = errors.New("message text is empty")
	ErrEmptyPersona    = errors.New("persona is empty")
	ErrEmptyCompletion = errors.New("llm returned an empty completion")
	ErrHistoryNotFound = errors.New("conversation history not found")
)
