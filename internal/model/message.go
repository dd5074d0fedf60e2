package model

import "time"

// Message is one inbound user message. It is never mutated after creation.
type Message struct {
	ID         string    // uuid assigned on receipt
	SenderID   string    // Channel sender id with any channel prefix stripped
	Text       string    // Raw text as typed by the user
	ReceivedAt time.Time // When the front end received it
}

// TopicEntry maps a keyword to an institutional page.
type TopicEntry struct {
	Keyword string
	URL     string
}

// ConversationLogEntry is one persisted request/response pair.
type ConversationLogEntry struct {
	UserID      string
	Timestamp   time.Time
	UserMessage string
	BotReply    string
}
