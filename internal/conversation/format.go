package conversation

import (
	"strings"

	"campus-assistant/internal/model"
)

// TimestampLayout renders the first line of every block.
const TimestampLayout = "2006-01-02 15:04:05.000000"

var separator = strings.Repeat("=", 50)

// FormatEntry renders one exchange as a log block:
//
//	<timestamp>
//	User: <message>
//	Bot: <reply>
//	==================================================
func FormatEntry(e model.ConversationLogEntry) string {
	var b strings.Builder
	b.WriteString(e.Timestamp.Format(TimestampLayout))
	b.WriteString("\nUser: ")
	b.WriteString(e.UserMessage)
	b.WriteString("\nBot: ")
	b.WriteString(e.BotReply)
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")
	return b.String()
}
