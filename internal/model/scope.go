package model

// Channel identifies the front end a message arrived on.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
	ChannelDesktop  Channel = "desktop"
)

// Scope carries the caller identity through the use case layer.
type Scope struct {
	UserID   string  // Channel-specific sender id, e.g. "+5215550001111" or "telegram:42"
	Username string  // Display name when the channel provides one
	Channel  Channel // Originating front end
}
