package whatsapp

import (
	"strings"

	"github.com/twilio/twilio-go/twiml"
)

const (
	senderPrefix   = "whatsapp:"
	unknownSender  = "unknown"
	contentTypeXML = "application/xml"
	contentTypeTXT = "text/plain; charset=utf-8"
)

// senderID strips the channel prefix Twilio adds to WhatsApp numbers.
func senderID(from string) string {
	id := strings.TrimPrefix(strings.TrimSpace(from), senderPrefix)
	if id == "" {
		return unknownSender
	}
	return id
}

// messageTwiML renders a single-message TwiML response.
func messageTwiML(text string) (string, error) {
	return twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: text},
	})
}
