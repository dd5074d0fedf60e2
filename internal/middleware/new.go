package middleware

import (
	"github.com/twilio/twilio-go/client"

	"campus-assistant/pkg/log"
)

// Config configures the shared HTTP middlewares.
type Config struct {
	// RateLimitPerMin caps webhook calls per sender; 0 disables limiting.
	RateLimitPerMin int
	// TwilioAuthToken enables X-Twilio-Signature checks when non-empty.
	TwilioAuthToken string
	// PublicURL is the base URL Twilio signs; when empty the request host is used.
	PublicURL string
}

type Middleware struct {
	l         log.Logger
	limiter   *rateLimiter
	validator *client.RequestValidator
	publicURL string
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{
		l:         l,
		publicURL: cfg.PublicURL,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	if cfg.TwilioAuthToken != "" {
		v := client.NewRequestValidator(cfg.TwilioAuthToken)
		m.validator = &v
	}
	return m
}
