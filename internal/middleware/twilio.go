package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"campus-assistant/pkg/response"
)

const TwilioSignatureHeader = "X-Twilio-Signature"

// TwilioSignature rejects webhook calls whose X-Twilio-Signature does not
// match the auth token. It is a no-op when no token is configured.
func (m Middleware) TwilioSignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.validator == nil {
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			response.Error(c, err, nil)
			c.Abort()
			return
		}

		params := make(map[string]string, len(c.Request.PostForm))
		for k, v := range c.Request.PostForm {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}

		url := m.requestURL(c)
		if !m.validator.Validate(url, params, c.GetHeader(TwilioSignatureHeader)) {
			m.l.Warnf(c.Request.Context(), "middleware.TwilioSignature: invalid signature for %s", url)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// requestURL rebuilds the URL Twilio signed.
func (m Middleware) requestURL(c *gin.Context) string {
	if m.publicURL != "" {
		return strings.TrimRight(m.publicURL, "/") + c.Request.URL.RequestURI()
	}

	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
