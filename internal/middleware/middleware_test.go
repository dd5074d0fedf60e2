package middleware

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-assistant/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(m Middleware, mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	r.POST("/whatsapp", handlers...)
	return r
}

func postForm(r http.Handler, form url.Values, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "http://bot.example.org/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sign computes the Twilio request signature: HMAC-SHA1 over the URL
// followed by the sorted POST parameters.
func sign(token, fullURL string, form url.Values) string {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(fullURL)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(form.Get(k))
	}

	mac := hmac.New(sha1.New, []byte(token))
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.RequestID())

	w := postForm(r, url.Values{}, nil)
	id := w.Header().Get(RequestIDHeader)
	if id == "" || w.Body.String() != id {
		t.Errorf("expected generated id in header and context, got header=%q body=%q", id, w.Body.String())
	}

	w = postForm(r, url.Values{}, map[string]string{RequestIDHeader: "abc-123"})
	if w.Body.String() != "abc-123" {
		t.Errorf("expected caller id to be kept, got %q", w.Body.String())
	}
}

func TestRateLimit(t *testing.T) {
	m := New(log.NewNop(), Config{RateLimitPerMin: 10})
	r := newRouter(m, m.RateLimit())

	form := url.Values{"From": {"whatsapp:+5215550001111"}, "Body": {"hola"}}
	if w := postForm(r, form, nil); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}
	if w := postForm(r, form, nil); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", w.Code)
	}

	other := url.Values{"From": {"whatsapp:+5215550002222"}, "Body": {"hola"}}
	if w := postForm(r, other, nil); w.Code != http.StatusOK {
		t.Errorf("other sender: expected 200, got %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.RateLimit())

	form := url.Values{"From": {"x"}}
	for i := 0; i < 5; i++ {
		if w := postForm(r, form, nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestTwilioSignature(t *testing.T) {
	const token = "test-auth-token"
	m := New(log.NewNop(), Config{TwilioAuthToken: token, PublicURL: "https://bot.example.org"})
	r := newRouter(m, m.TwilioSignature())

	form := url.Values{"From": {"whatsapp:+5215550001111"}, "Body": {"hola"}}
	sig := sign(token, "https://bot.example.org/whatsapp", form)

	if w := postForm(r, form, map[string]string{TwilioSignatureHeader: sig}); w.Code != http.StatusOK {
		t.Errorf("valid signature: expected 200, got %d", w.Code)
	}
	if w := postForm(r, form, map[string]string{TwilioSignatureHeader: "bogus"}); w.Code != http.StatusForbidden {
		t.Errorf("invalid signature: expected 403, got %d", w.Code)
	}
	if w := postForm(r, form, nil); w.Code != http.StatusForbidden {
		t.Errorf("missing signature: expected 403, got %d", w.Code)
	}
}

func TestTwilioSignature_DisabledWithoutToken(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.TwilioSignature())

	if w := postForm(r, url.Values{"Body": {"hola"}}, nil); w.Code != http.StatusOK {
		t.Errorf("expected 200 without token, got %d", w.Code)
	}
}
