package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"campus-assistant/internal/middleware"
	"campus-assistant/pkg/log"
)

type mockWhatsApp struct {
	messages  int
	downloads []string
}

func (m *mockWhatsApp) HandleMessage(c *gin.Context) {
	m.messages++
	c.String(http.StatusOK, "<Response/>")
}

func (m *mockWhatsApp) HandleDownload(c *gin.Context) {
	m.downloads = append(m.downloads, c.Param("user_id"))
	c.String(http.StatusOK, "log")
}

func newServer(t *testing.T, wa *mockWhatsApp) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	cfg := Config{
		Port:        5000,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  middleware.New(l, middleware.Config{}),
	}
	if wa != nil {
		cfg.WhatsAppHandler = wa
	}
	srv, err := New(l, cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return srv
}

func get(srv http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), ServiceName) {
			t.Errorf("%s: body missing service name: %s", path, w.Body.String())
		}
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("%s: missing request id header", path)
		}
	}
}

func TestWhatsAppRoutes(t *testing.T) {
	wa := &mockWhatsApp{}
	srv := newServer(t, wa)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader("From=whatsapp%3A%2B1&Body=hola"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK || wa.messages != 1 {
		t.Errorf("POST /whatsapp: code=%d messages=%d", w.Code, wa.messages)
	}

	get(srv, "/descargar/abc_def")
	get(srv, "/download/abc_def")
	if len(wa.downloads) != 2 || wa.downloads[0] != "abc_def" {
		t.Errorf("unexpected downloads %v", wa.downloads)
	}
}

func TestWhatsAppRoutes_NotConfigured(t *testing.T) {
	srv := newServer(t, nil)
	if w := get(srv, "/descargar/abc"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without handler, got %d", w.Code)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port")
	}
	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 1}); err == nil {
		t.Error("expected error without logger")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t, nil)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop")
	}
}
