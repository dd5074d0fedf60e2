package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectNgrokURL_PrefersHTTPS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tunnels" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
	}))
	defer srv.Close()

	got, err := detectNgrokURL(context.Background(), srv.URL, 1, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://a.ngrok.io" {
		t.Errorf("expected https tunnel, got %q", got)
	}
}

func TestDetectNgrokURL_RetriesUntilTunnel(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
	}))
	defer srv.Close()

	got, err := detectNgrokURL(context.Background(), srv.URL, 5, time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "http://b.ngrok.io" || atomic.LoadInt32(&calls) != 3 {
		t.Errorf("got %q after %d calls", got, calls)
	}
}

func TestDetectNgrokURL_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels":[]}`))
	}))
	defer srv.Close()

	if _, err := detectNgrokURL(context.Background(), srv.URL, 2, time.Millisecond); err == nil {
		t.Error("expected error without tunnels")
	}
}
