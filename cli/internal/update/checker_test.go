package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNoticeWhenNewerVersionAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version": "2.1.0"}`))
	}))
	defer server.Close()

	c := NewChecker(server.URL, "2.0.1")
	c.Start(context.Background())

	notice := c.Notice()
	if !strings.Contains(notice, "2.1.0") || !strings.Contains(notice, "2.0.1") {
		t.Errorf("expected both versions in the notice, got %q", notice)
	}
}

func TestNoNoticeWhenUpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version": "2.0.1"}`))
	}))
	defer server.Close()

	c := NewChecker(server.URL, "2.0.1")
	c.Start(context.Background())

	if notice := c.Notice(); notice != "" {
		t.Errorf("expected no notice, got %q", notice)
	}
}

func TestLookupFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewChecker(server.URL, "2.0.1")
	c.Start(context.Background())

	if notice := c.Notice(); notice != "" {
		t.Errorf("expected failure to be silent, got %q", notice)
	}
}

func TestUnreachableServerIsSwallowed(t *testing.T) {
	c := NewChecker("http://127.0.0.1:1", "2.0.1")
	c.Start(context.Background())

	if notice := c.Notice(); notice != "" {
		t.Errorf("expected failure to be silent, got %q", notice)
	}
}

func TestNoticeWithoutStart(t *testing.T) {
	c := NewChecker("http://example.invalid", "2.0.1")
	if notice := c.Notice(); notice != "" {
		t.Errorf("expected empty notice before Start, got %q", notice)
	}
}
