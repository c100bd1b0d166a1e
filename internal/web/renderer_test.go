package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderHome(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, PageHome, PageData{Title: "Venues"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<title>Venues</title>") || !strings.Contains(out, `data-api="/api/venues/"`) {
		t.Fatalf("unexpected home page:\n%s", out)
	}
	if !strings.Contains(out, "/static/home.js") {
		t.Fatalf("home script missing")
	}
}

func TestRenderVenueDetailCarriesID(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, PageVenueDetail, PageData{Title: "Venue", VenueID: 42}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `data-venue-id="42"`) {
		t.Fatalf("venue id missing:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "/static/home.js") {
		t.Fatalf("detail page must not pull the home script")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "nope.html", PageData{}); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestStaticHandler(t *testing.T) {
	h := StaticHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/style.css", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for directory got %d", w.Code)
	}
}
