package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodvenue/internal/web"
)

func newPageHandler(t *testing.T) *PageHandler {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return NewPageHandler(renderer)
}

func TestHomePage(t *testing.T) {
	h := newPageHandler(t)

	w := httptest.NewRecorder()
	h.Home(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestVenueDetailPageDoesNotNeedStore(t *testing.T) {
	h := newPageHandler(t)

	w := httptest.NewRecorder()
	h.VenueDetail(w, withURLParam(httptest.NewRequest(http.MethodGet, "/venue/999/", nil), "id", "999"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `data-venue-id="999"`) {
		t.Fatalf("venue id not rendered")
	}
}

func TestVenueDetailPageRendersAnyNumericID(t *testing.T) {
	h := newPageHandler(t)

	for _, id := range []string{"0", "007"} {
		w := httptest.NewRecorder()
		h.VenueDetail(w, withURLParam(httptest.NewRequest(http.MethodGet, "/venue/"+id+"/", nil), "id", id))
		if w.Code != http.StatusOK {
			t.Fatalf("id %q: expected 200 got %d", id, w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.VenueDetail(w, withURLParam(httptest.NewRequest(http.MethodGet, "/venue/99999999999999999999/", nil), "id", "99999999999999999999"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("out of range id: expected 404 got %d", w.Code)
	}
}
