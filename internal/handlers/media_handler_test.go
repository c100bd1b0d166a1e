package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"moodvenue/internal/models"
	"moodvenue/internal/services"
)

type fakeMediaStore struct {
	gotName, gotType, gotBody string
}

func (f *fakeMediaStore) Put(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*models.MediaObject, error) {
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "audio/") {
		return nil, fmt.Errorf("%w: %s", services.ErrUnsupportedMedia, contentType)
	}
	b, _ := io.ReadAll(body)
	f.gotName, f.gotType, f.gotBody = filename, contentType, string(b)
	return &models.MediaObject{Key: "media/images/x.png", URL: "https://cdn.example.com/media/images/x.png", ContentType: contentType, Size: size}, nil
}

func multipartRequest(t *testing.T, filename, contentType, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	_, _ = part.Write([]byte(content))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/api/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMediaUploadWithoutBucket(t *testing.T) {
	h := NewMediaHandler(nil, BaseHandler{})

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "a.png", "image/png", "png"))

	if w.Code != http.StatusServiceUnavailable || !strings.Contains(w.Body.String(), "media_unavailable") {
		t.Fatalf("expected 503 media_unavailable got %d %s", w.Code, w.Body.String())
	}
}

func TestMediaUploadStoresFile(t *testing.T) {
	store := &fakeMediaStore{}
	h := NewMediaHandler(store, BaseHandler{})

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "a.png", "image/png", "png-bytes"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}
	if store.gotName != "a.png" || store.gotType != "image/png" || store.gotBody != "png-bytes" {
		t.Fatalf("unexpected upload %+v", store)
	}
	if !strings.Contains(w.Body.String(), `"url":"https://cdn.example.com/media/images/x.png"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestMediaUploadGuessesTypeFromExtension(t *testing.T) {
	store := &fakeMediaStore{}
	h := NewMediaHandler(store, BaseHandler{})

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "cover.png", "application/octet-stream", "png"))

	if w.Code != http.StatusCreated || store.gotType != "image/png" {
		t.Fatalf("expected image/png got %d %q", w.Code, store.gotType)
	}
}

func TestMediaUploadRejectsText(t *testing.T) {
	h := NewMediaHandler(&fakeMediaStore{}, BaseHandler{})

	w := httptest.NewRecorder()
	h.Upload(w, multipartRequest(t, "notes.txt", "text/plain", "hello"))

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415 got %d", w.Code)
	}
}

func TestMediaUploadMissingFile(t *testing.T) {
	h := NewMediaHandler(&fakeMediaStore{}, BaseHandler{})

	req := httptest.NewRequest(http.MethodPost, "/admin/api/media", strings.NewReader("x=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Upload(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
