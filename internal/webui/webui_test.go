package webui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestHandler_ServesIndex は埋め込みのインデックスページが配信されることを検証する。
func TestHandler_ServesIndex(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Mergington High School") {
		t.Error("expected index page to contain school name")
	}
}

// TestHandler_ServesAssets はJS/CSSアセットが配信されることを検証する。
func TestHandler_ServesAssets(t *testing.T) {
	handler := Handler()

	for _, path := range []string{"/app.js", "/styles.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("%s: status = %d, want %d", path, w.Result().StatusCode, http.StatusOK)
		}
	}
}

// TestHandler_UnknownPathReturns404 は存在しないアセットが404になることを検証する。
func TestHandler_UnknownPathReturns404(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest(http.MethodGet, "/missing.html", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}
