package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adventmirror/adventd/internal/middleware"
)

func trimSlashRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	wrapped := middleware.TrimSlash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	return rec
}

func TestTrimSlash_Redirects(t *testing.T) {
	rec := trimSlashRequest(t, "/2023/day/5/")

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if loc := rec.Header().Get("Location"); loc != "/2023/day/5" {
		t.Errorf("Location = %q, want %q", loc, "/2023/day/5")
	}
}

func TestTrimSlash_PreservesRoot(t *testing.T) {
	rec := trimSlashRequest(t, "/")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestTrimSlash_PreservesQuery(t *testing.T) {
	rec := trimSlashRequest(t, "/static/app.css/?v=2")

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if loc := rec.Header().Get("Location"); loc != "/static/app.css?v=2" {
		t.Errorf("Location = %q, want %q", loc, "/static/app.css?v=2")
	}
}

func TestTrimSlash_PassesCleanPaths(t *testing.T) {
	rec := trimSlashRequest(t, "/2023/day/5")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
