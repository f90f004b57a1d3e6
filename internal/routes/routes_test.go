package routes_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adventmirror/adventd/internal/routes"
	pkgroutes "github.com/adventmirror/adventd/pkg/routes"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func TestRegisterRoute(t *testing.T) {
	r := routes.New(testLogger())
	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: okHandler("OK"),
	})

	if len(r.Routes()) != 1 {
		t.Fatalf("Routes() len = %d, want 1", len(r.Routes()))
	}

	handler := r.Build()

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "OK")
	}
}

func TestRegisterGroup_PrefixComposition(t *testing.T) {
	r := routes.New(testLogger())
	r.RegisterGroup(pkgroutes.Group{
		Prefix: "/api",
		Routes: []pkgroutes.Route{
			{Method: "GET", Pattern: "/status", Handler: okHandler("status")},
		},
		Children: []pkgroutes.Group{
			{
				Prefix: "/v1",
				Routes: []pkgroutes.Route{
					{Method: "GET", Pattern: "/info", Handler: okHandler("info")},
				},
			},
		},
	})

	handler := r.Build()

	cases := []struct {
		target string
		body   string
	}{
		{"/api/status", "status"},
		{"/api/v1/info", "info"},
	}

	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if rec.Body.String() != tc.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tc.body)
			}
		})
	}
}

func TestBuild_MethodScoped(t *testing.T) {
	r := routes.New(testLogger())
	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/only-get",
		Handler: okHandler("get"),
	})

	handler := r.Build()

	req := httptest.NewRequest("POST", "/only-get", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
