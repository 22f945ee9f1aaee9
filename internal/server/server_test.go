package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emiranda028/hoteles-sub000/internal/cache"
	"github.com/emiranda028/hoteles-sub000/internal/config"
	"github.com/emiranda028/hoteles-sub000/internal/ingest"
)

func TestServerRoutes(t *testing.T) {
	cfg := config.DefaultConfig()
	svc := ingest.NewService(ingest.FileFetcher{Root: t.TempDir()}, cache.NewMemory(), ingest.Options{})
	srv := NewServer(cfg, svc, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("healthz got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics want=200 got=%d", w.Code)
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/sources", nil))
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight got %d %v", w.Code, w.Header())
	}

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sources", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("sources got %d %s", w.Code, w.Body.String())
	}
}
