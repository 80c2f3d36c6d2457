package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/app"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/common"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/config"
	"github.com/DonaldJasper0621/Stock-News-Analyst/internal/handlers"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := common.NewSilentLogger()
	application := &app.App{
		Config:         config.NewDefaultConfig(),
		Logger:         logger,
		HealthHandler:  handlers.NewHealthHandler(logger),
		VersionHandler: handlers.NewVersionHandler(logger),
	}
	return New(application)
}

func TestServer_HealthThroughMiddleware(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected correlation ID header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
}

func TestServer_CorrelationIDPassthrough(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "req-123" {
		t.Errorf("expected correlation ID req-123, got %q", got)
	}
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS headers")
	}
}

func TestServer_UnknownAPIRouteIs404JSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/nonexistent", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Not Found") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestServer_CSPAllowsTradingView(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	csp := w.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "s3.tradingview.com") {
		t.Errorf("expected CSP to allow the chart embed script, got %q", csp)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	srv := newTestServer(t)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	wrapped := srv.recoveryMiddleware(panicking)

	req := httptest.NewRequest("GET", "/panic", nil)
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestRouteByMethod_Unsupported(t *testing.T) {
	req := httptest.NewRequest("PATCH", "/api/watchlist", nil)
	w := httptest.NewRecorder()

	RouteByMethod(w, req, MethodRouter{
		"GET": func(w http.ResponseWriter, r *http.Request) {},
	})

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRouteResourceItem_DeleteOnly(t *testing.T) {
	called := false
	del := func(w http.ResponseWriter, r *http.Request) { called = true }

	req := httptest.NewRequest("DELETE", "/api/watchlist/NVDA", nil)
	w := httptest.NewRecorder()
	RouteResourceItem(w, req, nil, nil, del)
	if !called {
		t.Error("expected DELETE handler to run")
	}

	req = httptest.NewRequest("PUT", "/api/watchlist/NVDA", nil)
	w = httptest.NewRecorder()
	RouteResourceItem(w, req, nil, nil, del)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405 for PUT, got %d", w.Code)
	}
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	srv := newTestServer(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil {
			http.Error(w, "body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	wrapped := srv.maxBodySizeMiddleware(8)(inner)

	req := httptest.NewRequest("POST", "/api/watchlist", strings.NewReader("this body exceeds eight bytes"))
	w := httptest.NewRecorder()

	wrapped.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", w.Code)
	}
}
