package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-container/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New()
	r.Get("/container", okHandler)

	rr := do(t, r, http.MethodGet, "/container")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /container: got %d want 200", rr.Code)
	}
}

func TestRouter_Post(t *testing.T) {
	r := routing.New()
	r.Post("/container", okHandler)

	rr := do(t, r, http.MethodPost, "/container")
	if rr.Code != http.StatusOK {
		t.Errorf("POST /container: got %d want 200", rr.Code)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := routing.New()
	r.Get("/container", okHandler)

	rr := do(t, r, http.MethodDelete, "/container")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /container: got %d want 405", rr.Code)
	}
}

// ── 404 for unregistered routes ──────────────────────────────────────────────

func TestRouter_NotFound(t *testing.T) {
	r := routing.New()
	rr := do(t, r, http.MethodGet, "/not-registered")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

// ── Route params ─────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/container/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(id))
	})

	rr := do(t, r, http.MethodGet, "/container/engine")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if rr.Body.String() != "engine" {
		t.Errorf("got body %q want %q", rr.Body.String(), "engine")
	}
}

// ── Prefix ───────────────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/container", func(c *routing.Router) {
		c.Get("/", okHandler)
	})

	rr := do(t, r, http.MethodGet, "/container/")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /container/: got %d want 200", rr.Code)
	}

	rr2 := do(t, r, http.MethodGet, "/")
	if rr2.Code != http.StatusNotFound {
		t.Errorf("GET /: expected 404, got %d", rr2.Code)
	}
}

// ── Default middleware ───────────────────────────────────────────────────────

func TestRouter_NewAppliesMiddlewareAfterDefaults(t *testing.T) {
	var reqID string
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID = middleware.GetReqID(r.Context())
			next.ServeHTTP(w, r)
		})
	}

	r := routing.New(mw)
	r.Get("/ping", okHandler)
	do(t, r, http.MethodGet, "/ping")

	if reqID == "" {
		t.Error("expected a request id from the default middleware")
	}
}

func TestRouter_RecoversPanics(t *testing.T) {
	r := routing.New()
	r.Get("/panic", func(w http.ResponseWriter, req *http.Request) { panic("boom") })

	rr := do(t, r, http.MethodGet, "/panic")
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("got %d want 500", rr.Code)
	}
}

// ── Router is an http.Handler ───────────────────────────────────────────────

func TestRouter_HandlerInterface(t *testing.T) {
	var _ http.Handler = routing.New()
}
