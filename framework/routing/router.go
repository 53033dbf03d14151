package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router wraps chi.Router with Laravel-style helpers.
type Router struct {
	mux chi.Router
}

// New creates a Router with sane defaults (RequestID, RealIP, Recoverer)
// followed by mw.
func New(mw ...func(http.Handler) http.Handler) *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw...)
	return &Router{mux: r}
}

// ── HTTP verbs ───────────────────────────────────────────────────────────────

// Registrations are never updated or removed, so only reads and creates
// are routed.
func (r *Router) Get(pattern string, h http.HandlerFunc)  { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc) { r.mux.Post(pattern, h) }

// ── Prefixes ─────────────────────────────────────────────────────────────────

// Prefix creates a sub-router with a URL prefix. Laravel: Route::prefix('/api')
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// ── Serve ────────────────────────────────────────────────────────────────────

// ServeHTTP implements http.Handler so Router can be passed to http.ListenAndServe.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
