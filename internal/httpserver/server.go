// internal/httpserver/server.go
//
// HTTP server wiring for the feetdle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Catalog endpoints: GET /api/items, POST /api/items (admin-gated),
//     GET /api/daily-item.
//   - Bug reports: POST /api/send-bug-report.
//   - Game session endpoints (cookie-backed state machine) under /api/game.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - There is no user auth: game progress lives entirely in signed cookies
//     held by the browser, and the admin create path is gated by a shared
//     key checked against a bcrypt hash.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/produceitem/feetdle/internal/catalog"
	"github.com/produceitem/feetdle/internal/config"
	"github.com/produceitem/feetdle/internal/gamestate"
	"github.com/produceitem/feetdle/internal/mailer"
)

// Catalog is the item store surface the server needs. *catalog.Store
// implements it; tests substitute fakes.
type Catalog interface {
	List(ctx context.Context) ([]catalog.Item, error)
	Fallback() []catalog.Item
	Create(ctx context.Context, params catalog.CreateParams) (*catalog.Item, error)
}

// Server bundles router, catalog store, mail sender and cookie codec.
type Server struct {
	r     *chi.Mux
	cfg   *config.Config
	cat   Catalog
	mail  mailer.Sender
	codec *gamestate.Codec

	now func() time.Time // injectable for tests
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, cat Catalog, mail mailer.Sender) *Server {
	s := &Server{
		r:     chi.NewRouter(),
		cfg:   cfg,
		cat:   cat,
		mail:  mail,
		codec: gamestate.NewCodec(cfg.CookieSecret, cfg.Production),
		now:   time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFor(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"feetdle","endpoints":["/health","/api/items","/api/daily-item","/api/game/state","POST /api/send-bug-report"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/items", s.handleListItems)
		r.With(s.requireAdminKey).Post("/items", s.handleCreateItem)
		r.Get("/daily-item", s.handleDailyItem)
		r.Post("/send-bug-report", s.handleBugReport)
		s.mountGame(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFor enables credentialed CORS for a single origin.
func corsFor(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAdminKey gates the item creation path behind a shared key checked
// against ADMIN_KEY_HASH. With no hash configured the path is disabled.
func (s *Server) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AdminKeyHash == "" {
			http.Error(w, `{"error":"admin_disabled"}`, http.StatusServiceUnavailable)
			return
		}
		key := r.Header.Get("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminKeyHash), []byte(key)) != nil {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
