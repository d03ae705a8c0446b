// Package server wires the HTTP surface: routing, middleware, and the
// chat endpoint.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/auth"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/middleware"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
	"github.com/Tekmindlabs/Aivy-Dojo/web"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Chat           *ChatHandler
	Health         *HealthHandler
	Sessions       store.SessionRepo
	AllowedOrigins []string
}

// New builds the HTTP handler tree.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(recoverJSON)
	r.Use(middleware.CORS(deps.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.With(auth.Middleware(deps.Sessions)).
			Method(http.MethodPost, "/chat", deps.Chat)
		r.Method(http.MethodGet, "/health", deps.Health)
	})

	// Embedded chat UI at the root.
	r.NotFound(web.Handler().ServeHTTP)

	return r
}

// recoverJSON converts panics into the JSON 500 shape the API promises,
// instead of chi's plain-text default.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("panic serving request", "path", r.URL.Path, "panic", rec)
				Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
