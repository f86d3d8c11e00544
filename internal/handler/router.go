/*
Package handler provides the HTTP handlers and routing setup for the site.

This file defines the main Router, applying CORS, request ids, logging, panic recovery,
metrics and per-IP rate limiting before delegating to the page and auth handlers.
*/
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"authsite/internal/pkg/limiter"
	"authsite/internal/pkg/logx"
	"authsite/internal/pkg/resp"
)

// Route paths.
const (
	PathIndex  = "/"
	PathLogin  = "/login"
	PathSignup = "/signup"
	PathLogout = "/logout"
)

// Router sets up the routing table. ctx bounds the lifetime of the rate limiter's cleanup goroutine.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(deps.Config.AuthRate), deps.Config.AuthBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "authsite",
		})
	})

	if deps.Metrics != nil && deps.Config.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Get(PathLogin, HandleLoginPage(deps))
	r.With(authLimiter.Middleware).Post(PathLogin, HandleLogin(deps))
	r.Get(PathSignup, HandleSignupPage(deps))
	r.With(authLimiter.Middleware).Post(PathSignup, HandleSignup(deps))

	r.Group(func(protected chi.Router) {
		protected.Use(RequireUser(deps))

		protected.Get(PathIndex, HandleIndex(deps))
		protected.Get(PathLogout, HandleLogout(deps))
	})

	return r
}
