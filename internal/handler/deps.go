package handler

import (
	"authsite/internal/app/auth"
	"authsite/internal/configs"
	"authsite/internal/pkg/auth/session"
	"authsite/internal/pkg/metrics"
	"authsite/internal/web"
)

// AppDeps bundles everything the HTTP handlers need.
type AppDeps struct {
	Config   *configs.AppConfig
	Auth     *auth.Service
	Sessions session.Manager
	Renderer *web.Renderer

	// Metrics may be nil when metrics are disabled.
	Metrics *metrics.Metrics
}
