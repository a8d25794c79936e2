package server

import (
	"context"
	"log"

	"krishisahay/internal/engine"
	"krishisahay/internal/handlers"
	"krishisahay/internal/handlers/api"
	"krishisahay/internal/middleware"
)

// Store is the persistence the routes depend on.
type Store interface {
	middleware.UserStore
	handlers.HistoryReader
	api.HistoryReader
	api.Pinger
}

// Services bundles what the handlers answer and record with.
type Services struct {
	Store    Store
	Engine   *engine.Engine
	Recorder handlers.Recorder
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, svc Services) error {
	authMiddleware := middleware.NewAuthMiddleware(svc.Store, s.Cfg.ClientCertHeader)

	askHandler := handlers.NewAskHandler(svc.Engine, svc.Recorder, svc.Store, s.Cfg)
	queryHandler := api.NewQueryHandler(svc.Engine, svc.Recorder, svc.Store)
	knowledgeHandler := api.NewKnowledgeHandler(svc.Engine.Knowledge())
	healthHandler := api.NewHealthHandler(svc.Store)
	probeHandler := handlers.NewProbeHandler(svc.Store)

	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.OIDCIssuer != "" {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, svc.Store)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else if s.Cfg.ClientCertHeader == "" {
		log.Println("Warning: neither OIDC_ISSUER nor CLIENT_CERT_HEADER is set; nobody can sign in")
	} else {
		log.Println("OIDC authentication is disabled. Using client certificate header only.")
	}

	s.App.Get("/login", authMiddleware.OptionalAuth, askHandler.Login)

	// Frontend routes
	s.App.Get("/", authMiddleware.RequireAuth, askHandler.Index)
	s.App.Post("/ask", authMiddleware.RequireAuth, askHandler.Ask)
	s.App.Get("/history", authMiddleware.RequireAuth, askHandler.History)

	// API routes
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/health", healthHandler.Health)
	apiGroup.Get("/knowledge", knowledgeHandler.Categories)
	apiGroup.Get("/knowledge/:category", knowledgeHandler.List)
	apiGroup.Get("/knowledge/:category/:name", knowledgeHandler.Get)
	apiGroup.Get("/queries/history", authMiddleware.RequireAPIAuth, queryHandler.History)
	apiGroup.Get("/queries/history/:id", authMiddleware.RequireAPIAuth, queryHandler.GetRecord)
	apiGroup.Post("/queries/:category", authMiddleware.RequireAPIAuth, queryHandler.Ask)

	return nil
}
