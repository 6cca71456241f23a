// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stub runs a local collaborator that answers the wizard's six
// endpoints with deterministic canned artifacts. It exists so the full
// upload-to-certificate flow can be exercised without the production
// extraction service.
package stub

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/config"
	"github.com/anuj846k/Covenant-Logic-Compiler/internal/logger"
)

// Server is the local development collaborator.
type Server struct {
	httpServer *http.Server
}

// Router builds the route tree. Exposed separately from New so tests can
// mount it on an httptest server.
func Router() chi.Router {
	handlers := NewHandlers()

	r := chi.NewRouter()
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)

	r.Route("/api/v1/agreements", func(r chi.Router) {
		r.Post("/upload", handlers.Upload)
		r.Post("/extract", handlers.Extract)
		r.Post("/generate-code", handlers.GenerateCode)
		r.Post("/calculate", handlers.Calculate)
		r.Put("/covenants/{agreement_id}", handlers.UpdateCovenants)
		r.Post("/certificate", handlers.Certificate)
	})

	return r
}

// New creates the server. It does NOT start listening, call Run() for that.
func New(cfg *config.StubConfig) *Server {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           Router(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Run starts the HTTP server and blocks until it is shut down or the
// context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		log := logger.GetStubLogger()
		log.Info().Str("addr", s.httpServer.Addr).Msg("Stub collaborator listening")
		errChan <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
