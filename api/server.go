package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/api/middleware"
	"github.com/Estefano-cmd/impulsoApi/api/routes"
	"github.com/Estefano-cmd/impulsoApi/config"
	"github.com/Estefano-cmd/impulsoApi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	config     *config.Config
	httpServer *http.Server
	log        *logrus.Logger
}

// NewServer creates a new HTTP server. nrApp may be nil.
func NewServer(cfg *config.Config, log *logrus.Logger, nrApp *newrelic.Application, svc *service.Services) *Server {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())

	if nrApp != nil {
		router.Use(middleware.NewRelicMiddleware(nrApp))
	}

	routes.SetupRoutes(router, svc, cfg, log)

	return &Server{
		router: router,
		config: cfg,
		log:    log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	s.log.Infof("Starting server on port %d", s.config.Server.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
