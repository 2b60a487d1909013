package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edocta/consulta-vehicular/config"
)

const shutdownTimeout = 10 * time.Second

// Server bundles the router and its dependencies.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
}

// NewServer constructs a server with routes and middleware.
func NewServer(cfg *config.Config, querier Querier) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(corsMiddleware())
	engine.SetHTMLTemplate(reportTemplates)

	gate := NewGate()
	h := NewConsultaHandler(querier, gate, cfg)

	engine.GET("/", h.Info)
	engine.GET("/health", h.Health)

	consulta := engine.Group("/", SingleFlight(gate))
	{
		consulta.GET("/consulta", h.GetConsulta)
		consulta.POST("/consulta", h.PostConsulta)
		consulta.GET("/consulta-consola/:placa", h.ConsoleConsulta)
		consulta.GET("/consulta-html/:placa", h.HTMLConsulta)
	}

	return &Server{cfg: cfg, engine: engine}
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	slog.Info("server listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
