package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edocta/consulta-vehicular/client"
	"github.com/edocta/consulta-vehicular/config"
	"github.com/edocta/consulta-vehicular/handler"
	"github.com/edocta/consulta-vehicular/logging"
	"github.com/edocta/consulta-vehicular/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	// Initialize portal client
	portalClient := client.NewPortalClient(cfg)

	// Initialize service layer
	consultaService := service.NewConsultaService(portalClient, cfg)

	// Setup HTTP server
	server := handler.NewServer(cfg, consultaService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting consulta vehicular API",
		"version", config.Version,
		"port", cfg.ServerPort,
		"proxy", cfg.ProxyLabel(),
		"email", cfg.Email,
	)
	if err := server.Run(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
