package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ignite/campaign-triage/internal/api"
	"github.com/ignite/campaign-triage/internal/config"
	"github.com/ignite/campaign-triage/internal/pkg/logger"
)

func main() {
	configPath := "config/config.yaml"
	if v := os.Getenv("TRIAGE_CONFIG"); v != "" {
		configPath = v
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		logger.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}

	server := api.NewServer(cfg)
	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)

	go func() {
		logger.Info("campaign triage API listening",
			"addr", addr,
			"default_sigma", cfg.Analysis.DefaultSigma,
			"ctr_column", cfg.Analysis.CTRColumn,
		)
		if err := server.ListenAndServe(addr); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
