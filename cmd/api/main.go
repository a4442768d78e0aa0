package main

import (
	"cinetrack/internal/adapter"
	"cinetrack/internal/config"
	"cinetrack/internal/core"
	"cinetrack/internal/logging"
	"cinetrack/pkg/http_server"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, os.Stdout)

	catalog := adapter.NewResilientCatalog(
		adapter.NewFileCatalog(cfg.Catalog.Path),
		cfg.Catalog.Retry,
		adapter.BreakerSettings{MaxFailures: cfg.Catalog.Breaker.MaxFailures, OpenTimeout: cfg.Catalog.Breaker.OpenTimeout},
		logger,
	)
	svc := core.NewService(catalog, adapter.NewCollectionStore(), logger)
	h := adapter.NewHTTPHandler(svc, logger)
	router := adapter.NewRouter(h, adapter.RouterConfig{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		RateLimit:   cfg.HTTP.RateLimit,
		RateWindow:  cfg.HTTP.RateWindow,
	})

	srv := http_server.CreateHTTPServer(cfg.Addr(), router, http_server.Timeouts{
		Read:  cfg.Server.ReadTimeout,
		Write: cfg.Server.WriteTimeout,
		Idle:  cfg.Server.IdleTimeout,
	})
	ln, err := http_server.Listen(srv.Addr)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "catalog", cfg.Catalog.Path)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
