package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cats-form/internal/adapters/catsapi"
	"cats-form/internal/platform/config"
	"cats-form/internal/platform/httpclient"
	"cats-form/internal/platform/logger"
	"cats-form/internal/router"
	"cats-form/internal/view"
)

func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	hc, err := httpclient.NewWithBaseURL(cfg.APIURL, cfg.HTTPTimeout)
	if err != nil {
		log.Error("invalid api url", map[string]any{"error": err, "api_url": cfg.APIURL})
		os.Exit(1)
	}
	hc.Log = log.With(map[string]any{"component": "catsapi"})
	src := catsapi.New(hc)

	views := view.NewRegistry(src, log, cfg.ViewTTL)

	upstream := ""
	if cfg.DevProxy {
		upstream = cfg.Upstream
	}

	h, err := router.NewRouter(router.Options{
		Logger:     log,
		Upstream:   upstream,
		Source:     src,
		Views:      views,
		PrettyHTML: cfg.PrettyHTML,
	})
	if err != nil {
		log.Error("router setup failed", map[string]any{"error": err})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go views.Run(ctx)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{
		"addr":      cfg.Addr(),
		"api_url":   cfg.APIURL,
		"dev_proxy": upstream,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
