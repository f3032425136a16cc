package main

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	docsite "github.com/willyhardian/expressjstutorial"
	"github.com/willyhardian/expressjstutorial/content"
	"github.com/willyhardian/expressjstutorial/internal/adapters/env"
	"github.com/willyhardian/expressjstutorial/internal/core"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := env.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	var contentFS iofs.FS = content.FS
	opts := []docsite.Option{
		docsite.WithFeatures(content.Features),
		docsite.WithLogger(logger),
	}

	if cfg.ContentDir != "" {
		contentFS = os.DirFS(cfg.ContentDir)
		opts = []docsite.Option{docsite.WithLogger(logger)}
	}

	if env.DetectMode() == core.ModeProd {
		opts = append(opts, docsite.WithDist(os.DirFS(cfg.OutDir)))
	}

	app, err := docsite.New(contentFS, opts...)
	if err != nil {
		logger.Error("failed to create app", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: app.Handler(),
	}

	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
