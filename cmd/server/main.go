package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/emptycheck-api/internal/config"
	applog "github.com/janisto/emptycheck-api/internal/platform/logging"
	"github.com/janisto/emptycheck-api/internal/platform/strutil"
	"github.com/janisto/emptycheck-api/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx := context.Background()
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(ctx, "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(ctx, "invalid configuration", err)
	}

	srv := server.New(cfg, strutil.IsEmpty, Version)
	ln, err := srv.Listen(ctx)
	if err != nil {
		applog.LogFatal(ctx, "listen failed", err, zap.String("addr", cfg.Addr()))
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Serve(sigCtx, ln); err != nil {
		applog.LogFatal(ctx, "server stopped", err)
	}
}
