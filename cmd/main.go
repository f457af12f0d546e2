package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/apostle2t/jobboard/config"
	appauth "github.com/apostle2t/jobboard/internal/app/auth"
	"github.com/apostle2t/jobboard/internal/app/jobs"
	"github.com/apostle2t/jobboard/internal/app/users"
	"github.com/apostle2t/jobboard/internal/chat"
	"github.com/apostle2t/jobboard/internal/directory"
	"github.com/apostle2t/jobboard/internal/localstore"
	httpserver "github.com/apostle2t/jobboard/internal/server/http"
	"github.com/apostle2t/jobboard/internal/share"
	transport "github.com/apostle2t/jobboard/internal/transport/http"
	"github.com/apostle2t/jobboard/pkg/httpclient"
	"github.com/apostle2t/jobboard/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting jobboard",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- durable mirror (localStorage analog) ---
	mirror, err := localstore.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open local store: %v", err)
	}

	// --- chat core ---
	dir := directory.NewDemo()
	store := chat.NewStore()
	if cfg.Chat.SeedDemoData {
		chat.SeedDemo(store)
	}
	shareSvc := share.New(store, mirror)

	// --- upstream clients ---
	api := httpclient.New(httpclient.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		Timeout:         cfg.Upstream.Timeout,
		RetryMaxElapsed: cfg.Upstream.RetryMaxElapsed,
	}, mirror)

	jobsClient := jobs.New(api)
	usersClient := users.New(api)
	authClient := appauth.New(api, mirror)

	// --- HTTP ---
	router := transport.NewRouter(transport.Deps{
		Chat:      &transport.ChatHandlers{Dir: dir, Store: store, Share: shareSvc},
		Jobs:      &transport.JobHandlers{Jobs: jobsClient},
		Auth:      &transport.AuthHandlers{Auth: authClient},
		Users:     &transport.UserHandlers{Users: usersClient},
		Bookmarks: &transport.BookmarkHandlers{Mirror: mirror},

		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		RequestsPerMinute: cfg.HTTP.RequestsPerMinute,
	})

	srv := httpserver.New(httpserver.Config{
		Addr:         cfg.HTTP.Addr,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}, router)

	// --- graceful shutdown ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("http listen", "addr", cfg.HTTP.Addr)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server stopped with error", "err", err)
		os.Exit(1)
	}

	slog.Info("stopped")
}
