package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jpittner/finqa/internal/api"
	"github.com/jpittner/finqa/internal/config"
	"github.com/jpittner/finqa/internal/document"
	"github.com/jpittner/finqa/internal/pipeline"
	"github.com/jpittner/finqa/internal/session"
)

func main() {
	// Load .env if present. A missing file is fine.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs := document.NewStore()

	// Session history lives in Redis when an address is configured,
	// otherwise in process memory.
	var sessions session.Store
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		pingCancel()
		if err != nil {
			log.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
		log.Info("using redis session store", "addr", cfg.RedisAddr)
	} else {
		mem := session.NewMemoryStore(cfg.SessionTTL)
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					mem.Sweep()
				}
			}
		}()
		sessions = mem
		log.Info("using in-memory session store")
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, docs, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, docs, sessions, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if redisClient != nil {
			redisClient.Close()
		}
	}()

	log.Info("starting finqa", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
