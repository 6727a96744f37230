package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // postgres driver
	"github.com/streadway/amqp"

	"github.com/reviewloop/reviewloop-backend/internal/api"
	"github.com/reviewloop/reviewloop-backend/internal/billing"
	"github.com/reviewloop/reviewloop-backend/internal/config"
	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/dispatch"
	"github.com/reviewloop/reviewloop-backend/internal/email"
	"github.com/reviewloop/reviewloop-backend/internal/outreach"
	"github.com/reviewloop/reviewloop-backend/internal/scheduling"
	"github.com/reviewloop/reviewloop-backend/internal/store"
)

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port)

	// ── Database ──────────────────────────────────────────────────────────────
	pool, queries, err := openDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	logger.Info("database connected")

	// ── Store (atomic multi-step writes) ──────────────────────────────────────
	st := store.New(pool, queries)

	// ── Email transport ───────────────────────────────────────────────────────
	provider := email.New(email.Config{
		SendGridAPIKey: cfg.SendGridAPIKey,
		RelayURL:       cfg.EmailRelayURL,
		FromAddr:       cfg.EmailFromAddr,
		FromName:       cfg.EmailFromName,
	}, logger)
	logger.Info("email transport selected", "provider", provider.Name())

	// ── Graceful shutdown root ────────────────────────────────────────────────
	// Root context cancelled by OS signal. Runner, consumer, and HTTP server
	// all respect it.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Follow-up scheduling ──────────────────────────────────────────────────
	// The broker is primary; the database write is both the fallback and the
	// final destination (the consumer funnels queue messages into the same
	// store call). With no AMQP_URL configured, scheduling goes straight to
	// the database.
	storeSched := scheduling.NewStoreScheduler(st)
	scheduler := storeSched

	if cfg.AMQPURL != "" {
		conn, dialErr := amqp.Dial(cfg.AMQPURL)
		if dialErr != nil {
			logger.Warn("amqp unreachable, scheduling directly to database", "error", dialErr)
		} else {
			defer conn.Close()

			amqpSched, declErr := scheduling.NewAMQPScheduler(conn, cfg.AMQPQueue)
			if declErr != nil {
				logger.Warn("amqp queue declare failed, scheduling directly to database", "error", declErr)
			} else {
				defer amqpSched.Close()
				scheduler = scheduling.NewFallbackScheduler(amqpSched, storeSched, logger)

				consumer := scheduling.NewConsumer(conn, cfg.AMQPQueue, st, logger)
				go func() {
					if err := consumer.Run(ctx); err != nil {
						logger.Error("amqp consumer stopped", "error", err)
					}
				}()
				logger.Info("amqp scheduling enabled", "queue", cfg.AMQPQueue)
			}
		}
	}

	// ── Outreach orchestrator ─────────────────────────────────────────────────
	outreachSvc := outreach.New(queries, provider, scheduler, cfg.BaseURL, logger)

	// ── Dispatcher + runner ───────────────────────────────────────────────────
	dispatcher := dispatch.New(queries, provider, cfg.BaseURL, dispatch.Config{
		Workers:    cfg.DispatchWorkers,
		JobTimeout: cfg.JobTimeout,
		BatchSize:  int32(cfg.DispatchBatch),
	}, logger)
	runner := dispatch.NewRunner(dispatcher, cfg.DispatchInterval, logger)

	// ── Stripe ────────────────────────────────────────────────────────────────
	var billingClient billing.Client
	if cfg.StripeSecretKey != "" {
		billingClient = billing.NewClient(cfg.StripeSecretKey)
	} else {
		logger.Warn("stripe not configured, billing endpoints disabled")
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(
		queries,
		st,
		outreachSvc,
		dispatcher,
		billingClient,
		api.Config{
			BaseURL:             cfg.BaseURL,
			StripeWebhookSecret: cfg.StripeWebhookSecret,
			Env:                 cfg.Env,
		},
		logger,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the dispatch runner in a background goroutine. It blocks until ctx
	// is done.
	go runner.Start(ctx)

	// Start the HTTP server in a background goroutine.
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until either a signal arrives or the server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	// Give in-flight HTTP requests up to 20 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// openDB opens the connection pool and prepares all sqlc statements.
// Using db.Prepare (rather than db.New) means every query is validated against
// the database schema at startup — the server refuses to start if the schema
// is out of sync.
func openDB(dsn string) (*sql.DB, *db.Queries, error) {
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}

	// Tune the connection pool.
	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(5 * time.Minute)
	pool.SetConnMaxIdleTime(2 * time.Minute)

	// Verify the connection is reachable before proceeding.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}

	// Prepare all sqlc statements. This validates the SQL against the live
	// schema — any mismatch (missing column, renamed table) is caught here,
	// not at the first query execution.
	queries, err := db.Prepare(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("prepare statements: %w", err)
	}

	return pool, queries, nil
}
