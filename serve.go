package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/strategy/ctxmissing"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/acme-reservations/cliparse"
	"github.com/danielhkuo/acme-reservations/db"
	"github.com/danielhkuo/acme-reservations/middleware"
	"github.com/danielhkuo/acme-reservations/router"
)

const shutdownTimeout = 5 * time.Second

func serve(ctx context.Context, cfg cliparse.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing {
		configureTracing()
	}

	// Connect and verify
	conn, err := db.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer conn.Close()

	// Never drops anything; see the reset command for that
	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}
	slog.Info("Database schema ready", "database_type", cfg.DatabaseType)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var handler http.Handler = middleware.CORS(router.NewRouter(conn, reg))
	if cfg.Tracing {
		handler = xray.Handler(xray.NewFixedSegmentNamer("acme-reservations"), handler)
	}

	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server closed: %w", err)
	}

	slog.Info("Server closed")
	return nil
}

func configureTracing() {
	err := xray.Configure(xray.Config{
		DaemonAddr:             "127.0.0.1:2000",
		ServiceVersion:         "1.0.0",
		ContextMissingStrategy: ctxmissing.NewDefaultLogErrorStrategy(),
	})
	if err != nil {
		slog.Error("failed to configure X-Ray, using defaults", "error", err)
	}
}
