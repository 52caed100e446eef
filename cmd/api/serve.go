package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "taskhub/internal/adapter/db"
)

var (
	servePort       string
	serveMigrate    bool
	shutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the HTTP API on APP_PORT.

With SKIP_DB_CONNECTION=true the API runs on an in-memory store and
SEED_DEMO_DATA=true loads a demo account.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides APP_PORT)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply the schema before serving")
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, flush, err := bootstrap()
	if err != nil {
		return err
	}
	defer flush()
	logger := zap.L()

	repos, db, err := openRepositories(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close database connection", zap.Error(err))
			}
		}()
		if serveMigrate {
			if err := dbadapter.Migrate(cmd.Context(), db); err != nil {
				return err
			}
		}
	}

	svc := newServices(cfg, repos)
	if cfg.SeedDemoData {
		if err := seedDemoData(cmd.Context(), svc); err != nil {
			return err
		}
	}

	r, err := newRouter(cfg, db, svc, logger)
	if err != nil {
		return err
	}

	port := cfg.AppPort
	if servePort != "" {
		port = servePort
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.Bool("memory_store", db == nil))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
