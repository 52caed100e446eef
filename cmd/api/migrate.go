package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "taskhub/internal/adapter/db"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema",
	Long:  `Apply the users, categories and tasks DDL for the configured DB_DRIVER. Statements are idempotent.`,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 30*time.Second, "Maximum time to spend applying the schema")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, flush, err := bootstrap()
	if err != nil {
		return err
	}
	defer flush()

	if cfg.SkipDBConnection {
		return fmt.Errorf("migrate needs a database: unset SKIP_DB_CONNECTION")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.DbDriver, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Warn("failed to close database connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	if err := dbadapter.Migrate(ctx, db); err != nil {
		return err
	}

	zap.L().Info("schema applied", zap.String("driver", db.DriverName()))
	return nil
}
