package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskhub/internal/config"
	"taskhub/pkg/translator"
)

var rootCmd = &cobra.Command{
	Use:   "taskhub",
	Short: "Multi-tenant task management API",
	Long: `taskhub serves the task management HTTP API.

Configuration is read from the environment (and an optional .env file).
Run "taskhub migrate" once against a fresh database before serving.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap prepares the process-wide logger and translations and returns the
// loaded configuration. The returned func flushes the logger.
func bootstrap() (*config.Config, func(), error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	flush := func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}

	cfg := config.LoadConfig()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	return cfg, flush, nil
}
