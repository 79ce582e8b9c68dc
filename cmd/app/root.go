package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/StepanK17/health-service/internal/app"
	"github.com/StepanK17/health-service/internal/config"
	"github.com/StepanK17/health-service/internal/logger"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "health-service",
	Short: "Health check service",
	Long: `health-service exposes GET /health and redirects GET / to the API docs.

Configuration is read from environment variables:
  APPLICATION_TITLE, ENVIRONMENT, HTTP_PORT, DOCS_PATH,
  LOG_LEVEL, LOG_FORMAT, SHUTDOWN_TIMEOUT`,
	SilenceUsage: true,
	RunE:         runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "health-service %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  Commit:     %s\n", Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  Build Date: %s\n", BuildDate)
	},
}

func init() {
	rootCmd.Flags().String("port", "", "HTTP port (overrides HTTP_PORT)")

	rootCmd.AddCommand(versionCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.HTTPPort = port
	}

	log := logger.New(cfg)

	return app.New(cfg, log, Version).Run(cmd.Context())
}

// Execute запускает корневую команду
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
