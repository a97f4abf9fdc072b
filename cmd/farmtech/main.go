package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"farmtech/internal/config"
	"farmtech/internal/console"
	"farmtech/internal/logger"
	"farmtech/internal/repository"
	"farmtech/internal/service"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "farmtech",
		Short:        "Interactive console for registering plots and sizing input applications",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the farmtech version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLogger := logger.New(cfg.Environment, cfg.LogLevel)
	appLogger = appLogger.With().Str("session_id", uuid.New().String()).Logger()

	plotRepo := repository.NewPlotRepository()
	plotService := service.NewPlotService(plotRepo)

	session := console.NewSession(plotService, appLogger, os.Stdin, os.Stdout, cfg.AppName)

	appLogger.Info().Str("env", cfg.Environment).Msg("starting farmtech console")

	if err := session.Run(); err != nil {
		appLogger.Error().Err(err).Msg("session ended with error")
		return err
	}

	appLogger.Info().Msg("session finished")
	return nil
}
