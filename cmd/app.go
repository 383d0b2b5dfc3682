package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"emergencyAPI/internal/components"
	"emergencyAPI/internal/config"
	"emergencyAPI/internal/storage/postgres"
)

func Run() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "emergency-api",
		Short:         "Citizen emergency reports and emergency site directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context())
		},
	})

	return root
}

func load() (*config.Config, *slog.Logger, error) {
	logger := components.SetupLogger(os.Getenv("ENV"))
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("load config failed", slog.Any("error", err))
		return nil, nil, err
	}
	return cfg, components.SetupLogger(cfg.Env), nil
}

func migrate(ctx context.Context) error {
	cfg, logger, err := load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	pg, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pg.Close()

	if err := postgres.Migrate(ctx, pg.Pool, logger); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		return err
	}
	logger.Info("migration complete")
	return nil
}

func serve(parent context.Context) error {
	cfg, logger, err := load()
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancel(parent)
	defer stop()

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", slog.Any("error", err))
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", slog.Any("error", err))
			stop()
		}
		logger.Info("http server stopped")
	}()
	go func() {
		defer wg.Done()
		comps.Workers.Run(ctx)
		logger.Info("workers stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quitChan:
		logger.Info("captured signal, initiating shutdown", slog.String("signal", sig.String()))
	case <-ctx.Done():
	}
	stop()

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shutting down the servers")

	return nil
}
