package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/gymdesk/internal/auth"
	"github.com/mmynk/gymdesk/internal/config"
	"github.com/mmynk/gymdesk/internal/session"
	"github.com/mmynk/gymdesk/internal/storage"
	"github.com/mmynk/gymdesk/internal/storage/flatfile"
	"github.com/mmynk/gymdesk/internal/storage/sqlite"
	"github.com/mmynk/gymdesk/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	root := rootCommand(ctx, &cfg)
	root.AddCommand(
		listCommand(ctx, &cfg),
		migrateCommand(ctx, &cfg),
	)

	if err := root.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func rootCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "gymdesk",
		Short:         "Gym management console",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags are parsed by now, so they win over the environment.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
			return cfg.Validate()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConsole(ctx, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the record files")
	flags.StringVar((*string)(&cfg.Backend), "backend", string(cfg.Backend), "storage backend: file or sqlite")
	flags.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database file (default <data-dir>/gym.db)")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics here at exit")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	return root
}

func runConsole(ctx context.Context, cfg *config.Config) error {
	store, err := openStore(cfg, cfg.Backend)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	admin, err := auth.NewAdminAuthenticator(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
	if err != nil {
		return err
	}

	s := session.New(session.Options{
		Store:  store,
		Admin:  admin,
		Logger: slog.Default(),
	})
	if err := s.Load(ctx); err != nil {
		return err
	}

	runErr := s.Run(ctx, os.Stdin, os.Stdout)

	if cfg.MetricsFile != "" {
		if err := s.Metrics().WriteFile(cfg.MetricsFile); err != nil {
			slog.Error("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		} else {
			slog.Info("Metrics written", "path", cfg.MetricsFile)
		}
	}
	return runErr
}

func openStore(cfg *config.Config, backend config.Backend) (storage.Store, error) {
	logger := slog.Default()
	if backend == config.BackendSQLite {
		store, err := sqlite.New(cfg.DatabasePath(), logger)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", backend, "database", cfg.DatabasePath())
		return store, nil
	}
	slog.Info("Storage initialized", "backend", config.BackendFile, "dir", cfg.DataDir)
	return flatfile.New(cfg.DataDir, logger), nil
}
