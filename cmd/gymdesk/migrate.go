package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/gymdesk/internal/config"
	"github.com/mmynk/gymdesk/internal/storage"
)

func migrateCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "copy all records between the file and sqlite backends",
		RunE: func(_ *cobra.Command, _ []string) error {
			dstBackend := config.Backend(to)
			var srcBackend config.Backend
			switch dstBackend {
			case config.BackendSQLite:
				srcBackend = config.BackendFile
			case config.BackendFile:
				srcBackend = config.BackendSQLite
			default:
				return fmt.Errorf("--to must be %q or %q, got %q", config.BackendFile, config.BackendSQLite, to)
			}

			src, err := openStore(cfg, srcBackend)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", srcBackend, err)
			}
			defer src.Close()
			dst, err := openStore(cfg, dstBackend)
			if err != nil {
				return fmt.Errorf("failed to open %s store: %w", dstBackend, err)
			}
			defer dst.Close()

			counts, err := storage.Copy(ctx, src, dst)
			if err != nil {
				return err
			}
			slog.Info("Migration complete",
				"from", srcBackend,
				"to", dstBackend,
				"plans", counts.Plans,
				"equipment", counts.Equipment,
				"members", counts.Members,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", string(config.BackendSQLite), "target backend: sqlite or file")
	return cmd
}
