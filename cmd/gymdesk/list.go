package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mmynk/gymdesk/internal/config"
	"github.com/mmynk/gymdesk/internal/session"
)

func listCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "list plans|equipment|members",
		Short:     "print one record set and exit",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"plans", "equipment", "members"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cfg, cfg.Backend)
			if err != nil {
				return err
			}
			defer store.Close()

			switch args[0] {
			case "plans":
				plans, err := store.LoadPlans(ctx)
				if err != nil {
					return err
				}
				session.PrintPlans(cmd.OutOrStdout(), plans)
			case "equipment":
				equipment, err := store.LoadEquipment(ctx)
				if err != nil {
					return err
				}
				session.PrintEquipment(cmd.OutOrStdout(), equipment)
			case "members":
				members, err := store.LoadMembers(ctx)
				if err != nil {
					return err
				}
				session.PrintMembers(cmd.OutOrStdout(), members)
			}
			return nil
		},
	}
}
