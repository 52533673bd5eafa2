package main

import (
	"context"
	"fmt"

	"travel-booking-service/config"
	"travel-booking-service/internal/pkg/database"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			cfg := config.InitConfig()
			db := database.GetConnection(&cfg.Database)
			defer db.Close()

			applied, err := database.Migrate(context.Background(), db, dryRun)
			if err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}

			if len(applied) == 0 {
				fmt.Println("No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Println("Pending migrations:")
			} else {
				fmt.Println("Applied migrations:")
			}
			for _, v := range applied {
				fmt.Printf("  %s\n", v)
			}
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "list pending migrations without applying them")
	return cmd
}
