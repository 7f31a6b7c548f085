package cli

import (
	"context"
	"fmt"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	if err := database.Migrate(ctx, &rt.log, rt.cfg); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
