package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/spf13/cobra"
)

func newSeedCommand(out io.Writer) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the predefined employees, admin account and work phases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), out, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations first")
	return cmd
}

func runSeed(ctx context.Context, out io.Writer, migrate bool) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	if migrate {
		if err := database.Migrate(ctx, &rt.log, rt.cfg); err != nil {
			return fmt.Errorf("seed: migrate: %w", err)
		}
	}

	db, err := database.New(rt.cfg, &rt.log, rt.loggerService)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	defer db.Close()

	seeder := service.NewSeedService(
		repository.NewUserRepository(db.Pool),
		repository.NewWorkPhaseRepository(db.Pool),
		&rt.log,
	)

	result, err := seeder.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	_, err = fmt.Fprintf(out, "seeded users=%d phases=%d\n", result.Users, result.Phases)
	return err
}
