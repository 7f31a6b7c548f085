// Package cli wires the timesheet command line: serving the API, running
// migrations and seeding the reference data.
package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "timesheet",
		Short:         "Employee timesheet tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand(out))
	return cmd
}
