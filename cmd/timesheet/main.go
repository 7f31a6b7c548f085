package main

import (
	"context"
	"fmt"
	"os"

	"github.com/deppfellow/timesheet/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "timesheet:", err)
		os.Exit(1)
	}
}
