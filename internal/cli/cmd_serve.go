package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/timesheet/internal/database"
	"github.com/deppfellow/timesheet/internal/handler"
	"github.com/deppfellow/timesheet/internal/lib/email"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/router"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, background workers and alert scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	log := &rt.log

	if migrate || rt.cfg.Server.MigrateOnStart {
		if err := database.Migrate(ctx, log, rt.cfg); err != nil {
			return fmt.Errorf("serve: migrate: %w", err)
		}
	}

	srv, err := server.New(rt.cfg, log, rt.loggerService)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)

	emailClient, err := email.NewClient(rt.cfg, log)
	if err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("serve: %w", err)
	}

	srv.Job.InitHandlers(services.Admin, emailClient)
	if err := srv.Job.Start(); err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("serve: start jobs: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers, services.Auth))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err = <-serveErr:
		log.Error().Err(err).Msg("http server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return errors.Join(err, shutdownErr)
	}

	log.Info().Msg("server exited properly")
	return err
}
