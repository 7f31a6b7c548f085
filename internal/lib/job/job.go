// Package job provides background job processing using Asynq.
//
// Tasks are enqueued with asynq.Client, periodic ones are registered on an
// asynq.Scheduler, and an asynq.Server runs the workers. All three share the
// application's Redis.
package job

import (
	"github.com/deppfellow/timesheet/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue), scheduler (periodic tasks)
// and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server    *asynq.Server
	scheduler *asynq.Scheduler
	cfg       *config.Config
	logger    *zerolog.Logger

	reporter PhaseReporter
	sender   AlertSender
}

// NewJobService creates a JobService configured to use Redis from cfg.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: cfg.Primary.Location(),
	})

	return &JobService{
		Client:    asynq.NewClient(redisOpt),
		server:    server,
		scheduler: scheduler,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the task handlers, starts the workers and, when alerts are
// configured, the periodic threshold check. Neither call blocks.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPhaseThresholdAlert, j.handlePhaseThresholdAlertTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	if !j.cfg.Integration.AlertsEnabled() {
		j.logger.Info().Msg("threshold alerts disabled, scheduler not started")
		return nil
	}

	task, err := NewPhaseThresholdAlertTask(j.cfg.Integration.AlertTo)
	if err != nil {
		return err
	}

	entryID, err := j.scheduler.Register(j.cfg.Integration.AlertCron, task)
	if err != nil {
		return err
	}

	j.logger.Info().
		Str("entry_id", entryID).
		Str("cron", j.cfg.Integration.AlertCron).
		Msg("scheduled phase threshold alerts")

	return j.scheduler.Start()
}

// Stop gracefully stops the scheduler and workers and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.scheduler.Shutdown()
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
