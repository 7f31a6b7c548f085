package cli

import (
	"fmt"

	"github.com/deppfellow/timesheet/internal/config"
	"github.com/deppfellow/timesheet/internal/logger"
	"github.com/rs/zerolog"
)

// deps is what every command needs before touching a dependency.
type deps struct {
	cfg           *config.Config
	loggerService *logger.LoggerService
	log           zerolog.Logger
}

// loadConfigFn is swapped in tests.
var loadConfigFn = config.LoadConfig

func bootstrap() (*deps, error) {
	cfg, err := loadConfigFn()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)

	log, err := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return &deps{
		cfg:           cfg,
		loggerService: loggerService,
		log:           log,
	}, nil
}

func (rt *deps) close() {
	rt.loggerService.Shutdown()
}
